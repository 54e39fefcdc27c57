// Package app wires the storage, engine, service and transports into one
// runnable server.
package app

import (
	"context"
	stderrors "errors"
	"fmt"
	"log"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/google.golang.org/grpc/otelgrpc"
	gogrpc "google.golang.org/grpc"
	"google.golang.org/grpc/health"
	grpc_health_v1 "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/nishatiwari24/game-backend/internal/api/rest"
	"github.com/nishatiwari24/game-backend/internal/game/config"
	"github.com/nishatiwari24/game-backend/internal/game/engine"
	"github.com/nishatiwari24/game-backend/internal/game/service"
	"github.com/nishatiwari24/game-backend/internal/storage/sqlite"
)

const shutdownTimeout = 10 * time.Second

// Config holds the listen addresses and the database location.
type Config struct {
	HTTPAddr   string
	HealthAddr string
	DBPath     string
}

// Server hosts the game API over HTTP and a gRPC health endpoint for probes.
type Server struct {
	cfg        Config
	store      *sqlite.Store
	httpServer *http.Server
	grpcServer *gogrpc.Server
	health     *health.Server
}

// New opens the store, registers the builtin games and builds both servers.
func New(cfg Config) (*Server, error) {
	store, err := sqlite.Open(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	games := config.NewRegistry()
	games.Register(config.GoldCoin())

	eng, err := engine.New()
	if err != nil {
		_ = store.Close()
		return nil, fmt.Errorf("build engine: %w", err)
	}

	svc := service.New(service.Stores{
		Session: store,
		Request: store,
		Player:  store,
		History: store,
		Wallet:  store,
	}, games, eng)

	healthServer := health.NewServer()
	grpcServer := gogrpc.NewServer(gogrpc.StatsHandler(otelgrpc.NewServerHandler()))
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)

	return &Server{
		cfg:   cfg,
		store: store,
		httpServer: &http.Server{
			Addr:              cfg.HTTPAddr,
			Handler:           rest.NewHandler(svc, store),
			ReadHeaderTimeout: 5 * time.Second,
		},
		grpcServer: grpcServer,
		health:     healthServer,
	}, nil
}

// Run serves until the context ends or a listener fails, then shuts both
// servers down and closes the store.
func (s *Server) Run(ctx context.Context) error {
	httpListener, err := net.Listen("tcp", s.cfg.HTTPAddr)
	if err != nil {
		_ = s.store.Close()
		return fmt.Errorf("listen http %s: %w", s.cfg.HTTPAddr, err)
	}
	healthListener, err := net.Listen("tcp", s.cfg.HealthAddr)
	if err != nil {
		_ = httpListener.Close()
		_ = s.store.Close()
		return fmt.Errorf("listen health %s: %w", s.cfg.HealthAddr, err)
	}

	serveErr := make(chan error, 2)
	go func() { serveErr <- s.httpServer.Serve(httpListener) }()
	go func() { serveErr <- s.grpcServer.Serve(healthListener) }()
	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	log.Printf("serving http_addr=%s health_addr=%s db=%s",
		s.cfg.HTTPAddr, s.cfg.HealthAddr, s.cfg.DBPath)

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		if err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			runErr = err
		}
	}

	s.health.SetServingStatus("", grpc_health_v1.HealthCheckResponse_NOT_SERVING)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		log.Printf("http shutdown err=%v", err)
	}
	s.grpcServer.GracefulStop()
	if err := s.store.Close(); err != nil {
		log.Printf("store close err=%v", err)
	}
	return runErr
}
