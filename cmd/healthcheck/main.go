// Command healthcheck probes the server's gRPC health endpoint. It exits
// zero when the endpoint reports SERVING, making it suitable as a container
// health probe.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"github.com/nishatiwari24/game-backend/internal/platform/cmd"
	platformgrpc "github.com/nishatiwari24/game-backend/internal/platform/grpc"
)

type config struct {
	Addr    string        `env:"GAME_BACKEND_HEALTH_ADDR" envDefault:"localhost:8081"`
	Timeout time.Duration `env:"GAME_BACKEND_HEALTHCHECK_TIMEOUT" envDefault:"5s"`
}

func main() {
	log.SetPrefix("[HEALTHCHECK] ")

	var cfg config
	if err := cmd.ParseConfig(&cfg); err != nil {
		log.Fatalf("parse config err=%v", err)
	}
	fs := flag.NewFlagSet(cmd.ServiceHealthcheck, flag.ContinueOnError)
	fs.StringVar(&cfg.Addr, "addr", cfg.Addr, "gRPC health endpoint address")
	fs.DurationVar(&cfg.Timeout, "timeout", cfg.Timeout, "probe timeout")
	if err := cmd.ParseArgs(fs, os.Args[1:]); err != nil {
		log.Fatalf("parse args err=%v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	conn, err := platformgrpc.DialWithHealth(ctx, nil, cfg.Addr, cfg.Timeout, log.Printf,
		platformgrpc.DefaultClientDialOptions()...)
	if err != nil {
		log.Fatalf("probe failed addr=%s err=%v", cfg.Addr, err)
	}
	_ = conn.Close()
	log.Printf("healthy addr=%s", cfg.Addr)
}
