// Package server implements the game backend server command.
package server

import (
	"context"
	"flag"

	"github.com/nishatiwari24/game-backend/internal/app"
	"github.com/nishatiwari24/game-backend/internal/platform/cmd"
)

// Config holds the server command configuration.
type Config struct {
	HTTPAddr   string `env:"GAME_BACKEND_HTTP_ADDR" envDefault:":8080"`
	HealthAddr string `env:"GAME_BACKEND_HEALTH_ADDR" envDefault:":8081"`
	DBPath     string `env:"GAME_BACKEND_DB_PATH" envDefault:"game.db"`
}

func parseConfig(args []string) (Config, error) {
	var cfg Config
	if err := cmd.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs := flag.NewFlagSet(cmd.ServiceServer, flag.ContinueOnError)
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.HealthAddr, "health-addr", cfg.HealthAddr, "gRPC health listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite database path")
	if err := cmd.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run parses configuration and serves until the context ends.
func Run(ctx context.Context, args []string) error {
	cfg, err := parseConfig(args)
	if err != nil {
		return err
	}
	return cmd.RunWithTelemetry(ctx, cmd.ServiceServer, func(ctx context.Context) error {
		server, err := app.New(app.Config{
			HTTPAddr:   cfg.HTTPAddr,
			HealthAddr: cfg.HealthAddr,
			DBPath:     cfg.DBPath,
		})
		if err != nil {
			return err
		}
		return server.Run(ctx)
	})
}
