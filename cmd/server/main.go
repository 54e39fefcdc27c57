package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/nishatiwari24/game-backend/internal/cmd/server"
)

func main() {
	log.SetPrefix("[SERVER] ")
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := server.Run(ctx, os.Args[1:]); err != nil {
		log.Fatalf("server exited err=%v", err)
	}
}
