// Package main starts the pooled die gRPC service process lifecycle.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	pooleddiecmd "github.com/louisbranch/pooleddie/internal/cmd/pooleddie"
	entrypoint "github.com/louisbranch/pooleddie/internal/platform/cmd"
)

func main() {
	cfg, err := pooleddiecmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServicePooledDie))
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := pooleddiecmd.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
