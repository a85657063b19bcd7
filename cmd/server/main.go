// Command server runs the tweetsight HTTP API: saved tweet queries,
// asynchronous fetch jobs and result analysis.
//
// Usage:
//
//	server
//
// Configuration comes from CONFIG_PATH (YAML) and environment variables;
// DATABASE_DSN and AUTH_JWT_SECRET are required.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/tweetsight/backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
