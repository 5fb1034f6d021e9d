package main

import (
	"context"
	"log"

	"clout/internal/app/bootstrap"
)

// API process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring (ports + adapters + use cases).
// 3) Start HTTP server.
func main() {
	log.Println("clout api starting")
	ctx := context.Background()

	app, err := bootstrap.BuildAPI(ctx)
	if err != nil {
		log.Fatalf("bootstrap api failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("api shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("clout api stopped with error: %v", err)
	}
}
