package main

import (
	"context"
	"log"

	"clout/internal/app/bootstrap"
)

// Worker process entrypoint.
// Data flow:
// 1) Load config.
// 2) Build app wiring.
// 3) Start consumers/schedulers (entries consumer, outbox relay, reconciliation).
func main() {
	log.Println("clout worker starting")
	ctx := context.Background()

	app, err := bootstrap.BuildWorker(ctx)
	if err != nil {
		log.Fatalf("bootstrap worker failed: %v", err)
	}
	defer func() {
		if err := app.Close(); err != nil {
			log.Printf("worker shutdown close failed: %v", err)
		}
	}()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("clout worker stopped with error: %v", err)
	}
}
