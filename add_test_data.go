//go:build ignore
// +build ignore

// Helper script to fill a database with the demo todos and mark two done
// Run with: go run add_test_data.go [path]

package main

import (
	"context"
	"log"
	"os"

	"github.com/thenoetrevino/todos/internal/app"
	"github.com/thenoetrevino/todos/internal/config"
	"github.com/thenoetrevino/todos/internal/models"
)

func main() {
	ctx := context.Background()

	storage := config.Default().Storage
	if len(os.Args) > 1 {
		storage.Path = os.Args[1]
	}

	application, err := app.Open(ctx, storage)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer application.Close()

	svc := application.TodoService

	ids, err := svc.AddMany(ctx, models.DemoTasks)
	if err != nil {
		log.Fatalf("Failed to add demo todos: %v", err)
	}
	log.Printf("Added todos %v", ids)

	for _, id := range ids[1:3] {
		if _, err := svc.MarkDone(ctx, id); err != nil {
			log.Fatalf("Failed to mark todo %d done: %v", id, err)
		}
	}

	stats, err := svc.Stats(ctx)
	if err != nil {
		log.Fatalf("Failed to read stats: %v", err)
	}
	log.Printf("Total %d, completed %d, pending %d", stats.Total, stats.Completed, stats.Pending)
}
