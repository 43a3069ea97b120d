package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"food-marketplace/internal/app"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	container := app.MustBuildContainer(ctx)
	app.NewRunner(log.Fatalf).MustRun(container)
}
