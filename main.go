package main

import (
	"context"

	"github.com/hrsight/employees-api/internal/bootstrap"
	"github.com/hrsight/employees-api/internal/logger"
)

func main() {
	ctx := context.Background()

	app := bootstrap.NewApp()
	if err := app.Initialize(ctx); err != nil {
		panic(err)
	}

	logger.InfoLog(ctx, "Application initialized, starting HTTP server")
	if err := app.Run(); err != nil {
		logger.ErrorLog(ctx, "Server stopped: %v", err)
		panic(err)
	}
}
