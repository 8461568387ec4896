package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/transflower/firstwebapp/internal/di"
	"github.com/transflower/firstwebapp/internal/tools/common"
)

func main() {
	envFile := os.Getenv("ENV_FILE")
	if envFile == "" {
		envFile = ".env"
	}
	if err := common.LoadEnvFile(envFile); err != nil {
		log.Fatal(err)
	}

	a, err := di.InitializeApp()
	if err != nil {
		log.Fatal(err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	if err := a.Run(ctx); err != nil {
		stop()
		log.Fatal(err)
	}
}
