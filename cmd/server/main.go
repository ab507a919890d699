package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/medportal/authsvc/internal/server"
	"github.com/medportal/authsvc/internal/server/config"
)

func main() {

	// a missing .env file is fine; env vars may come from the host
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()
	app, err := server.NewApp(cfg)

	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)

}
