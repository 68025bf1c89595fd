package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/valyala/fasthttp"

	"income-engine/internal/config"
	"income-engine/internal/handler"
)

func main() {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Configuration failed: %v", err)
	}

	srv := &fasthttp.Server{
		Handler:      handler.Route,
		ReadTimeout:  cfg.ReadTimeout(),
		WriteTimeout: cfg.WriteTimeout(),
	}

	log.Printf("Income engine starting on port %s", cfg.Port)
	if err := srv.ListenAndServe(":" + cfg.Port); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}
