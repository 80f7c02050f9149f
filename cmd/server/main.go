package main

import (
	"log"
	"net/http"
	"time"

	"gamedex/internal/ai"
	"gamedex/internal/config"
	"gamedex/internal/db"
	"gamedex/internal/server"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	conn, err := db.Open(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	if err := db.Configure(conn,
		cfg.DBMaxOpenConns,
		cfg.DBMaxIdleConns,
		time.Duration(cfg.DBConnMaxLifetimeSeconds)*time.Second,
		time.Duration(cfg.DBConnMaxIdleTimeSeconds)*time.Second,
	); err != nil {
		log.Fatalf("failed to configure database pool: %v", err)
	}
	if err := db.Migrate(conn); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var aiClient ai.Client
	if cfg.OpenAIAPIKey != "" {
		aiClient = ai.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel)
	} else {
		log.Println("OPENAI_API_KEY not set; metadata autofill and recommendations disabled")
	}

	srv := server.New(conn, cfg, aiClient)
	addr := ":" + cfg.Port
	log.Printf("gamedex server listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.Handler()); err != nil {
		log.Fatal(err)
	}
}
