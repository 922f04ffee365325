package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"screencraft-backend/internal/assets"
	"screencraft-backend/internal/config"
	"screencraft-backend/internal/handlers"
	"screencraft-backend/internal/prompts"
	"screencraft-backend/internal/router"
	"screencraft-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting Screencraft Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Asset Store ────
	var store assets.Store
	if cfg.RedisURL != "" {
		client, err := assets.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer client.Close()
		store = assets.NewRedisStore(client)
		log.Println("✓ Redis asset store connected")
	} else {
		store = assets.NewMemoryStore()
		log.Println("✓ In-memory asset store initialized")
	}

	// ──── Step 3: Initialize Gemini Client ────
	var generateService *services.GenerateService
	if cfg.GeminiAPIKey != "" {
		var err error
		generateService, err = services.NewGenerateService(cfg.GeminiAPIKey, cfg.GeminiConcurrentReqs)
		if err != nil {
			log.Fatalf("✗ Gemini client initialization failed: %v", err)
		}
		defer generateService.Close()
		log.Println("✓ Gemini client initialized")
	} else {
		log.Println("⚠ GEMINI_API_KEY not set; /api/v1/generate is disabled")
	}

	// ──── Step 4: Initialize Prompt Assembler ────
	assembler := prompts.NewAssembler(cfg.BackendURL, services.NewVideoPromptAssembler())

	// ──── Initialize Handlers ────
	assetHandler := handlers.NewAssetHandler(store)
	generateHandler := handlers.NewGenerateHandler(assembler, generateService)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(assetHandler, generateHandler, cfg.FrontendURL)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  60 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ Screencraft Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API:    http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  Assets: http://localhost:%s/assets", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
