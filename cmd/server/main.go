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

	"github.com/OlamideOlanipekun/NaijaBites/internal/catalog"
	"github.com/OlamideOlanipekun/NaijaBites/internal/config"
	"github.com/OlamideOlanipekun/NaijaBites/internal/database"
	"github.com/OlamideOlanipekun/NaijaBites/internal/handlers"
	"github.com/OlamideOlanipekun/NaijaBites/internal/repository"
	"github.com/OlamideOlanipekun/NaijaBites/internal/router"
	"github.com/OlamideOlanipekun/NaijaBites/internal/services"
)

func main() {
	log.Println("🚀 Starting NaijaBites Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Stores ────
	var cartStore repository.CartStore
	var intakeStore repository.IntakeStore
	if cfg.RedisURL != "" {
		redisClient, err := database.NewRedisClient(cfg.RedisURL)
		if err != nil {
			log.Fatalf("✗ Redis connection failed: %v", err)
		}
		defer redisClient.Close()
		cartStore = repository.NewRedisCartStore(redisClient, time.Duration(cfg.CartTTLHours)*time.Hour)
		intakeStore = repository.NewRedisIntakeStore(redisClient)
		log.Println("✓ Redis connected")
	} else {
		cartStore = repository.NewMemoryCartStore()
		intakeStore = repository.NewMemoryIntakeStore()
		log.Println("✓ Using in-memory stores (REDIS_URL not set)")
	}

	// ──── Step 3: Load Catalog ────
	cat := catalog.New()
	log.Printf("✓ Catalog loaded (%d dishes)", len(cat.Dishes()))

	// ──── Step 4: Initialize Gemini Client ────
	assistantService, err := services.NewAssistantService(cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiConcurrentReqs)
	if err != nil {
		log.Fatalf("✗ Gemini client initialization failed: %v", err)
	}
	defer assistantService.Close()
	log.Println("✓ Gemini client initialized")

	// ──── Initialize Services ────
	cartService := services.NewCartService(cartStore, cat)
	bookingService := services.NewBookingService(intakeStore)
	chatSessions := services.NewChatSessionStore()

	// ──── Initialize Handlers ────
	menuHandler := handlers.NewMenuHandler(cat)
	cartHandler := handlers.NewCartHandler(cartService)
	chatHandler := handlers.NewChatHandler(assistantService, chatSessions)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	contentHandler := handlers.NewContentHandler(cat)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(
		menuHandler,
		cartHandler,
		chatHandler,
		bookingHandler,
		contentHandler,
		cfg.ChatRequestsPerMin,
		cfg.FrontendURL,
	)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
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

	log.Printf("✓ NaijaBites Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
