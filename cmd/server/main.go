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

	"deepchat-backend/internal/completion"
	"deepchat-backend/internal/config"
	"deepchat-backend/internal/conversation"
	"deepchat-backend/internal/handlers"
	"deepchat-backend/internal/router"
	"deepchat-backend/internal/web"
	"deepchat-backend/internal/websocket"
)

func main() {
	log.Println("🚀 Starting DeepChat Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize Conversation Manager ────
	conversations := conversation.NewManager(time.Duration(cfg.SessionTTLMinutes) * time.Minute)
	log.Printf("✓ Conversation manager started (session TTL: %dm)", cfg.SessionTTLMinutes)

	// ──── Step 3: Initialize Completion Client ────
	client := completion.NewClient(
		cfg.OpenRouterAPIURL,
		cfg.OpenRouterModel,
		time.Duration(cfg.UpstreamTimeoutSeconds)*time.Second,
	)
	log.Printf("✓ Completion client initialized (model: %s)", cfg.OpenRouterModel)

	// ──── Step 4: Start WebSocket Hub ────
	wsHub := websocket.NewHub()
	log.Println("✓ WebSocket hub started")

	// ──── Initialize Handlers ────
	chatHandler := handlers.NewChatHandler(conversations, client, wsHub)

	// ──── Step 5: Start HTTP Server ────
	r := router.New(chatHandler, wsHub, web.Handler(), cfg.FrontendURL)

	server := &http.Server{
		Addr:        fmt.Sprintf(":%s", cfg.Port),
		Handler:     r,
		ReadTimeout: 15 * time.Second,
		// The upstream completion happens in-request, so the write
		// timeout must outlast a slow model.
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

	log.Printf("✓ DeepChat Backend ready on http://localhost:%s", cfg.Port)
	log.Printf("  API: http://localhost:%s/api/v1", cfg.Port)
	log.Printf("  WS:  ws://localhost:%s/api/v1/ws", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
