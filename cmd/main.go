package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"comments-service/config"
	"comments-service/handler"
	"comments-service/metrics"
	"comments-service/router"
)

func main() {
	// Load configuration
	cfg := config.Load()

	metrics.Init("comments-service", "1.0", getEnv("ENVIRONMENT", "production"))

	// Connect to NATS when configured; the service runs fine without it
	var events *handler.EventPublisher
	if cfg.NATSUrl != "" {
		var err error
		events, err = handler.NewEventPublisher(cfg.NATSUrl)
		if err != nil {
			log.Fatal("Failed to connect to NATS:", err)
		}
		defer events.Close()
	}

	// Setup router
	r := router.Setup(cfg, events)

	// Setup HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in background
	go func() {
		log.Printf("Comments service starting on :%s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server:", err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down comments service...")

	// Graceful shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Comments service stopped")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
