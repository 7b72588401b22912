// Package main runs the REST API server exposing the tool packages,
// conversational profile sessions and their OpenAPI documents.
package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/pavania1999/complex-tools-openapi/internal/api"
	"github.com/pavania1999/complex-tools-openapi/pkg/tools"
	"github.com/pavania1999/complex-tools-openapi/pkg/tools/profile"
)

func main() {
	// Load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	addr := envOr("ADDR", ":5000")
	specDir := envOr("OPENAPI_DIR", "api/openapi")

	profiles := profile.NewManager()
	handler := api.NewServer(profiles, api.NewSpecStore(specDir), tools.NewToolkit(profiles))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// SESSION_TTL enables idle-session expiry; unset means sessions live
	// until finalized.
	if ttl := os.Getenv("SESSION_TTL"); ttl != "" {
		maxIdle, err := time.ParseDuration(ttl)
		if err != nil {
			log.Fatalf("Invalid SESSION_TTL %q: %v", ttl, err)
		}
		go pruneLoop(ctx, profiles, maxIdle)
	}

	srv := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	log.Printf("Starting API server on %s (openapi dir: %s)", addr, specDir)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
	log.Println("Server stopped")
}

func pruneLoop(ctx context.Context, profiles *profile.Manager, maxIdle time.Duration) {
	ticker := time.NewTicker(maxIdle / 2)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if removed := profiles.PruneIdle(maxIdle); removed > 0 {
				log.Printf("Pruned %d idle profile session(s)", removed)
			}
		}
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
