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

	"github.com/nightrelay/dark-ai/backend/internal/config"
	"github.com/nightrelay/dark-ai/backend/internal/handler"
	"github.com/nightrelay/dark-ai/backend/internal/service/ai"
	chatService "github.com/nightrelay/dark-ai/backend/internal/service/chat"
	userService "github.com/nightrelay/dark-ai/backend/internal/service/user"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Printf("warning: failed to load .env file: %v", err)
		log.Println("continuing with system environment variables only")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	// Initialize in-memory stores
	chatSvc := chatService.NewService()
	userSvc := userService.NewService()

	// Initialize the Gemini generator; failure is not fatal, the assistant
	// simply runs in fallback-only mode.
	var generator ai.Generator
	if cfg.AI.Enabled() {
		client, err := ai.NewGeminiClient(ctx, cfg.AI)
		if err != nil {
			log.Printf("warning: failed to initialize gemini: %v", err)
			log.Println("continuing with fallback responses only")
		} else {
			generator = client
			log.Printf("gemini model %s initialized successfully", client.Model())
		}
	} else {
		log.Println("GOOGLE_API_KEY not found in environment variables, gemini disabled")
	}

	assistant := ai.NewAssistant(generator)

	router := handler.NewRouter(cfg.Server, assistant, chatSvc, userSvc)

	log.Printf("starting Dark AI assistant on %s", cfg.Server.Addr)
	log.Printf("gemini available: %t", assistant.Available())
	log.Printf("serving frontend from: %s", cfg.Server.StaticDir)

	startServer(ctx, cfg.Server, router)
}

func startServer(ctx context.Context, serverCfg config.ServerConfig, router http.Handler) {
	srv := &http.Server{
		Addr:              serverCfg.Addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	if err := runServer(ctx, srv); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

func runServer(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
		err := <-errCh
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
