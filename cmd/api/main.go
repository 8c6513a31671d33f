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

	"github.com/go-chi/chi/v5"

	appanalysis "github.com/bryanwahyu/scrutinizer/internal/application/analysis"
	"github.com/bryanwahyu/scrutinizer/internal/config"
	"github.com/bryanwahyu/scrutinizer/internal/infra/ai/gemini"
	"github.com/bryanwahyu/scrutinizer/internal/infra/httpserver"
)

func main() {
	// path config.yaml
	path := "config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		path = v
	}

	// load config
	cfg, err := config.Load(path)
	if err != nil {
		log.Fatalf("config load error: %v", err)
	}

	// init analyzer
	analyzer := gemini.NewClient(cfg.Gemini.Model)

	// init service
	svc := &appanalysis.Service{
		Analyzer:           analyzer,
		Clock:              appanalysis.SystemClock{},
		FallbackCredential: cfg.FallbackAPIKey(),
	}

	// init router
	mux := chi.NewRouter()
	mux.Mount("/", httpserver.NewRouter(svc, httpserver.Options{
		MaxUploadMB:   cfg.Limits.MaxUploadMB,
		RatePerMinute: cfg.Limits.RatePerMinute,
		Burst:         cfg.Limits.Burst,
	}))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	srv := &http.Server{
		Addr:        addr,
		Handler:     mux,
		ReadTimeout: 60 * time.Second,
		// Analyses block on one long model call, so the write timeout is
		// generous compared to a normal API.
		WriteTimeout: 5 * time.Minute,
		IdleTimeout:  60 * time.Second,
	}

	// run server
	go func() {
		log.Printf("server listening on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("server error: %v", err)
		}
	}()

	// graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop
	log.Println("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("shutdown error: %v", err)
	}
}
