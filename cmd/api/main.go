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

	"agriinsight/internal/agrodata"
	"agriinsight/internal/auth"
	"agriinsight/internal/config"
	"agriinsight/internal/database"
	"agriinsight/internal/handlers"
	"agriinsight/internal/monitoring"
	"agriinsight/internal/router"
)

func main() {
	cfg, err := config.Load(os.Getenv("AGRI_CONFIG_FILE"))
	if err != nil {
		log.Fatal("Failed to load config: ", err)
	}

	// Database init is fatal: the server must not accept connections
	// without a working pool and schema.
	db, err := database.Open(cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database: ", err)
	}
	defer database.Close(db)

	if err := database.EnsureSchema(db); err != nil {
		log.Fatal("Failed to initialize schema: ", err)
	}

	store := auth.NewPostgresUserStore(db)
	authService, err := auth.NewService(store, auth.ServiceConfig{
		JWTSecret:  cfg.Auth.JWTSecret,
		TokenTTL:   cfg.TokenTTLDuration(),
		BcryptCost: cfg.Auth.BcryptCost,
	})
	if err != nil {
		log.Fatal("Failed to build auth service: ", err)
	}

	counters := monitoring.NewRequestCounters()
	statusService := monitoring.NewService(db, counters, time.Now())

	engine := router.Setup(cfg, router.Deps{
		Auth:      handlers.NewAuthHandler(authService, cfg.Auth.CookieSecure, int(cfg.TokenTTLDuration().Seconds())),
		Dashboard: handlers.NewDashboardHandler(agrodata.NewRandomProvider()),
		Status:    handlers.NewStatusHandler(statusService),
		Verifier:  authService,
		Counters:  counters,
	})

	srv := &http.Server{
		Addr:    cfg.Addr(),
		Handler: engine,
	}

	go func() {
		log.Printf("AgriInsight API starting on %s", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal("Server failed: ", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Shutdown: %v", err)
	}
}
