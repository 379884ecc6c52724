package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"

	"shopapi/internal/config"
	"shopapi/internal/httpserver"
	"shopapi/internal/logging"
	loggingmw "shopapi/internal/middleware/logging"
	"shopapi/internal/repo"
	"shopapi/internal/service"
	"shopapi/internal/storage"
)

const bodyLimit = "10M"

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Printf("warning: could not load .env: %v", err)
	}

	cfg := config.Load()
	config.MustNonEmpty(cfg.MongoURI, "MONGO_URI")
	config.MustNonEmptyBytes(cfg.JWTSecret, "JWT_SECRET")

	logger := logging.New(cfg.LogLevel).With("service", cfg.ServiceName)
	slog.SetDefault(logger)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	db, err := storage.Open(ctx, cfg.MongoURI, cfg.DBName)
	if err != nil {
		cancel()
		log.Fatalf("mongo open: %v", err)
	}
	if err := storage.EnsureIndexes(ctx, db); err != nil {
		cancel()
		log.Fatalf("mongo indexes: %v", err)
	}
	cancel()

	store := repo.NewMongoRepo(db)

	deps := &httpserver.Deps{
		ProductHandler: &httpserver.ProductHTTP{Svc: service.NewCatalogService(store)},
		OrderHandler:   &httpserver.OrderHTTP{Svc: service.NewOrderService(store)},
		AuthHandler:    &httpserver.AuthHTTP{Svc: service.NewAuthService(store, cfg.JWTSecret)},
	}

	e := echo.New()
	e.HideBanner = true
	e.Use(echomw.Recover())
	e.Use(echomw.RequestID())
	e.Use(loggingmw.RequestLogger(logger))
	e.Use(echomw.BodyLimit(bodyLimit))
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins:     []string{cfg.CORSOrigin},
		AllowCredentials: true,
	}))

	httpserver.Register(e, deps)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:           e,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		ReadHeaderTimeout: 3 * time.Second,
	}

	go func() {
		log.Printf("server listening on %s", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %v", err)
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	_ = srv.Shutdown(shutdownCtx)
	_ = db.Client().Disconnect(shutdownCtx)

	log.Println("server stopped")
}
