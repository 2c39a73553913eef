package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/config"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/database"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/handlers"
	customMiddleware "github.com/Madhav-Gupta-28/emi-store-backend-go/middleware"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/routes"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/store"
)

func main() {
	// Load environment variables
	config.LoadEnv()
	cfg := config.Load()

	e := newServer(cfg)

	// Connect to MongoDB
	client, db, err := database.ConnectDB(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		e.Logger.Fatal("Failed to connect to database: ", err)
	}
	defer database.Disconnect(client)

	if err := database.EnsureIndexes(context.Background(), db); err != nil {
		e.Logger.Fatal(err)
	}

	metrics := customMiddleware.NewMetrics()
	e.Use(metrics.Middleware())

	products := handlers.NewProductHandler(store.NewMongoProductStore(db), cfg.RequestTimeout)
	routes.SetupRoutes(e, products, metrics)

	go func() {
		log.Printf("Server starting on port %s...", cfg.Port)
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			e.Logger.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		e.Logger.Error(err)
	}
}

func newServer(cfg config.Config) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// Middleware
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(customMiddleware.RequestID())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins:     strings.Split(cfg.ClientURL, ","),
		AllowMethods:     []string{http.MethodGet, http.MethodOptions},
		AllowCredentials: cfg.ClientURL != "*",
	}))
	return e
}
