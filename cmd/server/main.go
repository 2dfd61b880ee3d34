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

	"github.com/kulasio/OneTapp-Backend/config"
	"github.com/kulasio/OneTapp-Backend/internal/controller"
	"github.com/kulasio/OneTapp-Backend/internal/db"
	"github.com/kulasio/OneTapp-Backend/internal/service/enrich"
	"github.com/kulasio/OneTapp-Backend/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/oschwald/geoip2-golang"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg := config.Load()
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	mongoDB, err := db.Connect(context.Background(), cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoDB.Close(ctx); err != nil {
			log.Printf("Failed to close MongoDB connection: %v", err)
		}
	}()

	// GeoIP is optional: without a database taps are recorded with no
	// location.
	var geo enrich.GeoResolver
	if cfg.GeoIPDatabase != "" {
		reader, err := geoip2.Open(cfg.GeoIPDatabase)
		if err != nil {
			log.Printf("Failed to open GeoIP database %s, continuing without geolocation: %v", cfg.GeoIPDatabase, err)
		} else {
			defer reader.Close()
			geo = reader
		}
	}

	u, err := usecase.NewTapBackend(mongoDB, geo)
	if err != nil {
		log.Fatalf("Failed to initialize backend: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	controller.RegisterRoutes(r, u, mongoDB)

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		log.Printf("Server listening on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server error: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Printf("Forced shutdown: %v", err)
	}
}
