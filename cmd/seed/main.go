package main

import (
	"context"
	"log"
	"time"

	"github.com/Madhav-Gupta-28/emi-store-backend-go/config"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/database"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/seed"
	"github.com/Madhav-Gupta-28/emi-store-backend-go/store"
)

func main() {
	config.LoadEnv()
	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, db, err := database.ConnectDB(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Disconnect(client)

	if err := database.EnsureIndexes(ctx, db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	n, err := store.NewMongoProductStore(db).ReplaceAll(ctx, seed.Products())
	if err != nil {
		log.Fatalf("Failed to seed products: %v", err)
	}
	log.Printf("Seeded %d products", n)
}
