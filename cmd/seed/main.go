// Seeds a few sample cards for local development.
package main

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/kulasio/OneTapp-Backend/config"
	"github.com/kulasio/OneTapp-Backend/internal/db"
	"github.com/kulasio/OneTapp-Backend/internal/domain"
	"github.com/kulasio/OneTapp-Backend/internal/repository/mongo"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found: %v", err)
	}

	cfg := config.Load()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	mongoDB, err := db.Connect(ctx, cfg.MongoURI, cfg.MongoDatabase)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer mongoDB.Close(ctx)

	cards := mongo.NewCardRepository(mongoDB)
	now := time.Now().UnixMilli()

	samples := []domain.Card{
		{
			NFCID:    fmt.Sprintf("nfc-corp-%d", now),
			Status:   domain.CardStatusActive,
			Name:     "Alex Reyes",
			Title:    "Solutions Architect",
			Company:  "TechCorp Solutions",
			Email:    "alex@techcorp.example",
			Website:  "https://techcorp.example",
			Bio:      "Enterprise solutions, cloud services and business analytics.",
			Template: "corporate",
			SocialLinks: domain.SocialLinks{
				LinkedIn: "https://linkedin.com/in/alexreyes",
				Twitter:  "https://twitter.com/alexreyes",
			},
		},
		{
			NFCID:    fmt.Sprintf("nfc-restaurant-%d", now),
			Status:   domain.CardStatusActive,
			Name:     "Maria Santos",
			Title:    "Owner",
			Company:  "Casa Manila",
			Phone:    "+63 2 8888 1234",
			Bio:      "Filipino home cooking in the heart of the city.",
			Template: "restaurant",
		},
		{
			NFCID:    fmt.Sprintf("nfc-retired-%d", now),
			Status:   domain.CardStatusInactive,
			Name:     "Old Demo Card",
			Template: "default",
		},
	}

	for i := range samples {
		if err := cards.Insert(ctx, &samples[i]); err != nil {
			log.Printf("Failed to seed card %s: %v", samples[i].NFCID, err)
			continue
		}
		log.Printf("Seeded card %s (%s)", samples[i].NFCID, samples[i].Status)
	}
}
