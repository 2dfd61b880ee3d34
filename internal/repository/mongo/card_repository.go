package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kulasio/OneTapp-Backend/internal/db"
	"github.com/kulasio/OneTapp-Backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type cardRepository struct {
	coll *mongo.Collection
}

// NewCardRepository creates a new MongoDB implementation of CardRepository
func NewCardRepository(db *db.MongoDB) domain.CardRepository {
	repo := &cardRepository{
		coll: db.Collection("cards"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "nfcId", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{
			Keys: bson.D{{Key: "status", Value: 1}},
		},
	}

	_, _ = repo.coll.Indexes().CreateMany(ctx, indexes)

	return repo
}

func (r *cardRepository) FindActiveByNFCID(ctx context.Context, nfcID string) (*domain.Card, error) {
	// Missing and inactive cards are the same outcome for the caller.
	filter := bson.M{
		"nfcId":  nfcID,
		"status": domain.CardStatusActive,
	}

	var card domain.Card
	if err := r.coll.FindOne(ctx, filter).Decode(&card); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCardNotFound
		}
		return nil, wrapErr("failed to look up card", err)
	}

	return &card, nil
}

func (r *cardRepository) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Card, error) {
	var card domain.Card
	if err := r.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&card); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCardNotFound
		}
		return nil, wrapErr("failed to look up card", err)
	}

	return &card, nil
}

func (r *cardRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, wrapErr("failed to count cards", err)
	}
	return count, nil
}

func (r *cardRepository) CountActive(ctx context.Context) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{"status": domain.CardStatusActive})
	if err != nil {
		return 0, wrapErr("failed to count active cards", err)
	}
	return count, nil
}

func (r *cardRepository) Insert(ctx context.Context, card *domain.Card) error {
	if card == nil {
		return fmt.Errorf("card cannot be nil")
	}
	if card.ID.IsZero() {
		card.ID = primitive.NewObjectID()
	}
	now := time.Now()
	card.CreatedAt = now
	card.UpdatedAt = now

	if _, err := r.coll.InsertOne(ctx, card); err != nil {
		return wrapErr("failed to insert card", err)
	}

	return nil
}
