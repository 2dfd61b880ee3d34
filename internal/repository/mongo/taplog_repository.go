package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/kulasio/OneTapp-Backend/internal/db"
	"github.com/kulasio/OneTapp-Backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type tapLogRepository struct {
	coll *mongo.Collection
}

// NewTapLogRepository creates a new MongoDB implementation of TapLogRepository
func NewTapLogRepository(db *db.MongoDB) domain.TapLogRepository {
	repo := &tapLogRepository{
		coll: db.Collection("taplogs"),
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "cardId", Value: 1}, {Key: "timestamp", Value: -1}},
		},
	}

	_, _ = repo.coll.Indexes().CreateMany(ctx, indexes)

	return repo
}

func (r *tapLogRepository) Record(ctx context.Context, entry *domain.TapLog) error {
	if entry == nil {
		return fmt.Errorf("tap log entry cannot be nil")
	}

	entry.ID = primitive.NewObjectID()
	if entry.Timestamp.IsZero() {
		entry.Timestamp = time.Now()
	}

	if _, err := r.coll.InsertOne(ctx, entry); err != nil {
		return wrapErr("failed to insert tap log", err)
	}

	return nil
}
