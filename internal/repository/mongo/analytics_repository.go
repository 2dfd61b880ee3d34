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
	"go.mongodb.org/mongo-driver/mongo/options"
)

type analyticsRepository struct {
	coll *mongo.Collection
}

// NewAnalyticsRepository creates a new MongoDB implementation of AnalyticsRepository
func NewAnalyticsRepository(db *db.MongoDB) domain.AnalyticsRepository {
	repo := &analyticsRepository{
		coll: db.Collection("analytics"),
	}

	// Create indexes for better query performance
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{
			Keys: bson.D{{Key: "card", Value: 1}, {Key: "eventType", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "createdAt", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "location.country", Value: 1}, {Key: "location.city", Value: 1}},
		},
		{
			Keys: bson.D{{Key: "location.coordinates", Value: "2dsphere"}},
		},
	}

	_, _ = repo.coll.Indexes().CreateMany(ctx, indexes)

	return repo
}

func (r *analyticsRepository) RecordEvent(ctx context.Context, event *domain.AnalyticsEvent) (primitive.ObjectID, error) {
	if event == nil {
		return primitive.NilObjectID, fmt.Errorf("event cannot be nil")
	}
	if !event.EventType.Valid() {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", domain.ErrInvalidEventType, event.EventType)
	}
	if event.Card.IsZero() {
		return primitive.NilObjectID, fmt.Errorf("event card reference is required")
	}
	if event.Duration < 0 {
		return primitive.NilObjectID, fmt.Errorf("event duration cannot be negative")
	}

	// The store assigns identity and creation time.
	event.ID = primitive.NewObjectID()
	event.CreatedAt = time.Now()

	if _, err := r.coll.InsertOne(ctx, event); err != nil {
		return primitive.NilObjectID, wrapErr("failed to insert analytics event", err)
	}

	return event.ID, nil
}

func (r *analyticsRepository) CountEvents(ctx context.Context, start, end time.Time) (int64, error) {
	count, err := r.coll.CountDocuments(ctx, bson.M{
		"createdAt": bson.M{"$gte": start, "$lte": end},
	})
	if err != nil {
		return 0, wrapErr("failed to count events", err)
	}
	return count, nil
}

func (r *analyticsRepository) DailyCounts(ctx context.Context, start, end time.Time) ([]domain.DayCount, error) {
	pipeline := []bson.M{
		{
			"$match": bson.M{
				"createdAt": bson.M{"$gte": start, "$lte": end},
			},
		},
		{
			"$group": bson.M{
				"_id":   bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$sort": bson.M{"_id": 1},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapErr("failed to aggregate daily counts", err)
	}
	defer cursor.Close(ctx)

	results := make([]domain.DayCount, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode daily counts: %w", err)
	}

	return results, nil
}

func (r *analyticsRepository) CardTypeStats(ctx context.Context, cardID primitive.ObjectID, start, end time.Time) ([]domain.EventTypeStats, error) {
	pipeline := []bson.M{
		{
			"$match": bson.M{
				"card":      cardID,
				"createdAt": bson.M{"$gte": start, "$lte": end},
			},
		},
		{
			"$group": bson.M{
				"_id":         "$eventType",
				"count":       bson.M{"$sum": 1},
				"devices":     bson.M{"$addToSet": "$deviceInfo.userAgent"},
				"avgDuration": bson.M{"$avg": "$duration"},
			},
		},
		{
			"$project": bson.M{
				"count":         1,
				"avgDuration":   1,
				"uniqueDevices": bson.M{"$size": "$devices"},
			},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapErr("failed to aggregate card summary", err)
	}
	defer cursor.Close(ctx)

	results := make([]domain.EventTypeStats, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode card summary: %w", err)
	}

	return results, nil
}

func (r *analyticsRepository) CardDailyTypeStats(ctx context.Context, cardID primitive.ObjectID, start, end time.Time) ([]domain.DayTypeStats, error) {
	pipeline := []bson.M{
		{
			"$match": bson.M{
				"card":      cardID,
				"createdAt": bson.M{"$gte": start, "$lte": end},
			},
		},
		{
			"$group": bson.M{
				"_id": bson.M{
					"eventType": "$eventType",
					"date":      bson.M{"$dateToString": bson.M{"format": "%Y-%m-%d", "date": "$createdAt"}},
				},
				"count":       bson.M{"$sum": 1},
				"devices":     bson.M{"$addToSet": "$deviceInfo.userAgent"},
				"avgDuration": bson.M{"$avg": "$duration"},
			},
		},
		{
			"$project": bson.M{
				"_id":           0,
				"date":          "$_id.date",
				"eventType":     "$_id.eventType",
				"count":         1,
				"avgDuration":   1,
				"uniqueDevices": bson.M{"$size": "$devices"},
			},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapErr("failed to aggregate card daily stats", err)
	}
	defer cursor.Close(ctx)

	results := make([]domain.DayTypeStats, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode card daily stats: %w", err)
	}

	return results, nil
}

func (r *analyticsRepository) GeoCounts(ctx context.Context, start, end time.Time) ([]domain.GeoCount, error) {
	pipeline := []bson.M{
		{
			"$match": bson.M{
				"createdAt":        bson.M{"$gte": start, "$lte": end},
				"location.country": bson.M{"$exists": true},
			},
		},
		{
			"$group": bson.M{
				"_id": bson.M{
					"country": "$location.country",
					"city":    "$location.city",
				},
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$project": bson.M{
				"_id":     0,
				"country": "$_id.country",
				"city":    "$_id.city",
				"count":   1,
			},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapErr("failed to aggregate geo counts", err)
	}
	defer cursor.Close(ctx)

	results := make([]domain.GeoCount, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode geo counts: %w", err)
	}

	return results, nil
}

func (r *analyticsRepository) DeviceCounts(ctx context.Context, start, end time.Time) ([]domain.DeviceCount, error) {
	pipeline := []bson.M{
		{
			"$match": bson.M{
				"createdAt": bson.M{"$gte": start, "$lte": end},
			},
		},
		{
			"$group": bson.M{
				"_id": bson.M{
					"type":    "$deviceInfo.type",
					"browser": "$deviceInfo.browser",
					"os":      "$deviceInfo.os",
				},
				"count": bson.M{"$sum": 1},
			},
		},
		{
			"$project": bson.M{
				"_id":     0,
				"type":    "$_id.type",
				"browser": "$_id.browser",
				"os":      "$_id.os",
				"count":   1,
			},
		},
	}

	cursor, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, wrapErr("failed to aggregate device counts", err)
	}
	defer cursor.Close(ctx)

	results := make([]domain.DeviceCount, 0)
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode device counts: %w", err)
	}

	return results, nil
}

func (r *analyticsRepository) EventsNear(ctx context.Context, lon, lat float64, maxMeters float64, limit int64) ([]domain.AnalyticsEvent, error) {
	filter := bson.M{
		"location.coordinates": bson.M{
			"$nearSphere": bson.M{
				"$geometry": bson.M{
					"type":        "Point",
					"coordinates": []float64{lon, lat},
				},
				"$maxDistance": maxMeters,
			},
		},
	}

	cursor, err := r.coll.Find(ctx, filter, options.Find().SetLimit(limit))
	if err != nil {
		return nil, wrapErr("failed to query nearby events", err)
	}
	defer cursor.Close(ctx)

	var results []domain.AnalyticsEvent
	if err := cursor.All(ctx, &results); err != nil {
		return nil, fmt.Errorf("failed to decode nearby events: %w", err)
	}

	return results, nil
}
