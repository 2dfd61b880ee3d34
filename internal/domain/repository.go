package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AnalyticsRepository defines the interface for the append-only event store
// and its first-stage aggregation queries. All windows are inclusive on
// both bounds.
type AnalyticsRepository interface {
	// RecordEvent appends a new event. The store assigns the id and
	// createdAt; the caller's values for those fields are ignored.
	RecordEvent(ctx context.Context, event *AnalyticsEvent) (primitive.ObjectID, error)

	// CountEvents counts events whose createdAt falls in the window.
	CountEvents(ctx context.Context, start, end time.Time) (int64, error)

	// DailyCounts returns the sparse per-day series, ascending by day.
	DailyCounts(ctx context.Context, start, end time.Time) ([]DayCount, error)

	// CardTypeStats groups one card's window events by event type.
	CardTypeStats(ctx context.Context, cardID primitive.ObjectID, start, end time.Time) ([]EventTypeStats, error)

	// CardDailyTypeStats groups one card's window events by (day, event type).
	CardDailyTypeStats(ctx context.Context, cardID primitive.ObjectID, start, end time.Time) ([]DayTypeStats, error)

	// GeoCounts groups located window events by (country, city).
	GeoCounts(ctx context.Context, start, end time.Time) ([]GeoCount, error)

	// DeviceCounts groups window events by (device type, browser, os).
	DeviceCounts(ctx context.Context, start, end time.Time) ([]DeviceCount, error)

	// EventsNear returns events whose location lies within maxMeters of
	// the given point. Not exposed through an endpoint yet.
	EventsNear(ctx context.Context, lon, lat float64, maxMeters float64, limit int64) ([]AnalyticsEvent, error)
}

// CardRepository defines the interface for card lookups and snapshot counts.
type CardRepository interface {
	// FindActiveByNFCID looks up a card by its external identifier,
	// requiring active status. Missing and inactive cards both return
	// ErrCardNotFound.
	FindActiveByNFCID(ctx context.Context, nfcID string) (*Card, error)

	// FindByID looks up a card by its internal id regardless of status.
	FindByID(ctx context.Context, id primitive.ObjectID) (*Card, error)

	// CountAll counts every card.
	CountAll(ctx context.Context) (int64, error)

	// CountActive counts cards with active status.
	CountActive(ctx context.Context) (int64, error)

	// Insert stores a new card. Used by seeding, not the tap path.
	Insert(ctx context.Context, card *Card) error
}

// TapLogRepository defines the interface for the raw tap audit log.
type TapLogRepository interface {
	Record(ctx context.Context, entry *TapLog) error
}
