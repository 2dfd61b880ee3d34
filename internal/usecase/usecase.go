package usecase

import (
	"github.com/kulasio/OneTapp-Backend/internal/db"
	"github.com/kulasio/OneTapp-Backend/internal/interfaces"
	"github.com/kulasio/OneTapp-Backend/internal/repository/mongo"
	"github.com/kulasio/OneTapp-Backend/internal/service/analytics"
	"github.com/kulasio/OneTapp-Backend/internal/service/enrich"
	"github.com/kulasio/OneTapp-Backend/internal/service/tap"
)

type tapBackend struct {
	taps      tap.Service
	analytics analytics.Service
}

// NewTapBackend creates a new usecase instance with dependency injection.
// geo may be nil when no GeoIP database is configured.
func NewTapBackend(db *db.MongoDB, geo enrich.GeoResolver) (interfaces.Usecase, error) {
	cards := mongo.NewCardRepository(db)
	events := mongo.NewAnalyticsRepository(db)
	tapLogs := mongo.NewTapLogRepository(db)
	enricher := enrich.NewEnricher(geo)

	return &tapBackend{
		taps:      tap.NewService(cards, events, tapLogs, enricher),
		analytics: analytics.NewService(cards, events),
	}, nil
}
