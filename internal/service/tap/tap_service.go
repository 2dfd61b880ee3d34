package tap

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/kulasio/OneTapp-Backend/internal/domain"
	"github.com/kulasio/OneTapp-Backend/internal/service/enrich"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Request carries a single tap and its ambient request metadata.
type Request struct {
	NFCID     string
	SessionID string
	UserAgent string
	ClientIP  string
	Referrer  string
}

// Result is the response to a successful tap: the stored event's id and
// the card's public display fields.
type Result struct {
	EventID primitive.ObjectID    `json:"eventId"`
	Card    domain.CardPublicView `json:"card"`
}

// Service records tap events against active cards.
type Service interface {
	RecordTap(ctx context.Context, req Request) (*Result, error)
	GetOrCreateSessionID(existingSessionID string) string
}

type tapService struct {
	cards    domain.CardRepository
	events   domain.AnalyticsRepository
	tapLogs  domain.TapLogRepository
	enricher enrich.Enricher
}

// NewService creates a new tap recording service
func NewService(cards domain.CardRepository, events domain.AnalyticsRepository, tapLogs domain.TapLogRepository, enricher enrich.Enricher) Service {
	return &tapService{
		cards:    cards,
		events:   events,
		tapLogs:  tapLogs,
		enricher: enricher,
	}
}

// GetOrCreateSessionID returns existing session ID or generates a new one
func (s *tapService) GetOrCreateSessionID(existingSessionID string) string {
	if existingSessionID != "" {
		return existingSessionID
	}
	return uuid.New().String()
}

// RecordTap validates the card, enriches the request metadata and appends
// an immutable view event. Enrichment never fails the tap.
func (s *tapService) RecordTap(ctx context.Context, req Request) (*Result, error) {
	card, err := s.cards.FindActiveByNFCID(ctx, req.NFCID)
	if err != nil {
		return nil, fmt.Errorf("tap rejected: %w", err)
	}

	deviceInfo, location := s.enricher.Enrich(req.UserAgent, req.ClientIP)

	event := &domain.AnalyticsEvent{
		Card:       card.ID,
		EventType:  domain.EventTypeView,
		DeviceInfo: deviceInfo,
		Location:   location,
		Referrer:   req.Referrer,
		SessionID:  req.SessionID,
		Duration:   0,
	}

	eventID, err := s.events.RecordEvent(ctx, event)
	if err != nil {
		return nil, fmt.Errorf("failed to record tap event: %w", err)
	}

	// Raw tap log is best effort; it never delays or fails the tap.
	go func(entry domain.TapLog) {
		logCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := s.tapLogs.Record(logCtx, &entry); err != nil {
			log.Printf("Failed to record tap log for card %s: %v", card.NFCID, err)
		}
	}(domain.TapLog{
		CardID:    card.ID,
		IP:        req.ClientIP,
		UserAgent: req.UserAgent,
		SessionID: req.SessionID,
	})

	return &Result{
		EventID: eventID,
		Card:    card.PublicView(),
	}, nil
}
