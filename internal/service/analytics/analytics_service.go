package analytics

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/kulasio/OneTapp-Backend/internal/domain"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Service computes aggregate statistics over the event store. Every query
// is read-only and computed fresh per request over an inclusive window.
type Service interface {
	Overall(ctx context.Context, win domain.Window) (*domain.OverallStats, error)
	CardStats(ctx context.Context, cardID primitive.ObjectID, win domain.Window) (*domain.CardStats, error)
	GeoDistribution(ctx context.Context, win domain.Window) ([]domain.CountryStats, error)
	DeviceStats(ctx context.Context, win domain.Window) ([]domain.DeviceTypeStats, error)
}

type analyticsService struct {
	cards  domain.CardRepository
	events domain.AnalyticsRepository
	now    func() time.Time
}

// NewService creates a new analytics aggregation service
func NewService(cards domain.CardRepository, events domain.AnalyticsRepository) Service {
	return &analyticsService{
		cards:  cards,
		events: events,
		now:    time.Now,
	}
}

// Overall returns headline counters and the taps-over-time series. Card
// counts are snapshots of the card collection, not window-bound.
func (s *analyticsService) Overall(ctx context.Context, win domain.Window) (*domain.OverallStats, error) {
	now := s.now()
	win = win.Normalize(now)

	totalCards, err := s.cards.CountAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count cards: %w", err)
	}

	activeCards, err := s.cards.CountActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count active cards: %w", err)
	}

	totalTaps, err := s.events.CountEvents(ctx, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("failed to count taps: %w", err)
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	todayTaps, err := s.events.CountEvents(ctx, startOfDay, now)
	if err != nil {
		return nil, fmt.Errorf("failed to count today's taps: %w", err)
	}

	series, err := s.events.DailyCounts(ctx, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get taps over time: %w", err)
	}
	if series == nil {
		series = []domain.DayCount{}
	}

	return &domain.OverallStats{
		Stats: domain.StatsSnapshot{
			TotalCards:  totalCards,
			ActiveCards: activeCards,
			TotalTaps:   totalTaps,
			TodayTaps:   todayTaps,
		},
		TapsOverTime: series,
	}, nil
}

// CardStats returns the per-day-per-type breakdown and the whole-window
// summary for one card. Unknown cards yield domain.ErrCardNotFound.
func (s *analyticsService) CardStats(ctx context.Context, cardID primitive.ObjectID, win domain.Window) (*domain.CardStats, error) {
	card, err := s.cards.FindByID(ctx, cardID)
	if err != nil {
		return nil, err
	}

	win = win.Normalize(s.now())

	rows, err := s.events.CardDailyTypeStats(ctx, card.ID, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get card daily stats: %w", err)
	}

	typeRows, err := s.events.CardTypeStats(ctx, card.ID, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get card summary: %w", err)
	}

	return &domain.CardStats{
		Analytics: regroupByDay(rows),
		Summary:   buildSummary(typeRows),
	}, nil
}

// regroupByDay folds (day, eventType) rows into one entry per day,
// ascending by day.
func regroupByDay(rows []domain.DayTypeStats) []domain.DayEvents {
	byDay := make(map[string][]domain.TypeBreakdown)
	for _, row := range rows {
		byDay[row.Date] = append(byDay[row.Date], domain.TypeBreakdown{
			EventType:     row.EventType,
			Count:         row.Count,
			UniqueDevices: row.UniqueDevices,
			AvgDuration:   row.AvgDuration,
		})
	}

	days := make([]domain.DayEvents, 0, len(byDay))
	for date, events := range byDay {
		days = append(days, domain.DayEvents{Date: date, Events: events})
	}

	// YYYY-MM-DD sorts chronologically as a string.
	sort.Slice(days, func(i, j int) bool { return days[i].Date < days[j].Date })

	return days
}

func buildSummary(rows []domain.EventTypeStats) map[domain.EventType]domain.EventTypeSummary {
	summary := make(map[domain.EventType]domain.EventTypeSummary, len(rows))
	for _, row := range rows {
		summary[row.EventType] = domain.EventTypeSummary{
			Count:         row.Count,
			UniqueDevices: row.UniqueDevices,
			AvgDuration:   row.AvgDuration,
		}
	}
	return summary
}

// GeoDistribution rolls located window events up by country, each with its
// per-city counts. Ordering is unspecified.
func (s *analyticsService) GeoDistribution(ctx context.Context, win domain.Window) ([]domain.CountryStats, error) {
	win = win.Normalize(s.now())

	rows, err := s.events.GeoCounts(ctx, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get geo distribution: %w", err)
	}

	index := make(map[string]int)
	results := make([]domain.CountryStats, 0)
	for _, row := range rows {
		i, ok := index[row.Country]
		if !ok {
			i = len(results)
			index[row.Country] = i
			results = append(results, domain.CountryStats{Country: row.Country})
		}
		results[i].Cities = append(results[i].Cities, domain.CityCount{City: row.City, Count: row.Count})
		results[i].TotalCount += row.Count
	}

	return results, nil
}

// DeviceStats rolls window events up by device type. The browser and os
// lists are independent projections of one (type, browser, os) grouping,
// so each sums to the type's total count.
func (s *analyticsService) DeviceStats(ctx context.Context, win domain.Window) ([]domain.DeviceTypeStats, error) {
	win = win.Normalize(s.now())

	rows, err := s.events.DeviceCounts(ctx, win.Start, win.End)
	if err != nil {
		return nil, fmt.Errorf("failed to get device stats: %w", err)
	}

	index := make(map[domain.DeviceType]int)
	results := make([]domain.DeviceTypeStats, 0)
	for _, row := range rows {
		i, ok := index[row.Type]
		if !ok {
			i = len(results)
			index[row.Type] = i
			results = append(results, domain.DeviceTypeStats{DeviceType: row.Type})
		}
		results[i].Browsers = append(results[i].Browsers, domain.BrowserCount{Browser: row.Browser, Count: row.Count})
		results[i].OS = append(results[i].OS, domain.OSCount{OS: row.OS, Count: row.Count})
		results[i].TotalCount += row.Count
	}

	return results, nil
}
