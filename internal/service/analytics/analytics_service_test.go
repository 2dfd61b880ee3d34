package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/kulasio/OneTapp-Backend/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type fakeCards struct {
	domain.CardRepository
	byID   map[primitive.ObjectID]*domain.Card
	total  int64
	active int64
}

func (f *fakeCards) FindByID(ctx context.Context, id primitive.ObjectID) (*domain.Card, error) {
	card, ok := f.byID[id]
	if !ok {
		return nil, domain.ErrCardNotFound
	}
	return card, nil
}

func (f *fakeCards) CountAll(ctx context.Context) (int64, error)    { return f.total, nil }
func (f *fakeCards) CountActive(ctx context.Context) (int64, error) { return f.active, nil }

type fakeEvents struct {
	domain.AnalyticsRepository

	counts     map[string]int64 // keyed by start..end, see key()
	daily      []domain.DayCount
	typeStats  []domain.EventTypeStats
	dailyStats []domain.DayTypeStats
	geo        []domain.GeoCount
	devices    []domain.DeviceCount

	lastStart time.Time
	lastEnd   time.Time
}

func (f *fakeEvents) CountEvents(ctx context.Context, start, end time.Time) (int64, error) {
	return f.counts[key(start, end)], nil
}

func (f *fakeEvents) DailyCounts(ctx context.Context, start, end time.Time) ([]domain.DayCount, error) {
	f.lastStart, f.lastEnd = start, end
	return f.daily, nil
}

func (f *fakeEvents) CardTypeStats(ctx context.Context, cardID primitive.ObjectID, start, end time.Time) ([]domain.EventTypeStats, error) {
	return f.typeStats, nil
}

func (f *fakeEvents) CardDailyTypeStats(ctx context.Context, cardID primitive.ObjectID, start, end time.Time) ([]domain.DayTypeStats, error) {
	return f.dailyStats, nil
}

func (f *fakeEvents) GeoCounts(ctx context.Context, start, end time.Time) ([]domain.GeoCount, error) {
	f.lastStart, f.lastEnd = start, end
	return f.geo, nil
}

func (f *fakeEvents) DeviceCounts(ctx context.Context, start, end time.Time) ([]domain.DeviceCount, error) {
	return f.devices, nil
}

func key(start, end time.Time) string {
	return start.Format(time.RFC3339) + ".." + end.Format(time.RFC3339)
}

func newTestService(cards *fakeCards, events *fakeEvents, now time.Time) *analyticsService {
	return &analyticsService{
		cards:  cards,
		events: events,
		now:    func() time.Time { return now },
	}
}

func TestOverallStats(t *testing.T) {
	now := time.Date(2025, 6, 15, 18, 30, 0, 0, time.UTC)
	startOfDay := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	windowStart := now.AddDate(0, 0, -30)

	events := &fakeEvents{
		counts: map[string]int64{
			key(windowStart, now): 42,
			key(startOfDay, now):  5,
		},
		daily: []domain.DayCount{
			{Date: "2025-06-14", Count: 37},
			{Date: "2025-06-15", Count: 5},
		},
	}
	svc := newTestService(&fakeCards{total: 10, active: 7}, events, now)

	stats, err := svc.Overall(context.Background(), domain.Window{})

	require.NoError(t, err)
	assert.Equal(t, int64(10), stats.Stats.TotalCards)
	assert.Equal(t, int64(7), stats.Stats.ActiveCards)
	assert.Equal(t, int64(42), stats.Stats.TotalTaps)
	assert.Equal(t, int64(5), stats.Stats.TodayTaps)
	assert.Len(t, stats.TapsOverTime, 2)

	// Default window is the last 30 days through now.
	assert.Equal(t, windowStart, events.lastStart)
	assert.Equal(t, now, events.lastEnd)
}

func TestOverallStatsEmptyWindow(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	svc := newTestService(&fakeCards{}, &fakeEvents{}, now)

	stats, err := svc.Overall(context.Background(), domain.Window{})

	require.NoError(t, err)
	assert.NotNil(t, stats.TapsOverTime)
	assert.Empty(t, stats.TapsOverTime, "zero events must yield an empty series, not zero-count days")
}

func TestCardStatsUnknownCard(t *testing.T) {
	svc := newTestService(&fakeCards{byID: map[primitive.ObjectID]*domain.Card{}}, &fakeEvents{}, time.Now())

	_, err := svc.CardStats(context.Background(), primitive.NewObjectID(), domain.Window{})

	assert.ErrorIs(t, err, domain.ErrCardNotFound)
}

func TestCardStatsSummaryAndBreakdown(t *testing.T) {
	cardID := primitive.NewObjectID()
	cards := &fakeCards{byID: map[primitive.ObjectID]*domain.Card{
		cardID: {ID: cardID, NFCID: "nfc-1", Status: domain.CardStatusActive},
	}}
	events := &fakeEvents{
		typeStats: []domain.EventTypeStats{
			{EventType: domain.EventTypeView, Count: 3, UniqueDevices: 2, AvgDuration: 0},
		},
		// Rows arrive unordered; two days, one with two event types.
		dailyStats: []domain.DayTypeStats{
			{Date: "2025-06-14", EventType: domain.EventTypeView, Count: 2, UniqueDevices: 1},
			{Date: "2025-06-13", EventType: domain.EventTypeView, Count: 1, UniqueDevices: 1},
			{Date: "2025-06-14", EventType: domain.EventTypeShare, Count: 1, UniqueDevices: 1},
		},
	}
	svc := newTestService(cards, events, time.Now())

	stats, err := svc.CardStats(context.Background(), cardID, domain.Window{})

	require.NoError(t, err)
	require.Contains(t, stats.Summary, domain.EventTypeView)
	assert.Equal(t, int64(3), stats.Summary[domain.EventTypeView].Count)
	assert.Equal(t, int64(2), stats.Summary[domain.EventTypeView].UniqueDevices)
	assert.Zero(t, stats.Summary[domain.EventTypeView].AvgDuration)

	require.Len(t, stats.Analytics, 2)
	assert.Equal(t, "2025-06-13", stats.Analytics[0].Date, "days must be ascending")
	assert.Equal(t, "2025-06-14", stats.Analytics[1].Date)
	assert.Len(t, stats.Analytics[0].Events, 1)
	assert.Len(t, stats.Analytics[1].Events, 2)
}

func TestCardStatsCountsSumToTotal(t *testing.T) {
	cardID := primitive.NewObjectID()
	cards := &fakeCards{byID: map[primitive.ObjectID]*domain.Card{
		cardID: {ID: cardID},
	}}
	events := &fakeEvents{
		typeStats: []domain.EventTypeStats{
			{EventType: domain.EventTypeView, Count: 4},
			{EventType: domain.EventTypeShare, Count: 2},
		},
	}
	svc := newTestService(cards, events, time.Now())

	stats, err := svc.CardStats(context.Background(), cardID, domain.Window{})
	require.NoError(t, err)

	var total int64
	for _, s := range stats.Summary {
		total += s.Count
	}
	assert.Equal(t, int64(6), total)
}

func TestGeoDistribution(t *testing.T) {
	events := &fakeEvents{
		geo: []domain.GeoCount{
			{Country: "PH", City: "Manila", Count: 3},
			{Country: "US", City: "New York", Count: 2},
			{Country: "PH", City: "Cebu", Count: 1},
		},
	}
	svc := newTestService(&fakeCards{}, events, time.Now())

	result, err := svc.GeoDistribution(context.Background(), domain.Window{})

	require.NoError(t, err)
	require.Len(t, result, 2)

	byCountry := make(map[string]domain.CountryStats)
	var grandTotal int64
	for _, c := range result {
		byCountry[c.Country] = c
		grandTotal += c.TotalCount
	}

	assert.Equal(t, int64(4), byCountry["PH"].TotalCount)
	assert.Len(t, byCountry["PH"].Cities, 2)
	assert.Equal(t, int64(2), byCountry["US"].TotalCount)
	assert.Equal(t, int64(6), grandTotal, "country totals must sum to the number of located events")
}

func TestGeoDistributionEmpty(t *testing.T) {
	svc := newTestService(&fakeCards{}, &fakeEvents{}, time.Now())

	result, err := svc.GeoDistribution(context.Background(), domain.Window{})

	require.NoError(t, err)
	assert.Empty(t, result)
}

func TestDeviceStats(t *testing.T) {
	events := &fakeEvents{
		devices: []domain.DeviceCount{
			{Type: domain.DeviceMobile, Browser: "Safari", OS: "iOS", Count: 2},
			{Type: domain.DeviceMobile, Browser: "Chrome", OS: "Android", Count: 1},
			{Type: domain.DeviceDesktop, Browser: "Firefox", OS: "Linux", Count: 5},
		},
	}
	svc := newTestService(&fakeCards{}, events, time.Now())

	result, err := svc.DeviceStats(context.Background(), domain.Window{})

	require.NoError(t, err)
	require.Len(t, result, 2)

	for _, d := range result {
		var browserSum, osSum int64
		for _, b := range d.Browsers {
			browserSum += b.Count
		}
		for _, o := range d.OS {
			osSum += o.Count
		}
		assert.Equal(t, d.TotalCount, browserSum, "browser counts must sum to the type total")
		assert.Equal(t, d.TotalCount, osSum, "os counts must sum to the type total")
	}
}

func TestWindowNormalize(t *testing.T) {
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

	t.Run("defaults", func(t *testing.T) {
		win := domain.Window{}.Normalize(now)
		assert.Equal(t, now, win.End)
		assert.Equal(t, now.AddDate(0, 0, -30), win.Start)
	})

	t.Run("explicit bounds kept", func(t *testing.T) {
		start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(2025, 2, 1, 0, 0, 0, 0, time.UTC)
		win := domain.Window{Start: start, End: end}.Normalize(now)
		assert.Equal(t, start, win.Start)
		assert.Equal(t, end, win.End)
	})
}
