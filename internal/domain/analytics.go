package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// EventType classifies an analytics event. Only "view" is produced by the
// tap path today; the remaining values are accepted by the store but have
// no producer yet.
type EventType string

const (
	EventTypeView     EventType = "view"
	EventTypeShare    EventType = "share"
	EventTypeContact  EventType = "contact"
	EventTypeDownload EventType = "download"
)

// Valid reports whether t is a member of the closed event type enumeration.
func (t EventType) Valid() bool {
	switch t {
	case EventTypeView, EventTypeShare, EventTypeContact, EventTypeDownload:
		return true
	}
	return false
}

// DeviceType is the coarse device classification derived from a user agent.
type DeviceType string

const (
	DeviceMobile  DeviceType = "mobile"
	DeviceDesktop DeviceType = "desktop"
	DeviceTablet  DeviceType = "tablet"
	DeviceUnknown DeviceType = "unknown"
)

// DeviceInfo is the parsed user-agent metadata attached to an event.
type DeviceInfo struct {
	Type      DeviceType `bson:"type" json:"type"`
	Browser   string     `bson:"browser,omitempty" json:"browser,omitempty"`
	OS        string     `bson:"os,omitempty" json:"os,omitempty"`
	UserAgent string     `bson:"userAgent,omitempty" json:"userAgent,omitempty"`
}

// GeoPoint is a GeoJSON point. Coordinates are [longitude, latitude].
type GeoPoint struct {
	Type        string     `bson:"type" json:"type"`
	Coordinates [2]float64 `bson:"coordinates" json:"coordinates"`
}

// NewGeoPoint builds a GeoJSON point from a longitude/latitude pair.
func NewGeoPoint(lon, lat float64) GeoPoint {
	return GeoPoint{Type: "Point", Coordinates: [2]float64{lon, lat}}
}

// Location is the resolved geolocation of an event. The field is absent
// from the stored document when the IP lookup misses.
type Location struct {
	Country     string   `bson:"country" json:"country"`
	City        string   `bson:"city" json:"city"`
	Coordinates GeoPoint `bson:"coordinates" json:"coordinates"`
}

// AnalyticsEvent is one immutable tap interaction record. Events are
// appended once and never updated or deleted by the engine.
type AnalyticsEvent struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Card       primitive.ObjectID `bson:"card" json:"card"`
	EventType  EventType          `bson:"eventType" json:"eventType"`
	DeviceInfo DeviceInfo         `bson:"deviceInfo" json:"deviceInfo"`
	Location   *Location          `bson:"location,omitempty" json:"location,omitempty"`
	Referrer   string             `bson:"referrer,omitempty" json:"referrer,omitempty"`
	SessionID  string             `bson:"sessionId,omitempty" json:"sessionId,omitempty"`
	Duration   float64            `bson:"duration" json:"duration"`
	CreatedAt  time.Time          `bson:"createdAt" json:"createdAt"`
}

// Window is an inclusive [Start, End] time range for aggregation queries.
type Window struct {
	Start time.Time
	End   time.Time
}

// Normalize fills missing bounds with the defaults: End falls back to now,
// Start to 30 days before now.
func (w Window) Normalize(now time.Time) Window {
	if w.End.IsZero() {
		w.End = now
	}
	if w.Start.IsZero() {
		w.Start = now.AddDate(0, 0, -30)
	}
	return w
}

// DayCount is one day of the sparse taps-over-time series. Date is
// YYYY-MM-DD; days with zero events are not present.
type DayCount struct {
	Date  string `bson:"_id" json:"date"`
	Count int64  `bson:"count" json:"count"`
}

// EventTypeStats is the per-event-type summary row for one card.
type EventTypeStats struct {
	EventType     EventType `bson:"_id" json:"eventType"`
	Count         int64     `bson:"count" json:"count"`
	UniqueDevices int64     `bson:"uniqueDevices" json:"uniqueDevices"`
	AvgDuration   float64   `bson:"avgDuration" json:"avgDuration"`
}

// DayTypeStats is one (day, event type) group of a card's activity.
type DayTypeStats struct {
	Date          string    `bson:"date" json:"date"`
	EventType     EventType `bson:"eventType" json:"eventType"`
	Count         int64     `bson:"count" json:"count"`
	UniqueDevices int64     `bson:"uniqueDevices" json:"uniqueDevices"`
	AvgDuration   float64   `bson:"avgDuration" json:"avgDuration"`
}

// GeoCount is one (country, city) group of located events.
type GeoCount struct {
	Country string `bson:"country" json:"country"`
	City    string `bson:"city" json:"city"`
	Count   int64  `bson:"count" json:"count"`
}

// DeviceCount is one (device type, browser, os) group.
type DeviceCount struct {
	Type    DeviceType `bson:"type" json:"type"`
	Browser string     `bson:"browser" json:"browser"`
	OS      string     `bson:"os" json:"os"`
	Count   int64      `bson:"count" json:"count"`
}

// StatsSnapshot is the headline counter block of the overall stats response.
// Card counts are snapshots over the card collection, independent of the
// requested window.
type StatsSnapshot struct {
	TotalCards  int64 `json:"totalCards"`
	ActiveCards int64 `json:"activeCards"`
	TotalTaps   int64 `json:"totalTaps"`
	TodayTaps   int64 `json:"todayTaps"`
}

// OverallStats is the overall analytics response.
type OverallStats struct {
	Stats        StatsSnapshot `json:"stats"`
	TapsOverTime []DayCount    `json:"tapsOverTime"`
}

// TypeBreakdown is one event type's slice of a single day's activity.
type TypeBreakdown struct {
	EventType     EventType `json:"eventType"`
	Count         int64     `json:"count"`
	UniqueDevices int64     `json:"uniqueDevices"`
	AvgDuration   float64   `json:"avgDuration"`
}

// DayEvents groups a day's per-type breakdown entries.
type DayEvents struct {
	Date   string          `json:"date"`
	Events []TypeBreakdown `json:"events"`
}

// EventTypeSummary is the whole-window summary for one event type.
type EventTypeSummary struct {
	Count         int64   `json:"count"`
	UniqueDevices int64   `json:"uniqueDevices"`
	AvgDuration   float64 `json:"avgDuration"`
}

// CardStats is the per-card analytics response.
type CardStats struct {
	Analytics []DayEvents                    `json:"analytics"`
	Summary   map[EventType]EventTypeSummary `json:"summary"`
}

// CityCount is one city entry of a country rollup.
type CityCount struct {
	City  string `json:"city"`
	Count int64  `json:"count"`
}

// CountryStats is the geographic rollup for one country. Ordering of
// countries and cities is unspecified.
type CountryStats struct {
	Country    string      `json:"country"`
	Cities     []CityCount `json:"cities"`
	TotalCount int64       `json:"totalCount"`
}

// BrowserCount is one browser entry of a device rollup.
type BrowserCount struct {
	Browser string `json:"browser"`
	Count   int64  `json:"count"`
}

// OSCount is one operating system entry of a device rollup.
type OSCount struct {
	OS    string `json:"os"`
	Count int64  `json:"count"`
}

// DeviceTypeStats is the rollup for one device type. Browsers and OS are
// independent projections of the same grouping, so each list sums to
// TotalCount; they are not a cross-product.
type DeviceTypeStats struct {
	DeviceType DeviceType     `json:"deviceType"`
	Browsers   []BrowserCount `json:"browsers"`
	OS         []OSCount      `json:"os"`
	TotalCount int64          `json:"totalCount"`
}
