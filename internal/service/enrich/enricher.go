package enrich

import (
	"net"
	"strings"

	"github.com/kulasio/OneTapp-Backend/internal/domain"

	"github.com/mileusna/useragent"
	"github.com/oschwald/geoip2-golang"
)

// GeoResolver resolves an IP address to a city record from a local GeoIP
// database. *geoip2.Reader satisfies it.
type GeoResolver interface {
	City(ip net.IP) (*geoip2.City, error)
}

// Enricher derives device and location metadata from raw request signals.
// It performs no network I/O and never fails: unparseable input degrades
// to unknown/absent fields.
type Enricher interface {
	Enrich(rawUserAgent, clientIP string) (domain.DeviceInfo, *domain.Location)
}

type enricher struct {
	geo GeoResolver
}

// NewEnricher creates a new enricher. geo may be nil, in which case
// events carry no location.
func NewEnricher(geo GeoResolver) Enricher {
	return &enricher{geo: geo}
}

func (e *enricher) Enrich(rawUserAgent, clientIP string) (domain.DeviceInfo, *domain.Location) {
	return e.parseDevice(rawUserAgent), e.resolveLocation(clientIP)
}

func (e *enricher) parseDevice(rawUserAgent string) domain.DeviceInfo {
	info := domain.DeviceInfo{
		Type:      domain.DeviceUnknown,
		UserAgent: rawUserAgent,
	}
	if rawUserAgent == "" {
		return info
	}

	ua := useragent.Parse(rawUserAgent)
	info.Browser = ua.Name
	info.OS = ua.OS

	// Device category wins over OS-based inference.
	switch {
	case ua.Mobile:
		info.Type = domain.DeviceMobile
	case ua.Tablet:
		info.Type = domain.DeviceTablet
	case isDesktopOS(ua.OS):
		info.Type = domain.DeviceDesktop
	}

	return info
}

func isDesktopOS(os string) bool {
	os = strings.ToLower(os)
	return strings.Contains(os, "windows") ||
		strings.Contains(os, "mac") ||
		strings.Contains(os, "linux")
}

func (e *enricher) resolveLocation(clientIP string) *domain.Location {
	if e.geo == nil {
		return nil
	}

	ip := net.ParseIP(clientIP)
	if ip == nil {
		return nil
	}

	record, err := e.geo.City(ip)
	if err != nil || record == nil {
		return nil
	}
	if record.Country.IsoCode == "" {
		return nil
	}

	return &domain.Location{
		Country: record.Country.IsoCode,
		City:    record.City.Names["en"],
		// GeoJSON order: longitude first.
		Coordinates: domain.NewGeoPoint(record.Location.Longitude, record.Location.Latitude),
	}
}
