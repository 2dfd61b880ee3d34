package enrich

import (
	"errors"
	"net"
	"testing"

	"github.com/kulasio/OneTapp-Backend/internal/domain"

	"github.com/oschwald/geoip2-golang"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGeo struct {
	rec *geoip2.City
	err error
}

func (f *fakeGeo) City(ip net.IP) (*geoip2.City, error) {
	return f.rec, f.err
}

func manilaRecord() *geoip2.City {
	var rec geoip2.City
	rec.Country.IsoCode = "PH"
	rec.City.Names = map[string]string{"en": "Manila"}
	rec.Location.Longitude = 120.9842
	rec.Location.Latitude = 14.5995
	return &rec
}

func TestParseDeviceClassification(t *testing.T) {
	e := NewEnricher(nil)

	tests := []struct {
		name     string
		ua       string
		wantType domain.DeviceType
	}{
		{
			name:     "iphone is mobile",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/17.0 Mobile/15E148 Safari/604.1",
			wantType: domain.DeviceMobile,
		},
		{
			name:     "ipad is tablet",
			ua:       "Mozilla/5.0 (iPad; CPU OS 16_0 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/16.0 Mobile/15E148 Safari/604.1",
			wantType: domain.DeviceTablet,
		},
		{
			name:     "windows chrome is desktop",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
			wantType: domain.DeviceDesktop,
		},
		{
			name:     "linux firefox is desktop",
			ua:       "Mozilla/5.0 (X11; Linux x86_64; rv:109.0) Gecko/20100101 Firefox/115.0",
			wantType: domain.DeviceDesktop,
		},
		{
			name:     "empty user agent is unknown",
			ua:       "",
			wantType: domain.DeviceUnknown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, _ := e.Enrich(tt.ua, "")
			assert.Equal(t, tt.wantType, info.Type)
			assert.Equal(t, tt.ua, info.UserAgent, "raw user agent must be preserved verbatim")
		})
	}
}

func TestParseDeviceEmptyUA(t *testing.T) {
	e := NewEnricher(nil)

	info, loc := e.Enrich("", "203.0.113.7")

	assert.Equal(t, domain.DeviceUnknown, info.Type)
	assert.Empty(t, info.Browser)
	assert.Empty(t, info.OS)
	assert.Nil(t, loc)
}

func TestParseDeviceBrowserAndOS(t *testing.T) {
	e := NewEnricher(nil)

	info, _ := e.Enrich("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36", "")

	assert.NotEmpty(t, info.Browser)
	assert.NotEmpty(t, info.OS)
}

func TestResolveLocationHit(t *testing.T) {
	e := NewEnricher(&fakeGeo{rec: manilaRecord()})

	_, loc := e.Enrich("", "203.0.113.7")

	require.NotNil(t, loc)
	assert.Equal(t, "PH", loc.Country)
	assert.Equal(t, "Manila", loc.City)
	assert.Equal(t, "Point", loc.Coordinates.Type)
	// Longitude first, latitude second.
	assert.Equal(t, 120.9842, loc.Coordinates.Coordinates[0])
	assert.Equal(t, 14.5995, loc.Coordinates.Coordinates[1])
}

func TestResolveLocationMiss(t *testing.T) {
	t.Run("lookup error", func(t *testing.T) {
		e := NewEnricher(&fakeGeo{err: errors.New("corrupt database")})
		_, loc := e.Enrich("", "203.0.113.7")
		assert.Nil(t, loc)
	})

	t.Run("empty record", func(t *testing.T) {
		e := NewEnricher(&fakeGeo{rec: &geoip2.City{}})
		_, loc := e.Enrich("", "203.0.113.7")
		assert.Nil(t, loc)
	})

	t.Run("unparseable ip", func(t *testing.T) {
		e := NewEnricher(&fakeGeo{rec: manilaRecord()})
		_, loc := e.Enrich("", "not-an-ip")
		assert.Nil(t, loc)
	})

	t.Run("no resolver", func(t *testing.T) {
		e := NewEnricher(nil)
		_, loc := e.Enrich("", "203.0.113.7")
		assert.Nil(t, loc)
	})
}
