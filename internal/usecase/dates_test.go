package usecase

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHumanReadableDate(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2025-06-15", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"15-06-2025", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"20250615", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
		{"15 June 2025", time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := parseHumanReadableDate(tt.input)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got))
		})
	}
}

func TestParseHumanReadableDateInvalid(t *testing.T) {
	_, err := parseHumanReadableDate("soon")
	assert.Error(t, err)
}

func newTestContext(t *testing.T, target string) *gin.Context {
	t.Helper()
	gin.SetMode(gin.TestMode)
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", target, nil)
	return c
}

func TestWindowFromQuery(t *testing.T) {
	c := newTestContext(t, "/api/admin/analytics?startDate=2025-06-01&endDate=2025-06-15")

	win := windowFromQuery(c)

	assert.Equal(t, time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), win.Start)
	assert.Equal(t, time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC), win.End)
}

func TestWindowFromQueryMalformedFallsBack(t *testing.T) {
	// Malformed dates fall back to defaults instead of failing.
	c := newTestContext(t, "/api/admin/analytics?startDate=whenever&endDate=later")

	win := windowFromQuery(c)

	assert.True(t, win.Start.IsZero())
	assert.True(t, win.End.IsZero())
}
