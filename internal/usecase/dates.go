package usecase

import (
	"fmt"
	"time"

	"github.com/kulasio/OneTapp-Backend/internal/domain"

	"github.com/gin-gonic/gin"
)

// parseHumanReadableDate parses a human-readable date string into time.Time
func parseHumanReadableDate(dateStr string) (time.Time, error) {
	formats := []string{
		"2006-01-02",
		"02-01-2006",
		"01/02/2006",
		"02/01/2006",
		"20060102",
		"2006-1-2",
		"2-1-2006",
		"January 2, 2006",
		"2 January 2006",
		time.RFC3339,
		time.RFC3339Nano,
	}

	for _, format := range formats {
		if t, err := time.Parse(format, dateStr); err == nil {
			return t, nil
		}
	}

	return time.Time{}, fmt.Errorf("unable to parse date '%s'. Supported formats: YYYY-MM-DD, DD-MM-YYYY, MM/DD/YYYY, DD/MM/YYYY, YYYYMMDD", dateStr)
}

// windowFromQuery reads startDate/endDate query parameters. Malformed or
// missing values fall back to the defaults rather than failing the request.
func windowFromQuery(c *gin.Context) domain.Window {
	var win domain.Window
	if t, err := parseHumanReadableDate(c.Query("startDate")); err == nil {
		win.Start = t
	}
	if t, err := parseHumanReadableDate(c.Query("endDate")); err == nil {
		win.End = t
	}
	return win
}
