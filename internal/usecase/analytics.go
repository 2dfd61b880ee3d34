package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kulasio/OneTapp-Backend/internal/domain"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const aggregationTimeout = 30 * time.Second

// GetAnalyticsHandler handles GET /api/admin/analytics.
func (tb *tapBackend) GetAnalyticsHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), aggregationTimeout)
	defer cancel()

	stats, err := tb.analytics.Overall(ctx, windowFromQuery(c))
	if err != nil {
		respondStoreError(c, "Failed to fetch analytics", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetCardAnalyticsHandler handles GET /api/admin/analytics/card/:id.
func (tb *tapBackend) GetCardAnalyticsHandler(c *gin.Context) {
	cardID, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), aggregationTimeout)
	defer cancel()

	stats, err := tb.analytics.CardStats(ctx, cardID, windowFromQuery(c))
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		respondStoreError(c, "Failed to fetch card analytics", err)
		return
	}

	c.JSON(http.StatusOK, stats)
}

// GetGeoDistributionHandler handles GET /api/admin/analytics/geo.
func (tb *tapBackend) GetGeoDistributionHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), aggregationTimeout)
	defer cancel()

	geo, err := tb.analytics.GeoDistribution(ctx, windowFromQuery(c))
	if err != nil {
		respondStoreError(c, "Failed to fetch geographic distribution", err)
		return
	}

	c.JSON(http.StatusOK, geo)
}

// GetDeviceStatsHandler handles GET /api/admin/analytics/devices.
func (tb *tapBackend) GetDeviceStatsHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), aggregationTimeout)
	defer cancel()

	devices, err := tb.analytics.DeviceStats(ctx, windowFromQuery(c))
	if err != nil {
		respondStoreError(c, "Failed to fetch device statistics", err)
		return
	}

	c.JSON(http.StatusOK, devices)
}
