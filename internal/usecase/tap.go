package usecase

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/kulasio/OneTapp-Backend/internal/domain"
	"github.com/kulasio/OneTapp-Backend/internal/middleware"
	"github.com/kulasio/OneTapp-Backend/internal/service/tap"

	"github.com/gin-gonic/gin"
)

type recordTapRequest struct {
	NFCID     string `json:"nfcId" binding:"required"`
	SessionID string `json:"sessionId"`
}

// RecordTapHandler handles POST /api/taps. It validates the card, records
// a view event and returns the card's public display fields.
func (tb *tapBackend) RecordTapHandler(c *gin.Context) {
	var req recordTapRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "nfcId is required",
			"details": err.Error(),
		})
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = tb.taps.GetOrCreateSessionID(middleware.SessionID(c))
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 10*time.Second)
	defer cancel()

	result, err := tb.taps.RecordTap(ctx, tap.Request{
		NFCID:     req.NFCID,
		SessionID: sessionID,
		UserAgent: c.Request.UserAgent(),
		ClientIP:  c.ClientIP(),
		Referrer:  c.Request.Referer(),
	})
	if err != nil {
		if errors.Is(err, domain.ErrCardNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Card not found"})
			return
		}
		respondStoreError(c, "Failed to record tap", err)
		return
	}

	c.JSON(http.StatusCreated, result)
}

// respondStoreError maps store failures onto the HTTP boundary: retryable
// unavailability as 503, everything else as 500.
func respondStoreError(c *gin.Context, msg string, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, domain.ErrStoreUnavailable) {
		status = http.StatusServiceUnavailable
	}
	c.JSON(status, gin.H{
		"error":   msg,
		"details": err.Error(),
	})
}
