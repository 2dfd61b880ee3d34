package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/kulasio/OneTapp-Backend/internal/db"
	"github.com/kulasio/OneTapp-Backend/internal/interfaces"
	"github.com/kulasio/OneTapp-Backend/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, u interfaces.Usecase, mongoDB *db.MongoDB) {
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.SessionMiddleware())

	r.GET("/healthz", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		if err := mongoDB.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "details": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Prefix all API routes with /api
	api := r.Group("/api")
	{
		api.POST("/taps", u.RecordTapHandler)

		admin := api.Group("/admin/analytics")
		{
			admin.GET("", u.GetAnalyticsHandler)
			admin.GET("/card/:id", u.GetCardAnalyticsHandler)
			admin.GET("/geo", u.GetGeoDistributionHandler)
			admin.GET("/devices", u.GetDeviceStatsHandler)
		}
	}
}
