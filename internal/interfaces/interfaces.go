package interfaces

import "github.com/gin-gonic/gin"

// Usecase is the set of HTTP handlers exposed by the backend.
type Usecase interface {
	RecordTapHandler(c *gin.Context)
	GetAnalyticsHandler(c *gin.Context)
	GetCardAnalyticsHandler(c *gin.Context)
	GetGeoDistributionHandler(c *gin.Context)
	GetDeviceStatsHandler(c *gin.Context)
}
