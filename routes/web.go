package routes

import (
	"github.com/gin-gonic/gin"
)

// SetupWebRoutes landing and self-describing docs endpoints.
func SetupWebRoutes(router *gin.Engine) {
	web := router.Group("/")
	{
		web.GET("/", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"message": "Bangladesh Address Extraction Service",
				"version": "1.0.0",
				"docs":    "/docs",
			})
		})

		web.GET("/docs", func(c *gin.Context) {
			c.JSON(200, gin.H{
				"api": "Address Extraction API v1",
				"endpoints": map[string]string{
					"extract":     "POST /api/v1/extract",
					"batch":       "POST /api/v1/extract/batch",
					"job_status":  "GET /api/v1/extract/batch/:jobID",
					"job_results": "GET /api/v1/extract/batch/:jobID/results",
					"validate":    "POST /api/v1/validate",
					"compare":     "POST /api/v1/compare",
					"suggest":     "GET /api/v1/suggest?q=",
					"enrich":      "POST /api/v1/enrich",
					"statistics":  "POST /api/v1/statistics",
					"thresholds":  "PUT /api/v1/thresholds",
					"health":      "GET /api/v1/health",
				},
			})
		})
	}
}
