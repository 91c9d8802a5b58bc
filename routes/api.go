package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/bd-address-extractor/app/controllers"
)

// SetupAPIRoutes wires the versioned extraction API.
func SetupAPIRoutes(router *gin.Engine, addressController *controllers.AddressController) {
	v1 := router.Group("/api/v1")
	{
		v1.POST("/extract", addressController.Extract)
		v1.POST("/extract/batch", addressController.BatchExtract)
		v1.GET("/extract/batch/:jobID", addressController.GetJobStatus)
		v1.GET("/extract/batch/:jobID/results", addressController.GetJobResults)

		v1.POST("/validate", addressController.Validate)
		v1.POST("/compare", addressController.Compare)
		v1.GET("/suggest", addressController.Suggest)
		v1.POST("/enrich", addressController.Enrich)
		v1.POST("/statistics", addressController.Statistics)

		v1.PUT("/thresholds", addressController.SetThresholds)
		v1.GET("/cache/stats", addressController.CacheStats)

		v1.GET("/health", addressController.HealthCheck)
	}
}

// SetupHealthRoutes unversioned probes for orchestration.
func SetupHealthRoutes(router *gin.Engine, addressController *controllers.AddressController) {
	router.GET("/health", addressController.HealthCheck)
	router.GET("/ready", addressController.HealthCheck)
	router.GET("/live", addressController.HealthCheck)
}

// SetupAllRoutes middleware plus every route group.
func SetupAllRoutes(router *gin.Engine, addressController *controllers.AddressController) {
	setupMiddleware(router)

	SetupWebRoutes(router)
	SetupHealthRoutes(router, addressController)
	SetupAPIRoutes(router, addressController)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":  "Route not found",
			"path":   c.Request.URL.Path,
			"method": c.Request.Method,
		})
	})
}

func setupMiddleware(router *gin.Engine) {
	router.Use(gin.Recovery())
	router.Use(gin.Logger())
}
