package controllers

import (
	"compress/gzip"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
	"github.com/bd-address-extractor/app/requests"
	"github.com/bd-address-extractor/app/responses"
	"github.com/bd-address-extractor/app/services"
	"github.com/bd-address-extractor/helpers/utils"
	"github.com/bd-address-extractor/internal/extractor"
)

// AddressController HTTP handlers over the address service.
type AddressController struct {
	addressService *services.AddressService
	logger         *zap.Logger
	batchLimit     int
}

// NewAddressController batchLimit caps addresses per batch request.
func NewAddressController(addressService *services.AddressService, batchLimit int, logger *zap.Logger) *AddressController {
	if batchLimit <= 0 {
		batchLimit = 20000
	}
	return &AddressController{
		addressService: addressService,
		logger:         logger,
		batchLimit:     batchLimit,
	}
}

// Extract handles POST /extract.
func (ac *AddressController) Extract(c *gin.Context) {
	var req requests.ExtractAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	start := time.Now()
	result, cacheHit, err := ac.addressService.Extract(c.Request.Context(), req.Address, req.Options)
	if err != nil {
		ac.extractionError(c, err)
		return
	}

	c.JSON(http.StatusOK, responses.ExtractAddressResponse{
		Result:           result,
		ProcessingTimeMs: float64(time.Since(start).Microseconds()) / 1000.0,
		CacheHit:         cacheHit,
	})
}

// BatchExtract handles POST /extract/batch: registers a job and returns
// its handle immediately.
func (ac *AddressController) BatchExtract(c *gin.Context) {
	var req requests.BatchExtractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	if len(req.Addresses) > ac.batchLimit {
		badRequest(c, "TOO_MANY_ADDRESSES",
			"batch exceeds the limit of "+strconv.Itoa(ac.batchLimit)+" addresses")
		return
	}

	jobID := utils.GenerateUUID()
	ac.addressService.StartBatchJob(jobID, req.Addresses, req.Options)

	c.JSON(http.StatusAccepted, responses.BatchExtractResponse{
		JobID:            jobID,
		EstimatedSeconds: ac.addressService.EstimateBatchSeconds(len(req.Addresses)),
		TotalAddresses:   len(req.Addresses),
		Message:          "job accepted",
	})
}

// GetJobStatus handles GET /extract/batch/:jobID.
func (ac *AddressController) GetJobStatus(c *gin.Context) {
	jobID := c.Param("jobID")
	job, err := ac.addressService.GetJob(jobID)
	if err != nil {
		c.JSON(http.StatusNotFound, responses.ErrorResponse{
			Error:   "JOB_NOT_FOUND",
			Message: err.Error(),
		})
		return
	}

	progress := 0.0
	if job.Total > 0 {
		progress = float64(job.Processed) / float64(job.Total)
	}
	c.JSON(http.StatusOK, responses.JobStatusResponse{
		JobID:     job.ID,
		Status:    job.Status,
		Progress:  progress,
		Processed: job.Processed,
		Failed:    job.Failed,
		Total:     job.Total,
	})
}

// GetJobResults handles GET /extract/batch/:jobID/results. NDJSON and gzip
// variants stream line-per-result.
func (ac *AddressController) GetJobResults(c *gin.Context) {
	jobID := c.Param("jobID")
	results, err := ac.addressService.GetJobResults(jobID)
	if err != nil {
		status := http.StatusNotFound
		code := "JOB_NOT_FOUND"
		if !errors.Is(err, services.ErrJobNotFound) {
			status = http.StatusConflict
			code = "JOB_NOT_READY"
		}
		c.JSON(status, responses.ErrorResponse{Error: code, Message: err.Error()})
		return
	}

	if c.Query("format") == "ndjson" {
		ac.streamNDJSON(c, results, c.Query("gzip") == "1")
		return
	}
	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "job results",
		Data:    results,
	})
}

// Validate handles POST /validate.
func (ac *AddressController) Validate(c *gin.Context) {
	var req requests.ValidateAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := ac.addressService.Validate(c.Request.Context(), req.Address, req.Required, req.Options)
	if err != nil {
		ac.extractionError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.ValidateAddressResponse{Result: result})
}

// Compare handles POST /compare.
func (ac *AddressController) Compare(c *gin.Context) {
	var req requests.CompareAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := ac.addressService.Compare(c.Request.Context(), req.AddressA, req.AddressB, req.Options)
	if err != nil {
		ac.extractionError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.CompareAddressResponse{Result: result})
}

// Suggest handles GET /suggest?q=&limit=.
func (ac *AddressController) Suggest(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		badRequest(c, "MISSING_QUERY", "q parameter is required")
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "10"))

	c.JSON(http.StatusOK, responses.SuggestResponse{
		Query:       query,
		Suggestions: ac.addressService.Suggest(query, limit),
	})
}

// Enrich handles POST /enrich.
func (ac *AddressController) Enrich(c *gin.Context) {
	var req requests.EnrichAddressRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	result, err := ac.addressService.Enrich(c.Request.Context(), req.Address, req.Options)
	if err != nil {
		ac.extractionError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.EnrichAddressResponse{Result: result})
}

// Statistics handles POST /statistics.
func (ac *AddressController) Statistics(c *gin.Context) {
	var req requests.StatisticsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}
	if len(req.Addresses) > ac.batchLimit {
		badRequest(c, "TOO_MANY_ADDRESSES",
			"corpus exceeds the limit of "+strconv.Itoa(ac.batchLimit)+" addresses")
		return
	}

	stats, err := ac.addressService.Statistics(c.Request.Context(), req.Addresses, req.Options)
	if err != nil {
		ac.extractionError(c, err)
		return
	}
	c.JSON(http.StatusOK, responses.StatisticsResponse{Statistics: stats})
}

// SetThresholds handles PUT /thresholds.
func (ac *AddressController) SetThresholds(c *gin.Context) {
	var req requests.ThresholdsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, "INVALID_REQUEST", err.Error())
		return
	}

	if err := ac.addressService.SetThresholds(c.Request.Context(), req.Thresholds); err != nil {
		badRequest(c, "INVALID_THRESHOLDS", err.Error())
		return
	}
	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "thresholds updated",
	})
}

// CacheStats handles GET /cache/stats.
func (ac *AddressController) CacheStats(c *gin.Context) {
	stats, err := ac.addressService.CacheStats(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "CACHE_ERROR",
			Message: err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, responses.SuccessResponse{
		Success: true,
		Message: "cache stats",
		Data:    stats,
	})
}

// HealthCheck handles GET /health.
func (ac *AddressController) HealthCheck(c *gin.Context) {
	nerStatus := "unavailable"
	if ac.addressService.NERAvailable() {
		nerStatus = "healthy"
	}

	c.JSON(http.StatusOK, responses.HealthCheckResponse{
		Status:    "healthy",
		Timestamp: time.Now().Format(time.RFC3339),
		Uptime:    time.Since(ac.addressService.GetStartTime()).String(),
		Version:   "1.0.0",
		Services: map[string]string{
			"extractor": "healthy",
			"ner":       nerStatus,
		},
	})
}

func (ac *AddressController) extractionError(c *gin.Context, err error) {
	var cfgErr *extractor.ConfigurationError
	switch {
	case errors.As(err, &cfgErr):
		badRequest(c, "INVALID_CONFIGURATION", cfgErr.Error())
	case errors.Is(err, extractor.ErrTimeout):
		c.JSON(http.StatusGatewayTimeout, responses.ErrorResponse{
			Error:   "EXTRACTION_TIMEOUT",
			Message: err.Error(),
		})
	default:
		ac.logger.Error("extraction failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, responses.ErrorResponse{
			Error:   "EXTRACTION_ERROR",
			Message: err.Error(),
		})
	}
}

func badRequest(c *gin.Context, code, message string) {
	c.JSON(http.StatusBadRequest, responses.ErrorResponse{
		Error:     code,
		Message:   message,
		Timestamp: time.Now().Format(time.RFC3339),
	})
}

func (ac *AddressController) streamNDJSON(c *gin.Context, results []*models.ExtractionResult, gzipEnabled bool) {
	c.Header("Content-Type", "application/x-ndjson")

	var writer gin.ResponseWriter = c.Writer
	if gzipEnabled {
		c.Header("Content-Encoding", "gzip")
		gzWriter := gzip.NewWriter(c.Writer)
		defer gzWriter.Close()
		writer = &gzipResponseWriter{ResponseWriter: c.Writer, gzWriter: gzWriter}
	}

	encoder := json.NewEncoder(writer)
	for _, result := range results {
		if err := encoder.Encode(result); err != nil {
			ac.logger.Error("ndjson streaming failed", zap.Error(err))
			return
		}
		if flusher, ok := writer.(http.Flusher); ok {
			flusher.Flush()
		}
	}
}

// gzipResponseWriter routes writes through the gzip stream.
type gzipResponseWriter struct {
	gin.ResponseWriter
	gzWriter *gzip.Writer
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzWriter.Write(data)
}

func (w *gzipResponseWriter) Flush() {
	_ = w.gzWriter.Flush()
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}
