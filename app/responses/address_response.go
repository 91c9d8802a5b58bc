package responses

import (
	"github.com/bd-address-extractor/app/models"
)

// ExtractAddressResponse single-address extraction outcome.
type ExtractAddressResponse struct {
	Result           *models.ExtractionResult `json:"result"`
	ProcessingTimeMs float64                  `json:"processing_time_ms"`
	CacheHit         bool                     `json:"cache_hit"`
}

// BatchExtractResponse job handle for asynchronous bulk extraction.
type BatchExtractResponse struct {
	JobID            string `json:"job_id"`
	EstimatedSeconds int    `json:"estimated_seconds"`
	TotalAddresses   int    `json:"total_addresses"`
	Message          string `json:"message"`
}

// JobStatusResponse progress of a batch job.
type JobStatusResponse struct {
	JobID     string  `json:"job_id"`
	Status    string  `json:"status"`
	Progress  float64 `json:"progress"`
	Processed int     `json:"processed"`
	Failed    int     `json:"failed"`
	Total     int     `json:"total"`
}

// ValidateAddressResponse validation outcome.
type ValidateAddressResponse struct {
	Result *models.ValidationResult `json:"result"`
}

// CompareAddressResponse similarity outcome.
type CompareAddressResponse struct {
	Result *models.ComparisonResult `json:"result"`
}

// SuggestResponse ranked completions.
type SuggestResponse struct {
	Query       string              `json:"query"`
	Suggestions []models.Suggestion `json:"suggestions"`
}

// EnrichAddressResponse extraction with geographic context.
type EnrichAddressResponse struct {
	Result *models.EnrichedResult `json:"result"`
}

// StatisticsResponse corpus aggregates.
type StatisticsResponse struct {
	Statistics *models.AddressStatistics `json:"statistics"`
}

// ErrorResponse error envelope.
type ErrorResponse struct {
	Error     string      `json:"error"`
	Message   string      `json:"message"`
	Details   interface{} `json:"details,omitempty"`
	Timestamp string      `json:"timestamp,omitempty"`
}

// SuccessResponse generic success envelope.
type SuccessResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// HealthCheckResponse service health.
type HealthCheckResponse struct {
	Status    string            `json:"status"`
	Timestamp string            `json:"timestamp"`
	Uptime    string            `json:"uptime"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}
