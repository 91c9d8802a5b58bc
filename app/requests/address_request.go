package requests

// ExtractOptions per-request extraction settings.
type ExtractOptions struct {
	IncludeMetadata bool               `json:"include_metadata,omitempty"`
	UseCache        *bool              `json:"use_cache,omitempty"`
	TimeoutSeconds  int                `json:"timeout_seconds,omitempty"`
	Thresholds      map[string]float64 `json:"thresholds,omitempty"`
}

// CacheEnabled defaults to true when the caller says nothing.
func (o ExtractOptions) CacheEnabled() bool {
	return o.UseCache == nil || *o.UseCache
}

// ExtractAddressRequest single-address extraction.
type ExtractAddressRequest struct {
	Address string         `json:"address" binding:"required"`
	Options ExtractOptions `json:"options,omitempty"`
}

// BatchExtractRequest asynchronous bulk extraction.
type BatchExtractRequest struct {
	Addresses []string       `json:"addresses" binding:"required,min=1"`
	Options   ExtractOptions `json:"options,omitempty"`
}

// ValidateAddressRequest completeness check against a required list.
type ValidateAddressRequest struct {
	Address  string         `json:"address" binding:"required"`
	Required []string       `json:"required,omitempty"`
	Options  ExtractOptions `json:"options,omitempty"`
}

// CompareAddressRequest pairwise similarity.
type CompareAddressRequest struct {
	AddressA string         `json:"address_a" binding:"required"`
	AddressB string         `json:"address_b" binding:"required"`
	Options  ExtractOptions `json:"options,omitempty"`
}

// EnrichAddressRequest extraction plus geographic augmentation.
type EnrichAddressRequest struct {
	Address string         `json:"address" binding:"required"`
	Options ExtractOptions `json:"options,omitempty"`
}

// StatisticsRequest aggregate figures over a corpus.
type StatisticsRequest struct {
	Addresses []string       `json:"addresses" binding:"required,min=1"`
	Options   ExtractOptions `json:"options,omitempty"`
}

// ThresholdsRequest replaces the instance thresholds.
type ThresholdsRequest struct {
	Thresholds map[string]float64 `json:"thresholds" binding:"required"`
}
