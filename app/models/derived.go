package models

// ValidationResult outcome of checking an address against a required
// component list.
type ValidationResult struct {
	IsValid      bool               `json:"is_valid"`
	Completeness float64            `json:"completeness"`
	Missing      []AddressComponent `json:"missing"`
	Invalid      []AddressComponent `json:"invalid"`
	Score        float64            `json:"score"`
}

// ComparisonResult pairwise address similarity.
type ComparisonResult struct {
	Similarity            float64                      `json:"similarity"`
	Match                 bool                         `json:"match"`
	Score                 float64                      `json:"score"`
	Common                []AddressComponent           `json:"common"`
	Differences           []AddressComponent           `json:"differences"`
	ComponentSimilarities map[AddressComponent]float64 `json:"component_similarities"`
}

// EnrichedResult extraction augmented with geographic context.
type EnrichedResult struct {
	*ExtractionResult
	Hierarchy           []string `json:"hierarchy,omitempty"`
	SuggestedPostalCode string   `json:"suggested_postal_code,omitempty"`
	PostalConfidence    float64  `json:"postal_confidence,omitempty"`
}

// AddressStatistics aggregate figures over a collection of addresses.
type AddressStatistics struct {
	Total                  int                        `json:"total"`
	Completeness           float64                    `json:"completeness"`
	AverageConfidence      float64                    `json:"average_confidence"`
	DistributionByDistrict map[string]int             `json:"distribution_by_district"`
	DistributionByDivision map[string]int             `json:"distribution_by_division"`
	CommonAreas            []AreaCount                `json:"common_areas"`
	MissingComponents      map[AddressComponent]int   `json:"missing_components_histogram"`
}

// AreaCount area frequency pair, sorted descending in CommonAreas.
type AreaCount struct {
	Area  string `json:"area"`
	Count int    `json:"count"`
}

// BatchJob state of an asynchronous batch extraction.
type BatchJob struct {
	ID        string              `json:"id"`
	Status    string              `json:"status"`
	Total     int                 `json:"total"`
	Processed int                 `json:"processed"`
	Failed    int                 `json:"failed"`
	Results   []*ExtractionResult `json:"results,omitempty"`
	CreatedAt int64               `json:"created_at"`
	UpdatedAt int64               `json:"updated_at"`
}

// Batch job status constants.
const (
	JobStatusPending   = "pending"
	JobStatusRunning   = "running"
	JobStatusCompleted = "completed"
	JobStatusFailed    = "failed"
)
