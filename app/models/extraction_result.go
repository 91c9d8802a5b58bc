package models

// ComponentDetail unfiltered per-component outcome, kept in metadata even
// when threshold filtering removes the value from the components map.
type ComponentDetail struct {
	Value      string  `json:"value"`
	Confidence float64 `json:"confidence"`
	Source     string  `json:"source"`
}

// ResultMetadata optional detail block, present only when the caller asked
// for it.
type ResultMetadata struct {
	Script           string                               `json:"script"`
	IsMixed          bool                                 `json:"is_mixed"`
	Conflicts        []string                             `json:"conflicts"`
	ComponentDetails map[AddressComponent]ComponentDetail `json:"component_details"`
}

// ExtractionResult final structured output of one extraction. Created fresh
// per request and never mutated after construction.
type ExtractionResult struct {
	Components             map[AddressComponent]string  `json:"components"`
	PerComponentConfidence map[AddressComponent]float64 `json:"per_component_confidence"`
	OverallConfidence      float64                      `json:"overall_confidence"`
	ExtractionTimeMs       float64                      `json:"extraction_time_ms"`
	NormalizedAddress      string                       `json:"normalized_address"`
	OriginalAddress        string                       `json:"original_address"`
	Cached                 bool                         `json:"cached,omitempty"`
	Metadata               *ResultMetadata              `json:"metadata,omitempty"`
}

// NewEmptyResult zero-confidence result for empty or failed inputs.
func NewEmptyResult(original string) *ExtractionResult {
	return &ExtractionResult{
		Components:             map[AddressComponent]string{},
		PerComponentConfidence: map[AddressComponent]float64{},
		OverallConfidence:      0,
		NormalizedAddress:      "",
		OriginalAddress:        original,
	}
}

// Component returns the thresholded value for one component.
func (r *ExtractionResult) Component(c AddressComponent) (string, bool) {
	v, ok := r.Components[c]
	return v, ok
}

// ComponentCount number of components that survived threshold filtering.
func (r *ExtractionResult) ComponentCount() int {
	return len(r.Components)
}

// Completeness fraction of the nine components present after filtering.
func (r *ExtractionResult) Completeness() float64 {
	return float64(len(r.Components)) / float64(len(AllComponents))
}

// Clone deep copy. Cache hits hand out clones so callers can never mutate
// the stored entry.
func (r *ExtractionResult) Clone() *ExtractionResult {
	out := *r
	out.Components = make(map[AddressComponent]string, len(r.Components))
	for k, v := range r.Components {
		out.Components[k] = v
	}
	out.PerComponentConfidence = make(map[AddressComponent]float64, len(r.PerComponentConfidence))
	for k, v := range r.PerComponentConfidence {
		out.PerComponentConfidence[k] = v
	}
	if r.Metadata != nil {
		md := *r.Metadata
		md.Conflicts = append([]string(nil), r.Metadata.Conflicts...)
		md.ComponentDetails = make(map[AddressComponent]ComponentDetail, len(r.Metadata.ComponentDetails))
		for k, v := range r.Metadata.ComponentDetails {
			md.ComponentDetails[k] = v
		}
		out.Metadata = &md
	}
	return &out
}
