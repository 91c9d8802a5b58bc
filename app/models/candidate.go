package models

// AddressComponent labels one extractable field of a Bangladeshi address.
// Values double as the JSON keys of the components map.
type AddressComponent string

const (
	ComponentHouse    AddressComponent = "house_number"
	ComponentRoad     AddressComponent = "road"
	ComponentArea     AddressComponent = "area"
	ComponentDistrict AddressComponent = "district"
	ComponentDivision AddressComponent = "division"
	ComponentPostal   AddressComponent = "postal_code"
	ComponentFlat     AddressComponent = "flat_number"
	ComponentFloor    AddressComponent = "floor_number"
	ComponentBlock    AddressComponent = "block_number"
)

// AllComponents in display order.
var AllComponents = []AddressComponent{
	ComponentHouse,
	ComponentRoad,
	ComponentArea,
	ComponentDistrict,
	ComponentDivision,
	ComponentPostal,
	ComponentFlat,
	ComponentFloor,
	ComponentBlock,
}

// Source identifies which extractor produced a candidate. The set is closed:
// the resolver's weighting table enumerates every member.
type Source string

const (
	SourceStructural   Source = "structural"
	SourcePattern      Source = "pattern"
	SourceNER          Source = "ner"
	SourceGazetteer    Source = "gazetteer"
	SourceGeoHierarchy Source = "geo_hierarchy"
)

// Span is a byte-offset range into the normalized text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Candidate is one extractor's proposal for one component. Immutable once
// produced; several candidates may exist per component per request.
type Candidate struct {
	Component  AddressComponent `json:"component"`
	Value      string           `json:"value"`
	Span       *Span            `json:"span,omitempty"` // nil for non-span sources
	Confidence float64          `json:"confidence"`
	Source     Source           `json:"source"`
}

// Valid reports whether the candidate carries a usable value and an
// in-range confidence.
func (c Candidate) Valid() bool {
	return c.Value != "" && c.Confidence >= 0 && c.Confidence <= 1
}
