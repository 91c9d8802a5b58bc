// Package geo is the geographic knowledge base: a corpus-derived gazetteer
// indexed by prefix tree and an offline administrative hierarchy. Both are
// built once at startup and shared read-only across requests.
package geo

import (
	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
)

// KnowledgeBase bundles the gazetteer and the hierarchy behind the
// operations the resolver and the derived operations need.
type KnowledgeBase struct {
	gaz  *Gazetteer
	hier *Hierarchy
}

// NewKnowledgeBase embedded data only.
func NewKnowledgeBase(logger *zap.Logger) *KnowledgeBase {
	return &KnowledgeBase{
		gaz:  NewGazetteer(logger),
		hier: NewHierarchy(logger),
	}
}

// NewKnowledgeBaseFromFile loads the gazetteer corpus from disk; the
// hierarchy is always the embedded one.
func NewKnowledgeBaseFromFile(gazetteerPath string, logger *zap.Logger) *KnowledgeBase {
	return &KnowledgeBase{
		gaz:  NewGazetteerFromFile(gazetteerPath, logger),
		hier: NewHierarchy(logger),
	}
}

// Gazetteer direct access for suggestion and statistics code.
func (kb *KnowledgeBase) Gazetteer() *Gazetteer { return kb.gaz }

// Hierarchy direct access.
func (kb *KnowledgeBase) Hierarchy() *Hierarchy { return kb.hier }

// LookupGazetteer approximate lookup of an area or district name.
func (kb *KnowledgeBase) LookupGazetteer(text string) (*models.GeoLookup, bool) {
	return kb.gaz.Lookup(text)
}

// ScanText gazetteer-sourced candidates for every known area mentioned in
// the normalized text.
func (kb *KnowledgeBase) ScanText(text string) []models.Candidate {
	return kb.gaz.ScanText(text)
}

// PredictPostalCode hierarchy walk, most specific level first.
func (kb *KnowledgeBase) PredictPostalCode(known map[models.AddressComponent]string) (*models.PostalPrediction, bool) {
	return kb.hier.PredictPostalCode(known)
}

// ValidateConsistency geographic cross-checks over resolved components.
func (kb *KnowledgeBase) ValidateConsistency(components map[models.AddressComponent]string) []string {
	return kb.hier.ValidateConsistency(components, kb.gaz)
}

// DivisionForDistrict resolves the containing division.
func (kb *KnowledgeBase) DivisionForDistrict(district string) (string, bool) {
	return kb.hier.DivisionForDistrict(district)
}

// Districts known district names for the structural parser and the pattern
// tables.
func (kb *KnowledgeBase) Districts() []string { return kb.hier.Districts() }

// Areas known area names for the structural parser and the pattern tables.
func (kb *KnowledgeBase) Areas() []string { return kb.gaz.Areas() }

// Suggest ranked completions for a query prefix.
func (kb *KnowledgeBase) Suggest(query string, limit int) []models.Suggestion {
	return kb.gaz.Suggest(query, limit)
}

// FullHierarchy division-to-leaf path for enrichment.
func (kb *KnowledgeBase) FullHierarchy(district, area string) []string {
	return kb.hier.FullHierarchy(district, area)
}
