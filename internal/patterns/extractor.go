// Package patterns implements the per-component regex extractors. Each
// extractor owns an ordered table of (pattern, confidence) rules, highest
// confidence first; tables live in tables.go as plain data so priority is
// inspectable without reading the matching engine.
package patterns

import (
	"regexp"
	"strings"

	"github.com/bd-address-extractor/app/models"
)

// Rule one pattern with its fixed confidence. Capture group 1 is the value;
// group 0 is used when the rule has no group. Rules are tried in table
// order, so place specific patterns before loose ones.
type Rule struct {
	Pattern    *regexp.Regexp
	Confidence float64
	// NotAfter rejects a match whose immediately preceding text matches,
	// standing in for lookbehind which the regexp engine does not support.
	NotAfter *regexp.Regexp
}

// Extractor scans normalized text for one component.
type Extractor struct {
	component models.AddressComponent
	rules     []Rule
}

// NewExtractor builds an extractor from an ordered rule table.
func NewExtractor(component models.AddressComponent, rules []Rule) *Extractor {
	return &Extractor{component: component, rules: rules}
}

// Component this extractor targets.
func (e *Extractor) Component() models.AddressComponent { return e.component }

// Rules exposes the table for tests and tooling.
func (e *Extractor) Rules() []Rule { return e.rules }

// Extract runs every rule in order and emits one candidate per match.
// Matching never re-scans spans already claimed by an earlier rule of the
// same extractor, so a single number cannot be counted twice by one pattern
// family. Extractors do not coordinate with each other.
func (e *Extractor) Extract(text string) []models.Candidate {
	var out []models.Candidate
	var claimed []models.Span

	for _, rule := range e.rules {
		for _, m := range rule.Pattern.FindAllStringSubmatchIndex(text, -1) {
			start, end := valueSpan(m)
			if start < 0 || start == end {
				continue
			}
			if overlapsAny(claimed, start, end) {
				continue
			}
			if rule.NotAfter != nil && rule.NotAfter.MatchString(text[:m[0]]) {
				continue
			}
			value := cleanValue(text[start:end])
			if value == "" {
				continue
			}
			claimed = append(claimed, models.Span{Start: start, End: end})
			out = append(out, models.Candidate{
				Component:  e.component,
				Value:      value,
				Span:       &models.Span{Start: start, End: end},
				Confidence: rule.Confidence,
				Source:     models.SourcePattern,
			})
		}
	}
	return out
}

func valueSpan(m []int) (int, int) {
	if len(m) >= 4 && m[2] >= 0 {
		return m[2], m[3]
	}
	return m[0], m[1]
}

func overlapsAny(claimed []models.Span, start, end int) bool {
	for _, s := range claimed {
		if start < s.End && end > s.Start {
			return true
		}
	}
	return false
}

func cleanValue(v string) string {
	v = strings.TrimSpace(v)
	v = strings.Trim(v, ",():;")
	return strings.Join(strings.Fields(v), " ")
}

// Set all eight component extractors, built once and shared read-only
// across requests.
type Set struct {
	extractors []*Extractor
}

// NewSet wires the default tables. District and area tables take the known
// place names from the geographic knowledge base.
func NewSet(districts, areas []string) *Set {
	return &Set{extractors: []*Extractor{
		NewExtractor(models.ComponentHouse, HouseRules()),
		NewExtractor(models.ComponentRoad, RoadRules()),
		NewExtractor(models.ComponentArea, AreaRules(areas)),
		NewExtractor(models.ComponentDistrict, DistrictRules(districts)),
		NewExtractor(models.ComponentPostal, PostalRules()),
		NewExtractor(models.ComponentFlat, FlatRules()),
		NewExtractor(models.ComponentFloor, FloorRules()),
		NewExtractor(models.ComponentBlock, BlockRules()),
	}}
}

// Extractors in fixed order.
func (s *Set) Extractors() []*Extractor { return s.extractors }

// ExtractAll runs every extractor over the text and concatenates the
// candidates. Extractors are independent; multiplicity is resolved later
// by the fusion engine.
func (s *Set) ExtractAll(text string) []models.Candidate {
	var out []models.Candidate
	for _, e := range s.extractors {
		out = append(out, e.Extract(text)...)
	}
	return out
}
