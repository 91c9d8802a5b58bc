package extractor

import (
	"context"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"

	"github.com/bd-address-extractor/app/models"
)

// Derived operations: validation, comparison, formatting, suggestion,
// enrichment and corpus statistics. All of them run Extract internally and
// work on its output; none mutate extractor state.

const (
	// comparisonMatchThreshold overall similarity at or above which two
	// addresses are considered the same place.
	comparisonMatchThreshold = 0.85
	// componentAgreementThreshold per-component similarity counted as
	// agreement in the common list.
	componentAgreementThreshold = 0.90
	// partialPresenceSimilarity credit for a component present on one side
	// only: unknown rather than contradicted.
	partialPresenceSimilarity = 0.5
)

// comparisonWeights importance of each component when comparing two
// addresses. Postal code and district disambiguate most.
var comparisonWeights = map[models.AddressComponent]float64{
	models.ComponentPostal:   0.30,
	models.ComponentDistrict: 0.25,
	models.ComponentArea:     0.20,
	models.ComponentHouse:    0.10,
	models.ComponentRoad:     0.10,
	models.ComponentDivision: 0.05,
}

// DefaultRequiredComponents used by Validate when the caller names none.
func DefaultRequiredComponents() []models.AddressComponent {
	return []models.AddressComponent{models.ComponentDistrict, models.ComponentArea}
}

// Validate extracts the address and scores it against a required component
// list: 70% required coverage, 30% overall completeness. A required
// component that resolved internally but fell below its threshold is
// reported invalid rather than missing.
func (e *Extractor) Validate(ctx context.Context, address string, required []models.AddressComponent, opts Options) (*models.ValidationResult, error) {
	if len(required) == 0 {
		required = DefaultRequiredComponents()
	}
	opts.IncludeMetadata = true
	result, err := e.Extract(ctx, address, opts)
	if err != nil {
		return nil, err
	}

	vr := &models.ValidationResult{
		Completeness: result.Completeness(),
		Missing:      []models.AddressComponent{},
		Invalid:      []models.AddressComponent{},
	}
	covered := 0
	for _, component := range required {
		if _, ok := result.Components[component]; ok {
			covered++
			continue
		}
		if _, resolved := result.PerComponentConfidence[component]; resolved {
			vr.Invalid = append(vr.Invalid, component)
		} else {
			vr.Missing = append(vr.Missing, component)
		}
	}
	coverage := float64(covered) / float64(len(required))
	vr.Score = 0.7*coverage + 0.3*vr.Completeness
	vr.IsValid = covered == len(required)
	return vr, nil
}

// Compare extracts both addresses and measures weighted component
// agreement. Components present on both sides contribute their string
// similarity; a component present on one side only contributes partial
// credit. Unweighted components fall outside the score entirely.
func (e *Extractor) Compare(ctx context.Context, a, b string, opts Options) (*models.ComparisonResult, error) {
	resA, err := e.Extract(ctx, a, opts)
	if err != nil {
		return nil, err
	}
	resB, err := e.Extract(ctx, b, opts)
	if err != nil {
		return nil, err
	}

	cr := &models.ComparisonResult{
		Common:                []models.AddressComponent{},
		Differences:           []models.AddressComponent{},
		ComponentSimilarities: map[models.AddressComponent]float64{},
	}

	var sum, weightSum float64
	for _, component := range models.AllComponents {
		weight, weighted := comparisonWeights[component]
		va, okA := resA.Components[component]
		vb, okB := resB.Components[component]
		if !okA && !okB {
			continue
		}

		var sim float64
		switch {
		case okA && okB:
			sim = componentSimilarity(component, va, vb)
		default:
			sim = partialPresenceSimilarity
		}
		cr.ComponentSimilarities[component] = sim

		if okA && okB && sim >= componentAgreementThreshold {
			cr.Common = append(cr.Common, component)
		} else {
			cr.Differences = append(cr.Differences, component)
		}
		if weighted {
			sum += weight * sim
			weightSum += weight
		}
	}

	if weightSum > 0 {
		cr.Similarity = sum / weightSum
	}
	cr.Score = cr.Similarity
	cr.Match = cr.Similarity >= comparisonMatchThreshold
	return cr, nil
}

// componentSimilarity exact match for code-like components, a string
// distance blend for names.
func componentSimilarity(component models.AddressComponent, a, b string) float64 {
	ka, kb := compareKey(a), compareKey(b)
	if ka == kb {
		return 1.0
	}
	switch component {
	case models.ComponentPostal, models.ComponentHouse, models.ComponentRoad,
		models.ComponentFlat, models.ComponentFloor, models.ComponentBlock:
		return 0.0
	}
	jw := smetrics.JaroWinkler(ka, kb, 0.7, 4)
	maxLen := len(ka)
	if len(kb) > maxLen {
		maxLen = len(kb)
	}
	lev := 1.0 - float64(levenshtein.ComputeDistance(ka, kb))/float64(maxLen)
	if lev < 0 {
		lev = 0
	}
	return 0.6*jw + 0.4*lev
}

func compareKey(v string) string {
	return strings.Join(strings.Fields(strings.ToLower(v)), " ")
}

// FormatStyle names of the supported output layouts.
const (
	FormatFull    = "full"
	FormatShort   = "short"
	FormatPostal  = "postal"
	FormatMinimal = "minimal"
)

// FormatOptions layout of a formatted address string.
type FormatOptions struct {
	Style         string
	Separator     string
	IncludePostal bool
}

// formatLayouts component order per style. Postal code placement is handled
// separately so IncludePostal composes with every style.
var formatLayouts = map[string][]models.AddressComponent{
	FormatFull: {
		models.ComponentFlat, models.ComponentFloor, models.ComponentHouse,
		models.ComponentRoad, models.ComponentBlock, models.ComponentArea,
		models.ComponentDistrict, models.ComponentDivision,
	},
	FormatShort: {
		models.ComponentHouse, models.ComponentRoad,
		models.ComponentArea, models.ComponentDistrict,
	},
	FormatPostal: {
		models.ComponentArea, models.ComponentDistrict,
	},
	FormatMinimal: {
		models.ComponentArea, models.ComponentDistrict,
	},
}

// componentLabels prefixes applied in formatted output for code-like
// components.
var componentLabels = map[models.AddressComponent]string{
	models.ComponentFlat:  "Flat",
	models.ComponentFloor: "Floor",
	models.ComponentHouse: "House",
	models.ComponentRoad:  "Road",
	models.ComponentBlock: "Block",
}

// Format renders extracted components into a canonical address string.
// Unknown styles fall back to full. The postal code, when requested and
// present, is joined to the district with a dash in the conventional
// "Dhaka-1216" form.
func Format(result *models.ExtractionResult, opts FormatOptions) string {
	style := opts.Style
	if _, ok := formatLayouts[style]; !ok {
		style = FormatFull
	}
	sep := opts.Separator
	if sep == "" {
		sep = ", "
	}
	includePostal := opts.IncludePostal || style == FormatPostal

	var parts []string
	for _, component := range formatLayouts[style] {
		value, ok := result.Components[component]
		if !ok {
			continue
		}
		if label, labeled := componentLabels[component]; labeled && style != FormatMinimal {
			value = label + " " + value
		}
		if component == models.ComponentDistrict && includePostal {
			if postal, has := result.Components[models.ComponentPostal]; has {
				value = value + "-" + postal
				includePostal = false
			}
		}
		parts = append(parts, value)
	}
	if includePostal {
		if postal, has := result.Components[models.ComponentPostal]; has {
			parts = append(parts, postal)
		}
	}
	return strings.Join(parts, sep)
}

// Suggest ranked completions of a partial area or district name.
func (e *Extractor) Suggest(query string, limit int) []models.Suggestion {
	return e.kb.Suggest(query, limit)
}

// Enrich extracts and augments with geographic context: the full
// administrative path and, when no postal code was extracted, the most
// likely one for the resolved area.
func (e *Extractor) Enrich(ctx context.Context, address string, opts Options) (*models.EnrichedResult, error) {
	result, err := e.Extract(ctx, address, opts)
	if err != nil {
		return nil, err
	}

	enriched := &models.EnrichedResult{ExtractionResult: result}
	district := result.Components[models.ComponentDistrict]
	area := result.Components[models.ComponentArea]
	if district != "" || area != "" {
		enriched.Hierarchy = e.kb.FullHierarchy(district, area)
	}
	if _, has := result.Components[models.ComponentPostal]; !has {
		if pred, ok := e.kb.PredictPostalCode(result.Components); ok {
			enriched.SuggestedPostalCode = pred.PostalCode
			enriched.PostalConfidence = pred.Confidence
		} else if area != "" {
			if lookup, found := e.kb.LookupGazetteer(area); found && lookup.PostalCode != "" {
				enriched.SuggestedPostalCode = lookup.PostalCode
				enriched.PostalConfidence = lookup.Confidence
			}
		}
	}
	return enriched, nil
}

// Statistics aggregates extraction output over a corpus. Per-item failures
// are skipped, not fatal; the total counts every input.
func (e *Extractor) Statistics(ctx context.Context, addresses []string, opts Options) (*models.AddressStatistics, error) {
	stats := &models.AddressStatistics{
		Total:                  len(addresses),
		DistributionByDistrict: map[string]int{},
		DistributionByDivision: map[string]int{},
		CommonAreas:            []models.AreaCount{},
		MissingComponents:      map[models.AddressComponent]int{},
	}
	areaCounts := map[string]int{}

	var extracted int
	var completenessSum, confidenceSum float64
	for _, address := range addresses {
		result, err := e.Extract(ctx, address, opts)
		if err != nil {
			continue
		}
		extracted++
		completenessSum += result.Completeness()
		confidenceSum += result.OverallConfidence

		if d, ok := result.Components[models.ComponentDistrict]; ok {
			stats.DistributionByDistrict[d]++
		}
		if d, ok := result.Components[models.ComponentDivision]; ok {
			stats.DistributionByDivision[d]++
		}
		if a, ok := result.Components[models.ComponentArea]; ok {
			areaCounts[a]++
		}
		for _, component := range models.AllComponents {
			if _, ok := result.Components[component]; !ok {
				stats.MissingComponents[component]++
			}
		}
	}

	if extracted > 0 {
		stats.Completeness = completenessSum / float64(extracted)
		stats.AverageConfidence = confidenceSum / float64(extracted)
	}
	for area, count := range areaCounts {
		stats.CommonAreas = append(stats.CommonAreas, models.AreaCount{Area: area, Count: count})
	}
	sort.Slice(stats.CommonAreas, func(i, j int) bool {
		if stats.CommonAreas[i].Count != stats.CommonAreas[j].Count {
			return stats.CommonAreas[i].Count > stats.CommonAreas[j].Count
		}
		return stats.CommonAreas[i].Area < stats.CommonAreas[j].Area
	})
	return stats, nil
}
