package extractor

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bd-address-extractor/app/models"
)

// Thresholds per-component minimum confidence for a value to appear in the
// result's components map. Filtering is display-level only: internal
// confidences are computed and recorded regardless.
type Thresholds map[models.AddressComponent]float64

// DefaultThresholds per-component defaults. Postal codes demand more
// confidence than free-text components; division sits low enough that a
// hierarchy-inferred value still surfaces.
func DefaultThresholds() Thresholds {
	return Thresholds{
		models.ComponentHouse:    0.70,
		models.ComponentRoad:     0.70,
		models.ComponentArea:     0.65,
		models.ComponentDistrict: 0.75,
		models.ComponentDivision: 0.70,
		models.ComponentPostal:   0.80,
		models.ComponentFlat:     0.70,
		models.ComponentFloor:    0.70,
		models.ComponentBlock:    0.70,
	}
}

// Validate rejects any value outside [0,1].
func (t Thresholds) Validate() error {
	for component, v := range t {
		if v < 0 || v > 1 {
			return &ConfigurationError{
				Field:  string(component),
				Reason: fmt.Sprintf("threshold %v outside [0,1]", v),
			}
		}
	}
	return nil
}

// Clone a copy safe to mutate.
func (t Thresholds) Clone() Thresholds {
	out := make(Thresholds, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

// Merge overlays non-nil overrides onto a copy of t.
func (t Thresholds) Merge(overrides Thresholds) Thresholds {
	out := t.Clone()
	for k, v := range overrides {
		out[k] = v
	}
	return out
}

// For threshold of one component, default 0.70 when unset.
func (t Thresholds) For(c models.AddressComponent) float64 {
	if v, ok := t[c]; ok {
		return v
	}
	return 0.70
}

// Fingerprint deterministic serialization used inside cache keys, so a
// threshold change can never serve a stale entry.
func (t Thresholds) Fingerprint() string {
	keys := make([]string, 0, len(t))
	for k := range t {
		keys = append(keys, string(k))
	}
	sort.Strings(keys)
	var b strings.Builder
	for _, k := range keys {
		fmt.Fprintf(&b, "%s=%.4f;", k, t[models.AddressComponent(k)])
	}
	return b.String()
}
