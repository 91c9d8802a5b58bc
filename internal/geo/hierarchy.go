package geo

import (
	"fmt"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
)

// Postal inference confidence by the hierarchy level that produced the
// code. Deeper levels are more specific, the district head office is a
// coarse fallback.
const (
	upazilaPostalConfidence  = 0.95
	unionPostalConfidence    = 0.90
	villagePostalConfidence  = 0.85
	districtPostalConfidence = 0.60
)

// Hierarchy the offline Division > District > Upazila > Union > Village
// tree. Built once from static data; read-only afterwards.
type Hierarchy struct {
	divisions []*models.GeoNode
	byName    map[string][]*models.GeoNode // lowercase name -> nodes
	byPostal  map[string][]*models.GeoNode
	districts []string
}

// NewHierarchy builds the tree and its name/postal indexes from the
// embedded administrative data.
func NewHierarchy(logger *zap.Logger) *Hierarchy {
	h := &Hierarchy{
		byName:   map[string][]*models.GeoNode{},
		byPostal: map[string][]*models.GeoNode{},
	}

	divNames := make([]string, 0, len(divisionSeeds))
	for name := range divisionSeeds {
		divNames = append(divNames, name)
	}
	sort.Strings(divNames)

	var nodes, leaves int
	for _, divName := range divNames {
		div := &models.GeoNode{Level: models.LevelDivision, Name: divName}
		h.register(div)
		nodes++
		for _, d := range divisionSeeds[divName] {
			dist := &models.GeoNode{Level: models.LevelDistrict, Name: d.name, PostalCode: d.postal, Parent: div}
			div.Children = append(div.Children, dist)
			h.register(dist)
			h.districts = append(h.districts, d.name)
			nodes++
			for _, u := range d.upazilas {
				up := &models.GeoNode{Level: models.LevelUpazila, Name: u.name, PostalCode: u.postal, Parent: dist}
				dist.Children = append(dist.Children, up)
				h.register(up)
				nodes++
				for _, un := range u.unions {
					union := &models.GeoNode{Level: models.LevelUnion, Name: un.name, PostalCode: un.postal, Parent: up}
					up.Children = append(up.Children, union)
					h.register(union)
					nodes++
					for _, v := range un.villages {
						vil := &models.GeoNode{Level: models.LevelVillage, Name: v.name, PostalCode: v.postal, Parent: union}
						union.Children = append(union.Children, vil)
						h.register(vil)
						nodes++
						leaves++
					}
				}
			}
		}
		h.divisions = append(h.divisions, div)
	}
	sort.Strings(h.districts)
	logger.Info("administrative hierarchy ready",
		zap.Int("divisions", len(h.divisions)), zap.Int("nodes", nodes))
	return h
}

func (h *Hierarchy) register(n *models.GeoNode) {
	key := strings.ToLower(n.Name)
	h.byName[key] = append(h.byName[key], n)
	if n.PostalCode != "" {
		h.byPostal[n.PostalCode] = append(h.byPostal[n.PostalCode], n)
	}
}

// Districts all district names, sorted.
func (h *Hierarchy) Districts() []string {
	return append([]string(nil), h.districts...)
}

// Find nodes by name at any level.
func (h *Hierarchy) Find(name string) []*models.GeoNode {
	return h.byName[strings.ToLower(strings.TrimSpace(name))]
}

// FindAtLevel first node with the name at the given level.
func (h *Hierarchy) FindAtLevel(name string, level models.GeoLevel) (*models.GeoNode, bool) {
	for _, n := range h.Find(name) {
		if n.Level == level {
			return n, true
		}
	}
	return nil, false
}

// DivisionForDistrict resolves a district name to its division.
func (h *Hierarchy) DivisionForDistrict(district string) (string, bool) {
	n, ok := h.FindAtLevel(district, models.LevelDistrict)
	if !ok || n.Parent == nil {
		return "", false
	}
	return n.Parent.Name, true
}

// DistrictForPostal maps a postal code back to its district via the
// hierarchy's postal index.
func (h *Hierarchy) DistrictForPostal(code string) (string, bool) {
	for _, n := range h.byPostal[code] {
		for cur := n; cur != nil; cur = cur.Parent {
			if cur.Level == models.LevelDistrict {
				return cur.Name, true
			}
		}
	}
	return "", false
}

// PredictPostalCode walks the tree top-down through the known components.
// Levels are tried most-specific-first: an upazila hit wins over a union
// hit, and the district head post office is the last resort. The place
// name tried at each level is the extracted area (localities are written
// interchangeably as upazila/union/village in free text). Returns false
// when no level yields a code.
func (h *Hierarchy) PredictPostalCode(known map[models.AddressComponent]string) (*models.PostalPrediction, bool) {
	area := known[models.ComponentArea]
	district := known[models.ComponentDistrict]

	type attempt struct {
		level models.GeoLevel
		conf  float64
	}
	attempts := []attempt{
		{models.LevelUpazila, upazilaPostalConfidence},
		{models.LevelUnion, unionPostalConfidence},
		{models.LevelVillage, villagePostalConfidence},
	}
	if area != "" {
		for _, a := range attempts {
			n, ok := h.FindAtLevel(area, a.level)
			if !ok || n.PostalCode == "" {
				continue
			}
			if district != "" && !underDistrict(n, district) {
				continue
			}
			return &models.PostalPrediction{
				PostalCode: n.PostalCode,
				Confidence: a.conf,
				Level:      string(a.level),
			}, true
		}
	}
	if district != "" {
		if n, ok := h.FindAtLevel(district, models.LevelDistrict); ok && n.PostalCode != "" {
			return &models.PostalPrediction{
				PostalCode: n.PostalCode,
				Confidence: districtPostalConfidence,
				Level:      string(models.LevelDistrict),
			}, true
		}
	}
	return nil, false
}

func underDistrict(n *models.GeoNode, district string) bool {
	want := strings.ToLower(district)
	for cur := n; cur != nil; cur = cur.Parent {
		if cur.Level == models.LevelDistrict {
			return strings.ToLower(cur.Name) == want
		}
	}
	return false
}

// FullHierarchy path of names for a district, deepest match first when an
// area narrows it further.
func (h *Hierarchy) FullHierarchy(district, area string) []string {
	if area != "" {
		for _, level := range []models.GeoLevel{models.LevelVillage, models.LevelUnion, models.LevelUpazila} {
			if n, ok := h.FindAtLevel(area, level); ok {
				if district == "" || underDistrict(n, district) {
					return n.Path()
				}
			}
		}
	}
	if n, ok := h.FindAtLevel(district, models.LevelDistrict); ok {
		return n.Path()
	}
	return nil
}

// ValidateConsistency cross-checks resolved components against the tree:
// the postal code's implied district must match the extracted district,
// and the district's division must match the extracted division. Returns
// human-readable conflict strings; it never removes data.
func (h *Hierarchy) ValidateConsistency(components map[models.AddressComponent]string, gaz *Gazetteer) []string {
	var conflicts []string

	district := components[models.ComponentDistrict]
	division := components[models.ComponentDivision]
	postal := components[models.ComponentPostal]

	if postal != "" && district != "" {
		implied, ok := h.DistrictForPostal(postal)
		if !ok && gaz != nil {
			if entries := gaz.EntriesForPostal(postal); len(entries) > 0 {
				implied, ok = entries[0].District, true
			}
		}
		if ok && !strings.EqualFold(implied, district) {
			conflicts = append(conflicts, fmt.Sprintf(
				"postal code %s belongs to %s district, extracted district is %s",
				postal, implied, district))
		}
	}

	if district != "" && division != "" {
		if implied, ok := h.DivisionForDistrict(district); ok && !strings.EqualFold(implied, division) {
			conflicts = append(conflicts, fmt.Sprintf(
				"district %s lies in %s division, extracted division is %s",
				district, implied, division))
		}
	}
	return conflicts
}
