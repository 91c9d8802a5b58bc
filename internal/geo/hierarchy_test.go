package geo

import (
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
)

func testHierarchy() *Hierarchy {
	return NewHierarchy(zap.NewNop())
}

func TestPredictPostalCode_LevelPriority(t *testing.T) {
	h := testHierarchy()

	testCases := []struct {
		name   string
		known  map[models.AddressComponent]string
		postal string
		conf   float64
		level  string
	}{
		{
			name:   "upazila hit",
			known:  map[models.AddressComponent]string{models.ComponentArea: "Savar", models.ComponentDistrict: "Dhaka"},
			postal: "1340", conf: upazilaPostalConfidence, level: "upazila",
		},
		{
			name:   "union hit",
			known:  map[models.AddressComponent]string{models.ComponentArea: "Ashulia"},
			postal: "1341", conf: unionPostalConfidence, level: "union",
		},
		{
			name:   "village hit",
			known:  map[models.AddressComponent]string{models.ComponentArea: "Baipail"},
			postal: "1341", conf: villagePostalConfidence, level: "village",
		},
		{
			name:   "district head office fallback",
			known:  map[models.AddressComponent]string{models.ComponentDistrict: "Dhaka"},
			postal: "1000", conf: districtPostalConfidence, level: "district",
		},
		{
			name: "area outside the claimed district falls back",
			known: map[models.AddressComponent]string{
				models.ComponentArea:     "Savar",
				models.ComponentDistrict: "Chattogram",
			},
			postal: "4000", conf: districtPostalConfidence, level: "district",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.PredictPostalCode(tc.known)
			if !ok {
				t.Fatalf("no prediction for %v", tc.known)
			}
			if got.PostalCode != tc.postal {
				t.Errorf("postal = %s, want %s", got.PostalCode, tc.postal)
			}
			if got.Confidence != tc.conf {
				t.Errorf("confidence = %.2f, want %.2f", got.Confidence, tc.conf)
			}
			if got.Level != tc.level {
				t.Errorf("level = %s, want %s", got.Level, tc.level)
			}
		})
	}
}

func TestPredictPostalCode_NoSignal(t *testing.T) {
	h := testHierarchy()
	if got, ok := h.PredictPostalCode(map[models.AddressComponent]string{
		models.ComponentArea: "Atlantis",
	}); ok {
		t.Errorf("unknown area predicted %+v", got)
	}
	if got, ok := h.PredictPostalCode(nil); ok {
		t.Errorf("empty input predicted %+v", got)
	}
}

func TestDivisionForDistrict(t *testing.T) {
	h := testHierarchy()

	testCases := []struct {
		district string
		division string
	}{
		{"Dhaka", "Dhaka"},
		{"Gazipur", "Dhaka"},
		{"Chattogram", "Chattogram"},
		{"Sylhet", "Sylhet"},
	}
	for _, tc := range testCases {
		got, ok := h.DivisionForDistrict(tc.district)
		if !ok || got != tc.division {
			t.Errorf("DivisionForDistrict(%s) = %q (found=%v), want %s", tc.district, got, ok, tc.division)
		}
	}

	if _, ok := h.DivisionForDistrict("Gondor"); ok {
		t.Error("unknown district resolved a division")
	}
}

func TestDistrictForPostal(t *testing.T) {
	h := testHierarchy()

	if got, ok := h.DistrictForPostal("1340"); !ok || got != "Dhaka" {
		t.Errorf("DistrictForPostal(1340) = %q (found=%v), want Dhaka", got, ok)
	}
	if got, ok := h.DistrictForPostal("1700"); !ok || got != "Gazipur" {
		t.Errorf("DistrictForPostal(1700) = %q (found=%v), want Gazipur", got, ok)
	}
	if _, ok := h.DistrictForPostal("0000"); ok {
		t.Error("unknown postal resolved a district")
	}
}

func TestFullHierarchy(t *testing.T) {
	h := testHierarchy()

	path := h.FullHierarchy("Dhaka", "Savar")
	if len(path) < 3 {
		t.Fatalf("path = %v, want division > district > upazila", path)
	}
	if path[0] != "Dhaka" || path[len(path)-1] != "Savar" {
		t.Errorf("path = %v, want Dhaka division root and Savar leaf", path)
	}

	if path := h.FullHierarchy("Gazipur", ""); len(path) != 2 || path[1] != "Gazipur" {
		t.Errorf("district-only path = %v", path)
	}
	if path := h.FullHierarchy("", ""); path != nil {
		t.Errorf("empty query path = %v", path)
	}
}

func TestDistricts_SortedComplete(t *testing.T) {
	h := testHierarchy()
	districts := h.Districts()
	if len(districts) < 60 {
		t.Fatalf("only %d districts seeded", len(districts))
	}
	for i := 1; i < len(districts); i++ {
		if districts[i] < districts[i-1] {
			t.Errorf("districts unsorted at %d: %s after %s", i, districts[i], districts[i-1])
		}
	}
}

func TestValidateConsistency(t *testing.T) {
	kb := NewKnowledgeBase(zap.NewNop())

	t.Run("consistent address", func(t *testing.T) {
		conflicts := kb.ValidateConsistency(map[models.AddressComponent]string{
			models.ComponentDistrict: "Dhaka",
			models.ComponentDivision: "Dhaka",
			models.ComponentPostal:   "1216",
		})
		if len(conflicts) != 0 {
			t.Errorf("unexpected conflicts: %v", conflicts)
		}
	})

	t.Run("postal from another district", func(t *testing.T) {
		conflicts := kb.ValidateConsistency(map[models.AddressComponent]string{
			models.ComponentDistrict: "Dhaka",
			models.ComponentPostal:   "4000",
		})
		if len(conflicts) != 1 {
			t.Fatalf("conflicts = %v, want one", conflicts)
		}
		if !strings.Contains(conflicts[0], "4000") || !strings.Contains(conflicts[0], "Chattogram") {
			t.Errorf("conflict %q does not name postal and implied district", conflicts[0])
		}
	})

	t.Run("division mismatch", func(t *testing.T) {
		conflicts := kb.ValidateConsistency(map[models.AddressComponent]string{
			models.ComponentDistrict: "Gazipur",
			models.ComponentDivision: "Sylhet",
		})
		if len(conflicts) != 1 {
			t.Fatalf("conflicts = %v, want one", conflicts)
		}
		if !strings.Contains(conflicts[0], "Gazipur") || !strings.Contains(conflicts[0], "Dhaka") {
			t.Errorf("conflict %q does not name district and its division", conflicts[0])
		}
	})
}

func TestKnowledgeBase_GazetteerBridge(t *testing.T) {
	kb := NewKnowledgeBase(zap.NewNop())

	got, ok := kb.LookupGazetteer("Banani")
	if !ok || got.PostalCode != "1213" {
		t.Fatalf("Banani lookup = %+v (found=%v), want postal 1213", got, ok)
	}
	if kb.FullHierarchy("Dhaka", "")[0] != "Dhaka" {
		t.Error("knowledge base hierarchy bridge broken")
	}
	if len(kb.Areas()) == 0 || len(kb.Districts()) == 0 {
		t.Error("knowledge base exposes no corpus")
	}
}
