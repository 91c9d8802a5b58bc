package extractor

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
	"github.com/bd-address-extractor/internal/geo"
)

// stubNER scriptable model backend for pipeline tests.
type stubNER struct {
	candidates []models.Candidate
	err        error
	delay      time.Duration
	available  bool
}

func (s *stubNER) IsAvailable() bool { return s.available }

func (s *stubNER) Extract(ctx context.Context, text string) ([]models.Candidate, error) {
	if s.delay > 0 {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(s.delay):
		}
	}
	if s.err != nil {
		return nil, s.err
	}
	return s.candidates, nil
}

func newTestExtractor(t *testing.T, ner NERBackend) *Extractor {
	t.Helper()
	kb := geo.NewKnowledgeBase(zap.NewNop())
	e, err := New(Config{CacheSize: 128}, ner, kb, zap.NewNop())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	return e
}

func TestExtract_CanonicalAddress(t *testing.T) {
	e := newTestExtractor(t, nil)

	result, err := e.Extract(context.Background(), "House 12, Road 5, Mirpur, Dhaka-1216", Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}

	want := map[models.AddressComponent]string{
		models.ComponentHouse:    "12",
		models.ComponentRoad:     "5",
		models.ComponentArea:     "Mirpur",
		models.ComponentDistrict: "Dhaka",
		models.ComponentDivision: "Dhaka",
		models.ComponentPostal:   "1216",
	}
	for component, value := range want {
		if got := result.Components[component]; got != value {
			t.Errorf("%s = %q, want %q", component, got, value)
		}
	}
	if result.OverallConfidence <= 0.9 {
		t.Errorf("overall confidence = %.3f, want > 0.9 for a fully specified address", result.OverallConfidence)
	}
	for component, conf := range result.PerComponentConfidence {
		if conf <= 0 || conf > 0.99 {
			t.Errorf("%s confidence %.3f out of range", component, conf)
		}
	}
	if result.NormalizedAddress == "" {
		t.Error("normalized address empty")
	}
	if result.OriginalAddress != "House 12, Road 5, Mirpur, Dhaka-1216" {
		t.Errorf("original address not preserved: %q", result.OriginalAddress)
	}
	if result.Metadata != nil {
		t.Error("metadata present without being requested")
	}
	if result.Cached {
		t.Error("first extraction flagged as cached")
	}
}

func TestExtract_Metadata(t *testing.T) {
	e := newTestExtractor(t, nil)

	result, err := e.Extract(context.Background(), "Mirpur, Dhaka", Options{IncludeMetadata: true})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Metadata == nil {
		t.Fatal("metadata requested but absent")
	}
	if result.Metadata.Script != "latin" {
		t.Errorf("script = %q, want latin", result.Metadata.Script)
	}
	detail, ok := result.Metadata.ComponentDetails[models.ComponentArea]
	if !ok {
		t.Fatal("no component detail for area")
	}
	if detail.Value != "Mirpur" || detail.Source == "" {
		t.Errorf("area detail = %+v", detail)
	}
}

func TestExtract_EmptyInput(t *testing.T) {
	e := newTestExtractor(t, nil)

	for _, input := range []string{"", "   ", "\t\n"} {
		result, err := e.Extract(context.Background(), input, Options{})
		if err != nil {
			t.Fatalf("Extract(%q): %v", input, err)
		}
		if len(result.Components) != 0 || result.OverallConfidence != 0 {
			t.Errorf("Extract(%q) = %+v, want empty zero-confidence result", input, result)
		}
		if result.OriginalAddress != input {
			t.Errorf("original address = %q, want %q", result.OriginalAddress, input)
		}
	}
}

func TestExtract_InputVariants(t *testing.T) {
	e := newTestExtractor(t, nil)

	testCases := []struct {
		name  string
		input string
		want  map[models.AddressComponent]string
	}{
		{
			name:  "abbreviated shorthand",
			input: "H-12, R-5, Mirpur, Dhaka",
			want: map[models.AddressComponent]string{
				models.ComponentHouse:    "12",
				models.ComponentRoad:     "5",
				models.ComponentArea:     "Mirpur",
				models.ComponentDistrict: "Dhaka",
			},
		},
		{
			name:  "bangla script",
			input: "বাসা ১২, রোড ৫, মিরপুর, ঢাকা",
			want: map[models.AddressComponent]string{
				models.ComponentHouse:    "12",
				models.ComponentRoad:     "5",
				models.ComponentArea:     "Mirpur",
				models.ComponentDistrict: "Dhaka",
			},
		},
		{
			name:  "flat and floor",
			input: "Flat 4B, 3rd Floor, House 7, Banani, Dhaka",
			want: map[models.AddressComponent]string{
				models.ComponentFlat:     "4B",
				models.ComponentFloor:    "3",
				models.ComponentHouse:    "7",
				models.ComponentArea:     "Banani",
				models.ComponentDistrict: "Dhaka",
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result, err := e.Extract(context.Background(), tc.input, Options{})
			if err != nil {
				t.Fatalf("Extract: %v", err)
			}
			for component, value := range tc.want {
				if got := result.Components[component]; got != value {
					t.Errorf("%s = %q, want %q", component, got, value)
				}
			}
		})
	}
}

func TestExtract_Deterministic(t *testing.T) {
	e := newTestExtractor(t, nil)
	input := "Holding 3/B, Road 7, Dhanmondi, Dhaka-1209"

	first, err := e.Extract(context.Background(), input, Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	for i := 0; i < 20; i++ {
		got, err := e.Extract(context.Background(), input, Options{})
		if err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
		if !reflect.DeepEqual(got.Components, first.Components) {
			t.Fatalf("run %d components differ: %v vs %v", i, got.Components, first.Components)
		}
		if got.OverallConfidence != first.OverallConfidence {
			t.Fatalf("run %d overall differs: %v vs %v", i, got.OverallConfidence, first.OverallConfidence)
		}
	}
}

func TestExtract_CacheEquivalence(t *testing.T) {
	e := newTestExtractor(t, nil)
	input := "House 12, Road 5, Mirpur, Dhaka-1216"

	first, err := e.Extract(context.Background(), input, Options{})
	if err != nil {
		t.Fatalf("first: %v", err)
	}
	second, err := e.Extract(context.Background(), input, Options{})
	if err != nil {
		t.Fatalf("second: %v", err)
	}

	if first.Cached || !second.Cached {
		t.Errorf("cached flags = %v/%v, want false/true", first.Cached, second.Cached)
	}
	if !reflect.DeepEqual(first.Components, second.Components) {
		t.Errorf("cache changed components: %v vs %v", first.Components, second.Components)
	}
	if !reflect.DeepEqual(first.PerComponentConfidence, second.PerComponentConfidence) {
		t.Error("cache changed per-component confidences")
	}
	if first.OverallConfidence != second.OverallConfidence {
		t.Error("cache changed overall confidence")
	}

	// metadata survives in the stored entry even when the first caller did
	// not ask for it
	third, err := e.Extract(context.Background(), input, Options{IncludeMetadata: true})
	if err != nil {
		t.Fatalf("third: %v", err)
	}
	if !third.Cached || third.Metadata == nil {
		t.Errorf("cached hit with metadata: cached=%v metadata=%v", third.Cached, third.Metadata)
	}
}

func TestExtract_CacheHitsAreIsolated(t *testing.T) {
	e := newTestExtractor(t, nil)
	input := "Mirpur, Dhaka"

	first, _ := e.Extract(context.Background(), input, Options{})
	first.Components[models.ComponentArea] = "tampered"

	second, _ := e.Extract(context.Background(), input, Options{})
	if second.Components[models.ComponentArea] == "tampered" {
		t.Error("mutating a returned result leaked into the cache")
	}
}

func TestExtract_ThresholdFiltering(t *testing.T) {
	e := newTestExtractor(t, nil)
	input := "House 12, Road 5, Mirpur, Dhaka-1216"

	strict := Thresholds{}
	for _, c := range models.AllComponents {
		strict[c] = 1.0
	}
	result, err := e.Extract(context.Background(), input, Options{Thresholds: strict, IncludeMetadata: true})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(result.Components) != 0 {
		t.Errorf("all-1.0 thresholds still displayed %v", result.Components)
	}
	if len(result.PerComponentConfidence) == 0 {
		t.Error("internal confidences lost to display filtering")
	}
	if len(result.Metadata.ComponentDetails) == 0 {
		t.Error("metadata details lost to display filtering")
	}
}

func TestExtract_ThresholdMonotonicity(t *testing.T) {
	e := newTestExtractor(t, nil)
	input := "House 12, Road 5, Mirpur, Dhaka-1216"

	open := Thresholds{}
	for _, c := range models.AllComponents {
		open[c] = 0.0
	}
	loose, err := e.Extract(context.Background(), input, Options{Thresholds: open})
	if err != nil {
		t.Fatalf("loose: %v", err)
	}
	tight, err := e.Extract(context.Background(), input, Options{})
	if err != nil {
		t.Fatalf("default: %v", err)
	}

	for component, value := range tight.Components {
		if loose.Components[component] != value {
			t.Errorf("%s shown at default thresholds but not at zero thresholds", component)
		}
	}
	if len(loose.Components) < len(tight.Components) {
		t.Errorf("lowering thresholds shrank the result: %d < %d", len(loose.Components), len(tight.Components))
	}
}

func TestExtract_InvalidThresholds(t *testing.T) {
	e := newTestExtractor(t, nil)

	_, err := e.Extract(context.Background(), "Mirpur, Dhaka", Options{
		Thresholds: Thresholds{models.ComponentHouse: 1.5},
	})
	var cfgErr *ConfigurationError
	if !errors.As(err, &cfgErr) {
		t.Fatalf("err = %v, want ConfigurationError", err)
	}
}

func TestSetThresholds(t *testing.T) {
	e := newTestExtractor(t, nil)

	if err := e.SetThresholds(Thresholds{models.ComponentHouse: -0.1}); err == nil {
		t.Fatal("negative threshold accepted")
	}
	if err := e.SetThresholds(Thresholds{models.ComponentHouse: 0.9}); err != nil {
		t.Fatalf("SetThresholds: %v", err)
	}
	if got := e.Thresholds().For(models.ComponentHouse); got != 0.9 {
		t.Errorf("house threshold = %.2f, want 0.9", got)
	}
}

func TestExtract_Timeout(t *testing.T) {
	e := newTestExtractor(t, &stubNER{available: true, delay: 500 * time.Millisecond})

	_, err := e.Extract(context.Background(), "Mirpur, Dhaka", Options{Timeout: 20 * time.Millisecond})
	if !errors.Is(err, ErrTimeout) {
		t.Fatalf("err = %v, want ErrTimeout", err)
	}
	if e.CacheLen() != 0 {
		t.Error("timed-out extraction left a cache entry")
	}
}

func TestExtract_ParentCancellation(t *testing.T) {
	e := newTestExtractor(t, &stubNER{available: true, delay: 500 * time.Millisecond})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := e.Extract(ctx, "Mirpur, Dhaka", Options{Timeout: time.Second})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v, want context.Canceled", err)
	}
}

func TestExtract_NERFailureDegrades(t *testing.T) {
	e := newTestExtractor(t, &stubNER{available: true, err: errors.New("model crashed")})

	result, err := e.Extract(context.Background(), "House 12, Road 5, Mirpur, Dhaka-1216", Options{})
	if err != nil {
		t.Fatalf("a failing model backend must not fail the extraction: %v", err)
	}
	if result.Components[models.ComponentArea] != "Mirpur" {
		t.Errorf("area = %q, rule-based sources should still extract", result.Components[models.ComponentArea])
	}
}

func TestExtract_NERCandidatesMerge(t *testing.T) {
	ner := &stubNER{available: true, candidates: []models.Candidate{
		{Component: models.ComponentDistrict, Value: "Dhaka", Confidence: 0.95, Source: models.SourceNER},
	}}
	e := newTestExtractor(t, ner)

	result, err := e.Extract(context.Background(), "House 9, some unknown lane", Options{})
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if result.Components[models.ComponentDistrict] != "Dhaka" {
		t.Errorf("district = %q, want the model's Dhaka", result.Components[models.ComponentDistrict])
	}
	if result.Components[models.ComponentDivision] != "Dhaka" {
		t.Errorf("division = %q, want inference from the model's district", result.Components[models.ComponentDivision])
	}
}

func TestExtract_NoNERBackend(t *testing.T) {
	e := newTestExtractor(t, nil)
	if e.NERAvailable() {
		t.Error("nil backend reported available")
	}
	if _, err := e.Extract(context.Background(), "Mirpur, Dhaka", Options{}); err != nil {
		t.Fatalf("extraction without a model backend: %v", err)
	}
}

func TestBatchExtract(t *testing.T) {
	e := newTestExtractor(t, nil)
	addresses := []string{
		"House 12, Road 5, Mirpur, Dhaka-1216",
		"",
		"Banani, Dhaka",
	}

	var progress [][2]int
	results := e.BatchExtract(context.Background(), addresses, Options{}, &BatchCallbacks{
		OnProgress: func(done, total int) { progress = append(progress, [2]int{done, total}) },
	})

	if len(results) != len(addresses) {
		t.Fatalf("got %d results for %d addresses", len(results), len(addresses))
	}
	for i, r := range results {
		if r == nil {
			t.Fatalf("result %d is nil", i)
		}
		if r.OriginalAddress != addresses[i] {
			t.Errorf("result %d original = %q, want %q", i, r.OriginalAddress, addresses[i])
		}
	}
	if len(results[1].Components) != 0 {
		t.Errorf("empty address produced components %v", results[1].Components)
	}
	if len(progress) != 3 || progress[2] != [2]int{3, 3} {
		t.Errorf("progress calls = %v", progress)
	}
}

func TestBatchExtract_ErrorIsolation(t *testing.T) {
	e := newTestExtractor(t, &stubNER{available: true, delay: 500 * time.Millisecond})
	addresses := []string{"Mirpur, Dhaka", "Banani, Dhaka"}

	var failed []int
	results := e.BatchExtract(context.Background(), addresses, Options{Timeout: 20 * time.Millisecond}, &BatchCallbacks{
		OnError: func(index int, err error) { failed = append(failed, index) },
	})

	if len(results) != 2 {
		t.Fatalf("got %d results, want 2", len(results))
	}
	if len(failed) != 2 {
		t.Fatalf("OnError fired %d times, want 2", len(failed))
	}
	for i, r := range results {
		if r == nil || len(r.Components) != 0 {
			t.Errorf("failed slot %d not an empty result: %+v", i, r)
		}
	}
}

func TestValidate(t *testing.T) {
	e := newTestExtractor(t, nil)

	t.Run("valid address", func(t *testing.T) {
		vr, err := e.Validate(context.Background(), "Mirpur, Dhaka", nil, Options{})
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if !vr.IsValid {
			t.Errorf("IsValid = false, missing %v invalid %v", vr.Missing, vr.Invalid)
		}
		if vr.Score < 0.7 {
			t.Errorf("score = %.3f, full required coverage alone is worth 0.7", vr.Score)
		}
	})

	t.Run("missing components", func(t *testing.T) {
		vr, err := e.Validate(context.Background(), "House 12", nil, Options{})
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if vr.IsValid {
			t.Error("house number alone validated")
		}
		if len(vr.Missing) != 2 {
			t.Errorf("missing = %v, want district and area", vr.Missing)
		}
	})

	t.Run("resolved but below threshold", func(t *testing.T) {
		// the inferred head-office postal code resolves below the postal
		// threshold: invalid, not missing
		vr, err := e.Validate(context.Background(), "Sylhet",
			[]models.AddressComponent{models.ComponentPostal}, Options{})
		if err != nil {
			t.Fatalf("Validate: %v", err)
		}
		if vr.IsValid {
			t.Error("below-threshold postal validated")
		}
		if len(vr.Invalid) != 1 || vr.Invalid[0] != models.ComponentPostal {
			t.Errorf("invalid = %v, want [postal]", vr.Invalid)
		}
		if len(vr.Missing) != 0 {
			t.Errorf("missing = %v, want none", vr.Missing)
		}
	})
}

func TestCompare(t *testing.T) {
	e := newTestExtractor(t, nil)

	t.Run("same place different notation", func(t *testing.T) {
		cr, err := e.Compare(context.Background(),
			"House 12, Road 5, Mirpur, Dhaka-1216",
			"H-12, R-5, Mirpur, Dhaka", Options{})
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if !cr.Match {
			t.Errorf("Match = false, similarity %.3f", cr.Similarity)
		}
		if cr.Similarity < 0.85 {
			t.Errorf("similarity = %.3f, want >= 0.85", cr.Similarity)
		}
		var hasArea bool
		for _, c := range cr.Common {
			if c == models.ComponentArea {
				hasArea = true
			}
		}
		if !hasArea {
			t.Errorf("common = %v, want area included", cr.Common)
		}
	})

	t.Run("different places", func(t *testing.T) {
		cr, err := e.Compare(context.Background(),
			"House 12, Road 5, Mirpur, Dhaka-1216",
			"Agrabad, Chattogram", Options{})
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if cr.Match {
			t.Errorf("different districts matched, similarity %.3f", cr.Similarity)
		}
	})

	t.Run("one-sided component gives partial credit", func(t *testing.T) {
		cr, err := e.Compare(context.Background(),
			"Mirpur, Dhaka", "House 7, Mirpur, Dhaka", Options{})
		if err != nil {
			t.Fatalf("Compare: %v", err)
		}
		if got := cr.ComponentSimilarities[models.ComponentHouse]; got != partialPresenceSimilarity {
			t.Errorf("one-sided house similarity = %.2f, want %.2f", got, partialPresenceSimilarity)
		}
		var houseDiffers bool
		for _, c := range cr.Differences {
			if c == models.ComponentHouse {
				houseDiffers = true
			}
		}
		if !houseDiffers {
			t.Errorf("differences = %v, want house included", cr.Differences)
		}
	})
}

func TestEnrich(t *testing.T) {
	e := newTestExtractor(t, nil)
	// keep the gazetteer's own postal candidate out of the display so the
	// suggestion paths run
	strictPostal := Options{Thresholds: Thresholds{models.ComponentPostal: 0.95}}

	t.Run("hierarchy postal suggestion", func(t *testing.T) {
		enriched, err := e.Enrich(context.Background(), "House 5, Savar, Dhaka", strictPostal)
		if err != nil {
			t.Fatalf("Enrich: %v", err)
		}
		if enriched.SuggestedPostalCode != "1340" {
			t.Errorf("suggested postal = %q, want the Savar upazila 1340", enriched.SuggestedPostalCode)
		}
		if enriched.PostalConfidence != 0.95 {
			t.Errorf("postal confidence = %.2f, want 0.95", enriched.PostalConfidence)
		}
		var hasSavar bool
		for _, name := range enriched.Hierarchy {
			if name == "Savar" {
				hasSavar = true
			}
		}
		if !hasSavar {
			t.Errorf("hierarchy = %v, want Savar on the path", enriched.Hierarchy)
		}
	})

	t.Run("gazetteer postal fallback", func(t *testing.T) {
		opts := Options{Thresholds: Thresholds{
			models.ComponentPostal:   0.95,
			models.ComponentDistrict: 1.0,
		}}
		enriched, err := e.Enrich(context.Background(), "Banani", opts)
		if err != nil {
			t.Fatalf("Enrich: %v", err)
		}
		if enriched.SuggestedPostalCode != "1213" {
			t.Errorf("suggested postal = %q, want Banani's 1213", enriched.SuggestedPostalCode)
		}
	})

	t.Run("extracted postal left alone", func(t *testing.T) {
		enriched, err := e.Enrich(context.Background(), "Mirpur, Dhaka-1216", Options{})
		if err != nil {
			t.Fatalf("Enrich: %v", err)
		}
		if enriched.SuggestedPostalCode != "" {
			t.Errorf("suggestion %q offered although the postal code was extracted", enriched.SuggestedPostalCode)
		}
	})
}

func TestSuggest(t *testing.T) {
	e := newTestExtractor(t, nil)

	got := e.Suggest("mir", 3)
	if len(got) == 0 || len(got) > 3 {
		t.Fatalf("got %d suggestions", len(got))
	}
	if got[0].Area != "Mirpur" {
		t.Errorf("top suggestion = %q, want Mirpur", got[0].Area)
	}
}

func TestFormat(t *testing.T) {
	result := &models.ExtractionResult{Components: map[models.AddressComponent]string{
		models.ComponentFlat:     "4B",
		models.ComponentFloor:    "3",
		models.ComponentHouse:    "12",
		models.ComponentRoad:     "5",
		models.ComponentArea:     "Mirpur",
		models.ComponentDistrict: "Dhaka",
		models.ComponentPostal:   "1216",
	}}

	testCases := []struct {
		name string
		opts FormatOptions
		want string
	}{
		{
			name: "full",
			opts: FormatOptions{Style: FormatFull},
			want: "Flat 4B, Floor 3, House 12, Road 5, Mirpur, Dhaka",
		},
		{
			name: "full with postal",
			opts: FormatOptions{Style: FormatFull, IncludePostal: true},
			want: "Flat 4B, Floor 3, House 12, Road 5, Mirpur, Dhaka-1216",
		},
		{
			name: "short",
			opts: FormatOptions{Style: FormatShort},
			want: "House 12, Road 5, Mirpur, Dhaka",
		},
		{
			name: "postal style",
			opts: FormatOptions{Style: FormatPostal},
			want: "Mirpur, Dhaka-1216",
		},
		{
			name: "minimal drops labels",
			opts: FormatOptions{Style: FormatMinimal},
			want: "Mirpur, Dhaka",
		},
		{
			name: "custom separator",
			opts: FormatOptions{Style: FormatShort, Separator: " | "},
			want: "House 12 | Road 5 | Mirpur | Dhaka",
		},
		{
			name: "unknown style falls back to full",
			opts: FormatOptions{Style: "fancy"},
			want: "Flat 4B, Floor 3, House 12, Road 5, Mirpur, Dhaka",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Format(result, tc.opts); got != tc.want {
				t.Errorf("Format = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormat_PostalWithoutDistrict(t *testing.T) {
	result := &models.ExtractionResult{Components: map[models.AddressComponent]string{
		models.ComponentArea:   "Mirpur",
		models.ComponentPostal: "1216",
	}}
	got := Format(result, FormatOptions{Style: FormatShort, IncludePostal: true})
	if got != "Mirpur, 1216" {
		t.Errorf("Format = %q, want the postal appended", got)
	}
}

func TestStatistics(t *testing.T) {
	e := newTestExtractor(t, nil)
	addresses := []string{
		"House 12, Road 5, Mirpur, Dhaka-1216",
		"Mirpur, Dhaka",
		"House 3, Mirpur, Dhaka",
		"Banani, Dhaka",
		"",
	}

	stats, err := e.Statistics(context.Background(), addresses, Options{})
	if err != nil {
		t.Fatalf("Statistics: %v", err)
	}

	if stats.Total != 5 {
		t.Errorf("total = %d, want 5", stats.Total)
	}
	if stats.DistributionByDistrict["Dhaka"] != 4 {
		t.Errorf("Dhaka count = %d, want 4", stats.DistributionByDistrict["Dhaka"])
	}
	if len(stats.CommonAreas) == 0 || stats.CommonAreas[0].Area != "Mirpur" || stats.CommonAreas[0].Count != 3 {
		t.Errorf("common areas = %v, want Mirpur x3 first", stats.CommonAreas)
	}
	if stats.MissingComponents[models.ComponentFlat] != 5 {
		t.Errorf("flat missing count = %d, want 5", stats.MissingComponents[models.ComponentFlat])
	}
	if stats.Completeness <= 0 || stats.Completeness > 1 {
		t.Errorf("completeness = %.3f out of range", stats.Completeness)
	}
	if stats.AverageConfidence <= 0 || stats.AverageConfidence > 1 {
		t.Errorf("average confidence = %.3f out of range", stats.AverageConfidence)
	}
}

func TestThresholds_Fingerprint(t *testing.T) {
	a := DefaultThresholds()
	b := DefaultThresholds()
	if a.Fingerprint() != b.Fingerprint() {
		t.Error("equal thresholds fingerprint differently")
	}
	b[models.ComponentHouse] = 0.71
	if a.Fingerprint() == b.Fingerprint() {
		t.Error("changed threshold kept the same fingerprint")
	}
}
