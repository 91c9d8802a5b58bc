package normalizer

import (
	"strings"
	"testing"

	"github.com/bd-address-extractor/internal/script"
)

// TestNormalize_CommonForms checks the canonical output for the address
// shapes the corpus sees most.
func TestNormalize_CommonForms(t *testing.T) {
	n := New()

	testCases := []struct {
		name     string
		input    string
		expected []string // canonical output should contain these
	}{
		{
			name:     "city dash postal",
			input:    "House 12, Road 5, Mirpur, Dhaka - 1216",
			expected: []string{"Dhaka-1216", "Mirpur", "Road 5"},
		},
		{
			name:     "abbreviations",
			input:    "H-12, Rd 5, Banani R/A",
			expected: []string{"Road 5", "Residential Area"},
		},
		{
			name:     "hash house number",
			input:    "House#12, Road#5",
			expected: []string{"House No 12", "Road No 5"},
		},
		{
			name:     "spelling corrections",
			input:    "hose 3, raod 7, dacca",
			expected: []string{"House 3", "Road 7", "Dhaka"},
		},
		{
			name:     "legacy district name",
			input:    "Agrabad, Chittagong",
			expected: []string{"Chattogram"},
		},
		{
			name:     "comma runs collapse",
			input:    "Mirpur ,, ,  Dhaka",
			expected: []string{"Mirpur, Dhaka"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, _ := n.NormalizeAuto(tc.input)
			if got == "" {
				t.Fatalf("empty output for %q", tc.input)
			}
			for _, want := range tc.expected {
				if !strings.Contains(got, want) {
					t.Errorf("Normalize(%q) = %q, want substring %q", tc.input, got, want)
				}
			}
			t.Logf("%q -> %q", tc.input, got)
		})
	}
}

func TestNormalize_BanglaDigitsAndTerms(t *testing.T) {
	n := New()

	testCases := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "bangla digits",
			input:    "বাসা ১২, রোড ৫",
			expected: []string{"12", "5", "House", "Road"},
		},
		{
			name:     "bangla place names",
			input:    "মিরপুর, ঢাকা",
			expected: []string{"Mirpur", "Dhaka"},
		},
		{
			name:     "mixed script",
			input:    "House 12, মিরপুর, Dhaka-1216",
			expected: []string{"House 12", "Mirpur", "Dhaka-1216"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, det := n.NormalizeAuto(tc.input)
			for _, want := range tc.expected {
				if !strings.Contains(got, want) {
					t.Errorf("Normalize(%q) = %q, want substring %q", tc.input, got, want)
				}
			}
			t.Logf("%q [%s] -> %q", tc.input, det.Script, got)
		})
	}
}

// TestNormalize_Idempotent normalizing canonical output must change nothing.
func TestNormalize_Idempotent(t *testing.T) {
	n := New()

	inputs := []string{
		"House 12, Road 5, Mirpur, Dhaka-1216",
		"H#12, Rd-5, Banani R/A, Dhaka - 1213",
		"বাসা ১২, রোড ৫, মিরপুর, ঢাকা",
		"Flat 4B, 3rd Floor, House 7, Dhanmondi",
		"",
		"   ,,,   ",
	}

	for _, input := range inputs {
		first, _ := n.NormalizeAuto(input)
		second, _ := n.NormalizeAuto(first)
		if first != second {
			t.Errorf("not idempotent for %q: first=%q second=%q", input, first, second)
		}
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	n := New()
	input := "House#12, Rd 5, মিরপুর, Dacca - 1216"

	want := n.Normalize(input, script.Mixed)
	for i := 0; i < 50; i++ {
		if got := n.Normalize(input, script.Mixed); got != want {
			t.Fatalf("run %d differs: %q vs %q", i, got, want)
		}
	}
}

func TestNormalize_EmptyInput(t *testing.T) {
	n := New()
	if got := n.Normalize("", script.Unknown); got != "" {
		t.Errorf("Normalize(\"\") = %q, want empty", got)
	}
	if got := n.Normalize("   ", script.Unknown); got != "" {
		t.Errorf("Normalize(whitespace) = %q, want empty", got)
	}
}
