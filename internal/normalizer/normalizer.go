// Package normalizer canonicalizes raw Bangladeshi address strings: Unicode
// normalization, Bangla digit conversion, transliteration of Bangla place
// words, abbreviation expansion and whitespace cleanup. Output feeds every
// downstream extractor, so transformations never reorder semantic content.
package normalizer

import (
	"regexp"
	"sort"
	"strings"

	"github.com/mozillazg/go-unidecode"
	"golang.org/x/text/unicode/norm"

	"github.com/bd-address-extractor/internal/script"
)

// Normalizer holds the precompiled patterns and lookup tables. Safe for
// concurrent use after construction.
type Normalizer struct {
	// punctuation folding
	punctReplacer *strings.Replacer
	hashPattern   *regexp.Regexp

	// digit conversion
	banglaDigits map[rune]rune

	// transliteration, longest key first
	banglaTerms []replacement
	banglaRun   *regexp.Regexp

	// abbreviation expansion and spelling correction
	abbreviations []compiledRule
	corrections   []compiledRule

	// cleanup
	cityDash  *regexp.Regexp
	commaRuns *regexp.Regexp
	spaceRuns *regexp.Regexp
}

type replacement struct {
	from, to string
}

type compiledRule struct {
	pattern *regexp.Regexp
	to      string
}

// New builds a Normalizer with all tables compiled.
func New() *Normalizer {
	n := &Normalizer{}
	n.initializePatterns()
	n.initializeTables()
	return n
}

func (n *Normalizer) initializePatterns() {
	n.punctReplacer = strings.NewReplacer(
		"“", `"`, "”", `"`,
		"‘", "'", "’", "'",
		"–", "-", "—", "-",
		" ", " ",
	)
	n.hashPattern = regexp.MustCompile(`#`)
	n.banglaRun = regexp.MustCompile(`[\x{0980}-\x{09FF}]+`)
	// "Dhaka - 1216" and "Dhaka -1216" fold to "Dhaka-1216"
	n.cityDash = regexp.MustCompile(`(\p{L})\s*-\s*(\d{4})\b`)
	n.commaRuns = regexp.MustCompile(`\s*,[\s,]*`)
	n.spaceRuns = regexp.MustCompile(`\s+`)
}

func (n *Normalizer) initializeTables() {
	n.banglaDigits = map[rune]rune{
		'০': '0', '১': '1', '২': '2', '৩': '3', '৪': '4',
		'৫': '5', '৬': '6', '৭': '7', '৮': '8', '৯': '9',
	}

	terms := map[string]string{
		// keywords
		"রোড":      "Road",
		"সড়ক":      "Road",
		"লেন":      "Lane",
		"বাড়ি":     "House",
		"বাসা":     "House",
		"হাউজ":     "House",
		"ফ্ল্যাট":  "Flat",
		"ব্লক":     "Block",
		"সেক্টর":   "Sector",
		"এলাকা":    "Area",
		"থানা":     "Thana",
		"ডাকঘর":    "Post Office",
		"নম্বর":    "No",
		"নং":       "No",
		// divisions and common districts
		"ঢাকা":       "Dhaka",
		"চট্টগ্রাম":  "Chattogram",
		"সিলেট":      "Sylhet",
		"রাজশাহী":    "Rajshahi",
		"খুলনা":      "Khulna",
		"বরিশাল":     "Barisal",
		"রংপুর":      "Rangpur",
		"ময়মনসিংহ":  "Mymensingh",
		"কুমিল্লা":   "Comilla",
		"গাজীপুর":    "Gazipur",
		"নারায়ণগঞ্জ": "Narayanganj",
		"কক্সবাজার":  "CoxsBazar",
		"যশোর":       "Jashore",
		"বগুড়া":      "Bogra",
		// common Dhaka areas
		"মিরপুর":      "Mirpur",
		"গুলশান":      "Gulshan",
		"বনানী":       "Banani",
		"ধানমন্ডি":    "Dhanmondi",
		"উত্তরা":      "Uttara",
		"মোহাম্মদপুর": "Mohammadpur",
		"মতিঝিল":      "Motijheel",
		"বাড্ডা":      "Badda",
		"মহাখালী":     "Mohakhali",
		"পল্লবী":      "Pallabi",
		"আগ্রাবাদ":    "Agrabad",
		"হালিশহর":     "Halishahar",
	}
	n.banglaTerms = make([]replacement, 0, len(terms))
	for from, to := range terms {
		n.banglaTerms = append(n.banglaTerms, replacement{from, to})
	}
	// longest first so নারায়ণগঞ্জ wins over নং-style prefixes
	sort.Slice(n.banglaTerms, func(i, j int) bool {
		if len(n.banglaTerms[i].from) != len(n.banglaTerms[j].from) {
			return len(n.banglaTerms[i].from) > len(n.banglaTerms[j].from)
		}
		return n.banglaTerms[i].from < n.banglaTerms[j].from
	})

	abbrevs := []struct{ from, to string }{
		{`r/a`, "Residential Area"},
		{`res\.?\s+area`, "Residential Area"},
		{`rd`, "Road"},
		{`ln`, "Lane"},
		{`ave`, "Avenue"},
		{`apt`, "Apartment"},
		{`opp`, "Opposite"},
		{`nr`, "Near"},
		{`p\.?s`, "Thana"},
		{`p\.?o`, "Post Office"},
	}
	for _, a := range abbrevs {
		n.abbreviations = append(n.abbreviations, compiledRule{
			pattern: regexp.MustCompile(`(?i)\b` + a.from + `\b\.?`),
			to:      a.to,
		})
	}

	// frequent misspellings and legacy names seen in the corpus
	corrections := []struct{ from, to string }{
		{`chittagong|chattagong|chottogram|chattagram|ctg`, "Chattogram"},
		{`dacca|dakha|dhakha`, "Dhaka"},
		{`silhet|sylet|silet`, "Sylhet"},
		{`barishal|borishal`, "Barisal"},
		{`mymensing|moymonsingh`, "Mymensingh"},
		{`jessore|jessor`, "Jashore"},
		{`raod|rood|roaad`, "Road"},
		{`hose|huse|houes`, "House"},
		{`flate|falt`, "Flat"},
	}
	for _, c := range corrections {
		n.corrections = append(n.corrections, compiledRule{
			pattern: regexp.MustCompile(`(?i)\b(?:` + c.from + `)\b`),
			to:      c.to,
		})
	}
}

// Normalize canonicalizes raw text. Pure and deterministic; unrecognized
// characters pass through unchanged. Idempotent: applying it to its own
// output is a no-op.
func (n *Normalizer) Normalize(raw string, tag script.Script) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	text := norm.NFKC.String(raw)
	text = n.punctReplacer.Replace(text)
	text = n.convertDigits(text)

	if tag == script.Bangla || tag == script.Mixed {
		text = n.transliterate(text)
	}
	// residual Bangla runs (names outside the tables) fall back to unidecode
	text = n.banglaRun.ReplaceAllStringFunc(text, func(run string) string {
		return strings.TrimSpace(unidecode.Unidecode(run))
	})

	text = n.hashPattern.ReplaceAllString(text, " No ")
	for _, rule := range n.abbreviations {
		text = rule.pattern.ReplaceAllString(text, rule.to)
	}
	for _, rule := range n.corrections {
		text = rule.pattern.ReplaceAllString(text, rule.to)
	}

	text = n.cityDash.ReplaceAllString(text, "$1-$2")
	text = n.commaRuns.ReplaceAllString(text, ", ")
	text = n.spaceRuns.ReplaceAllString(text, " ")
	text = strings.Trim(text, " ,")
	return text
}

// NormalizeAuto detects the script itself before normalizing.
func (n *Normalizer) NormalizeAuto(raw string) (string, script.Detection) {
	det := script.Detect(raw)
	return n.Normalize(raw, det.Script), det
}

func (n *Normalizer) convertDigits(text string) string {
	return strings.Map(func(r rune) rune {
		if d, ok := n.banglaDigits[r]; ok {
			return d
		}
		return r
	}, text)
}

func (n *Normalizer) transliterate(text string) string {
	for _, t := range n.banglaTerms {
		if strings.Contains(text, t.from) {
			text = strings.ReplaceAll(text, t.from, " "+t.to+" ")
		}
	}
	return text
}
