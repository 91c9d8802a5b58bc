package patterns

import (
	"regexp"
	"sort"
	"strings"
)

// Tables are ordered highest confidence first. Values are always capture
// group 1; trailing \b keeps number captures from bleeding into longer
// numerals (a 4-digit postal rule can never take five digits).

func r(expr string, conf float64) Rule {
	return Rule{Pattern: regexp.MustCompile(expr), Confidence: conf}
}

func rGuard(expr string, conf float64, notAfter string) Rule {
	return Rule{
		Pattern:    regexp.MustCompile(expr),
		Confidence: conf,
		NotAfter:   regexp.MustCompile(notAfter),
	}
}

// houseKeyword covers the spellings seen in the corpus, misspellings
// included.
const houseKeyword = `(?:house|home|hous|hose|hause|bari|basha|basa)`

// banglishPrefix Bengali letter-series house prefixes written in Latin
// (ka, kha, ga ... as in "Ka-52/1").
const banglishPrefix = `(?:kha|ka|gha|ga|chha|cha|ja|jha|gh|ch|k|g)`

// otherKeywordTail matches when the text right before a bare numeral ends
// with another component's keyword.
const otherKeywordTail = `(?i)\b(?:road|rd|lane|line|avenue|r|flat|apartment|apt|block|blk|sector|floor|level|lift|post|zip)[\s#:.-]*$`

// HouseRules explicit house/holding/plot notations first, bare slash
// numerals last.
func HouseRules() []Rule {
	return []Rule{
		// house no 45, house number 45/A, house # 12
		r(`(?i)\b`+houseKeyword+`\s+(?:no\.?|number|#)\s*[-:#]*\s*(\d{1,5}(?:\s*[,&+]\s*\d{1,5})?[a-z]?(?:[/-][a-z0-9]+)*)\b`, 0.98),
		// house: 12/A, house-7
		r(`(?i)\b`+houseKeyword+`\s*[-:#]+\s*([a-z]?-?\d{1,5}[a-z]?(?:[/-][a-z0-9]+)*)\b`, 0.98),
		// holding no 3/B/2
		r(`(?i)\bholding\s*(?:no\.?|number|#)?\s*[-:]*\s*(\d{1,5}(?:[/-][a-z0-9]+)*)\b`, 0.98),
		// plot no 7 & 9, plot 15/C
		r(`(?i)\bplot\s*(?:no\.?|number|#|:)?\s*-?\s*(\d{1,5}(?:\s*&\s*\d{1,5})?[a-z]?(?:[/-][a-z0-9]+)*)\b`, 0.98),
		// building 4, bldg no 2B
		r(`(?i)\b(?:building|bldg)\s*(?:no\.?|number|#)?\s*[-:]*\s*(\d{1,5}[a-z]?)\b`, 0.98),
		// h@14, h:51, h#9
		r(`(?i)\bh\s*[@:#]\s*(\d{1,5}[a-z]?(?:[/-][a-z0-9]+)*)\b`, 0.98),
		// h-12, h 30/B
		r(`(?i)\bh\s*[\s-]\s*(\d{1,5}[a-z]?(?:[/-][a-z0-9]+)*)\b`, 0.98),
		// banglish prefixes: ka-52/1, kha 106/3
		r(`(?i)\b(`+banglishPrefix+`\s*[-/]?\s*\d{1,5}(?:[/-][a-z0-9]+)+)\b`, 0.98),
		// 45 no house
		r(`(?i)\b(\d{1,5}[a-z]?)\s+no\s+(?:house|basa|basha)\b`, 0.98),
		// house 12 (loose keyword form)
		r(`(?i)\b`+houseKeyword+`\s+([a-z]?\d{1,5}[a-z]?(?:[/-][a-z0-9]+)*)\b`, 0.96),
		// standalone multi-part numerals: 107/2, 22/7/B, 12-4; skipped right
		// after another component's keyword so road/flat numbers stay theirs
		rGuard(`\b(\d{1,5}[a-zA-Z]?(?:[/-]\d{1,5}[a-zA-Z]?)+(?:[/-][a-zA-Z])?)\b`, 0.93, otherKeywordTail),
		rGuard(`\b(\d{1,5}[/-][a-zA-Z]{1,2})\b`, 0.90, otherKeywordTail),
	}
}

// RoadRules lane/avenue/street/named-road forms, then numbered road forms,
// then the bare single-letter shorthand.
func RoadRules() []Rule {
	return []Rule{
		// 2nd Lane, 4th lane
		r(`(?i)\b(\d+(?:st|nd|rd|th)\s+lane)\b`, 1.00),
		// lane no 3, lane-2/B
		r(`(?i)\blane\s*(?:no\.?|number|#)?\s*[-:#]*\s*(\d{1,4}(?:[/-]\d{1,4})?[a-z]?)\b`, 0.98),
		// line #4
		r(`(?i)\bline\s*[-#:]*\s*(\d{1,4})\b`, 1.00),
		// named avenue / street / lane (capitalized multi-word names)
		r(`\b([A-Z][A-Za-z. ]{3,}Avenue)\b`, 1.00),
		r(`\b([A-Z][A-Za-z. ]{5,}Street)\b`, 1.00),
		r(`\b([A-Z][A-Za-z. ]{2,}Lane)\b`, 1.00),
		// named road: Green Road, C.D.A Road
		r(`\b([A-Z][A-Za-z. ]{2,}Road)\b`, 0.95),
		// avenue 5
		r(`(?i)\bavenue\s*[-:]*\s*(\d{1,4})\b`, 1.00),
		// road no 5, road number 8/A, road: 27
		r(`(?i)\b(?:road|rd)\s+(?:no\.?|number)\s*[-:#]*\s*(\d{1,4}(?:[/-]\d{1,4})?[a-z]?)\b`, 0.98),
		// road-5, rd 11, road # 2
		r(`(?i)\b(?:road|rd)\s*[-:#]*\s*(\d{1,4}(?:[/-]\d{1,4})?[a-z]?)\b`, 0.98),
		// r@4, r:7, r#2
		r(`(?i)\br\s*[@:#]\s*(\d{1,4}(?:[/-]\d{1,4})?[a-z]?)\b`, 0.98),
		// r-5, r 12 (not the tail of "h-" / "h " shorthand)
		rGuard(`(?i)\br\s*[\s-]\s*(\d{1,4}(?:[/-]\d{1,4})?[a-z]?)\b`, 0.98, `(?i)\bh[\s-]*$`),
	}
}

// postalCities districts commonly written city-dash style ("Dhaka-1216").
var postalCities = []string{
	"Dhaka", "Mirpur", "Uttara", "Gulshan", "Banani", "Dhanmondi",
	"Chittagong", "Chattogram", "Sylhet", "Rajshahi", "Khulna", "Barisal",
	"Barishal", "Rangpur", "Mymensingh", "Comilla", "Cumilla", "Gazipur",
	"Narayanganj", "Savar", "Tongi", "Narsingdi", "Manikganj", "Munshiganj",
	"Kishoreganj", "Tangail", "Jamalpur", "Sherpur", "Netrokona", "Bogra",
	"Bogura", "Joypurhat", "Naogaon", "Natore", "Pabna", "Sirajganj",
	"Jashore", "Jessore", "Jhenaidah", "Magura", "Narail", "Kushtia",
	"Meherpur", "Chuadanga", "Bagerhat", "Pirojpur", "Barguna", "Patuakhali",
	"Jhalokathi", "Bandarban", "Brahmanbaria", "Chandpur", "Feni",
	"Khagrachari", "Lakshmipur", "Noakhali", "Rangamati",
}

// PostalRules exactly four digits in every rule; a 3- or 5-digit numeral
// can never match.
func PostalRules() []Rule {
	return []Rule{
		r(`(?i)\bpost\s*(?:office)?\s*[-:]*\s+(?:g\.?p\.?o\.?\s*)?(\d{4})\b`, 1.00),
		r(`(?i)\bp\.?o\.?\s*[-:.]?\s+(?:g\.?p\.?o\.?\s*)?(\d{4})\b`, 1.00),
		r(`(?i)\bpostal\s*code\s*[-:]*\s*(\d{4})\b`, 1.00),
		r(`(?i)\b(?:zip|pin\s*code)\s*[-:]*\s*(\d{4})\b`, 0.98),
		r(`(?i)\b(?:`+alternation(postalCities)+`)\s*-\s*(\d{4})\b`, 0.95),
	}
}

// FlatRules flat/apartment numbers.
func FlatRules() []Rule {
	return []Rule{
		r(`(?i)\b(?:flat|apartment|apt)\s+(?:no\.?|number|#)\s*[-:#]*\s*([a-z]?-?\d{1,4}[a-z]?)\b`, 0.98),
		r(`(?i)\b(?:flat|apartment|apt)\s*[-:#]*\s*([a-z]?-?\d{1,4}[a-z]?)\b`, 0.98),
		// single-letter flats: Flat B
		r(`(?i)\b(?:flat|apartment|apt)\s*[-:#]*\s*([a-z]\d{0,2})\b`, 0.95),
	}
}

// FloorRules floor/level/lift numbers plus ordinal form.
func FloorRules() []Rule {
	return []Rule{
		r(`(?i)\bfloor\s+(?:no\.?|number|#)\s*[-:#]*\s*(\d{1,3}[a-z]?)\b`, 0.98),
		r(`(?i)\b(?:floor|level|lift)\s*[-:#]*\s*(\d{1,3}[a-z]?)\b`, 0.98),
		r(`(?i)\b(\d{1,3})(?:st|nd|rd|th)\s+floor\b`, 0.95),
	}
}

// BlockRules block/sector identifiers; letter-only blocks ranked under
// numbered ones.
func BlockRules() []Rule {
	return []Rule{
		r(`(?i)\b(?:block|blk|sector)\s+(?:no\.?|number|#)\s*[-:#]*\s*([a-z]?\d{1,3}[a-z]?)\b`, 0.98),
		r(`(?i)\b(?:block|blk|sector)\s*[-:#]*\s*([a-z]?\d{1,3}[a-z]?)\b`, 0.98),
		r(`(?i)\b(?:block|blk)\s*[-:#]*\s*([a-z])\b`, 0.95),
	}
}

// AreaRules keyword forms plus an alternation over the gazetteer's known
// area names.
func AreaRules(knownAreas []string) []Rule {
	rules := []Rule{
		r(`(?i)\b([a-z]+(?:\s+[a-z]+)?\s+residential\s+area)\b`, 0.85),
		r(`(?i)\barea\s*[-:]*\s+([a-z]{3,}(?:\s+[a-z]{3,})?)\b`, 0.85),
	}
	if len(knownAreas) > 0 {
		rules = append(rules, r(`(?i)\b(`+alternation(knownAreas)+`)\b`, 0.88))
	}
	return rules
}

// DistrictRules keyword form, city-dash form, then the known-district
// alternation.
func DistrictRules(districts []string) []Rule {
	rules := []Rule{
		r(`(?i)\b(?:district|dist|zila|zilla)\s*[-:.]*\s+([a-z]+(?:\s+[a-z]+)?)\b`, 0.95),
	}
	if len(districts) > 0 {
		rules = append(rules,
			r(`(?i)\b(`+alternation(districts)+`)\s*-\s*\d{4}\b`, 0.95),
			r(`(?i)\b(`+alternation(districts)+`)\b`, 0.90),
		)
	}
	return rules
}

// alternation builds a quoted, longest-first alternation so multi-word
// names win over their prefixes.
func alternation(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})
	quoted := make([]string, 0, len(sorted))
	for _, n := range sorted {
		n = strings.TrimSpace(n)
		if n != "" {
			quoted = append(quoted, regexp.QuoteMeta(n))
		}
	}
	return strings.Join(quoted, "|")
}
