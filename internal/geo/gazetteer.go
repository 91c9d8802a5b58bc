package geo

import (
	"encoding/json"
	"os"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
	"github.com/xrash/smetrics"
	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
)

// Lookup confidence tiers. Exact hits get a small frequency bonus on top,
// capped below 1.0.
const (
	exactConfidence      = 0.98
	normalizedConfidence = 0.95
	fuzzyFloor           = 0.80
	maxConfidence        = 0.99
)

// fuzzy blend weights, Jaro-Winkler favored over Levenshtein for the short
// strings the gazetteer deals in.
const (
	jwWeight  = 0.6
	levWeight = 0.4
)

// Gazetteer area-name index built once from the corpus. Read-only after
// construction, safe for concurrent lookups without locking.
type Gazetteer struct {
	entries  []models.GazetteerEntry
	index    *trie
	byPostal map[string][]*models.GazetteerEntry
	logger   *zap.Logger
}

// NewGazetteer builds the index from the embedded default corpus.
func NewGazetteer(logger *zap.Logger) *Gazetteer {
	return buildGazetteer(gazetteerSeeds, logger)
}

// NewGazetteerFromFile loads a JSON corpus ([]GazetteerEntry). Falls back
// to the embedded defaults when the file is missing or malformed.
func NewGazetteerFromFile(path string, logger *zap.Logger) *Gazetteer {
	b, err := os.ReadFile(path)
	if err != nil {
		logger.Warn("gazetteer corpus unavailable, using embedded defaults",
			zap.String("path", path), zap.Error(err))
		return NewGazetteer(logger)
	}
	var entries []models.GazetteerEntry
	if err := json.Unmarshal(b, &entries); err != nil || len(entries) == 0 {
		logger.Warn("gazetteer corpus malformed, using embedded defaults",
			zap.String("path", path), zap.Error(err))
		return NewGazetteer(logger)
	}
	return buildGazetteer(entries, logger)
}

func buildGazetteer(entries []models.GazetteerEntry, logger *zap.Logger) *Gazetteer {
	g := &Gazetteer{
		entries:  make([]models.GazetteerEntry, len(entries)),
		index:    newTrie(),
		byPostal: map[string][]*models.GazetteerEntry{},
		logger:   logger,
	}
	copy(g.entries, entries)
	for i := range g.entries {
		e := &g.entries[i]
		g.index.insert(e.AreaName, e)
		g.byPostal[e.PostalCode] = append(g.byPostal[e.PostalCode], e)
	}
	logger.Info("gazetteer ready", zap.Int("entries", len(g.entries)))
	return g
}

// Size number of indexed entries.
func (g *Gazetteer) Size() int { return len(g.entries) }

// Areas all distinct area names.
func (g *Gazetteer) Areas() []string {
	out := make([]string, 0, len(g.entries))
	for i := range g.entries {
		out = append(out, g.entries[i].AreaName)
	}
	return out
}

// EntriesForPostal entries observed under a postal code.
func (g *Gazetteer) EntriesForPostal(code string) []*models.GazetteerEntry {
	return g.byPostal[code]
}

// Lookup resolves an area or district-ish text to its gazetteer record.
// Match order: exact key, whitespace/case-normalized key, then fuzzy over
// all entries with a blended Jaro-Winkler/Levenshtein score. Returns false
// when nothing clears the fuzzy floor.
func (g *Gazetteer) Lookup(text string) (*models.GeoLookup, bool) {
	key := trieKey(text)
	if key == "" {
		return nil, false
	}

	if hits := g.index.exact(key); len(hits) > 0 {
		best := mostFrequent(hits)
		return g.lookupResult(best, exactConfidence+frequencyBonus(best)), true
	}

	// strip punctuation noise and retry
	stripped := trieKey(strings.Map(func(r rune) rune {
		if r == ',' || r == '.' || r == '-' || r == '(' || r == ')' {
			return ' '
		}
		return r
	}, key))
	if stripped != key {
		if hits := g.index.exact(stripped); len(hits) > 0 {
			best := mostFrequent(hits)
			return g.lookupResult(best, normalizedConfidence), true
		}
	}

	// fuzzy scan
	var best *models.GazetteerEntry
	bestScore := 0.0
	for i := range g.entries {
		e := &g.entries[i]
		score := similarity(key, trieKey(e.AreaName))
		if score > bestScore {
			bestScore = score
			best = e
		}
	}
	if best == nil || bestScore < fuzzyFloor {
		return nil, false
	}
	conf := normalizedConfidence * bestScore
	return g.lookupResult(best, conf), true
}

func (g *Gazetteer) lookupResult(e *models.GazetteerEntry, conf float64) *models.GeoLookup {
	if conf > maxConfidence {
		conf = maxConfidence
	}
	return &models.GeoLookup{
		AreaName:   e.AreaName,
		District:   e.District,
		Division:   e.Division,
		PostalCode: e.PostalCode,
		Confidence: conf,
	}
}

// ScanText finds every known area mentioned in normalized address text and
// emits gazetteer-sourced candidates for area, district, division and
// postal code. Longer names are claimed first so "Mirpur DOHS" beats
// "Mirpur".
func (g *Gazetteer) ScanText(text string) []models.Candidate {
	lower := strings.ToLower(text)
	ordered := make([]*models.GazetteerEntry, 0, len(g.entries))
	for i := range g.entries {
		ordered = append(ordered, &g.entries[i])
	}
	sort.SliceStable(ordered, func(i, j int) bool {
		return len(ordered[i].AreaName) > len(ordered[j].AreaName)
	})

	var out []models.Candidate
	var claimed []models.Span
	for _, e := range ordered {
		key := strings.ToLower(e.AreaName)
		idx := indexWord(lower, key)
		if idx < 0 {
			continue
		}
		end := idx + len(key)
		if spanTaken(claimed, idx, end) {
			continue
		}
		claimed = append(claimed, models.Span{Start: idx, End: end})
		conf := exactConfidence + frequencyBonus(e)
		if conf > maxConfidence {
			conf = maxConfidence
		}
		span := &models.Span{Start: idx, End: end}
		out = append(out,
			models.Candidate{Component: models.ComponentArea, Value: e.AreaName, Span: span, Confidence: conf, Source: models.SourceGazetteer},
			models.Candidate{Component: models.ComponentDistrict, Value: e.District, Confidence: conf * 0.97, Source: models.SourceGazetteer},
			models.Candidate{Component: models.ComponentDivision, Value: e.Division, Confidence: conf * 0.95, Source: models.SourceGazetteer},
		)
		if e.PostalCode != "" {
			out = append(out, models.Candidate{Component: models.ComponentPostal, Value: e.PostalCode, Confidence: conf * 0.90, Source: models.SourceGazetteer})
		}
	}
	return out
}

// Suggest ranks completions for a query prefix: trie descendants first,
// then substring matches, ordered by similarity and corpus frequency.
func (g *Gazetteer) Suggest(query string, limit int) []models.Suggestion {
	key := trieKey(query)
	if key == "" || limit <= 0 {
		return nil
	}
	seen := map[string]bool{}
	var out []models.Suggestion

	for _, e := range g.index.withPrefix(key, limit*2) {
		if seen[e.AreaName] {
			continue
		}
		seen[e.AreaName] = true
		sim := similarity(key, trieKey(e.AreaName))
		out = append(out, suggestionFrom(e, 0.9*sim+0.1))
	}
	if len(out) < limit {
		for i := range g.entries {
			e := &g.entries[i]
			if seen[e.AreaName] {
				continue
			}
			if !strings.Contains(trieKey(e.AreaName), key) {
				continue
			}
			seen[e.AreaName] = true
			out = append(out, suggestionFrom(e, 0.7*similarity(key, trieKey(e.AreaName))+0.1))
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func suggestionFrom(e *models.GazetteerEntry, conf float64) models.Suggestion {
	if conf > maxConfidence {
		conf = maxConfidence
	}
	return models.Suggestion{
		Area:       e.AreaName,
		District:   e.District,
		Division:   e.Division,
		PostalCode: e.PostalCode,
		Confidence: conf,
	}
}

// similarity blended string closeness in [0,1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}
	jw := smetrics.JaroWinkler(a, b, 0.7, 4)
	dist := levenshtein.ComputeDistance(a, b)
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	lev := 1 - float64(dist)/float64(longest)
	if lev < 0 {
		lev = 0
	}
	return jwWeight*jw + levWeight*lev
}

func frequencyBonus(e *models.GazetteerEntry) float64 {
	switch {
	case e.ObservedFrequency >= 1000:
		return 0.01
	case e.ObservedFrequency >= 100:
		return 0.005
	default:
		return 0
	}
}

func mostFrequent(entries []*models.GazetteerEntry) *models.GazetteerEntry {
	best := entries[0]
	for _, e := range entries[1:] {
		if e.ObservedFrequency > best.ObservedFrequency {
			best = e
		}
	}
	return best
}

// indexWord finds needle in haystack at word boundaries only.
func indexWord(haystack, needle string) int {
	from := 0
	for {
		i := strings.Index(haystack[from:], needle)
		if i < 0 {
			return -1
		}
		i += from
		end := i + len(needle)
		beforeOK := i == 0 || !isAlnum(haystack[i-1])
		afterOK := end == len(haystack) || !isAlnum(haystack[end])
		if beforeOK && afterOK {
			return i
		}
		from = i + 1
		if from >= len(haystack) {
			return -1
		}
	}
}

func isAlnum(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || (b >= '0' && b <= '9')
}

func spanTaken(claimed []models.Span, start, end int) bool {
	for _, s := range claimed {
		if start < s.End && end > s.Start {
			return true
		}
	}
	return false
}
