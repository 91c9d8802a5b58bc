// Package resolver merges candidates from every extraction source into one
// value and confidence per component: evidence-weighted voting with an
// agreement boost across independent sources, geographic gap filling, and
// consistency annotation. The source set is closed; the weighting table
// below enumerates every member.
package resolver

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
	"github.com/bd-address-extractor/internal/geo"
)

var postalShape = regexp.MustCompile(`^\d{4}$`)

// Config tunables of the fusion algorithm.
type Config struct {
	// SourceWeights reliability priors multiplied into every candidate's
	// own confidence.
	SourceWeights map[models.Source]float64
	// AgreementBoost fractional score increase per additional independent
	// source agreeing on a value. Monotonic in source count, capped.
	AgreementBoost float64
	// NearTieEpsilon two values scoring within this of each other surface
	// a conflict.
	NearTieEpsilon float64
	// MaxConfidence cap applied after boosting.
	MaxConfidence float64
	// ImportanceWeights per-component weights of the overall confidence.
	ImportanceWeights map[models.AddressComponent]float64
	// InferredDivisionConfidence confidence of a division derived from the
	// district.
	InferredDivisionConfidence float64
}

// DefaultConfig calibrated priors: the gazetteer confirms existence, the
// model learned patterns, regexes are precise but blind to geography, the
// hierarchy infers, the state machine guesses.
func DefaultConfig() Config {
	return Config{
		SourceWeights: map[models.Source]float64{
			models.SourceGazetteer:    1.00,
			models.SourceNER:          0.90,
			models.SourcePattern:      0.85,
			models.SourceGeoHierarchy: 0.80,
			models.SourceStructural:   0.70,
		},
		AgreementBoost: 0.05,
		NearTieEpsilon: 0.05,
		MaxConfidence:  0.99,
		ImportanceWeights: map[models.AddressComponent]float64{
			models.ComponentDistrict: 0.20,
			models.ComponentPostal:   0.20,
			models.ComponentArea:     0.15,
			models.ComponentHouse:    0.10,
			models.ComponentRoad:     0.10,
			models.ComponentDivision: 0.10,
			models.ComponentFlat:     0.05,
			models.ComponentFloor:    0.05,
			models.ComponentBlock:    0.05,
		},
		InferredDivisionConfidence: 0.95,
	}
}

// Resolution per-component winners plus the evidence trail.
type Resolution struct {
	Values      map[models.AddressComponent]string
	Confidences map[models.AddressComponent]float64
	Sources     map[models.AddressComponent]models.Source
	Conflicts   []string
	Overall     float64
}

// Resolver stateless once built; shared across requests.
type Resolver struct {
	cfg    Config
	kb     *geo.KnowledgeBase
	logger *zap.Logger
}

// New builds a resolver over the knowledge base.
func New(cfg Config, kb *geo.KnowledgeBase, logger *zap.Logger) *Resolver {
	if cfg.SourceWeights == nil {
		cfg = DefaultConfig()
	}
	return &Resolver{cfg: cfg, kb: kb, logger: logger}
}

// Resolve never fails: an empty candidate set yields an empty resolution
// with overall confidence zero.
func (r *Resolver) Resolve(candidates []models.Candidate) *Resolution {
	res := &Resolution{
		Values:      map[models.AddressComponent]string{},
		Confidences: map[models.AddressComponent]float64{},
		Sources:     map[models.AddressComponent]models.Source{},
	}

	grouped := map[models.AddressComponent][]models.Candidate{}
	for _, c := range candidates {
		if !c.Valid() {
			continue
		}
		// malformed postal evidence is dropped before voting
		if c.Component == models.ComponentPostal && !postalShape.MatchString(strings.TrimSpace(c.Value)) {
			continue
		}
		grouped[c.Component] = append(grouped[c.Component], c)
	}

	for _, component := range models.AllComponents {
		group := grouped[component]
		if len(group) == 0 {
			continue
		}
		winner, runnerUp := r.vote(group)
		res.Values[component] = winner.value
		res.Confidences[component] = winner.score
		res.Sources[component] = winner.topSource
		if runnerUp != nil && winner.score-runnerUp.score <= r.cfg.NearTieEpsilon {
			res.Conflicts = append(res.Conflicts, fmt.Sprintf(
				"%s: %q (%s) barely outscored %q (%s)",
				component, winner.value, sourceList(winner.sources),
				runnerUp.value, sourceList(runnerUp.sources)))
		}
	}

	r.inferMissing(res)

	res.Conflicts = append(res.Conflicts, r.kb.ValidateConsistency(res.Values)...)
	res.Overall = r.overallConfidence(res)

	if r.logger.Core().Enabled(zap.DebugLevel) {
		r.logger.Debug("resolution complete",
			zap.Int("candidates", len(candidates)),
			zap.Int("components", len(res.Values)),
			zap.Int("conflicts", len(res.Conflicts)),
			zap.Float64("overall", res.Overall))
	}
	return res
}

// tally one distinct value's aggregated evidence.
type tally struct {
	value     string
	score     float64
	topSource models.Source
	sources   map[models.Source]bool
}

// vote scores every distinct value in the group and returns the winner and
// the best-scoring rival (nil when unopposed). Scores are source prior x
// candidate confidence, boosted when independent sources agree.
func (r *Resolver) vote(group []models.Candidate) (*tally, *tally) {
	byValue := map[string]*tally{}
	for _, c := range group {
		key := valueKey(c.Value)
		t, ok := byValue[key]
		if !ok {
			t = &tally{value: c.Value, sources: map[models.Source]bool{}}
			byValue[key] = t
		}
		score := r.sourceWeight(c.Source) * c.Confidence
		if score > t.score {
			t.score = score
			t.value = c.Value
			t.topSource = c.Source
		} else if score == t.score && r.sourceWeight(c.Source) > r.sourceWeight(t.topSource) {
			t.topSource = c.Source
		}
		t.sources[c.Source] = true
	}

	tallies := make([]*tally, 0, len(byValue))
	for _, t := range byValue {
		if n := len(t.sources); n > 1 {
			t.score *= 1 + r.cfg.AgreementBoost*float64(n-1)
		}
		if t.score > r.cfg.MaxConfidence {
			t.score = r.cfg.MaxConfidence
		}
		tallies = append(tallies, t)
	}
	sort.Slice(tallies, func(i, j int) bool {
		if tallies[i].score != tallies[j].score {
			return tallies[i].score > tallies[j].score
		}
		wi, wj := r.sourceWeight(tallies[i].topSource), r.sourceWeight(tallies[j].topSource)
		if wi != wj {
			return wi > wj
		}
		return tallies[i].value < tallies[j].value
	})
	if len(tallies) == 1 {
		return tallies[0], nil
	}
	return tallies[0], tallies[1]
}

// inferMissing fills gaps the extractors left: division from district, and
// postal code from the administrative hierarchy.
func (r *Resolver) inferMissing(res *Resolution) {
	if _, ok := res.Values[models.ComponentDivision]; !ok {
		if district, ok := res.Values[models.ComponentDistrict]; ok {
			if division, found := r.kb.DivisionForDistrict(district); found {
				weight := r.sourceWeight(models.SourceGeoHierarchy)
				res.Values[models.ComponentDivision] = division
				res.Confidences[models.ComponentDivision] = weight * r.cfg.InferredDivisionConfidence
				res.Sources[models.ComponentDivision] = models.SourceGeoHierarchy
			}
		}
	}

	if _, ok := res.Values[models.ComponentPostal]; !ok {
		if pred, found := r.kb.PredictPostalCode(res.Values); found && postalShape.MatchString(pred.PostalCode) {
			weight := r.sourceWeight(models.SourceGeoHierarchy)
			res.Values[models.ComponentPostal] = pred.PostalCode
			res.Confidences[models.ComponentPostal] = weight * pred.Confidence
			res.Sources[models.ComponentPostal] = models.SourceGeoHierarchy
		}
	}
}

// overallConfidence importance-weighted average over the components that
// resolved. All-empty resolutions score zero.
func (r *Resolver) overallConfidence(res *Resolution) float64 {
	var sum, weightSum float64
	for component, conf := range res.Confidences {
		w, ok := r.cfg.ImportanceWeights[component]
		if !ok {
			w = 0.05
		}
		sum += w * conf
		weightSum += w
	}
	if weightSum == 0 {
		return 0
	}
	return sum / weightSum
}

func (r *Resolver) sourceWeight(s models.Source) float64 {
	if w, ok := r.cfg.SourceWeights[s]; ok {
		return w
	}
	return 0.5
}

func valueKey(v string) string {
	return strings.Join(strings.Fields(strings.ToLower(v)), " ")
}

func sourceList(sources map[models.Source]bool) string {
	names := make([]string, 0, len(sources))
	for s := range sources {
		names = append(names, string(s))
	}
	sort.Strings(names)
	return strings.Join(names, "+")
}
