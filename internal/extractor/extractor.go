// Package extractor orchestrates the extraction pipeline: script
// detection, normalization, the four candidate sources, evidence fusion,
// threshold filtering and the result cache. One Extractor instance owns
// its thresholds and cache; nothing here is process-global.
package extractor

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"strings"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
	"github.com/bd-address-extractor/internal/fsm"
	"github.com/bd-address-extractor/internal/geo"
	"github.com/bd-address-extractor/internal/normalizer"
	"github.com/bd-address-extractor/internal/patterns"
	"github.com/bd-address-extractor/internal/resolver"
	"github.com/bd-address-extractor/internal/script"
	"github.com/bd-address-extractor/internal/tokenizer"
)

// NERBackend capability interface to the sequence-labeling model. The
// contract tolerates latency and unavailability.
type NERBackend interface {
	Extract(ctx context.Context, text string) ([]models.Candidate, error)
	IsAvailable() bool
}

// Config construction-time settings.
type Config struct {
	// CacheSize maximum LRU entries; 0 disables the result cache.
	CacheSize int
	// DefaultTimeout per-extraction bound when the caller supplies none.
	DefaultTimeout time.Duration
	// Thresholds initial per-component minimums; nil means defaults.
	Thresholds Thresholds
	// Resolver fusion tunables; zero value means defaults.
	Resolver resolver.Config
}

// Options per-request settings.
type Options struct {
	IncludeMetadata bool
	Timeout         time.Duration
	// Thresholds overrides for this request only.
	Thresholds Thresholds
}

// Extractor the assembled pipeline. Safe for concurrent use: every stage
// is read-only after construction, the cache is internally locked, and the
// threshold map sits behind its own mutex.
type Extractor struct {
	cfg      Config
	norm     *normalizer.Normalizer
	patterns *patterns.Set
	fsm      *fsm.Parser
	ner      NERBackend
	kb       *geo.KnowledgeBase
	resolver *resolver.Resolver
	cache    *lru.Cache[string, *models.ExtractionResult]
	logger   *zap.Logger

	mu         sync.RWMutex
	thresholds Thresholds
}

// New wires the pipeline. ner may be nil when no model is deployed.
func New(cfg Config, ner NERBackend, kb *geo.KnowledgeBase, logger *zap.Logger) (*Extractor, error) {
	if cfg.DefaultTimeout <= 0 {
		cfg.DefaultTimeout = 30 * time.Second
	}
	thresholds := cfg.Thresholds
	if thresholds == nil {
		thresholds = DefaultThresholds()
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}

	e := &Extractor{
		cfg:        cfg,
		norm:       normalizer.New(),
		patterns:   patterns.NewSet(kb.Districts(), kb.Areas()),
		fsm:        fsm.NewParser(kb.Districts(), kb.Areas()),
		ner:        ner,
		kb:         kb,
		resolver:   resolver.New(cfg.Resolver, kb, logger),
		logger:     logger,
		thresholds: thresholds.Clone(),
	}
	if cfg.CacheSize > 0 {
		cache, err := lru.New[string, *models.ExtractionResult](cfg.CacheSize)
		if err != nil {
			return nil, err
		}
		e.cache = cache
	}
	return e, nil
}

// SetThresholds replaces the instance thresholds. Out-of-range values are
// rejected before anything is applied.
func (e *Extractor) SetThresholds(t Thresholds) error {
	if err := t.Validate(); err != nil {
		return err
	}
	e.mu.Lock()
	e.thresholds = t.Clone()
	e.mu.Unlock()
	return nil
}

// Thresholds snapshot of the active thresholds.
func (e *Extractor) Thresholds() Thresholds {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.thresholds.Clone()
}

// NERAvailable health of the model backend.
func (e *Extractor) NERAvailable() bool {
	return e.ner != nil && e.ner.IsAvailable()
}

// CacheLen current cache entry count.
func (e *Extractor) CacheLen() int {
	if e.cache == nil {
		return 0
	}
	return e.cache.Len()
}

// Extract runs the full pipeline on one address. Empty input short-
// circuits to an empty zero-confidence result. The call is bounded by the
// caller's timeout; ErrTimeout abandons the in-flight work without a
// partial result.
func (e *Extractor) Extract(ctx context.Context, address string, opts Options) (*models.ExtractionResult, error) {
	start := time.Now()

	if strings.TrimSpace(address) == "" {
		return models.NewEmptyResult(address), nil
	}

	if opts.Thresholds != nil {
		if err := opts.Thresholds.Validate(); err != nil {
			return nil, err
		}
	}
	thresholds := e.Thresholds().Merge(opts.Thresholds)

	detection := script.Detect(address)
	normalized := e.norm.Normalize(address, detection.Script)

	key := cacheKey(normalized, thresholds)
	if e.cache != nil {
		if stored, ok := e.cache.Get(key); ok {
			hit := stored.Clone()
			hit.Cached = true
			hit.OriginalAddress = address
			hit.ExtractionTimeMs = elapsedMs(start)
			if !opts.IncludeMetadata {
				hit.Metadata = nil
			}
			return hit, nil
		}
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = e.cfg.DefaultTimeout
	}
	runCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	type pipelineOut struct{ result *models.ExtractionResult }
	ch := make(chan pipelineOut, 1)
	go func() {
		ch <- pipelineOut{e.runPipeline(runCtx, address, normalized, detection, thresholds)}
	}()

	select {
	case <-runCtx.Done():
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		return nil, ErrTimeout
	case out := <-ch:
		result := out.result
		result.ExtractionTimeMs = elapsedMs(start)
		if e.cache != nil {
			e.cache.Add(key, result.Clone())
		}
		if !opts.IncludeMetadata {
			result = result.Clone()
			result.Metadata = nil
		}
		return result, nil
	}
}

// runPipeline stages 3-9: tokens, the four sources, fusion, formatting.
// Never fails; a source that finds nothing simply contributes nothing.
func (e *Extractor) runPipeline(ctx context.Context, original, normalized string, detection script.Detection, thresholds Thresholds) *models.ExtractionResult {
	tokens := tokenizer.Tokenize(normalized)

	var candidates []models.Candidate
	candidates = append(candidates, e.fsm.Parse(tokens)...)
	candidates = append(candidates, e.patterns.ExtractAll(normalized)...)
	candidates = append(candidates, e.kb.ScanText(normalized)...)

	if e.ner != nil && e.ner.IsAvailable() {
		nerCandidates, err := e.ner.Extract(ctx, normalized)
		if err != nil {
			e.logger.Warn("ner extraction skipped", zap.Error(err))
		} else {
			candidates = append(candidates, nerCandidates...)
		}
	}

	resolution := e.resolver.Resolve(candidates)
	return e.formatResult(original, normalized, detection, thresholds, resolution)
}

// formatResult applies threshold filtering to the components map only.
// Internal confidences stay recorded in per_component_confidence and in
// the metadata details.
func (e *Extractor) formatResult(original, normalized string, detection script.Detection, thresholds Thresholds, resolution *resolver.Resolution) *models.ExtractionResult {
	result := &models.ExtractionResult{
		Components:             map[models.AddressComponent]string{},
		PerComponentConfidence: map[models.AddressComponent]float64{},
		OverallConfidence:      resolution.Overall,
		NormalizedAddress:      normalized,
		OriginalAddress:        original,
	}
	details := map[models.AddressComponent]models.ComponentDetail{}

	for component, value := range resolution.Values {
		conf := resolution.Confidences[component]
		result.PerComponentConfidence[component] = conf
		details[component] = models.ComponentDetail{
			Value:      value,
			Confidence: conf,
			Source:     string(resolution.Sources[component]),
		}
		if conf >= thresholds.For(component) {
			result.Components[component] = value
		}
	}

	result.Metadata = &models.ResultMetadata{
		Script:           string(detection.Script),
		IsMixed:          detection.IsMixed(),
		Conflicts:        append([]string(nil), resolution.Conflicts...),
		ComponentDetails: details,
	}
	return result
}

// BatchCallbacks optional observer hooks; they never influence control
// flow.
type BatchCallbacks struct {
	OnProgress func(done, total int)
	OnError    func(index int, err error)
}

// BatchExtract processes addresses sequentially with per-item isolation: a
// failing address fills its slot with an empty zero-confidence result and
// the batch continues. Always returns exactly len(addresses) results.
func (e *Extractor) BatchExtract(ctx context.Context, addresses []string, opts Options, cb *BatchCallbacks) []*models.ExtractionResult {
	results := make([]*models.ExtractionResult, len(addresses))
	for i, address := range addresses {
		res, err := e.Extract(ctx, address, opts)
		if err != nil {
			if cb != nil && cb.OnError != nil {
				cb.OnError(i, err)
			}
			res = models.NewEmptyResult(address)
		}
		results[i] = res
		if cb != nil && cb.OnProgress != nil {
			cb.OnProgress(i+1, len(addresses))
		}
	}
	return results
}

// Normalize exposes the canonical form, used by derived operations.
func (e *Extractor) Normalize(address string) string {
	normalized, _ := e.norm.NormalizeAuto(address)
	return normalized
}

// KnowledgeBase the shared geographic data.
func (e *Extractor) KnowledgeBase() *geo.KnowledgeBase { return e.kb }

func cacheKey(normalized string, thresholds Thresholds) string {
	h := sha1.New()
	h.Write([]byte(strings.ToLower(normalized)))
	h.Write([]byte{0})
	h.Write([]byte(thresholds.Fingerprint()))
	return hex.EncodeToString(h.Sum(nil))
}

func elapsedMs(start time.Time) float64 {
	return float64(time.Since(start).Microseconds()) / 1000.0
}
