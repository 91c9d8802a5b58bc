package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
	"github.com/bd-address-extractor/app/requests"
	"github.com/bd-address-extractor/internal/extractor"
)

// ErrJobNotFound unknown batch job id.
var ErrJobNotFound = errors.New("job not found")

// AddressService glues the extraction pipeline to the HTTP surface: shared
// cache in front of single extractions, asynchronous batch jobs, derived
// operations.
type AddressService struct {
	extractor *extractor.Extractor
	cache     ICacheService
	logger    *zap.Logger
	startTime time.Time

	mu   sync.RWMutex
	jobs map[string]*models.BatchJob
}

// NewAddressService cache may be nil when the shared cache is disabled.
func NewAddressService(ext *extractor.Extractor, cache ICacheService, logger *zap.Logger) *AddressService {
	return &AddressService{
		extractor: ext,
		cache:     cache,
		logger:    logger,
		startTime: time.Now(),
		jobs:      make(map[string]*models.BatchJob),
	}
}

// Extract runs one address through the pipeline, consulting the shared
// cache first. The second return reports a shared-cache hit. Requests with
// per-request threshold overrides bypass the shared cache since its keys
// carry only the instance thresholds.
func (as *AddressService) Extract(ctx context.Context, address string, reqOpts requests.ExtractOptions) (*models.ExtractionResult, bool, error) {
	opts, err := as.toOptions(reqOpts)
	if err != nil {
		return nil, false, err
	}

	useShared := as.cache != nil && reqOpts.CacheEnabled() && len(reqOpts.Thresholds) == 0
	var key string
	if useShared {
		key = as.sharedCacheKey(address)
		if cached, found, err := as.cache.Get(ctx, key); err == nil && found {
			cached.Cached = true
			cached.OriginalAddress = address
			if !opts.IncludeMetadata {
				cached.Metadata = nil
			}
			return cached, true, nil
		}
	}

	result, err := as.extractor.Extract(ctx, address, opts)
	if err != nil {
		return nil, false, err
	}

	if useShared && !result.Cached {
		if err := as.cache.Set(ctx, key, result); err != nil {
			as.logger.Warn("shared cache set failed", zap.Error(err))
		}
	}
	return result, result.Cached, nil
}

// Validate delegates with parsed component names.
func (as *AddressService) Validate(ctx context.Context, address string, required []string, reqOpts requests.ExtractOptions) (*models.ValidationResult, error) {
	opts, err := as.toOptions(reqOpts)
	if err != nil {
		return nil, err
	}
	components, err := parseComponents(required)
	if err != nil {
		return nil, err
	}
	return as.extractor.Validate(ctx, address, components, opts)
}

// Compare pairwise similarity of two raw addresses.
func (as *AddressService) Compare(ctx context.Context, a, b string, reqOpts requests.ExtractOptions) (*models.ComparisonResult, error) {
	opts, err := as.toOptions(reqOpts)
	if err != nil {
		return nil, err
	}
	return as.extractor.Compare(ctx, a, b, opts)
}

// Suggest ranked gazetteer completions.
func (as *AddressService) Suggest(query string, limit int) []models.Suggestion {
	if limit <= 0 {
		limit = 10
	}
	return as.extractor.Suggest(query, limit)
}

// Enrich extraction plus geographic augmentation.
func (as *AddressService) Enrich(ctx context.Context, address string, reqOpts requests.ExtractOptions) (*models.EnrichedResult, error) {
	opts, err := as.toOptions(reqOpts)
	if err != nil {
		return nil, err
	}
	return as.extractor.Enrich(ctx, address, opts)
}

// Statistics aggregates over a corpus.
func (as *AddressService) Statistics(ctx context.Context, addresses []string, reqOpts requests.ExtractOptions) (*models.AddressStatistics, error) {
	opts, err := as.toOptions(reqOpts)
	if err != nil {
		return nil, err
	}
	return as.extractor.Statistics(ctx, addresses, opts)
}

// SetThresholds applies new instance thresholds and drops the shared cache,
// whose entries were filtered under the old ones.
func (as *AddressService) SetThresholds(ctx context.Context, raw map[string]float64) error {
	thresholds, err := parseThresholds(raw)
	if err != nil {
		return err
	}
	if err := as.extractor.SetThresholds(thresholds); err != nil {
		return err
	}
	if as.cache != nil {
		if err := as.cache.Clear(ctx); err != nil {
			as.logger.Warn("shared cache clear failed", zap.Error(err))
		}
	}
	return nil
}

// StartBatchJob registers a pending job and processes it in the background.
func (as *AddressService) StartBatchJob(jobID string, addresses []string, reqOpts requests.ExtractOptions) {
	now := time.Now().Unix()
	as.mu.Lock()
	as.jobs[jobID] = &models.BatchJob{
		ID:        jobID,
		Status:    models.JobStatusPending,
		Total:     len(addresses),
		CreatedAt: now,
		UpdatedAt: now,
	}
	as.mu.Unlock()

	go as.processBatchJob(jobID, addresses, reqOpts)
}

func (as *AddressService) processBatchJob(jobID string, addresses []string, reqOpts requests.ExtractOptions) {
	opts, err := as.toOptions(reqOpts)
	if err != nil {
		as.updateJob(jobID, func(job *models.BatchJob) {
			job.Status = models.JobStatusFailed
		})
		as.logger.Error("batch job rejected", zap.String("job_id", jobID), zap.Error(err))
		return
	}

	as.updateJob(jobID, func(job *models.BatchJob) {
		job.Status = models.JobStatusRunning
	})

	callbacks := &extractor.BatchCallbacks{
		OnProgress: func(done, total int) {
			as.updateJob(jobID, func(job *models.BatchJob) {
				job.Processed = done
			})
		},
		OnError: func(index int, err error) {
			as.updateJob(jobID, func(job *models.BatchJob) {
				job.Failed++
			})
			as.logger.Warn("batch item failed",
				zap.String("job_id", jobID), zap.Int("index", index), zap.Error(err))
		},
	}
	results := as.extractor.BatchExtract(context.Background(), addresses, opts, callbacks)

	as.updateJob(jobID, func(job *models.BatchJob) {
		job.Status = models.JobStatusCompleted
		job.Results = results
	})
	as.logger.Info("batch job completed",
		zap.String("job_id", jobID), zap.Int("total", len(addresses)))
}

func (as *AddressService) updateJob(jobID string, fn func(*models.BatchJob)) {
	as.mu.Lock()
	defer as.mu.Unlock()
	if job, ok := as.jobs[jobID]; ok {
		fn(job)
		job.UpdatedAt = time.Now().Unix()
	}
}

// GetJob snapshot without results.
func (as *AddressService) GetJob(jobID string) (*models.BatchJob, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	job, ok := as.jobs[jobID]
	if !ok {
		return nil, ErrJobNotFound
	}
	snapshot := *job
	snapshot.Results = nil
	return &snapshot, nil
}

// GetJobResults results of a completed job.
func (as *AddressService) GetJobResults(jobID string) ([]*models.ExtractionResult, error) {
	as.mu.RLock()
	defer as.mu.RUnlock()
	job, ok := as.jobs[jobID]
	if !ok {
		return nil, ErrJobNotFound
	}
	if job.Status != models.JobStatusCompleted {
		return nil, fmt.Errorf("job %s is %s", jobID, job.Status)
	}
	return job.Results, nil
}

// EstimateBatchSeconds rough wall-clock estimate assuming ~10ms per address.
func (as *AddressService) EstimateBatchSeconds(addressCount int) int {
	seconds := addressCount / 100
	if seconds < 1 {
		seconds = 1
	}
	return seconds
}

// GetStartTime service start, for uptime reporting.
func (as *AddressService) GetStartTime() time.Time {
	return as.startTime
}

// NERAvailable model backend health.
func (as *AddressService) NERAvailable() bool {
	return as.extractor.NERAvailable()
}

// CacheStats shared cache counters; nil service reports empty stats.
func (as *AddressService) CacheStats(ctx context.Context) (*CacheStats, error) {
	if as.cache == nil {
		return &CacheStats{}, nil
	}
	return as.cache.GetStats(ctx)
}

func (as *AddressService) sharedCacheKey(address string) string {
	return strings.ToLower(strings.TrimSpace(as.extractor.Normalize(address)))
}

func (as *AddressService) toOptions(reqOpts requests.ExtractOptions) (extractor.Options, error) {
	opts := extractor.Options{IncludeMetadata: reqOpts.IncludeMetadata}
	if reqOpts.TimeoutSeconds > 0 {
		opts.Timeout = time.Duration(reqOpts.TimeoutSeconds) * time.Second
	}
	if len(reqOpts.Thresholds) > 0 {
		thresholds, err := parseThresholds(reqOpts.Thresholds)
		if err != nil {
			return opts, err
		}
		opts.Thresholds = thresholds
	}
	return opts, nil
}

func parseThresholds(raw map[string]float64) (extractor.Thresholds, error) {
	thresholds := make(extractor.Thresholds, len(raw))
	for name, v := range raw {
		component, err := parseComponent(name)
		if err != nil {
			return nil, err
		}
		thresholds[component] = v
	}
	if err := thresholds.Validate(); err != nil {
		return nil, err
	}
	return thresholds, nil
}

func parseComponents(names []string) ([]models.AddressComponent, error) {
	out := make([]models.AddressComponent, 0, len(names))
	for _, name := range names {
		component, err := parseComponent(name)
		if err != nil {
			return nil, err
		}
		out = append(out, component)
	}
	return out, nil
}

func parseComponent(name string) (models.AddressComponent, error) {
	candidate := models.AddressComponent(strings.ToLower(strings.TrimSpace(name)))
	for _, known := range models.AllComponents {
		if candidate == known {
			return known, nil
		}
	}
	return "", fmt.Errorf("unknown component %q", name)
}
