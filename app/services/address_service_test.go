package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/bd-address-extractor/app/models"
	"github.com/bd-address-extractor/app/requests"
	"github.com/bd-address-extractor/internal/extractor"
	"github.com/bd-address-extractor/internal/geo"
)

// newTestService builds a service over a cacheless extractor so every
// shared-cache assertion observes the service layer, not the pipeline's own
// LRU.
func newTestService(t *testing.T, withCache bool) *AddressService {
	t.Helper()
	logger := zap.NewNop()
	kb := geo.NewKnowledgeBase(logger)
	ext, err := extractor.New(extractor.Config{CacheSize: 0}, nil, kb, logger)
	require.NoError(t, err)

	var cache ICacheService
	if withCache {
		cache, err = NewCacheService(64, time.Minute)
		require.NoError(t, err)
	}
	return NewAddressService(ext, cache, logger)
}

func TestServiceExtract_SharedCache(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()
	address := "House 12, Road 5, Mirpur, Dhaka-1216"

	first, hit, err := svc.Extract(ctx, address, requests.ExtractOptions{})
	require.NoError(t, err)
	assert.False(t, hit)

	second, hit, err := svc.Extract(ctx, address, requests.ExtractOptions{})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.True(t, second.Cached)
	assert.Equal(t, first.Components, second.Components)
	assert.Equal(t, first.OverallConfidence, second.OverallConfidence)
	assert.Equal(t, address, second.OriginalAddress)
}

func TestServiceExtract_CacheKeyIsNormalized(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	_, _, err := svc.Extract(ctx, "Mirpur, Dhaka", requests.ExtractOptions{})
	require.NoError(t, err)

	// same address after normalization
	_, hit, err := svc.Extract(ctx, "  mirpur ,, DHAKA ", requests.ExtractOptions{})
	require.NoError(t, err)
	assert.True(t, hit, "normalization-equivalent spellings should share a cache entry")
}

func TestServiceExtract_ThresholdOverridesBypassCache(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()
	address := "Mirpur, Dhaka"
	reqOpts := requests.ExtractOptions{Thresholds: map[string]float64{"postal": 0.95}}

	_, hit, err := svc.Extract(ctx, address, reqOpts)
	require.NoError(t, err)
	assert.False(t, hit)

	_, hit, err = svc.Extract(ctx, address, reqOpts)
	require.NoError(t, err)
	assert.False(t, hit, "per-request thresholds must bypass the shared cache")
}

func TestServiceExtract_UseCacheFalse(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()
	disabled := false
	reqOpts := requests.ExtractOptions{UseCache: &disabled}

	_, _, err := svc.Extract(ctx, "Mirpur, Dhaka", reqOpts)
	require.NoError(t, err)
	_, hit, err := svc.Extract(ctx, "Mirpur, Dhaka", reqOpts)
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestServiceExtract_MetadataOnCacheHit(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()
	address := "Banani, Dhaka"

	_, _, err := svc.Extract(ctx, address, requests.ExtractOptions{IncludeMetadata: true})
	require.NoError(t, err)

	plain, hit, err := svc.Extract(ctx, address, requests.ExtractOptions{})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Nil(t, plain.Metadata)

	detailed, hit, err := svc.Extract(ctx, address, requests.ExtractOptions{IncludeMetadata: true})
	require.NoError(t, err)
	assert.True(t, hit)
	assert.NotNil(t, detailed.Metadata)
}

func TestServiceExtract_InvalidThresholdName(t *testing.T) {
	svc := newTestService(t, true)

	_, _, err := svc.Extract(context.Background(), "Mirpur, Dhaka",
		requests.ExtractOptions{Thresholds: map[string]float64{"galaxy": 0.5}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown component")
}

func TestServiceValidate(t *testing.T) {
	svc := newTestService(t, false)
	ctx := context.Background()

	vr, err := svc.Validate(ctx, "Mirpur, Dhaka", []string{"district", "area"}, requests.ExtractOptions{})
	require.NoError(t, err)
	assert.True(t, vr.IsValid)

	_, err = svc.Validate(ctx, "Mirpur, Dhaka", []string{"galaxy"}, requests.ExtractOptions{})
	require.Error(t, err)
}

func TestServiceCompare(t *testing.T) {
	svc := newTestService(t, false)

	cr, err := svc.Compare(context.Background(),
		"House 12, Road 5, Mirpur, Dhaka-1216",
		"H-12, R-5, Mirpur, Dhaka", requests.ExtractOptions{})
	require.NoError(t, err)
	assert.True(t, cr.Match)
}

func TestServiceSuggest_DefaultLimit(t *testing.T) {
	svc := newTestService(t, false)

	got := svc.Suggest("mir", 0)
	assert.NotEmpty(t, got)
	assert.LessOrEqual(t, len(got), 10)
	assert.Equal(t, "Mirpur", got[0].Area)
}

func TestServiceSetThresholds(t *testing.T) {
	svc := newTestService(t, true)
	ctx := context.Background()

	require.Error(t, svc.SetThresholds(ctx, map[string]float64{"house": 2.0}))
	require.Error(t, svc.SetThresholds(ctx, map[string]float64{"galaxy": 0.5}))

	// a threshold change invalidates shared-cache entries filtered under the
	// old settings
	_, _, err := svc.Extract(ctx, "Mirpur, Dhaka", requests.ExtractOptions{})
	require.NoError(t, err)
	require.NoError(t, svc.SetThresholds(ctx, map[string]float64{"house": 0.9}))

	_, hit, err := svc.Extract(ctx, "Mirpur, Dhaka", requests.ExtractOptions{})
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestBatchJob_Lifecycle(t *testing.T) {
	svc := newTestService(t, false)
	addresses := []string{"Mirpur, Dhaka", "Banani, Dhaka", ""}

	svc.StartBatchJob("job-1", addresses, requests.ExtractOptions{})

	deadline := time.Now().Add(5 * time.Second)
	var job *models.BatchJob
	for time.Now().Before(deadline) {
		var err error
		job, err = svc.GetJob("job-1")
		require.NoError(t, err)
		if job.Status == models.JobStatusCompleted {
			break
		}
		time.Sleep(10 * time.Millisecond)
	}
	require.NotNil(t, job)
	require.Equal(t, models.JobStatusCompleted, job.Status)
	assert.Equal(t, 3, job.Total)
	assert.Equal(t, 3, job.Processed)
	assert.Equal(t, 0, job.Failed)
	assert.Nil(t, job.Results, "status snapshots must not carry results")

	results, err := svc.GetJobResults("job-1")
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "Mirpur", results[0].Components[models.ComponentArea])
}

func TestBatchJob_NotFound(t *testing.T) {
	svc := newTestService(t, false)

	_, err := svc.GetJob("missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
	_, err = svc.GetJobResults("missing")
	assert.ErrorIs(t, err, ErrJobNotFound)
}

func TestBatchJob_ResultsBeforeCompletion(t *testing.T) {
	svc := newTestService(t, false)
	svc.mu.Lock()
	svc.jobs["running"] = &models.BatchJob{ID: "running", Status: models.JobStatusRunning}
	svc.mu.Unlock()

	_, err := svc.GetJobResults("running")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "running")
}

func TestEstimateBatchSeconds(t *testing.T) {
	svc := newTestService(t, false)
	assert.Equal(t, 1, svc.EstimateBatchSeconds(50))
	assert.Equal(t, 10, svc.EstimateBatchSeconds(1000))
}

func TestCacheStats_NilCache(t *testing.T) {
	svc := newTestService(t, false)
	stats, err := svc.CacheStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(0), stats.TotalHits)
}
