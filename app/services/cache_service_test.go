package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bd-address-extractor/app/models"
)

func sampleResult() *models.ExtractionResult {
	return &models.ExtractionResult{
		Components: map[models.AddressComponent]string{
			models.ComponentArea:     "Mirpur",
			models.ComponentDistrict: "Dhaka",
		},
		PerComponentConfidence: map[models.AddressComponent]float64{
			models.ComponentArea:     0.95,
			models.ComponentDistrict: 0.93,
		},
		OverallConfidence: 0.94,
		NormalizedAddress: "Mirpur, Dhaka",
		OriginalAddress:   "Mirpur, Dhaka",
	}
}

func TestCacheService_SetGet(t *testing.T) {
	ctx := context.Background()
	cs, err := NewCacheService(16, time.Minute)
	require.NoError(t, err)

	require.NoError(t, cs.Set(ctx, "k", sampleResult()))

	got, found, err := cs.Get(ctx, "k")
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, "Mirpur", got.Components[models.ComponentArea])
	assert.Equal(t, 0.94, got.OverallConfidence)

	_, found, err = cs.Get(ctx, "absent")
	require.NoError(t, err)
	assert.False(t, found)
}

func TestCacheService_ClonesOnReadAndWrite(t *testing.T) {
	ctx := context.Background()
	cs, err := NewCacheService(16, time.Minute)
	require.NoError(t, err)

	original := sampleResult()
	require.NoError(t, cs.Set(ctx, "k", original))
	original.Components[models.ComponentArea] = "tampered at write"

	first, _, err := cs.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "Mirpur", first.Components[models.ComponentArea])

	first.Components[models.ComponentArea] = "tampered at read"
	second, _, err := cs.Get(ctx, "k")
	require.NoError(t, err)
	assert.Equal(t, "Mirpur", second.Components[models.ComponentArea])
}

func TestCacheService_TTLExpiry(t *testing.T) {
	ctx := context.Background()
	cs, err := NewCacheService(16, 10*time.Millisecond)
	require.NoError(t, err)

	require.NoError(t, cs.Set(ctx, "k", sampleResult()))
	time.Sleep(25 * time.Millisecond)

	_, found, err := cs.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, found, "entry should expire after its ttl")

	exists, err := cs.Exists(ctx, "k")
	require.NoError(t, err)
	assert.False(t, exists)
}

func TestCacheService_GetTTL(t *testing.T) {
	ctx := context.Background()
	cs, err := NewCacheService(16, time.Minute)
	require.NoError(t, err)

	require.NoError(t, cs.Set(ctx, "k", sampleResult()))
	remaining, err := cs.GetTTL(ctx, "k")
	require.NoError(t, err)
	assert.Greater(t, remaining, time.Duration(0))
	assert.LessOrEqual(t, remaining, time.Minute)

	remaining, err = cs.GetTTL(ctx, "absent")
	require.NoError(t, err)
	assert.Equal(t, time.Duration(0), remaining)
}

func TestCacheService_DeleteAndClear(t *testing.T) {
	ctx := context.Background()
	cs, err := NewCacheService(16, time.Minute)
	require.NoError(t, err)

	require.NoError(t, cs.Set(ctx, "a", sampleResult()))
	require.NoError(t, cs.Set(ctx, "b", sampleResult()))

	require.NoError(t, cs.Delete(ctx, "a"))
	_, found, _ := cs.Get(ctx, "a")
	assert.False(t, found)

	require.NoError(t, cs.Clear(ctx))
	_, found, _ = cs.Get(ctx, "b")
	assert.False(t, found)
}

func TestCacheService_Stats(t *testing.T) {
	ctx := context.Background()
	cs, err := NewCacheService(16, time.Minute)
	require.NoError(t, err)

	require.NoError(t, cs.Set(ctx, "k", sampleResult()))
	cs.Get(ctx, "k")      // hit
	cs.Get(ctx, "absent") // miss

	stats, err := cs.GetStats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), stats.TotalHits)
	assert.Equal(t, int64(1), stats.TotalMiss)
	assert.Equal(t, int64(1), stats.TotalItems)
	assert.InDelta(t, 0.5, stats.HitRate, 1e-9)
}
