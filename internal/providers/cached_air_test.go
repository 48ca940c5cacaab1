package providers

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/cache"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/metrics"
)

func TestCachedAirProviderFetchesOnMissAndServesFromCache(t *testing.T) {
	inner := &stubAirProvider{reading: environment.AirQuality{City: "Stellenbosch", AQIUS: 58}}
	rec := metrics.NewRecorder()
	cp := NewCachedAirProvider(inner, cache.NewMemory(), time.Minute, nil, rec)

	first, err := cp.FetchAirQuality(context.Background())
	if err != nil {
		t.Fatalf("expected first fetch to succeed, got %v", err)
	}
	if first.AQIUS != 58 {
		t.Fatalf("unexpected first reading %+v", first)
	}

	second, err := cp.FetchAirQuality(context.Background())
	if err != nil {
		t.Fatalf("expected cached fetch to succeed, got %v", err)
	}
	if second.AQIUS != 58 || second.City != "Stellenbosch" {
		t.Fatalf("unexpected cached reading %+v", second)
	}

	if got := inner.calls.Load(); got != 1 {
		t.Fatalf("expected inner provider called once, got %d", got)
	}
	if got := rec.CacheMisses("air_quality"); got != 1 {
		t.Fatalf("expected 1 cache miss, got %d", got)
	}
	if got := rec.CacheHits("air_quality"); got != 1 {
		t.Fatalf("expected 1 cache hit, got %d", got)
	}
}

func TestCachedAirProviderPropagatesFetchError(t *testing.T) {
	inner := &stubAirProvider{err: errors.New("upstream down")}
	cp := NewCachedAirProvider(inner, cache.NewMemory(), time.Minute, nil, nil)

	if _, err := cp.FetchAirQuality(context.Background()); err == nil {
		t.Fatalf("expected fetch error to propagate")
	}
}

func TestCachedAirProviderTreatsCorruptEntryAsMiss(t *testing.T) {
	store := cache.NewMemory()
	if err := store.Set(context.Background(), airCacheKey, "{not json", time.Minute); err != nil {
		t.Fatalf("seed cache: %v", err)
	}

	inner := &stubAirProvider{reading: environment.AirQuality{AQIUS: 71}}
	cp := NewCachedAirProvider(inner, store, time.Minute, nil, nil)

	reading, err := cp.FetchAirQuality(context.Background())
	if err != nil {
		t.Fatalf("expected fetch to succeed past corrupt entry, got %v", err)
	}
	if reading.AQIUS != 71 {
		t.Fatalf("expected fresh reading, got %+v", reading)
	}
	if inner.calls.Load() != 1 {
		t.Fatalf("expected inner provider called once, got %d", inner.calls.Load())
	}
}

func TestCachedAirProviderWorksWithoutCache(t *testing.T) {
	inner := &stubAirProvider{reading: environment.AirQuality{AQIUS: 33}}
	cp := NewCachedAirProvider(inner, nil, 0, nil, nil)

	for i := 0; i < 2; i++ {
		reading, err := cp.FetchAirQuality(context.Background())
		if err != nil {
			t.Fatalf("expected fetch to succeed, got %v", err)
		}
		if reading.AQIUS != 33 {
			t.Fatalf("unexpected reading %+v", reading)
		}
	}
	if inner.calls.Load() != 2 {
		t.Fatalf("expected passthrough on every call without cache, got %d", inner.calls.Load())
	}
}
