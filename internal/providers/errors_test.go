package providers

import (
	"errors"
	"fmt"
	"testing"
)

func TestRateLimitErrorString(t *testing.T) {
	err := &RateLimitError{
		Provider:   "p",
		StatusCode: 429,
		Message:    "rate limited",
	}
	if got := err.Error(); got == "" || got == "rate limited" {
		t.Fatalf("expected status in error string, got %q", got)
	}

	rl, ok := AsRateLimitError(err)
	if !ok || rl == nil {
		t.Fatalf("expected to unwrap rate limit error")
	}

	noStatus := &RateLimitError{}
	if got := noStatus.Error(); got == "" {
		t.Fatalf("expected fallback message")
	}
}

func TestAsRateLimitErrorUnwrapsWrapped(t *testing.T) {
	inner := &RateLimitError{Provider: "iqair", StatusCode: 429}
	wrapped := fmt.Errorf("fetch air quality: %w", inner)

	rl, ok := AsRateLimitError(wrapped)
	if !ok || rl.Provider != "iqair" {
		t.Fatalf("expected wrapped rate limit error, got %v ok=%v", rl, ok)
	}

	if _, ok := AsRateLimitError(errors.New("boom")); ok {
		t.Fatalf("expected plain error not to unwrap")
	}
}

func TestErrProviderUnavailableIsSentinel(t *testing.T) {
	wrapped := fmt.Errorf("poll: %w", ErrProviderUnavailable)
	if !errors.Is(wrapped, ErrProviderUnavailable) {
		t.Fatalf("expected errors.Is to match sentinel")
	}
}
