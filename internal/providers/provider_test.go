package providers

import (
	"context"
	"testing"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
)

type testProvider struct{}

func (t *testProvider) FetchTeamData(ctx context.Context, date string) (TeamData, error) {
	_ = ctx
	_ = date
	return TeamData{}, nil
}

type testAirProvider struct{}

func (t *testAirProvider) FetchAirQuality(ctx context.Context) (environment.AirQuality, error) {
	_ = ctx
	return environment.AirQuality{}, nil
}

func TestProviderInterfacesImplemented(t *testing.T) {
	var _ TeamProvider = (*testProvider)(nil)
	var _ AirQualityProvider = (*testAirProvider)(nil)
}
