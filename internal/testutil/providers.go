package testutil

import (
	"context"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
)

// GoodProvider returns the provided team data with no error.
type GoodProvider struct {
	Data providers.TeamData
}

func (p GoodProvider) FetchTeamData(ctx context.Context, date string) (providers.TeamData, error) {
	_ = ctx
	_ = date
	return p.Data, nil
}

// ErrProvider always returns the provided error.
type ErrProvider struct {
	Err error
}

func (p ErrProvider) FetchTeamData(ctx context.Context, date string) (providers.TeamData, error) {
	return providers.TeamData{}, p.Err
}

// EmptyProvider returns an empty dataset, no error.
type EmptyProvider struct{}

func (EmptyProvider) FetchTeamData(ctx context.Context, date string) (providers.TeamData, error) {
	return providers.TeamData{}, nil
}

// UnavailableProvider returns ErrProviderUnavailable.
type UnavailableProvider struct{}

func (UnavailableProvider) FetchTeamData(ctx context.Context, date string) (providers.TeamData, error) {
	return providers.TeamData{}, providers.ErrProviderUnavailable
}

// NotifyingProvider returns data and closes Notify on first fetch.
type NotifyingProvider struct {
	Data   providers.TeamData
	Notify chan struct{}
}

func (p *NotifyingProvider) FetchTeamData(ctx context.Context, date string) (providers.TeamData, error) {
	_ = ctx
	_ = date
	if p.Notify != nil {
		select {
		case <-p.Notify:
		default:
			close(p.Notify)
		}
	}
	return p.Data, nil
}
