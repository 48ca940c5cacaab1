package providers

import (
	"context"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/bodycomp"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
)

// TeamData is the complete dataset one fetch produces: the roster plus
// every athlete's biometric window, genetic profiles, body composition
// history, and blood panels for the window ending at the fetch date.
type TeamData struct {
	Athletes []athlete.Athlete
	Samples  []biometrics.Sample
	Profiles []genetics.Profile
	BodyComp []bodycomp.Measurement
	Panels   []blood.Panel
}

// TeamProvider defines how upstream athlete data is fetched and
// normalized. The date parameter, when provided, is a YYYY-MM-DD string
// naming the last day of the window. Providers interpret an empty date
// as "today" in UTC.
type TeamProvider interface {
	FetchTeamData(ctx context.Context, date string) (TeamData, error)
}

// AirQualityProvider fetches the current air quality reading for the
// squad's training location.
type AirQualityProvider interface {
	FetchAirQuality(ctx context.Context) (environment.AirQuality, error)
}
