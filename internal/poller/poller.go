package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/alerts"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/bodycomp"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/logging"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/metrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/timeutil"
)

const defaultInterval = 5 * time.Minute

// TeamStore receives fetched team data and serves back the stored day.
type TeamStore interface {
	SetAthletes([]athlete.Athlete)
	SetSamples([]biometrics.Sample)
	SetProfiles([]genetics.Profile)
	SetBodyComp([]bodycomp.Measurement)
	SetPanels([]blood.Panel)
	SetAirQuality(environment.AirQuality)
	SamplesOn(date string) []biometrics.Sample
	AirQuality() (environment.AirQuality, bool)
}

// AlertEvaluator runs recovery alert rules after each refresh.
type AlertEvaluator interface {
	Evaluate(ctx context.Context, date string) []alerts.Alert
}

// SnapshotWriter persists team-day snapshots to disk.
type SnapshotWriter interface {
	WriteDaySnapshot(date string, snapshot biometrics.TeamDay) error
}

// Deps bundles the poller's collaborators.
type Deps struct {
	Provider providers.TeamProvider
	Air      providers.AirQualityProvider
	Store    TeamStore
	Alerts   AlertEvaluator
	Writer   SnapshotWriter
	Logger   *slog.Logger
	Metrics  *metrics.Recorder
}

// Poller fetches team data on an interval, refreshes the in-memory store,
// evaluates alerts, and writes today's snapshot to disk.
type Poller struct {
	provider providers.TeamProvider
	air      providers.AirQualityProvider
	store    TeamStore
	alerts   AlertEvaluator
	writer   SnapshotWriter
	logger   *slog.Logger
	metrics  *metrics.Recorder
	interval time.Duration
	now      func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the poller loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(deps Deps, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		provider: deps.Provider,
		air:      deps.Air,
		store:    deps.Store,
		alerts:   deps.Alerts,
		writer:   deps.Writer,
		logger:   deps.Logger,
		metrics:  deps.Metrics,
		interval: interval,
		now:      time.Now,
		done:     make(chan struct{}),
	}
}

// Start begins polling until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		p.logInfo("poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial fetch to warm data on boot.
		p.fetchOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				p.logInfo("poller stopped")
				return
			case <-p.ticker.C:
				p.fetchOnce(ctx)
			}
		}
	}()
}

// Stop halts the polling loop.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
	return nil
}

func (p *Poller) fetchOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)
	today := timeutil.FormatDate(p.now().UTC())
	data, err := p.provider.FetchTeamData(ctx, today)
	if p.metrics != nil {
		p.metrics.RecordPollerCycle(time.Since(start), err)
	}
	if err != nil {
		p.logError("poller fetch failed", err, slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()))
		p.recordFailure(err, start)
		return
	}

	if p.store != nil {
		p.store.SetAthletes(data.Athletes)
		p.store.SetSamples(data.Samples)
		p.store.SetProfiles(data.Profiles)
		p.store.SetBodyComp(data.BodyComp)
		p.store.SetPanels(data.Panels)
	}

	p.refreshAirQuality(ctx)

	alertCount := 0
	if p.alerts != nil {
		alertCount = len(p.alerts.Evaluate(ctx, today))
	}

	if p.writer != nil && p.store != nil {
		samples := p.store.SamplesOn(today)
		var aq *environment.AirQuality
		if reading, ok := p.store.AirQuality(); ok {
			aq = &reading
		}
		snap := biometrics.NewTeamDay(today, samples, aq)
		if writeErr := p.writer.WriteDaySnapshot(today, snap); writeErr != nil {
			p.logError("poller snapshot write failed", writeErr)
		}
	}
	p.recordSuccess(start)
	p.logInfo("poller refreshed team data",
		logging.FieldCount, len(data.Samples),
		"alerts", alertCount,
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
}

// refreshAirQuality pulls the latest reading into the store. Failures are
// logged and skipped; stale air data must not block biometric refreshes.
func (p *Poller) refreshAirQuality(ctx context.Context) {
	if p.air == nil || p.store == nil {
		return
	}
	reading, err := p.air.FetchAirQuality(ctx)
	if err != nil {
		p.logError("air quality refresh failed", err)
		return
	}
	p.store.SetAirQuality(reading)
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) logInfo(msg string, args ...any) {
	if p.logger != nil {
		p.logger.Info(msg, args...)
	}
}

func (p *Poller) logError(msg string, err error, attrs ...any) {
	if p.logger != nil {
		p.logger.Error(msg, append(attrs, "error", err)...)
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// Provider exposes the underlying team provider (primarily for cleanup in callers).
func (p *Poller) Provider() providers.TeamProvider {
	return p.provider
}

// AirProvider exposes the underlying air provider (primarily for cleanup in callers).
func (p *Poller) AirProvider() providers.AirQualityProvider {
	return p.air
}
