package snapshots

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/bodycomp"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
)

// SquadStore updates in-memory roster/labs data when static snapshots refresh.
type SquadStore interface {
	SetAthletes([]athlete.Athlete)
	SetProfiles([]genetics.Profile)
	SetBodyComp([]bodycomp.Measurement)
	SetPanels([]blood.Panel)
}

// Syncer backfills and prunes snapshots on a schedule.
type Syncer struct {
	provider   providers.TeamProvider
	writer     *Writer
	cfg        SyncConfig
	logger     *slog.Logger
	now        func() time.Time
	squadStore SquadStore
	newTicker  func(time.Duration) *time.Ticker
}

// SyncConfig controls snapshot sync behavior.
type SyncConfig struct {
	Enabled           bool
	Days              int
	Interval          time.Duration
	DailyHourUTC      int
	RosterRefreshDays int
	LabsRefreshHours  int
}

// NewSyncer constructs a snapshot syncer.
func NewSyncer(provider providers.TeamProvider, writer *Writer, cfg SyncConfig, logger *slog.Logger, squadStore SquadStore) *Syncer {
	if cfg.Days <= 0 {
		cfg.Days = 7
	}
	if cfg.Interval <= 0 {
		cfg.Interval = time.Minute
	}
	if cfg.DailyHourUTC < 0 || cfg.DailyHourUTC > 23 {
		cfg.DailyHourUTC = 2
	}
	if cfg.RosterRefreshDays <= 0 {
		cfg.RosterRefreshDays = 7
	}
	if cfg.LabsRefreshHours <= 0 {
		cfg.LabsRefreshHours = 24
	}

	return &Syncer{
		provider:   provider,
		writer:     writer,
		cfg:        cfg,
		logger:     logger,
		now:        time.Now,
		squadStore: squadStore,
		newTicker:  time.NewTicker,
	}
}

// Run performs a one-time backfill for the last N days, spaced by Interval.
// Callers should run this in a goroutine.
func (s *Syncer) Run(ctx context.Context) {
	if s == nil || !s.cfg.Enabled || s.writer == nil || s.provider == nil {
		return
	}
	s.logInfo(
		"snapshot sync starting",
		"past_days", s.cfg.Days,
		"interval", s.cfg.Interval.String(),
		"daily_hour_utc", s.cfg.DailyHourUTC,
		"roster_refresh_days", s.cfg.RosterRefreshDays,
		"labs_refresh_hours", s.cfg.LabsRefreshHours,
	)
	s.syncStatic(ctx, s.now().UTC())
	s.backfill(ctx, s.now().UTC())
	go s.daily(ctx)
}

func (s *Syncer) backfill(ctx context.Context, now time.Time) {
	dates := s.buildDates(now)
	for i, date := range dates {
		select {
		case <-ctx.Done():
			return
		default:
		}
		s.fetchAndWrite(ctx, date)
		if i < len(dates)-1 {
			s.sleep(ctx, s.cfg.Interval)
		}
	}
}

func (s *Syncer) daily(ctx context.Context) {
	ticker := s.newTicker(time.Hour)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			if now.UTC().Hour() == s.cfg.DailyHourUTC {
				current := s.now().UTC()
				s.syncStatic(ctx, current)
				s.backfill(ctx, current)
			}
		}
	}
}

func (s *Syncer) buildDates(now time.Time) []string {
	var dates []string
	today := now.Format("2006-01-02")
	yesterday := now.AddDate(0, 0, -1).Format("2006-01-02")

	// Always refresh today and yesterday to capture late wearable syncs.
	dates = append(dates, today, yesterday)

	// Past window beyond yesterday: only fetch if missing (e.g., startup or outage).
	for i := 2; i < s.cfg.Days; i++ {
		date := now.AddDate(0, 0, -i).Format("2006-01-02")
		if !s.hasSnapshot(kindDays, date) {
			dates = append(dates, date)
		}
	}

	return dates
}

func (s *Syncer) fetchAndWrite(ctx context.Context, date string) {
	start := time.Now()
	data, err := s.provider.FetchTeamData(ctx, date)
	if err != nil {
		s.logWarn("snapshot sync fetch failed", "date", date, "err", err)
		return
	}
	samples := samplesOn(data.Samples, date)
	if len(samples) == 0 {
		s.logWarn("snapshot sync received no samples", "date", date)
		return
	}
	snap := biometrics.NewTeamDay(date, samples, nil)
	if err := s.writer.WriteDaySnapshot(date, snap); err != nil {
		s.logWarn("snapshot sync write failed", "date", date, "err", err)
		return
	}
	s.logInfo("snapshot written",
		"date", date,
		"count", len(samples),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Syncer) syncStatic(ctx context.Context, now time.Time) {
	rosterDue := s.shouldRefresh(kindRoster, now)
	labsDue := s.shouldRefresh(kindLabs, now)
	if !rosterDue && !labsDue {
		return
	}

	start := time.Now()
	data, err := s.provider.FetchTeamData(ctx, "")
	if err != nil {
		s.logWarn("static snapshot fetch failed", "err", err)
		return
	}

	date := now.Format("2006-01-02")
	if rosterDue {
		s.syncRoster(date, data, start)
	}
	if labsDue {
		s.syncLabs(date, data, start)
	}
}

func (s *Syncer) syncRoster(date string, data providers.TeamData, start time.Time) {
	snap := RosterSnapshot{Date: date, Athletes: data.Athletes, Profiles: data.Profiles}
	if err := s.writer.WriteRosterSnapshot(date, snap); err != nil {
		s.logWarn("roster snapshot write failed", "err", err)
		return
	}
	if s.squadStore != nil {
		s.squadStore.SetAthletes(data.Athletes)
		s.squadStore.SetProfiles(data.Profiles)
	}
	s.logInfo("roster snapshot written", "athletes", len(data.Athletes), "duration_ms", time.Since(start).Milliseconds())
}

func (s *Syncer) syncLabs(date string, data providers.TeamData, start time.Time) {
	snap := LabsSnapshot{Date: date, BodyComp: data.BodyComp, Panels: data.Panels}
	if err := s.writer.WriteLabsSnapshot(date, snap); err != nil {
		s.logWarn("labs snapshot write failed", "err", err)
		return
	}
	if s.squadStore != nil {
		s.squadStore.SetBodyComp(data.BodyComp)
		s.squadStore.SetPanels(data.Panels)
	}
	s.logInfo("labs snapshot written",
		"scans", len(data.BodyComp),
		"panels", len(data.Panels),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

func (s *Syncer) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
	case <-timer.C:
	}
}

func (s *Syncer) logInfo(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Info(msg, args...)
	}
}

func (s *Syncer) logWarn(msg string, args ...any) {
	if s.logger != nil {
		s.logger.Warn(msg, args...)
	}
}

func (s *Syncer) hasSnapshot(kind snapshotKind, date string) bool {
	if s == nil || s.writer == nil || s.writer.basePath == "" || date == "" {
		return false
	}
	path := s.writer.snapshotPath(kind, date)
	_, err := os.Stat(path)
	return err == nil
}

func (s *Syncer) shouldRefresh(kind snapshotKind, now time.Time) bool {
	if s == nil || s.writer == nil {
		return true
	}
	manifestPath := filepath.Join(s.writer.basePath, "manifest.json")
	m, _ := readManifest(manifestPath, s.writer.retentionDays)

	switch kind {
	case kindRoster:
		if m.Roster.LastRefreshed.IsZero() {
			return true
		}
		next := m.Roster.LastRefreshed.AddDate(0, 0, s.cfg.RosterRefreshDays)
		return !now.Before(next)
	case kindLabs:
		if m.Labs.LastRefreshed.IsZero() {
			return true
		}
		next := m.Labs.LastRefreshed.Add(time.Duration(s.cfg.LabsRefreshHours) * time.Hour)
		return !now.Before(next)
	default:
		return true
	}
}

func samplesOn(samples []biometrics.Sample, date string) []biometrics.Sample {
	var out []biometrics.Sample
	for _, s := range samples {
		if s.Date == date {
			out = append(out, s)
		}
	}
	return out
}
