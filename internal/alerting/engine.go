// Package alerting evaluates threshold rules against team state and
// raises deduplicated alerts into the alert log.
package alerting

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/alerts"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/athlete"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/blood"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/environment"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/genetics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/logging"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/metrics"
)

// Log is the persistence surface the engine writes raised alerts to.
type Log interface {
	Insert(ctx context.Context, a alerts.Alert) error
	ListOpen(ctx context.Context) ([]alerts.Alert, error)
}

// TeamReader is the store surface the engine evaluates against.
type TeamReader interface {
	ListAthletes() []athlete.Athlete
	Samples(athleteID string, days int) []biometrics.Sample
	LatestPanel(athleteID string) (blood.Panel, bool)
	Profile(athleteID string) (genetics.Profile, bool)
	AirQuality() (environment.AirQuality, bool)
}

// Engine raises at most one alert per athlete, metric, and day. A rule
// firing again on the same day is suppressed unless its severity
// escalates above what was already raised.
type Engine struct {
	log     Log
	team    TeamReader
	logger  *slog.Logger
	metrics *metrics.Recorder

	mu   sync.Mutex
	seen map[string]alerts.Severity

	now   func() time.Time
	newID func() string
}

// NewEngine constructs an Engine evaluating the given team state and
// writing raised alerts to the log.
func NewEngine(log Log, team TeamReader, logger *slog.Logger, recorder *metrics.Recorder) *Engine {
	return &Engine{
		log:     log,
		team:    team,
		logger:  logger,
		metrics: recorder,
		seen:    make(map[string]alerts.Severity),
		now:     time.Now,
		newID:   uuid.NewString,
	}
}

// WarmStart seeds the dedupe state from open alerts so restarting the
// service does not re-raise what is already on the board.
func (e *Engine) WarmStart(ctx context.Context) error {
	open, err := e.log.ListOpen(ctx)
	if err != nil {
		return err
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	for _, a := range open {
		key := a.DedupeKey()
		if a.Severity.Rank() > e.seen[key].Rank() {
			e.seen[key] = a.Severity
		}
	}
	return nil
}

// Evaluate runs every rule against the team state for one day and
// returns the alerts newly raised.
func (e *Engine) Evaluate(ctx context.Context, date string) []alerts.Alert {
	var air *environment.AirQuality
	if aq, ok := e.team.AirQuality(); ok {
		air = &aq
	}

	var raised []alerts.Alert
	for _, a := range e.team.ListAthletes() {
		samples := e.team.Samples(a.ID, 0)

		var panel *blood.Panel
		if p, ok := e.team.LatestPanel(a.ID); ok {
			panel = &p
		}
		var profile *genetics.Profile
		if p, ok := e.team.Profile(a.ID); ok {
			profile = &p
		}

		for _, c := range evaluateRules(samples, panel, profile, air) {
			if alert, ok := e.raise(ctx, a.ID, date, c); ok {
				raised = append(raised, alert)
			}
		}
	}

	e.prune(date)
	return raised
}

// raise persists one candidate unless the same bucket already fired at
// equal or higher severity today.
func (e *Engine) raise(ctx context.Context, athleteID, date string, c candidate) (alerts.Alert, bool) {
	alert := alerts.Alert{
		ID:             e.newID(),
		AthleteID:      athleteID,
		Metric:         c.metric,
		Severity:       c.severity,
		Title:          c.title,
		Message:        c.message,
		Recommendation: c.recommendation,
		Value:          c.value,
		Threshold:      c.threshold,
		Date:           date,
		CreatedAt:      e.now().UTC().Format(time.RFC3339),
	}

	key := alert.DedupeKey()

	e.mu.Lock()
	prev, fired := e.seen[key]
	if fired && c.severity.Rank() <= prev.Rank() {
		e.mu.Unlock()
		return alerts.Alert{}, false
	}
	e.seen[key] = c.severity
	e.mu.Unlock()

	if err := e.log.Insert(ctx, alert); err != nil {
		// Roll back the dedupe mark so the next poll retries.
		e.mu.Lock()
		if fired {
			e.seen[key] = prev
		} else {
			delete(e.seen, key)
		}
		e.mu.Unlock()

		logging.Error(e.logger, "failed to persist alert", err,
			logging.FieldAthlete, athleteID,
			logging.FieldMetric, c.metric,
		)
		return alerts.Alert{}, false
	}

	e.metrics.RecordAlertRaised(string(c.severity))
	logging.Info(e.logger, "alert raised",
		logging.FieldAthlete, athleteID,
		logging.FieldMetric, c.metric,
		logging.FieldSeverity, string(c.severity),
	)
	return alert, true
}

// prune drops dedupe entries older than the evaluated day so the map
// does not grow across long uptimes. Date strings sort lexically.
func (e *Engine) prune(date string) {
	e.mu.Lock()
	defer e.mu.Unlock()

	for key := range e.seen {
		parts := strings.Split(key, "|")
		if len(parts) != 3 {
			delete(e.seen, key)
			continue
		}
		if parts[2] < date {
			delete(e.seen, key)
		}
	}
}
