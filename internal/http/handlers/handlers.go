// Package handlers wires the dashboard API routes to the app services.
package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/app/advice"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/app/athletes"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/app/team"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/alerts"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/poller"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/snapshots"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/timeutil"
)

type nowFunc func() time.Time

// AlertLog is the alert persistence surface the handlers read and
// acknowledge through.
type AlertLog interface {
	ListByAthlete(ctx context.Context, athleteID string, all bool) ([]alerts.Alert, error)
	ListBySeverity(ctx context.Context, severity alerts.Severity) ([]alerts.Alert, error)
	ListOpen(ctx context.Context) ([]alerts.Alert, error)
	Acknowledge(ctx context.Context, id, at string) error
}

// Handler wires HTTP routes to the app services.
type Handler struct {
	athletes *athletes.Service
	team     *team.Service
	advice   *advice.Service
	alerts   AlertLog
	snaps    snapshots.Store
	logger   *slog.Logger
	now      nowFunc
	statusFn func() poller.Status
}

// Deps bundles the handler collaborators.
type Deps struct {
	Athletes *athletes.Service
	Team     *team.Service
	Advice   *advice.Service
	Alerts   AlertLog
	Snaps    snapshots.Store
	Logger   *slog.Logger
	StatusFn func() poller.Status
}

// NewHandler constructs a Handler with defaults.
func NewHandler(deps Deps) *Handler {
	return &Handler{
		athletes: deps.Athletes,
		team:     deps.Team,
		advice:   deps.Advice,
		alerts:   deps.Alerts,
		snaps:    deps.Snaps,
		logger:   deps.Logger,
		now:      time.Now,
		statusFn: deps.StatusFn,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Ready reports readiness for traffic (e.g., for Kubernetes probes).
func (h *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	if h.statusFn == nil {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	status := h.statusFn()
	if status.IsReady() {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"}, h.logger)
		return
	}
	msg := status.LastError
	if msg == "" {
		msg = "not ready"
	}
	writeError(w, r, http.StatusServiceUnavailable, msg, h.logger)
}

// Athletes returns the roster.
func (h *Handler) Athletes(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.athletes.List(), h.logger)
}

// AthleteProfile returns the profile view for one athlete.
func (h *Handler) AthleteProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, ok := h.athletes.Profile(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// BiometricData returns the athlete's sample window, oldest first.
func (h *Handler) BiometricData(w http.ResponseWriter, r *http.Request) {
	days, ok := h.daysParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	samples, ok := h.athletes.Window(id, days)
	if !ok {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"athlete_id": id,
		"days":       h.athletes.ClampDays(days),
		"samples":    samples,
	}, h.logger)
}

// GeneticProfile returns the athlete's genetic test results.
func (h *Handler) GeneticProfile(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	profile, ok := h.athletes.Genetics(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, profile, h.logger)
}

// BodyComposition returns the athlete's body composition history.
func (h *Handler) BodyComposition(w http.ResponseWriter, r *http.Request) {
	days, ok := h.daysParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	history, ok := h.athletes.BodyComp(id, days)
	if !ok {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"athlete_id":   id,
		"measurements": history,
	}, h.logger)
}

// BloodResults returns the athlete's blood panels.
func (h *Handler) BloodResults(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	panels, ok := h.athletes.Panels(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"athlete_id": id,
		"panels":     panels,
	}, h.logger)
}

// Readiness returns the athlete's readiness score and breakdown.
func (h *Handler) Readiness(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, found, scored := h.athletes.Readiness(id)
	if !found {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	payload := map[string]any{"athlete_id": id}
	if scored {
		payload["readiness"] = res
	}
	writeJSON(w, http.StatusOK, payload, h.logger)
}

// Recovery returns the athlete's recovery score and breakdown.
func (h *Handler) Recovery(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, found, scored := h.athletes.Recovery(id)
	if !found {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	payload := map[string]any{"athlete_id": id}
	if scored {
		payload["recovery"] = res
	}
	writeJSON(w, http.StatusOK, payload, h.logger)
}

// InjuryRisk returns the athlete's injury risk score and factors.
func (h *Handler) InjuryRisk(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	res, ok := h.athletes.InjuryRisk(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"athlete_id":  id,
		"injury_risk": res,
	}, h.logger)
}

// Sleep returns the athlete's sleep summary.
func (h *Handler) Sleep(w http.ResponseWriter, r *http.Request) {
	days, ok := h.daysParam(w, r)
	if !ok {
		return
	}
	id := chi.URLParam(r, "id")
	res, found, summarised := h.athletes.Sleep(id, days)
	if !found {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	payload := map[string]any{"athlete_id": id}
	if summarised {
		payload["sleep"] = res
	}
	writeJSON(w, http.StatusOK, payload, h.logger)
}

// BodyLoad returns the latest muscle-load region map.
func (h *Handler) BodyLoad(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, ok := h.athletes.BodyLoad(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Predictions returns trend projections and the overtraining flag.
func (h *Handler) Predictions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	view, ok := h.athletes.Predictions(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, view, h.logger)
}

// Recommendations returns supplement and nutrition advice.
func (h *Handler) Recommendations(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	recs, ok := h.advice.ForAthlete(id)
	if !ok {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"athlete_id":      id,
		"recommendations": recs,
	}, h.logger)
}

// TeamOverview returns per-athlete scores and team averages. An
// explicit date is served from snapshots only.
func (h *Handler) TeamOverview(w http.ResponseWriter, r *http.Request) {
	logger := loggerFromContext(r, h.logger)
	dateParam := r.URL.Query().Get("date")

	if dateParam != "" {
		if _, err := timeutil.ParseDate(dateParam); err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid date format (expected YYYY-MM-DD)", h.logger)
			return
		}
		day, err := h.loadSnapshot(dateParam)
		if err != nil {
			writeError(w, r, http.StatusBadGateway, "snapshot unavailable", h.logger)
			return
		}
		overview := h.team.ForDay(day)
		if logger != nil {
			logger.Info("served snapshot overview", "date", day.Date, "provider", "snapshot", "count", len(overview.Athletes))
		}
		writeJSON(w, http.StatusOK, overview, h.logger)
		return
	}

	date := timeutil.FormatDate(h.now().UTC())
	if tz := r.URL.Query().Get("tz"); tz != "" {
		if loc := providers.ResolveTimezone(tz); loc != nil {
			date = timeutil.FormatDate(h.now().In(loc))
		}
	}
	overview := h.team.Current(r.Context(), date)
	if logger != nil {
		logger.Info("served team overview", "date", date, "count", len(overview.Athletes))
	}
	writeJSON(w, http.StatusOK, overview, h.logger)
}

// AirQuality returns the latest stored air quality reading.
func (h *Handler) AirQuality(w http.ResponseWriter, r *http.Request) {
	reading, ok := h.team.AirQuality()
	if !ok {
		writeError(w, r, http.StatusNotFound, "no air quality reading yet", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"reading":           reading,
		"category":          reading.Category(),
		"training_advisory": reading.TrainingAdvisory(),
	}, h.logger)
}

func (h *Handler) loadSnapshot(date string) (biometrics.TeamDay, error) {
	if h.snaps == nil {
		return biometrics.TeamDay{}, errors.New("snapshot store not configured")
	}
	return h.snaps.LoadDay(date)
}

// daysParam parses the optional ?days=N query. Missing means default;
// non-numeric or non-positive values are client errors.
func (h *Handler) daysParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := r.URL.Query().Get("days")
	if raw == "" {
		return 0, true
	}
	days, err := strconv.Atoi(raw)
	if err != nil || days <= 0 {
		writeError(w, r, http.StatusBadRequest, "invalid days parameter", h.logger)
		return 0, false
	}
	return days, true
}
