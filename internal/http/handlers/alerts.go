package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/alertlog"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/alerts"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/logging"
)

// AthleteAlerts returns the athlete's open alerts, or the full history
// with ?all=true.
func (h *Handler) AthleteAlerts(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if _, ok := h.athletes.Get(id); !ok {
		writeError(w, r, http.StatusNotFound, "athlete not found", h.logger)
		return
	}
	if h.alerts == nil {
		writeError(w, r, http.StatusServiceUnavailable, "alert log not configured", h.logger)
		return
	}
	all := r.URL.Query().Get("all") == "true"
	list, err := h.alerts.ListByAthlete(r.Context(), id, all)
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "alert list failed", err, slog.String(logging.FieldAthlete, id))
		writeError(w, r, http.StatusInternalServerError, "failed to list alerts", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"athlete_id": id,
		"alerts":     list,
	}, h.logger)
}

// TeamAlerts returns open alerts across the squad, optionally filtered
// by ?severity=.
func (h *Handler) TeamAlerts(w http.ResponseWriter, r *http.Request) {
	if h.alerts == nil {
		writeError(w, r, http.StatusServiceUnavailable, "alert log not configured", h.logger)
		return
	}
	var (
		list []alerts.Alert
		err  error
	)
	switch severity := r.URL.Query().Get("severity"); severity {
	case "":
		list, err = h.alerts.ListOpen(r.Context())
	case string(alerts.SeverityInfo), string(alerts.SeverityWarning), string(alerts.SeverityCritical):
		list, err = h.alerts.ListBySeverity(r.Context(), alerts.Severity(severity))
	default:
		writeError(w, r, http.StatusBadRequest, "invalid severity", h.logger)
		return
	}
	if err != nil {
		logging.Error(loggerFromContext(r, h.logger), "team alert list failed", err)
		writeError(w, r, http.StatusInternalServerError, "failed to list alerts", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"alerts": list}, h.logger)
}

// AcknowledgeAlert marks an alert acknowledged.
func (h *Handler) AcknowledgeAlert(w http.ResponseWriter, r *http.Request) {
	if h.alerts == nil {
		writeError(w, r, http.StatusServiceUnavailable, "alert log not configured", h.logger)
		return
	}
	id := chi.URLParam(r, "id")
	at := h.now().UTC().Format(time.RFC3339)
	if err := h.alerts.Acknowledge(r.Context(), id, at); err != nil {
		if errors.Is(err, alertlog.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, "alert not found", h.logger)
			return
		}
		logging.Error(loggerFromContext(r, h.logger), "alert ack failed", err, slog.String("alert_id", id))
		writeError(w, r, http.StatusInternalServerError, "failed to acknowledge alert", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{
		"id":              id,
		"status":          "acknowledged",
		"acknowledged_at": at,
	}, h.logger)
}
