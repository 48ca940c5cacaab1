package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/biometrics"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/logging"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/providers"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/snapshots"
	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/timeutil"
)

// CatalogReloader re-reads the recommendation catalog from disk.
type CatalogReloader interface {
	Reload() error
}

// AdminHandler exposes token-guarded operational endpoints.
type AdminHandler struct {
	writer   *snapshots.Writer
	provider providers.TeamProvider
	catalog  CatalogReloader
	logger   *slog.Logger
	now      nowFunc
}

// NewAdminHandler constructs an AdminHandler.
func NewAdminHandler(writer *snapshots.Writer, provider providers.TeamProvider, catalog CatalogReloader, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		writer:   writer,
		provider: provider,
		catalog:  catalog,
		logger:   logger,
		now:      time.Now,
	}
}

// RefreshSnapshots fetches team data and writes a day snapshot for the
// requested date (defaults to today).
func (h *AdminHandler) RefreshSnapshots(w http.ResponseWriter, r *http.Request) {
	if h.provider == nil || h.writer == nil {
		writeError(w, r, http.StatusServiceUnavailable, "snapshot writer not configured", h.logger)
		return
	}

	logger := loggerFromContext(r, h.logger)
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		date = timeutil.FormatDate(h.now().UTC())
	}
	if _, err := timeutil.ParseDate(date); err != nil {
		logging.Warn(logger, "admin snapshot invalid date", slog.String(logging.FieldDate, date))
		writeError(w, r, http.StatusBadRequest, "invalid date format", logger)
		return
	}

	data, err := h.provider.FetchTeamData(r.Context(), date)
	if err != nil {
		logging.Warn(logger, "admin snapshot fetch failed",
			slog.String(logging.FieldDate, date),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusBadGateway, "failed to fetch team data", logger)
		return
	}

	var daySamples []biometrics.Sample
	for _, s := range data.Samples {
		if s.Date == date {
			daySamples = append(daySamples, s)
		}
	}
	if len(daySamples) == 0 {
		logging.Warn(logger, "admin snapshot no samples", slog.String(logging.FieldDate, date))
		writeError(w, r, http.StatusBadRequest, "no samples to snapshot", logger)
		return
	}

	snap := biometrics.NewTeamDay(date, daySamples, nil)
	if err := h.writer.WriteDaySnapshot(date, snap); err != nil {
		logging.Warn(logger, "admin snapshot write failed",
			slog.String(logging.FieldDate, date),
			slog.Int(logging.FieldCount, len(daySamples)),
			slog.Any("err", err),
		)
		writeError(w, r, http.StatusInternalServerError, "failed to write snapshot", logger)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"date":    date,
		"samples": len(daySamples),
		"status":  "ok",
	}, logger)
	logging.Info(logger, "admin snapshot written",
		slog.String(logging.FieldDate, date),
		slog.Int(logging.FieldCount, len(daySamples)),
	)
}

// ReloadCatalog re-reads the recommendation catalog override file.
func (h *AdminHandler) ReloadCatalog(w http.ResponseWriter, r *http.Request) {
	if h.catalog == nil {
		writeError(w, r, http.StatusServiceUnavailable, "catalog not configured", h.logger)
		return
	}
	logger := loggerFromContext(r, h.logger)
	if err := h.catalog.Reload(); err != nil {
		logging.Warn(logger, "catalog reload failed", slog.Any("err", err))
		writeError(w, r, http.StatusInternalServerError, "failed to reload catalog", logger)
		return
	}
	logging.Info(logger, "catalog reloaded")
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, logger)
}
