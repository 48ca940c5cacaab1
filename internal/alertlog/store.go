// Package alertlog persists raised alerts in SQLite so acknowledgement
// state survives restarts.
package alertlog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite"

	"github.com/JPRoelofseDevforge/sam-recovery-intelligence/internal/domain/alerts"
)

// ErrNotFound is returned when an alert ID does not exist.
var ErrNotFound = errors.New("alert not found")

const schema = `
CREATE TABLE IF NOT EXISTS alerts (
    id              TEXT PRIMARY KEY,
    athlete_id      TEXT NOT NULL,
    metric          TEXT NOT NULL,
    severity        TEXT NOT NULL,
    title           TEXT NOT NULL,
    message         TEXT NOT NULL,
    recommendation  TEXT NOT NULL DEFAULT '',
    value           REAL,
    threshold       REAL,
    date            TEXT NOT NULL,
    created_at      TEXT NOT NULL,
    acknowledged    INTEGER NOT NULL DEFAULT 0,
    acknowledged_at TEXT NOT NULL DEFAULT ''
);
CREATE INDEX IF NOT EXISTS idx_alerts_athlete_date ON alerts(athlete_id, date);
CREATE INDEX IF NOT EXISTS idx_alerts_acknowledged ON alerts(acknowledged);
`

// Store persists alerts in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the alert log at path, creating the parent directory and
// schema when missing.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("alert log path is required")
	}
	cleanPath := filepath.Clean(path)
	if dir := filepath.Dir(cleanPath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("create alert log dir: %w", err)
		}
	}

	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open alert log: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping alert log: %w", err)
	}
	if _, err := sqlDB.Exec(schema); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ensure alert schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Insert stores one alert.
func (s *Store) Insert(ctx context.Context, a alerts.Alert) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	_, err := s.sqlDB.ExecContext(
		ctx,
		`INSERT INTO alerts (
		   id, athlete_id, metric, severity, title, message,
		   recommendation, value, threshold, date, created_at,
		   acknowledged, acknowledged_at
		 ) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		a.ID,
		a.AthleteID,
		a.Metric,
		string(a.Severity),
		a.Title,
		a.Message,
		a.Recommendation,
		nullFloat(a.Value),
		nullFloat(a.Threshold),
		a.Date,
		a.CreatedAt,
		boolToInt(a.Acknowledged),
		a.AcknowledgedAt,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// Acknowledge marks an alert acknowledged at the given timestamp.
func (s *Store) Acknowledge(ctx context.Context, id, at string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	result, err := s.sqlDB.ExecContext(
		ctx,
		`UPDATE alerts SET acknowledged = 1, acknowledged_at = ? WHERE id = ?`,
		at, id,
	)
	if err != nil {
		return fmt.Errorf("acknowledge alert: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("acknowledge alert: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// Get returns one alert by ID.
func (s *Store) Get(ctx context.Context, id string) (alerts.Alert, error) {
	if err := ctx.Err(); err != nil {
		return alerts.Alert{}, err
	}

	row := s.sqlDB.QueryRowContext(ctx, selectColumns+` FROM alerts WHERE id = ?`, id)
	a, err := scanAlert(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return alerts.Alert{}, ErrNotFound
		}
		return alerts.Alert{}, fmt.Errorf("get alert: %w", err)
	}
	return a, nil
}

// ListOpen returns every unacknowledged alert, newest first.
func (s *Store) ListOpen(ctx context.Context) ([]alerts.Alert, error) {
	return s.list(ctx, selectColumns+` FROM alerts WHERE acknowledged = 0 ORDER BY created_at DESC`)
}

// ListByAthlete returns an athlete's alerts, newest first. Acknowledged
// alerts are included only when all is set.
func (s *Store) ListByAthlete(ctx context.Context, athleteID string, all bool) ([]alerts.Alert, error) {
	if all {
		return s.list(ctx, selectColumns+` FROM alerts WHERE athlete_id = ? ORDER BY created_at DESC`, athleteID)
	}
	return s.list(ctx, selectColumns+` FROM alerts WHERE athlete_id = ? AND acknowledged = 0 ORDER BY created_at DESC`, athleteID)
}

// ListBySeverity returns open alerts of one severity, newest first. An
// empty severity returns every open alert.
func (s *Store) ListBySeverity(ctx context.Context, severity alerts.Severity) ([]alerts.Alert, error) {
	if severity == "" {
		return s.ListOpen(ctx)
	}
	return s.list(ctx, selectColumns+` FROM alerts WHERE acknowledged = 0 AND severity = ? ORDER BY created_at DESC`, string(severity))
}

const selectColumns = `SELECT id, athlete_id, metric, severity, title, message,
       recommendation, value, threshold, date, created_at,
       acknowledged, acknowledged_at`

func (s *Store) list(ctx context.Context, query string, args ...any) ([]alerts.Alert, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rows, err := s.sqlDB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()

	var out []alerts.Alert
	for rows.Next() {
		a, err := scanAlert(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("list alerts: %w", err)
		}
		out = append(out, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	return out, nil
}

func scanAlert(scan func(dest ...any) error) (alerts.Alert, error) {
	var a alerts.Alert
	var severity string
	var value, threshold sql.NullFloat64
	var acknowledged int

	err := scan(
		&a.ID,
		&a.AthleteID,
		&a.Metric,
		&severity,
		&a.Title,
		&a.Message,
		&a.Recommendation,
		&value,
		&threshold,
		&a.Date,
		&a.CreatedAt,
		&acknowledged,
		&a.AcknowledgedAt,
	)
	if err != nil {
		return alerts.Alert{}, err
	}

	a.Severity = alerts.Severity(severity)
	if value.Valid {
		a.Value = &value.Float64
	}
	if threshold.Valid {
		a.Threshold = &threshold.Float64
	}
	a.Acknowledged = acknowledged != 0
	return a, nil
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
