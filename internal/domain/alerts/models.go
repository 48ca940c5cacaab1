// Package alerts defines the alert model raised by the rule engine and
// persisted to the alert log.
package alerts

import "fmt"

// Severity orders alerts for display and escalation.
type Severity string

const (
	SeverityInfo     Severity = "info"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Rank maps a severity to a comparable weight. Unknown severities rank
// below info so malformed rows never mask real alerts.
func (s Severity) Rank() int {
	switch s {
	case SeverityCritical:
		return 3
	case SeverityWarning:
		return 2
	case SeverityInfo:
		return 1
	default:
		return 0
	}
}

// Alert is one triggered rule instance for an athlete on a given day.
type Alert struct {
	ID             string   `json:"id"`
	AthleteID      string   `json:"athlete_id"`
	Metric         string   `json:"metric"`
	Severity       Severity `json:"severity"`
	Title          string   `json:"title"`
	Message        string   `json:"message"`
	Recommendation string   `json:"recommendation,omitempty"`
	Value          *float64 `json:"value,omitempty"`
	Threshold      *float64 `json:"threshold,omitempty"`
	Date           string   `json:"date"`
	CreatedAt      string   `json:"created_at"`
	Acknowledged   bool     `json:"acknowledged"`
	AcknowledgedAt string   `json:"acknowledged_at,omitempty"`
}

// DedupeKey identifies the athlete/metric/day bucket an alert belongs
// to. The engine raises at most one alert per bucket unless severity
// escalates.
func (a Alert) DedupeKey() string {
	return fmt.Sprintf("%s|%s|%s", a.AthleteID, a.Metric, a.Date)
}
