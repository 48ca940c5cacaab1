package snapshots

import (
	"fmt"
	"path/filepath"
)

// DaySnapshotPath builds the path to a team-day snapshot for a given date.
func DaySnapshotPath(basePath, date string) string {
	return filepath.Join(basePath, "days", fmt.Sprintf("%s.json", date))
}
