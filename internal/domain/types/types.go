// Package types contains common types shared across the application
package types

// Progress is a point-in-time snapshot of a season run, served by the
// status listener and logged at completion.
type Progress struct {
	Season         int   `json:"season"`
	TotalDays      int   `json:"total_days"`
	StartedDays    int   `json:"started_days"`
	CompletedDays  int   `json:"completed_days"`
	FailedDays     int   `json:"failed_days"`
	GamesWritten   int64 `json:"games_written"`
	PlayersWritten int64 `json:"players_written"`
}

// Done reports whether every day has finished, successfully or not.
func (p Progress) Done() bool {
	return p.TotalDays > 0 && p.CompletedDays+p.FailedDays == p.TotalDays
}
