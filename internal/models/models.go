// Package models contains the records that cross the store boundary.
package models

// Log statuses, in the lower-case form they are stored with.
const (
	StatusPlaying   = "playing"
	StatusCompleted = "completed"
	StatusBacklog   = "backlog"
	StatusWishlist  = "wishlist"
	StatusAbandoned = "abandoned"
)

// Statuses lists every known log status in display order.
var Statuses = []string{StatusCompleted, StatusPlaying, StatusBacklog, StatusWishlist, StatusAbandoned}

// IsValidStatus reports whether s is one of the known log statuses.
func IsValidStatus(s string) bool {
	for _, status := range Statuses {
		if s == status {
			return true
		}
	}
	return false
}

// Game is a catalogue entry referenced by at least one log.
// ID is assigned by the external game catalogue, not by the store.
type Game struct {
	ID      int64  `json:"id"`
	Title   string `json:"title"`
	CoverID string `json:"cover_id"`
}

// ExecutableDetails maps a launched executable to a catalogued game.
type ExecutableDetails struct {
	Name   string `json:"name"`
	GameID int64  `json:"game_id"`
}

// LogEntry is a recorded play session, hydrated with its game.
type LogEntry struct {
	ID            int64  `json:"id"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
	Date          string `json:"date"`
	Rating        int    `json:"rating"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
	MinutesPlayed int    `json:"minutes_played"`
	Game          Game   `json:"game"`
}

// LogEntryInput is the create shape of a log. The embedded game is
// inserted when its id is unknown and ignored otherwise.
type LogEntryInput struct {
	Date          string `json:"date"`
	Rating        int    `json:"rating"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
	MinutesPlayed int    `json:"minutes_played"`
	Game          Game   `json:"game"`
}

// LogEntryUpdate is the update shape of a log. The referenced game cannot change.
type LogEntryUpdate struct {
	ID            int64  `json:"id"`
	Date          string `json:"date"`
	Rating        int    `json:"rating"`
	Notes         string `json:"notes"`
	Status        string `json:"status"`
	MinutesPlayed int    `json:"minutes_played"`
}

// DashboardStatistics aggregates logs over a closed date interval.
type DashboardStatistics struct {
	TotalMinutesPlayed  int `json:"total_minutes_played"`
	TotalGamesPlayed    int `json:"total_games_played"`
	TotalGamesCompleted int `json:"total_games_completed"`
}

// BackupReport describes a finished store snapshot.
type BackupReport struct {
	Source    string `json:"source"` // store file the snapshot was taken from
	Path      string `json:"path"`
	SizeBytes int64  `json:"size_bytes"`
}

// HousekeepingReport describes a snapshot retention run.
type HousekeepingReport struct {
	SnapshotsDeleted int    `json:"snapshots_deleted"`
	SpaceFreedBytes  int64  `json:"space_freed_bytes"`
	Message          string `json:"message"`
}
