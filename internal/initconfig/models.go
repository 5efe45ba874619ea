// filepath: internal/initconfig/models.go
package initconfig

// InitConfig is the root struct for parsing the TOML import file.
type InitConfig struct {
	Logs        []InitLog        `toml:"log"`
	Executables []InitExecutable `toml:"executable"`
}

// InitLog is a play session in the import file. Time played is given as
// hours and minutes, the way the log form collects it.
type InitLog struct {
	Date    string   `toml:"date"`
	Rating  int      `toml:"rating"`
	Notes   string   `toml:"notes"`
	Status  string   `toml:"status"`
	Hours   int      `toml:"hours"`
	Minutes int      `toml:"minutes"`
	Game    InitGame `toml:"game"`
}

// InitGame is the catalogue entry a log in the import file refers to.
type InitGame struct {
	ID      int64  `toml:"id"`
	Title   string `toml:"title"`
	CoverID string `toml:"cover_id"`
}

// InitExecutable maps an executable name to a game id.
type InitExecutable struct {
	Name   string `toml:"name"`
	GameID int64  `toml:"game_id"`
}

// Report counts what an import did.
type Report struct {
	LogsAdded        int `json:"logs_added"`
	ExecutablesAdded int `json:"executables_added"`
	Skipped          int `json:"skipped"`
}
