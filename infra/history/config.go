package history

import "fmt"

// Entry fixes who held the roles in one committed period.
type Entry struct {
	Period    int    `json:"period"`
	Primary   string `json:"primary"`
	Secondary string `json:"secondary"`
}

// Config selects the history backend anchoring a run to committed periods.
type Config struct {
	// Backend is one of "none", "static" or "sqlite".
	Backend string `json:"backend"`
	// Path is the sqlite database file for the sqlite backend.
	Path string `json:"path"`
	// Entries seed the static backend.
	Entries []Entry `json:"entries"`
}

// SetDefaults applies the backend default.
func (c *Config) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "none"
	}
}

// Validate checks mandatory fields per backend.
func (c Config) Validate() error {
	switch c.Backend {
	case "none", "static":
		return nil
	case "sqlite":
		if c.Path == "" {
			return fmt.Errorf("history: path is required for the sqlite backend")
		}
		return nil
	default:
		return fmt.Errorf("history: unknown backend %s", c.Backend)
	}
}
