package config

// Config carries the process configuration shared by the CLI entry points.
type Config struct {
	// DatabasePath locates the SQLite database file.
	DatabasePath string `env:"DOPPELKOPF_CLUB_DB_PATH" envDefault:"doppelkopf.db"`
	// Locale selects the language for user-facing error messages.
	Locale string `env:"DOPPELKOPF_CLUB_LOCALE" envDefault:"de-DE"`
}

// Load reads the process configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
