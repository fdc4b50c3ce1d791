// Package config provides configuration and credential storage for the
// Detail CLI.
package config

// Config represents the application configuration stored in config.yaml.
type Config struct {
	// APIURL overrides the API endpoint; empty means the production default.
	APIURL string `yaml:"api_url,omitempty"`
	// CheckForUpdates controls the periodic new-release check.
	CheckForUpdates bool `yaml:"check_for_updates"`
	// LastUpdateCheck is the unix timestamp of the last release check.
	LastUpdateCheck int64 `yaml:"last_update_check,omitempty"`
}

// credentials is the content of credentials.yaml, kept separate from the
// config so the token file can carry tighter permissions.
type credentials struct {
	Token string `yaml:"token"`
}

// DefaultConfig returns the configuration used when no config file exists.
func DefaultConfig() Config {
	return Config{
		CheckForUpdates: true,
	}
}
