// Package cli provides shared state and helpers for the Detail CLI commands.
package cli

import (
	"os"

	"golang.org/x/term"

	"github.com/usedetail/detail-cli/pkg/api"
	"github.com/usedetail/detail-cli/pkg/config"
	"github.com/usedetail/detail-cli/pkg/logger"
)

// Version is the CLI version, overridden at build time with -ldflags.
var Version = "dev"

// Global flag values.
var (
	// Quiet suppresses all output except errors and command results.
	Quiet bool
	// Verbose enables verbose output.
	Verbose bool
	// APIURL overrides the API endpoint (hidden flag, DETAIL_API_URL env).
	APIURL string
	// ConfigDir overrides the configuration directory.
	ConfigDir string
)

// ConfigManager returns the configuration manager for the selected config
// directory.
func ConfigManager() config.Manager {
	dir := ConfigDir
	if dir == "" {
		dir = config.DefaultConfigDir()
	}
	return config.NewManager(dir)
}

// ResolveAPIURL picks the API endpoint: flag/env first, then the config
// file, then the production default (chosen inside the client).
func ResolveAPIURL(cfg config.Config) string {
	if APIURL != "" {
		return APIURL
	}
	return cfg.APIURL
}

// NewClient creates an authenticated API client from the stored token.
func NewClient() (api.Client, error) {
	manager := ConfigManager()

	token, err := manager.LoadToken()
	if err != nil {
		return nil, err
	}

	cfg, err := manager.GetConfig()
	if err != nil {
		return nil, err
	}

	return api.NewClient(api.NewClientParams{
		BaseURL: ResolveAPIURL(cfg),
		Token:   token,
		Version: Version,
	})
}

// NewClientWithToken creates an API client for a candidate token that is not
// stored yet (used by auth login).
func NewClientWithToken(token string) (api.Client, error) {
	manager := ConfigManager()

	cfg, err := manager.GetConfig()
	if err != nil {
		return nil, err
	}

	return api.NewClient(api.NewClientParams{
		BaseURL: ResolveAPIURL(cfg),
		Token:   token,
		Version: Version,
	})
}

// Logger returns the logger honoring the quiet flag.
func Logger() logger.Logger {
	if Quiet {
		return logger.NewNoopLogger()
	}
	return logger.NewDefaultLogger()
}

// IsInteractive reports whether stdin is attached to a terminal, enabling
// interactive prompts.
func IsInteractive() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}
