package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	configFileName      = "config.yaml"
	credentialsFileName = "credentials.yaml"

	dirPerm         = 0o755
	configPerm      = 0o644
	credentialsPerm = 0o600
)

// Manager interface provides configuration and credential management with an
// embedded config directory.
type Manager interface {
	// GetConfig loads the configuration, falling back to defaults when no
	// config file exists yet.
	GetConfig() (Config, error)

	// SaveConfig writes the configuration, creating the config directory if
	// needed.
	SaveConfig(config Config) error

	// SaveToken stores the API token.
	SaveToken(token string) error

	// LoadToken returns the stored API token.
	LoadToken() (string, error)

	// ClearToken removes stored credentials; clearing absent credentials is
	// not an error.
	ClearToken() error

	// ConfigDir returns the directory holding config and credentials.
	ConfigDir() string
}

// realManager manages yaml files under a single config directory.
type realManager struct {
	configDir string
}

// NewManager creates a new Manager instance rooted at the given directory.
func NewManager(configDir string) Manager {
	return &realManager{
		configDir: configDir,
	}
}

// DefaultConfigDir returns ~/.detail, falling back to a relative directory
// when the home directory cannot be determined.
func DefaultConfigDir() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}
	return filepath.Join(homeDir, ".detail")
}

// ConfigDir returns the directory holding config and credentials.
func (m *realManager) ConfigDir() string {
	return m.configDir
}

// GetConfig loads the configuration, falling back to defaults when no config
// file exists yet.
func (m *realManager) GetConfig() (Config, error) {
	path := filepath.Join(m.configDir, configFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return Config{}, fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	return config, nil
}

// SaveConfig writes the configuration, creating the config directory if
// needed.
func (m *realManager) SaveConfig(config Config) error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	path := filepath.Join(m.configDir, configFileName)
	if err := os.WriteFile(path, data, configPerm); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// SaveToken stores the API token with owner-only permissions.
func (m *realManager) SaveToken(token string) error {
	if err := os.MkdirAll(m.configDir, dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(credentials{Token: token})
	if err != nil {
		return fmt.Errorf("failed to encode credentials: %w", err)
	}

	path := filepath.Join(m.configDir, credentialsFileName)
	if err := os.WriteFile(path, data, credentialsPerm); err != nil {
		return fmt.Errorf("failed to write credentials file: %w", err)
	}

	return nil
}

// LoadToken returns the stored API token.
func (m *realManager) LoadToken() (string, error) {
	path := filepath.Join(m.configDir, credentialsFileName)

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", ErrNotAuthenticated
	}
	if err != nil {
		return "", fmt.Errorf("failed to read credentials file: %w", err)
	}

	var creds credentials
	if err := yaml.Unmarshal(data, &creds); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfigParse, err)
	}

	if creds.Token == "" {
		return "", ErrNotAuthenticated
	}

	return creds.Token, nil
}

// ClearToken removes stored credentials.
func (m *realManager) ClearToken() error {
	path := filepath.Join(m.configDir, credentialsFileName)

	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove credentials file: %w", err)
	}

	return nil
}
