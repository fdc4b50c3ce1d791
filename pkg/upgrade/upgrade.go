// Package upgrade checks GitHub Releases for newer CLI versions.
package upgrade

import (
	"context"
	"fmt"
	"time"

	"github.com/google/go-github/v62/github"
	"golang.org/x/mod/semver"

	"github.com/usedetail/detail-cli/pkg/config"
	"github.com/usedetail/detail-cli/pkg/logger"
)

const (
	releaseOwner = "usedetail"
	releaseRepo  = "detail-cli"

	// At most one release check per day.
	checkInterval = 24 * time.Hour
)

// ReleaseSource provides the latest published CLI version.
type ReleaseSource interface {
	// LatestVersion returns the newest release tag (e.g. "v1.4.0").
	LatestVersion(ctx context.Context) (string, error)
}

// githubReleaseSource reads the latest release from GitHub.
type githubReleaseSource struct {
	client *github.Client
}

// NewGitHubReleaseSource creates a ReleaseSource backed by the public GitHub
// API.
func NewGitHubReleaseSource() ReleaseSource {
	return &githubReleaseSource{
		client: github.NewClient(nil),
	}
}

// LatestVersion returns the newest release tag.
func (s *githubReleaseSource) LatestVersion(ctx context.Context) (string, error) {
	release, _, err := s.client.Repositories.GetLatestRelease(ctx, releaseOwner, releaseRepo)
	if err != nil {
		return "", fmt.Errorf("failed to fetch latest release: %w", err)
	}
	return release.GetTagName(), nil
}

// Checker performs the periodic new-release check.
type Checker struct {
	config  config.Manager
	logger  logger.Logger
	source  ReleaseSource
	version string
	now     func() time.Time
}

// NewCheckerParams contains parameters for creating a new Checker instance.
type NewCheckerParams struct {
	Config  config.Manager
	Logger  logger.Logger
	Source  ReleaseSource
	Version string
}

// NewChecker creates a new Checker instance.
func NewChecker(params NewCheckerParams) *Checker {
	return &Checker{
		config:  params.Config,
		logger:  params.Logger,
		source:  params.Source,
		version: params.Version,
		now:     time.Now,
	}
}

// Check prints an upgrade notice when a newer release exists. It honors the
// check_for_updates setting and runs at most once per checkInterval; the
// check timestamp is persisted even when the release lookup fails so a flaky
// network cannot turn every invocation into a lookup.
func (c *Checker) Check(ctx context.Context) error {
	cfg, err := c.config.GetConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if !cfg.CheckForUpdates {
		return nil
	}

	now := c.now().Unix()
	if cfg.LastUpdateCheck > 0 && now-cfg.LastUpdateCheck < int64(checkInterval.Seconds()) {
		return nil
	}

	cfg.LastUpdateCheck = now
	if err := c.config.SaveConfig(cfg); err != nil {
		return fmt.Errorf("failed to save config: %w", err)
	}

	current := "v" + c.version
	if !semver.IsValid(current) {
		// Development builds have no comparable version.
		return nil
	}

	latest, err := c.source.LatestVersion(ctx)
	if err != nil {
		return err
	}

	if semver.IsValid(latest) && semver.Compare(latest, current) > 0 {
		c.logger.Logf("A new version of detail-cli is available: %s (current: %s)", latest, current)
		c.logger.Logf("See https://github.com/%s/%s/releases to upgrade", releaseOwner, releaseRepo)
	}

	return nil
}
