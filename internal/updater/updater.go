// Package updater checks GitHub Releases for a newer Quest Passer build.
package updater

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/NRJ900/Quest-Passer/internal/buildinfo"
)

// ReleasesURL is the latest-release endpoint of the project.
const ReleasesURL = "https://api.github.com/repos/NRJ900/Quest-Passer/releases/latest"

// ReleaseInfo contains information about a GitHub release.
type ReleaseInfo struct {
	TagName string `json:"tag_name"`
	HTMLURL string `json:"html_url"`
}

// Result contains the result of an update check.
type Result struct {
	Available      bool
	CurrentVersion string
	LatestVersion  string
	ReleaseURL     string
}

// Checker queries a releases endpoint.
type Checker struct {
	Client  *http.Client
	URL     string
	Current string
}

// NewChecker creates a checker for the running build.
func NewChecker() *Checker {
	return &Checker{
		Client:  http.DefaultClient,
		URL:     ReleasesURL,
		Current: buildinfo.Version,
	}
}

// Check fetches the latest release and compares it with the current version.
// A missing release list is reported as up to date.
func (c *Checker) Check(ctx context.Context) (*Result, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	req.Header.Set("User-Agent", buildinfo.UserAgent())

	resp, err := c.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return &Result{CurrentVersion: c.Current}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("GitHub API returned %d", resp.StatusCode)
	}

	var release ReleaseInfo
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("decode release: %w", err)
	}

	result := &Result{
		CurrentVersion: c.Current,
		LatestVersion:  strings.TrimPrefix(release.TagName, "v"),
		ReleaseURL:     release.HTMLURL,
	}

	latest, err := ParseSemver(result.LatestVersion)
	if err != nil {
		return nil, fmt.Errorf("parse latest version %q: %w", result.LatestVersion, err)
	}
	current, err := ParseSemver(c.Current)
	if err != nil {
		// dev builds are always behind a release
		result.Available = true
		return result, nil
	}
	result.Available = current.Compare(latest) < 0
	return result, nil
}
