// Package update checks GitHub releases for a newer cewatch and replaces
// the running binary with it.
package update

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/Masterminds/semver/v3"
	selfupdate "github.com/creativeprojects/go-selfupdate"
)

// Repo is the GitHub repository releases are published to.
const Repo = "justinpbarnett/cewatch"

const (
	checkTimeout = 10 * time.Second
	applyTimeout = 2 * time.Minute
)

// ErrDevBuild is returned when a development build is asked to update.
var ErrDevBuild = errors.New("cannot update a development build; install from a release first")

// Release holds information about an available update.
type Release struct {
	Version      string
	URL          string
	ReleaseNotes string
}

// Updater talks to the releases of one repository.
type Updater struct {
	repo   string
	latest func(ctx context.Context, repo string) (*Release, bool, error)
}

func New(repo string) *Updater {
	return &Updater{repo: repo, latest: githubLatest}
}

// IsDevBuild reports whether version came from an unreleased build.
func IsDevBuild(version string) bool {
	return version == "" || version == "dev"
}

// Check returns the latest release when it is newer than current, and nil
// otherwise. Development and unparseable versions are never updated.
func (u *Updater) Check(ctx context.Context, current string) (*Release, error) {
	if IsDevBuild(current) {
		return nil, nil
	}
	cv, err := parseSemver(current)
	if err != nil {
		return nil, nil
	}

	ctx, cancel := context.WithTimeout(ctx, checkTimeout)
	defer cancel()

	rel, found, err := u.latest(ctx, u.repo)
	if err != nil {
		return nil, fmt.Errorf("detect latest release: %w", err)
	}
	if !found {
		return nil, nil
	}
	lv, err := parseSemver(rel.Version)
	if err != nil || !lv.GreaterThan(cv) {
		return nil, nil
	}
	return rel, nil
}

// Apply downloads the latest release binary and replaces the current
// executable.
func (u *Updater) Apply(ctx context.Context, current string) (*Release, error) {
	if IsDevBuild(current) {
		return nil, ErrDevBuild
	}

	updater, err := newSelfUpdater()
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, applyTimeout)
	defer cancel()

	rel, err := updater.UpdateSelf(ctx, strings.TrimPrefix(current, "v"), selfupdate.ParseSlug(u.repo))
	if err != nil {
		return nil, fmt.Errorf("update failed: %w", err)
	}
	return &Release{
		Version:      rel.Version(),
		URL:          rel.URL,
		ReleaseNotes: rel.ReleaseNotes,
	}, nil
}

func newSelfUpdater() (*selfupdate.Updater, error) {
	source, err := selfupdate.NewGitHubSource(selfupdate.GitHubConfig{})
	if err != nil {
		return nil, fmt.Errorf("create github source: %w", err)
	}
	updater, err := selfupdate.NewUpdater(selfupdate.Config{Source: source})
	if err != nil {
		return nil, fmt.Errorf("create updater: %w", err)
	}
	return updater, nil
}

func githubLatest(ctx context.Context, repo string) (*Release, bool, error) {
	updater, err := newSelfUpdater()
	if err != nil {
		return nil, false, err
	}
	latest, found, err := updater.DetectLatest(ctx, selfupdate.ParseSlug(repo))
	if err != nil || !found {
		return nil, found, err
	}
	return &Release{
		Version:      latest.Version(),
		URL:          latest.URL,
		ReleaseNotes: latest.ReleaseNotes,
	}, true, nil
}

// CompareVersions compares two semver strings.
// Returns -1 if current < latest, 0 if equal, 1 if current > latest.
// Unparseable versions are treated as less than any valid version.
func CompareVersions(current, latest string) int {
	cv, errC := parseSemver(current)
	lv, errL := parseSemver(latest)

	if errC != nil && errL != nil {
		return 0
	}
	if errC != nil {
		return -1
	}
	if errL != nil {
		return 1
	}

	return cv.Compare(lv)
}

// parseSemver strips a leading "v" and handles git-describe suffixes
// like "0.1.0-3-gabcdef" by parsing only the base version.
func parseSemver(s string) (*semver.Version, error) {
	s = strings.TrimPrefix(s, "v")
	return semver.NewVersion(s)
}
