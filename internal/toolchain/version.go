package toolchain

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ErrTooOld is returned by CheckMinVersion when the installed toolchain is
// older than required.
var ErrTooOld = errors.New("toolchain version too old")

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// CheckMinVersion fails with ErrTooOld when tc reports a version below min.
// An empty min always passes without running the toolchain.
func CheckMinVersion(ctx context.Context, tc Toolchain, min string) error {
	if min == "" {
		return nil
	}

	current, err := tc.Version(ctx)
	if err != nil {
		return fmt.Errorf("checking %s version: %w", tc.Name(), err)
	}

	cmp, err := CompareVersions(current, min)
	if err != nil {
		return err
	}
	if cmp < 0 {
		return fmt.Errorf("%w: %s %s is installed, %s or newer is required", ErrTooOld, tc.Name(), current, min)
	}
	return nil
}

// goPreRelease matches Go's release candidate spelling, e.g. "1.25rc1".
var goPreRelease = regexp.MustCompile(`^(\d+(?:\.\d+)*)(alpha|beta|rc)(\d+)$`)

// parseSemver strips a leading "go" or "v" and parses the version string.
// Go pre-releases become semver pre-releases ("1.25rc1" -> "1.25-rc.1"),
// and trailing experiment tags such as " X:nocoverageredesign" are dropped.
func parseSemver(version string) (*semver.Version, error) {
	if fields := strings.Fields(version); len(fields) > 0 {
		version = fields[0]
	}
	version = strings.TrimPrefix(version, "go")
	version = strings.TrimPrefix(version, "v")
	version = goPreRelease.ReplaceAllString(version, "$1-$2.$3")
	return semver.NewVersion(version)
}
