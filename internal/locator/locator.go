// Package locator discovers local Chrome/Chromium installations.
// Probing is layered by confidence: well-known install paths first, then the
// OS registry, then a PATH lookup. Every probe is best-effort and side-effect
// free; nothing here ever launches a browser.
package locator

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/anshiakhileshmj/browserauto/internal/logging"
)

// Source identifies how a candidate executable was found.
// Sources are ordered by decreasing confidence.
type Source string

const (
	SourceKnownPath  Source = "known-path"
	SourceRegistry   Source = "registry"
	SourcePathLookup Source = "path-lookup"
)

// Candidate is a browser executable found by a probe strategy.
type Candidate struct {
	Path   string
	Source Source
}

// Strategy probes one source for browser executables. Implementations never
// return an error; a failed probe logs and yields no candidates.
type Strategy interface {
	Probe() []Candidate
}

// Locator finds browser executables and the vendor profile directory.
type Locator struct {
	strategies []Strategy
}

// New returns a Locator composed of the default strategies for the current
// platform, in priority order.
func New() *Locator {
	strategies := []Strategy{knownPathStrategy{}}
	if runtime.GOOS == "windows" {
		strategies = append(strategies, registryStrategy{})
	}
	strategies = append(strategies, pathLookupStrategy{})
	return &Locator{strategies: strategies}
}

// NewWithStrategies returns a Locator with an explicit strategy list.
// The list order is the candidate priority order.
func NewWithStrategies(strategies ...Strategy) *Locator {
	return &Locator{strategies: strategies}
}

// FindCandidates runs every strategy in order and returns the found
// executables, deduplicated by resolved absolute path. First-seen order is
// preserved, so probing order doubles as confidence ranking.
func (l *Locator) FindCandidates() []Candidate {
	var found []Candidate
	seen := make(map[string]bool)

	for _, s := range l.strategies {
		for _, c := range s.Probe() {
			key := resolvePath(c.Path)
			if seen[key] {
				continue
			}
			seen[key] = true
			found = append(found, c)
			logging.Infof("found browser (%s): %s", c.Source, c.Path)
		}
	}

	return found
}

// BestCandidate returns the preferred executable: the first candidate in a
// system-wide install location, or the first candidate overall when none
// match. Returns nil when nothing was found.
func (l *Locator) BestCandidate() *Candidate {
	candidates := l.FindCandidates()
	if len(candidates) == 0 {
		logging.Warn("no browser installation found")
		return nil
	}

	for i := range candidates {
		if isSystemInstallPath(candidates[i].Path) {
			return &candidates[i]
		}
	}
	return &candidates[0]
}

// FindProfileDirectory returns the browser's user-data directory for the
// current user, or "" when the directory does not exist. The check is
// existence-only; contents are never inspected.
func (l *Locator) FindProfileDirectory() string {
	dir := profileDirectory()
	if dir == "" {
		return ""
	}
	if info, err := os.Stat(dir); err != nil || !info.IsDir() {
		logging.Warnf("browser user data directory not found: %s", dir)
		return ""
	}
	return dir
}

// VerifyExecutable reports whether path exists and is executable. It never
// launches the binary and never returns an error, so it is safe to call on
// every status query.
func VerifyExecutable(path string) bool {
	if path == "" {
		return false
	}
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return hasExecutePermission(info)
}

// systemInstallMarkers identify system-wide install locations, as opposed to
// per-user ones like AppData or a home directory.
var systemInstallMarkers = []string{"Program Files", "/usr/", "/opt/", "/Applications/"}

// isSystemInstallPath reports whether path lives in a system-wide install
// location rather than a per-user one.
func isSystemInstallPath(path string) bool {
	for _, marker := range systemInstallMarkers {
		if strings.Contains(path, marker) {
			return true
		}
	}
	return false
}

func resolvePath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	if resolved, err := filepath.EvalSymlinks(abs); err == nil {
		return resolved
	}
	return abs
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
