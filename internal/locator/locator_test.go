package locator

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStrategy returns a fixed candidate list.
type fakeStrategy struct {
	candidates []Candidate
}

func (s fakeStrategy) Probe() []Candidate {
	return s.candidates
}

func TestFindCandidatesDeduplicatesAndKeepsOrder(t *testing.T) {
	high := fakeStrategy{candidates: []Candidate{
		{Path: "/opt/google/chrome/chrome", Source: SourceKnownPath},
		{Path: "/usr/bin/google-chrome", Source: SourceKnownPath},
	}}
	low := fakeStrategy{candidates: []Candidate{
		{Path: "/usr/bin/google-chrome", Source: SourcePathLookup}, // duplicate
		{Path: "/home/me/.local/bin/chrome", Source: SourcePathLookup},
	}}

	loc := NewWithStrategies(high, low)
	candidates := loc.FindCandidates()

	require.Len(t, candidates, 3)
	assert.Equal(t, "/opt/google/chrome/chrome", candidates[0].Path)
	assert.Equal(t, "/usr/bin/google-chrome", candidates[1].Path)
	assert.Equal(t, SourceKnownPath, candidates[1].Source, "first-seen source wins for duplicates")
	assert.Equal(t, "/home/me/.local/bin/chrome", candidates[2].Path)
}

func TestBestCandidatePrefersSystemInstall(t *testing.T) {
	loc := NewWithStrategies(fakeStrategy{candidates: []Candidate{
		{Path: `C:\Users\me\AppData\Local\Google\Chrome\Application\chrome.exe`, Source: SourceKnownPath},
		{Path: `C:\Program Files\Google\Chrome\Application\chrome.exe`, Source: SourceKnownPath},
	}})

	best := loc.BestCandidate()
	require.NotNil(t, best)
	assert.Contains(t, best.Path, "Program Files")
}

func TestBestCandidateFallsBackToFirst(t *testing.T) {
	loc := NewWithStrategies(fakeStrategy{candidates: []Candidate{
		{Path: `C:\Users\me\AppData\Local\Chromium\chrome.exe`, Source: SourcePathLookup},
		{Path: `C:\Users\me\scoop\apps\chrome.exe`, Source: SourcePathLookup},
	}})

	best := loc.BestCandidate()
	require.NotNil(t, best)
	assert.Contains(t, best.Path, "AppData")
}

func TestBestCandidateNilWhenNothingFound(t *testing.T) {
	loc := NewWithStrategies(fakeStrategy{})
	assert.Nil(t, loc.BestCandidate())
}

func TestVerifyExecutable(t *testing.T) {
	assert.False(t, VerifyExecutable(""))
	assert.False(t, VerifyExecutable("/nonexistent/path/to/chrome"))
	assert.False(t, VerifyExecutable(t.TempDir()), "directories are not executables")

	path := filepath.Join(t.TempDir(), "chrome")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
	assert.True(t, VerifyExecutable(path))

	if runtime.GOOS != "windows" {
		plain := filepath.Join(t.TempDir(), "not-executable")
		require.NoError(t, os.WriteFile(plain, []byte("data"), 0644))
		assert.False(t, VerifyExecutable(plain))
	}
}

func TestFindProfileDirectoryExistenceGate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("profile path derivation differs on windows")
	}

	home := t.TempDir()
	t.Setenv("HOME", home)

	loc := New()
	assert.Empty(t, loc.FindProfileDirectory(), "missing directory yields empty result")

	var dir string
	if runtime.GOOS == "darwin" {
		dir = filepath.Join(home, "Library", "Application Support", "Google", "Chrome")
	} else {
		dir = filepath.Join(home, ".config", "google-chrome")
	}
	require.NoError(t, os.MkdirAll(dir, 0755))

	assert.Equal(t, dir, loc.FindProfileDirectory())
}

func TestParseRegValue(t *testing.T) {
	out := "\r\nHKEY_LOCAL_MACHINE\\SOFTWARE\\...\\chrome.exe\r\n" +
		"    (Default)    REG_SZ    C:\\Program Files\\Google\\Chrome\\Application\\chrome.exe\r\n"
	assert.Equal(t, `C:\Program Files\Google\Chrome\Application\chrome.exe`, parseRegValue(out))

	assert.Empty(t, parseRegValue("no value here"))
}
