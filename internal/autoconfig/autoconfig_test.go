package autoconfig

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anshiakhileshmj/browserauto/internal/locator"
)

// fixedStrategy yields a fixed candidate list for detection tests.
type fixedStrategy struct {
	candidates []locator.Candidate
}

func (s fixedStrategy) Probe() []locator.Candidate {
	return s.candidates
}

func newTestConfigurator(t *testing.T, strategies ...locator.Strategy) *Configurator {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chrome_auto_config.json")
	return New(path, locator.NewWithStrategies(strategies...))
}

// writeExecutable creates a file that passes executable verification.
func writeExecutable(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "chrome")
	require.NoError(t, os.WriteFile(path, []byte("#!/bin/sh\n"), 0755))
	return path
}

func TestSaveLoadRoundTrip(t *testing.T) {
	records := []Record{
		{BrowserPath: "/usr/bin/google-chrome", UseOwnBrowser: "true", BrowserUserData: "/home/me/.config/google-chrome"},
		{BrowserPath: "/usr/bin/google-chrome"},
		{UseOwnBrowser: "false"},
		{},
	}

	for _, record := range records {
		c := newTestConfigurator(t)
		require.NoError(t, c.Save(record))

		loaded, err := c.Load()
		require.NoError(t, err)
		assert.Equal(t, record, loaded)
	}
}

func TestLoadMissingFile(t *testing.T) {
	c := newTestConfigurator(t)

	record, err := c.Load()
	require.NoError(t, err)
	assert.Equal(t, Record{}, record)
}

func TestApplyToEnvironmentSkipsEmpty(t *testing.T) {
	t.Setenv("BROWSER_PATH", "/preset/chrome")
	t.Setenv("USE_OWN_BROWSER", "")
	t.Setenv("BROWSER_USER_DATA", "")

	c := newTestConfigurator(t)
	c.ApplyToEnvironment(Record{UseOwnBrowser: "true"})

	assert.Equal(t, "/preset/chrome", os.Getenv("BROWSER_PATH"), "empty field must not overwrite")
	assert.Equal(t, "true", os.Getenv("USE_OWN_BROWSER"))
	assert.Empty(t, os.Getenv("BROWSER_USER_DATA"))
}

func TestAutoDetectAndConfigure(t *testing.T) {
	exe := writeExecutable(t)
	c := newTestConfigurator(t, fixedStrategy{candidates: []locator.Candidate{
		{Path: exe, Source: locator.SourceKnownPath},
	}})

	record := c.AutoDetectAndConfigure()

	assert.Equal(t, exe, record.BrowserPath)
	assert.Equal(t, "true", record.UseOwnBrowser)

	// Persisted and readable back
	loaded, err := c.Load()
	require.NoError(t, err)
	assert.Equal(t, record, loaded)

	// Idempotent: a second pass overwrites with the same result
	assert.Equal(t, record, c.AutoDetectAndConfigure())
}

func TestAutoDetectDegradesOnMiss(t *testing.T) {
	c := newTestConfigurator(t, fixedStrategy{})

	record := c.AutoDetectAndConfigure()

	assert.Empty(t, record.BrowserPath)
	assert.Equal(t, "false", record.UseOwnBrowser)
	assert.False(t, record.UsesOwnBrowser())
}

func TestAutoDetectUnverifiableExecutable(t *testing.T) {
	c := newTestConfigurator(t, fixedStrategy{candidates: []locator.Candidate{
		{Path: "/nonexistent/chrome", Source: locator.SourceKnownPath},
	}})

	record := c.AutoDetectAndConfigure()

	assert.Equal(t, "/nonexistent/chrome", record.BrowserPath)
	assert.Equal(t, "false", record.UseOwnBrowser)
}

func TestStatus(t *testing.T) {
	exe := writeExecutable(t)
	c := newTestConfigurator(t)
	require.NoError(t, c.Save(Record{
		BrowserPath:     exe,
		UseOwnBrowser:   "true",
		BrowserUserData: "/home/me/.config/google-chrome",
	}))

	status := c.Status()
	assert.True(t, status.ChromeDetected)
	assert.Equal(t, exe, status.ChromePath)
	assert.True(t, status.ExecutableVerified)
	assert.True(t, status.UseOwnBrowser)
	assert.Equal(t, "/home/me/.config/google-chrome", status.UserDataDir)
	assert.False(t, status.ConnectionTested)
}

func TestStatusStaleExecutable(t *testing.T) {
	c := newTestConfigurator(t)
	require.NoError(t, c.Save(Record{BrowserPath: "/gone/chrome", UseOwnBrowser: "true"}))

	status := c.Status()
	assert.True(t, status.ChromeDetected)
	assert.False(t, status.ExecutableVerified)
}

func TestConnectionTestedLifecycle(t *testing.T) {
	c := newTestConfigurator(t, fixedStrategy{})

	assert.False(t, c.Status().ConnectionTested)

	c.MarkConnectionTested()
	assert.True(t, c.Status().ConnectionTested)

	// A fresh detection pass resets the flag
	c.AutoDetectAndConfigure()
	assert.False(t, c.Status().ConnectionTested)
}
