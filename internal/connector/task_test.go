package connector

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveTask(t *testing.T) {
	tests := []struct {
		task       string
		wantTarget string
	}{
		{"open google", "https://www.google.com"},
		{"please open google now", "https://www.google.com"},
		{"open youtube", "https://www.youtube.com"},
		{"search cats", "https://www.google.com/search?q=cats"},
		{"search python programming", "https://www.google.com/search?q=python+programming"},
		{"https://example.com/page", "https://example.com/page"},
		{"http://example.com", "http://example.com"},
		{"not-a-command-xyz", "https://www.google.com/search?q=not-a-command-xyz"},
	}

	for _, tt := range tests {
		target, _ := resolveTask(tt.task)
		assert.Equal(t, tt.wantTarget, target, "task %q", tt.task)
	}
}

func attachedConnector(t *testing.T, page *fakePage) *Connector {
	t.Helper()
	browser := &fakeBrowser{contexts: []BrowserContext{&fakeContext{pages: []Page{page}}}}
	c := newTestConnector(&fakeDialer{browser: browser}, &fakeLauncher{proc: &fakeProcess{alive: true}}, 0)
	require.True(t, c.Connect(context.Background(), "/usr/bin/google-chrome", "/tmp/profile"))
	return c
}

func TestExecuteTaskOpenGoogle(t *testing.T) {
	page := &fakePage{title: "Google"}
	c := attachedConnector(t, page)

	result, err := c.ExecuteTask(context.Background(), "open google")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Contains(t, result.URL, "google.com")
	assert.Equal(t, "Google", result.Title)
	assert.Equal(t, "Opened Google", result.Message)
}

func TestExecuteTaskSearch(t *testing.T) {
	page := &fakePage{title: "cats - Google Search"}
	c := attachedConnector(t, page)

	result, err := c.ExecuteTask(context.Background(), "search cats")
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Contains(t, result.URL, "google.com/search?q=cats")
}

func TestExecuteTaskFallbackToSearch(t *testing.T) {
	page := &fakePage{}
	c := attachedConnector(t, page)

	result, err := c.ExecuteTask(context.Background(), "not-a-command-xyz")
	require.NoError(t, err)

	assert.True(t, result.Success, "unrecognized text must fall back to a search, not fail")
	assert.Contains(t, result.URL, "google.com/search?q=not-a-command-xyz")
}

func TestExecuteTaskNavigationFailure(t *testing.T) {
	page := &fakePage{gotoErr: errors.New("net::ERR_CONNECTION_REFUSED")}
	c := attachedConnector(t, page)

	result, err := c.ExecuteTask(context.Background(), "open google")
	require.NoError(t, err, "navigation failures are absorbed into the result")

	assert.False(t, result.Success)
	assert.Contains(t, result.Message, "navigation failed")
}

func TestExecuteTaskReusesPage(t *testing.T) {
	page := &fakePage{}
	c := attachedConnector(t, page)

	_, err := c.ExecuteTask(context.Background(), "open google")
	require.NoError(t, err)
	_, err = c.ExecuteTask(context.Background(), "open youtube")
	require.NoError(t, err)

	assert.Equal(t, 2, page.gotoCalls, "both tasks must run in the same page")
}
