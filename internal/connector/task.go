package connector

import (
	"context"
	"net/url"
	"strings"

	"github.com/anshiakhileshmj/browserauto/internal/logging"
)

// TaskResult is the structured outcome of ExecuteTask.
type TaskResult struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	URL     string `json:"url,omitempty"`
	Title   string `json:"title,omitempty"`
}

// ExecuteTask dispatches a free-text task against the attached browser. It
// recognizes a small fixed set of intents; anything unrecognized falls back
// to a web search. Navigation failures are converted into a failed
// TaskResult, never propagated. Calling it while unattached is a caller bug
// and returns ErrNotConnected.
func (c *Connector) ExecuteTask(ctx context.Context, task string) (TaskResult, error) {
	page, err := c.GetOrCreatePage()
	if err != nil {
		return TaskResult{}, err
	}

	logging.Infof("executing task: %s", task)

	target, message := resolveTask(task)
	if err := page.Goto(ctx, target); err != nil {
		logging.Errorf("task navigation failed: %v", err)
		return TaskResult{
			Success: false,
			Message: "navigation failed: " + err.Error(),
		}, nil
	}

	title, err := page.Title()
	if err != nil {
		logging.Warnf("could not read page title: %v", err)
	}

	return TaskResult{
		Success: true,
		Message: message,
		URL:     page.URL(),
		Title:   title,
	}, nil
}

// resolveTask maps free text to a target URL and a human-readable message.
func resolveTask(task string) (target, message string) {
	trimmed := strings.TrimSpace(task)
	lower := strings.ToLower(trimmed)

	switch {
	case strings.Contains(lower, "open google"):
		return "https://www.google.com", "Opened Google"

	case strings.Contains(lower, "open youtube"):
		return "https://www.youtube.com", "Opened YouTube"

	case strings.Contains(lower, "search"):
		query := strings.TrimSpace(strings.Replace(lower, "search", "", 1))
		return searchURL(query), "Searched for: " + query

	case strings.HasPrefix(lower, "http://"), strings.HasPrefix(lower, "https://"):
		return trimmed, "Navigated to: " + trimmed

	default:
		// Unrecognized text becomes a search query rather than an error.
		return searchURL(trimmed), "Navigated to: " + trimmed
	}
}

func searchURL(query string) string {
	return "https://www.google.com/search?q=" + url.QueryEscape(query)
}
