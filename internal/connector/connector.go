// Package connector attaches to a local Chrome over the DevTools protocol,
// launching a debuggable process first when none is listening. One Connector
// owns at most one attachment and at most one managed process; attach-or-launch
// is idempotent and safe to repeat.
package connector

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/anshiakhileshmj/browserauto/internal/logging"
)

// DefaultDebugPort is the fixed remote-debugging port.
const DefaultDebugPort = 9222

// State is the connector lifecycle state.
type State int

const (
	StateUnattached State = iota
	StateLaunching
	StateWaitingForDebugPort
	StateAttached
)

func (s State) String() string {
	switch s {
	case StateUnattached:
		return "unattached"
	case StateLaunching:
		return "launching"
	case StateWaitingForDebugPort:
		return "waiting-for-debug-port"
	case StateAttached:
		return "attached"
	default:
		return "unknown"
	}
}

// PollPolicy bounds the wait for the debug endpoint after a launch.
type PollPolicy struct {
	// SettleDelay is slept once after spawning, before the first probe.
	SettleDelay time.Duration

	// Interval separates consecutive probes.
	Interval time.Duration

	// MaxAttempts caps the number of probes.
	MaxAttempts int
}

// DefaultPollPolicy matches Chrome's typical cold-start timing.
func DefaultPollPolicy() PollPolicy {
	return PollPolicy{
		SettleDelay: 3 * time.Second,
		Interval:    time.Second,
		MaxAttempts: 10,
	}
}

// Options configures a Connector. Zero values select the defaults.
type Options struct {
	// DebugPort is the local remote-debugging port.
	DebugPort int

	// Poll bounds the post-launch readiness wait.
	Poll PollPolicy

	// Dialer attaches to the debug endpoint. Defaults to PlaywrightDialer.
	Dialer Dialer

	// OnAttached is invoked after each successful attach, e.g. to mark the
	// configuration as connection-tested.
	OnAttached func()
}

// Connector owns a single browser attachment. Construct one explicitly and
// pass it to whoever needs the shared connection; there is no package-level
// instance.
type Connector struct {
	mu sync.Mutex

	endpoint   string
	poll       PollPolicy
	dialer     Dialer
	launch     launcher
	onAttached func()
	probe      *http.Client

	state     State
	browser   Browser
	context   BrowserContext
	page      Page
	managed   process
	sessionID string
	lastErr   *Error
}

// New returns an unattached Connector.
func New(opts Options) *Connector {
	port := opts.DebugPort
	if port == 0 {
		port = DefaultDebugPort
	}
	poll := opts.Poll
	if poll.MaxAttempts == 0 {
		poll = DefaultPollPolicy()
	}
	dialer := opts.Dialer
	if dialer == nil {
		dialer = PlaywrightDialer{}
	}

	return &Connector{
		endpoint:   fmt.Sprintf("http://localhost:%d", port),
		poll:       poll,
		dialer:     dialer,
		launch:     execLauncher{},
		onAttached: opts.OnAttached,
		probe:      &http.Client{Timeout: 2 * time.Second},
	}
}

// State returns the current lifecycle state.
func (c *Connector) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// IsAttached reports whether the connector holds a live attachment.
func (c *Connector) IsAttached() bool {
	return c.State() == StateAttached
}

// LastError returns the most recent classified failure, or nil.
func (c *Connector) LastError() *Error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

// Connect ensures a debuggable browser process is running and attaches to it.
// Calling it while already attached returns true immediately with no side
// effects. Attachment failures are absorbed: the connector logs, records the
// classified error and returns false, leaving the state unattached.
func (c *Connector) Connect(ctx context.Context, chromePath, userDataDir string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.state == StateAttached && c.browser != nil {
		logging.Info("already connected to browser")
		return true
	}

	c.lastErr = nil
	logging.Info("connecting to browser...")

	c.ensureDebuggableProcess(ctx, chromePath, userDataDir)

	browser, err := c.dialer.Dial(ctx, c.endpoint)
	if err != nil {
		c.fail(&Error{Kind: KindAttachFailure, Op: "connect", Err: err})
		c.state = StateUnattached
		return false
	}

	c.browser = browser
	c.state = StateAttached
	c.lastErr = nil
	c.sessionID = uuid.New().String()[:8]
	logging.Infof("connected to browser at %s (session %s)", c.endpoint, c.sessionID)

	if c.onAttached != nil {
		c.onAttached()
	}
	return true
}

// ensureDebuggableProcess makes sure something is listening on the debug
// endpoint. Launching is skipped when the endpoint already answers, or when a
// process this connector launched is still alive. Exceeding the polling bound
// only warns; the caller attempts attachment anyway and fails gracefully.
// Callers hold c.mu.
func (c *Connector) ensureDebuggableProcess(ctx context.Context, chromePath, userDataDir string) {
	c.state = StateLaunching

	if c.debugEndpointReachable(ctx) {
		logging.Info("browser with remote debugging already running")
		return
	}

	if c.managed != nil && c.managed.Alive() {
		logging.Info("browser already launched by this connector")
		return
	}

	logging.Infof("launching browser with remote debugging: %s", chromePath)
	proc, err := c.launch.Start(chromePath, debugLaunchArgs(c.endpoint, userDataDir))
	if err != nil {
		c.fail(&Error{Kind: KindLaunchFailure, Op: "launch", Err: err})
		c.state = StateUnattached
		return
	}
	c.managed = proc

	c.state = StateWaitingForDebugPort
	if !sleepCtx(ctx, c.poll.SettleDelay) {
		return
	}
	for attempt := 0; attempt < c.poll.MaxAttempts; attempt++ {
		if c.debugEndpointReachable(ctx) {
			logging.Info("browser remote debugging ready")
			return
		}
		if !sleepCtx(ctx, c.poll.Interval) {
			return
		}
	}

	c.fail(&Error{
		Kind: KindLaunchFailure,
		Op:   "launch",
		Err:  fmt.Errorf("debug port not reachable after %d attempts", c.poll.MaxAttempts),
	})
}

// DebugEndpointReachable reports whether the remote-debugging endpoint
// answers its version probe.
func (c *Connector) DebugEndpointReachable(ctx context.Context) bool {
	return c.debugEndpointReachable(ctx)
}

func (c *Connector) debugEndpointReachable(ctx context.Context) bool {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.versionURL(), nil)
	if err != nil {
		return false
	}
	resp, err := c.probe.Do(req)
	if err != nil {
		return false
	}
	defer resp.Body.Close()
	return resp.StatusCode == http.StatusOK
}

// WebSocketDebuggerURL fetches the CDP WebSocket URL from the version probe.
func (c *Connector) WebSocketDebuggerURL(ctx context.Context) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.versionURL(), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.probe.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var version struct {
		WebSocketDebuggerURL string `json:"webSocketDebuggerUrl"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&version); err != nil {
		return "", err
	}
	if version.WebSocketDebuggerURL == "" {
		return "", fmt.Errorf("no webSocketDebuggerUrl in response")
	}
	return version.WebSocketDebuggerURL, nil
}

func (c *Connector) versionURL() string {
	return strings.TrimSuffix(c.endpoint, "/") + "/json/version"
}

// GetOrCreateContext reuses the first existing browsing context, creating one
// only when the browser has none. Repeated calls within an attachment return
// the same handle.
func (c *Connector) GetOrCreateContext() (BrowserContext, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.getOrCreateContext()
}

func (c *Connector) getOrCreateContext() (BrowserContext, error) {
	if c.state != StateAttached || c.browser == nil {
		return nil, ErrNotConnected
	}
	if c.context != nil {
		return c.context, nil
	}

	if contexts := c.browser.Contexts(); len(contexts) > 0 {
		c.context = contexts[0]
		logging.Info("using existing browser context")
	} else {
		context, err := c.browser.NewContext()
		if err != nil {
			return nil, fmt.Errorf("failed to create browser context: %w", err)
		}
		c.context = context
		logging.Info("created new browser context")
	}
	return c.context, nil
}

// GetOrCreatePage reuses the first existing page of the context, creating one
// only when there is none. Repeated calls within an attachment return the
// same handle.
func (c *Connector) GetOrCreatePage() (Page, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.page != nil {
		return c.page, nil
	}

	context, err := c.getOrCreateContext()
	if err != nil {
		return nil, err
	}

	if pages := context.Pages(); len(pages) > 0 {
		c.page = pages[0]
		logging.Info("using existing browser page")
	} else {
		page, err := context.NewPage()
		if err != nil {
			return nil, fmt.Errorf("failed to create page: %w", err)
		}
		c.page = page
		logging.Info("created new browser page")
	}
	return c.page, nil
}

// Close releases the attachment but leaves the browser window running for the
// user. Terminating a managed process is ForceTerminate's job, never Close's.
func (c *Connector) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.browser != nil {
		if err := c.browser.Close(); err != nil {
			logging.Warnf("error closing browser connection: %v", err)
		}
		c.browser = nil
	}
	c.context = nil
	c.page = nil
	c.state = StateUnattached
	logging.Info("browser connection closed (browser left running)")
}

// ForceTerminate kills a process this connector launched. It is a no-op when
// the connector launched nothing or the process already exited.
func (c *Connector) ForceTerminate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.managed == nil || !c.managed.Alive() {
		return
	}
	if err := c.managed.Terminate(); err != nil {
		logging.Warnf("error terminating browser process: %v", err)
		return
	}
	logging.Info("managed browser process terminated")
}

func (c *Connector) fail(err *Error) {
	c.lastErr = err
	logging.Warnf("%v", err)
}

// debugLaunchArgs is the fixed flag set applied whenever this connector
// launches the browser: remote debugging on the endpoint's port, an explicit
// profile directory, no first-run or default-browser prompts, and no
// background throttling that would distort automation timing.
func debugLaunchArgs(endpoint, userDataDir string) []string {
	port := DefaultDebugPort
	if i := strings.LastIndex(endpoint, ":"); i >= 0 {
		fmt.Sscanf(endpoint[i+1:], "%d", &port)
	}
	return []string{
		fmt.Sprintf("--remote-debugging-port=%d", port),
		"--user-data-dir=" + userDataDir,
		"--no-first-run",
		"--no-default-browser-check",
		"--disable-default-apps",
		"--disable-popup-blocking",
		"--disable-background-timer-throttling",
		"--disable-backgrounding-occluded-windows",
		"--disable-renderer-backgrounding",
		"--disable-features=TranslateUI",
		"--disable-ipc-flooding-protection",
	}
}

// sleepCtx sleeps for d unless ctx is done first. Returns false on
// cancellation.
func sleepCtx(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
