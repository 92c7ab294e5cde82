// Package autoconfig detects a local Chrome installation once per process and
// persists the result so other components can read it without re-probing the
// filesystem. Detection is launch-free; starting a browser is the connector's
// job.
package autoconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/anshiakhileshmj/browserauto/internal/locator"
	"github.com/anshiakhileshmj/browserauto/internal/logging"
)

// Record is the persisted auto-detect result. Key names match the environment
// variables consumed by the automation collaborators.
type Record struct {
	BrowserPath     string `json:"BROWSER_PATH,omitempty"`
	UseOwnBrowser   string `json:"USE_OWN_BROWSER,omitempty"`
	BrowserUserData string `json:"BROWSER_USER_DATA,omitempty"`
}

// UsesOwnBrowser reports whether the record marks the local browser as the
// browser of choice.
func (r Record) UsesOwnBrowser() bool {
	return r.UseOwnBrowser == "true"
}

// Status is a point-in-time view of the persisted configuration.
type Status struct {
	ChromeDetected     bool   `json:"chrome_detected"`
	ChromePath         string `json:"chrome_path,omitempty"`
	UserDataDir        string `json:"user_data_dir,omitempty"`
	UseOwnBrowser      bool   `json:"use_own_browser"`
	ExecutableVerified bool   `json:"executable_verified"`
	ConnectionTested   bool   `json:"connection_tested"`
}

// Configurator owns the persisted record and the detection lifecycle.
type Configurator struct {
	mu   sync.Mutex
	path string
	loc  *locator.Locator

	// connectionTested flips to true after the first successful attach since
	// the last detection pass.
	connectionTested bool
}

// New returns a Configurator persisting to path and probing with loc.
func New(path string, loc *locator.Locator) *Configurator {
	return &Configurator{path: path, loc: loc}
}

// Path returns the record file path.
func (c *Configurator) Path() string {
	return c.path
}

// AutoDetectAndConfigure runs the locator once, persists the result and
// returns it. It never launches a browser and never fails: detection misses
// degrade to a record with USE_OWN_BROWSER=false, meaning the caller should
// fall back to a bundled browser engine. Calling it again simply overwrites
// the record with a fresh probe and resets the connection-tested flag.
func (c *Configurator) AutoDetectAndConfigure() Record {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.connectionTested = false

	record := Record{UseOwnBrowser: "false"}

	if best := c.loc.BestCandidate(); best != nil {
		record.BrowserPath = best.Path
		if locator.VerifyExecutable(best.Path) {
			record.UseOwnBrowser = "true"
			logging.Infof("browser executable verified: %s", best.Path)
		} else {
			logging.Warnf("browser executable not accessible: %s", best.Path)
		}
	} else {
		logging.Warn("no browser installation found, falling back to bundled engine")
	}

	if dir := c.loc.FindProfileDirectory(); dir != "" {
		record.BrowserUserData = dir
		logging.Infof("browser user data directory: %s", dir)
	}

	if err := c.save(record); err != nil {
		logging.Errorf("failed to save configuration: %v", err)
	}

	return record
}

// Save persists the record as JSON, creating the parent directory if needed.
func (c *Configurator) Save(record Record) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.save(record)
}

func (c *Configurator) save(record Record) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal configuration: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(c.path), 0755); err != nil {
		return fmt.Errorf("create configuration directory: %w", err)
	}
	if err := os.WriteFile(c.path, data, 0644); err != nil {
		return fmt.Errorf("write configuration: %w", err)
	}
	return nil
}

// Load reads the persisted record. A missing file yields a zero Record and no
// error.
func (c *Configurator) Load() (Record, error) {
	data, err := os.ReadFile(c.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, nil
		}
		return Record{}, fmt.Errorf("read configuration: %w", err)
	}

	var record Record
	if err := json.Unmarshal(data, &record); err != nil {
		return Record{}, fmt.Errorf("parse configuration: %w", err)
	}
	return record, nil
}

// ApplyToEnvironment exports every non-empty record field as a process
// environment variable. Empty fields are skipped so a partial record never
// blanks out values set elsewhere.
func (c *Configurator) ApplyToEnvironment(record Record) {
	for key, value := range map[string]string{
		"BROWSER_PATH":      record.BrowserPath,
		"USE_OWN_BROWSER":   record.UseOwnBrowser,
		"BROWSER_USER_DATA": record.BrowserUserData,
	} {
		if value == "" {
			continue
		}
		if err := os.Setenv(key, value); err != nil {
			logging.Errorf("failed to set %s: %v", key, err)
			continue
		}
		logging.Debugf("set %s=%s", key, value)
	}
}

// MarkConnectionTested records that an attach succeeded since the last
// detection pass. The connector calls this after a successful connect.
func (c *Configurator) MarkConnectionTested() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.connectionTested = true
}

// Status re-reads the persisted record and re-verifies the executable without
// launching anything.
func (c *Configurator) Status() Status {
	record, err := c.Load()
	if err != nil {
		logging.Errorf("failed to load configuration: %v", err)
	}

	c.mu.Lock()
	tested := c.connectionTested
	c.mu.Unlock()

	status := Status{
		UseOwnBrowser:    record.UsesOwnBrowser(),
		UserDataDir:      record.BrowserUserData,
		ConnectionTested: tested,
	}
	if record.BrowserPath != "" {
		status.ChromeDetected = true
		status.ChromePath = record.BrowserPath
		status.ExecutableVerified = locator.VerifyExecutable(record.BrowserPath)
	}
	return status
}
