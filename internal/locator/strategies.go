package locator

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/anshiakhileshmj/browserauto/internal/logging"
)

// knownPathStrategy checks the fixed per-platform install locations.
type knownPathStrategy struct{}

func (knownPathStrategy) Probe() []Candidate {
	var paths []string
	switch runtime.GOOS {
	case "darwin":
		paths = knownPathsMac()
	case "linux":
		paths = knownPathsLinux()
	case "windows":
		paths = knownPathsWindows()
	default:
		logging.Warnf("unsupported platform for browser detection: %s", runtime.GOOS)
		return nil
	}

	var found []Candidate
	for _, p := range paths {
		if fileExists(p) {
			found = append(found, Candidate{Path: p, Source: SourceKnownPath})
		}
	}
	return found
}

func knownPathsMac() []string {
	home := os.Getenv("HOME")
	return []string{
		"/Applications/Google Chrome.app/Contents/MacOS/Google Chrome",
		filepath.Join(home, "Applications/Google Chrome.app/Contents/MacOS/Google Chrome"),
		"/Applications/Chromium.app/Contents/MacOS/Chromium",
		"/Applications/Google Chrome Canary.app/Contents/MacOS/Google Chrome Canary",
	}
}

func knownPathsLinux() []string {
	return []string{
		"/usr/bin/google-chrome",
		"/usr/bin/google-chrome-stable",
		"/usr/bin/chrome",
		"/usr/bin/chromium",
		"/usr/bin/chromium-browser",
		"/snap/bin/chromium",
		"/opt/google/chrome/chrome",
	}
}

func knownPathsWindows() []string {
	programFiles := os.Getenv("ProgramFiles")
	if programFiles == "" {
		programFiles = `C:\Program Files`
	}
	programFilesX86 := os.Getenv("ProgramFiles(x86)")
	if programFilesX86 == "" {
		programFilesX86 = `C:\Program Files (x86)`
	}

	paths := []string{
		filepath.Join(programFiles, "Google", "Chrome", "Application", "chrome.exe"),
		filepath.Join(programFilesX86, "Google", "Chrome", "Application", "chrome.exe"),
	}
	if localAppData := os.Getenv("LOCALAPPDATA"); localAppData != "" {
		paths = append(paths,
			filepath.Join(localAppData, "Google", "Chrome", "Application", "chrome.exe"))
	}
	return paths
}

// registryStrategy reads the Chrome App Paths entries from the Windows
// registry via `reg query`. Probing on other platforms yields nothing.
type registryStrategy struct{}

var registryKeys = []string{
	`HKLM\SOFTWARE\Microsoft\Windows\CurrentVersion\App Paths\chrome.exe`,
	`HKLM\SOFTWARE\WOW6432Node\Microsoft\Windows\CurrentVersion\App Paths\chrome.exe`,
	`HKCU\SOFTWARE\Microsoft\Windows\CurrentVersion\App Paths\chrome.exe`,
}

func (registryStrategy) Probe() []Candidate {
	if runtime.GOOS != "windows" {
		return nil
	}

	var found []Candidate
	for _, key := range registryKeys {
		out, err := exec.Command("reg", "query", key, "/ve").Output()
		if err != nil {
			continue
		}
		path := parseRegValue(string(out))
		if path != "" && fileExists(path) {
			found = append(found, Candidate{Path: path, Source: SourceRegistry})
		}
	}
	return found
}

// parseRegValue extracts the default value from `reg query /ve` output, e.g.
//
//	(Default)    REG_SZ    C:\Program Files\Google\Chrome\Application\chrome.exe
func parseRegValue(out string) string {
	for _, line := range strings.Split(out, "\n") {
		idx := strings.Index(line, "REG_SZ")
		if idx < 0 {
			continue
		}
		return strings.TrimSpace(line[idx+len("REG_SZ"):])
	}
	return ""
}

// pathLookupStrategy searches PATH for the per-platform executable names.
type pathLookupStrategy struct{}

func (pathLookupStrategy) Probe() []Candidate {
	var names []string
	switch runtime.GOOS {
	case "windows":
		names = []string{"chrome.exe", "chrome"}
	case "darwin":
		names = []string{"google-chrome", "chromium"}
	default:
		names = []string{"google-chrome", "google-chrome-stable", "chromium", "chromium-browser"}
	}

	var found []Candidate
	for _, name := range names {
		path, err := exec.LookPath(name)
		if err != nil {
			continue
		}
		found = append(found, Candidate{Path: path, Source: SourcePathLookup})
	}
	return found
}

// profileDirectory returns the vendor user-data path for the current user,
// derived purely from environment variables and the home directory.
func profileDirectory() string {
	switch runtime.GOOS {
	case "windows":
		localAppData := os.Getenv("LOCALAPPDATA")
		if localAppData == "" {
			return ""
		}
		return filepath.Join(localAppData, "Google", "Chrome", "User Data")
	case "darwin":
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, "Library", "Application Support", "Google", "Chrome")
	default:
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		return filepath.Join(home, ".config", "google-chrome")
	}
}
