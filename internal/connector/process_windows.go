//go:build windows

package connector

import (
	"os"
	"os/exec"
)

// setProcessGroup is a no-op on Windows; there are no Unix process groups.
func setProcessGroup(cmd *exec.Cmd) {
}

// killProcessGroup kills the main browser process on Windows and relies on
// Chrome's own cleanup for child processes.
func killProcessGroup(cmd *exec.Cmd, force bool) {
	if cmd.Process == nil {
		return
	}
	if force {
		_ = cmd.Process.Kill()
	} else {
		_ = cmd.Process.Signal(os.Interrupt)
	}
}
