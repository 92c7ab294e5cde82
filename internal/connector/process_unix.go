//go:build !windows

package connector

import (
	"os/exec"
	"syscall"
)

// setProcessGroup puts the browser in its own process group so all child
// processes (renderers, GPU, etc.) share the same PGID and can be killed
// together.
func setProcessGroup(cmd *exec.Cmd) {
	cmd.SysProcAttr = &syscall.SysProcAttr{
		Setpgid: true,
	}
}

// killProcessGroup signals the entire browser process group.
// force=false sends SIGTERM, force=true sends SIGKILL.
func killProcessGroup(cmd *exec.Cmd, force bool) {
	if cmd.Process == nil {
		return
	}
	sig := syscall.SIGTERM
	if force {
		sig = syscall.SIGKILL
	}
	// Negative PID targets the whole process group
	_ = syscall.Kill(-cmd.Process.Pid, sig)
}
