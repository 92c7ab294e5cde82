package connector

import (
	"os/exec"
)

// process is a browser process this connector launched. Liveness is polled,
// never inferred from a stored boolean.
type process interface {
	Alive() bool
	Terminate() error
	Kill() error
}

// launcher spawns browser processes. Tests swap in a counting fake.
type launcher interface {
	Start(path string, args []string) (process, error)
}

// execLauncher launches via os/exec with the browser in its own process
// group so renderer children die with it.
type execLauncher struct{}

func (execLauncher) Start(path string, args []string) (process, error) {
	cmd := exec.Command(path, args...)
	// Stdout/Stderr stay nil: Chrome's own output is discarded.
	setProcessGroup(cmd)

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	p := &execProcess{cmd: cmd, done: make(chan struct{})}
	go func() {
		_ = cmd.Wait()
		close(p.done)
	}()
	return p, nil
}

type execProcess struct {
	cmd  *exec.Cmd
	done chan struct{}
}

func (p *execProcess) Alive() bool {
	select {
	case <-p.done:
		return false
	default:
		return true
	}
}

func (p *execProcess) Terminate() error {
	killProcessGroup(p.cmd, false)
	return nil
}

func (p *execProcess) Kill() error {
	killProcessGroup(p.cmd, true)
	return nil
}
