package lifecycle

import (
	"fmt"
	"os"
	"os/exec"
)

// Relauncher starts a fresh copy of the running program.
type Relauncher struct {
	// Executable resolves the program path; defaults to os.Executable.
	Executable func() (string, error)
	// Start runs the prepared command; defaults to (*exec.Cmd).Start.
	Start func(*exec.Cmd) error
	// Dir is the working directory of the new process; empty keeps the
	// current one.
	Dir string
}

// Command prepares the relaunch command without starting it.
func (r Relauncher) Command(args []string) (*exec.Cmd, error) {
	exe := r.Executable
	if exe == nil {
		exe = os.Executable
	}
	path, err := exe()
	if err != nil {
		return nil, fmt.Errorf("resolve executable: %w", err)
	}
	cmd := exec.Command(path, args...)
	cmd.Dir = r.Dir
	cmd.Env = os.Environ()
	cmd.SysProcAttr = detachedSysProcAttr()
	return cmd, nil
}

// Relaunch starts the program again with args. The caller terminates the
// current process afterwards.
func (r Relauncher) Relaunch(args []string) error {
	cmd, err := r.Command(args)
	if err != nil {
		return err
	}
	start := r.Start
	if start == nil {
		start = (*exec.Cmd).Start
	}
	if err := start(cmd); err != nil {
		return fmt.Errorf("start %s: %w", cmd.Path, err)
	}
	if cmd.Process != nil {
		_ = cmd.Process.Release()
	}
	return nil
}
