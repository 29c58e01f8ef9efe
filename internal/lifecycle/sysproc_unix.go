//go:build !windows

package lifecycle

import "syscall"

// detachedSysProcAttr puts the relaunched program in its own session so it
// outlives the exiting parent.
func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{Setsid: true}
}
