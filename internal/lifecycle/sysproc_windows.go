//go:build windows

package lifecycle

import (
	"syscall"

	winapi "golang.org/x/sys/windows"
)

func detachedSysProcAttr() *syscall.SysProcAttr {
	return &syscall.SysProcAttr{HideWindow: true, CreationFlags: winapi.CREATE_NEW_PROCESS_GROUP}
}
