package main

import (
	"context"
	"os"
	"time"

	"measuredesk/internal/lifecycle"
)

const closeTimeout = 5 * time.Second

// logout closes every window and starts a fresh instance. The windows are
// closed on the UI goroutine, so the wait happens in the background.
func (a *app) logout() {
	if a.quitting {
		return
	}
	a.quitting = true
	logDebug("log out: closing %d windows", a.reg.Len())

	a.bg.Add(1)
	go func() {
		defer a.bg.Done()
		ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
		defer cancel()
		if err := lifecycle.Restart(ctx, a.reg, a.relaunch, os.Args[1:]); err != nil {
			logError("log out: %v", err)
			a.ui.Do(func() { a.quitting = false })
			return
		}
		notifyDesktop(appName, "Logged out. A new session is starting.")
	}()
}
