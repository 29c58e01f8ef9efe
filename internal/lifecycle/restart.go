package lifecycle

import (
	"context"
	"fmt"
)

// Restart closes every registered window on its owner and then relaunches
// the program with args. The caller exits once it returns nil.
func Restart(ctx context.Context, reg *Registry, r Relauncher, args []string) error {
	if err := reg.CloseAll(ctx); err != nil {
		return fmt.Errorf("close windows: %w", err)
	}
	if err := r.Relaunch(args); err != nil {
		return fmt.Errorf("relaunch: %w", err)
	}
	return nil
}
