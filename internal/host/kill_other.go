//go:build !windows

package host

import (
	"context"
	"errors"
	"fmt"

	"github.com/shirou/gopsutil/v4/process"
)

// killByName sends SIGKILL to every process FindProcesses matches. Matching
// goes through gopsutil, which sees the full executable name rather than the
// 15-byte kernel comm field that pkill compares.
func killByName(ctx context.Context, name string) error {
	found, err := FindProcesses(ctx, name)
	if err != nil {
		return err
	}
	if len(found) == 0 {
		return fmt.Errorf("no process named %s", name)
	}

	var errs []error
	killed := 0
	for _, info := range found {
		p, err := process.NewProcessWithContext(ctx, info.PID)
		if errors.Is(err, process.ErrorProcessNotRunning) {
			continue
		}
		if err != nil {
			errs = append(errs, fmt.Errorf("pid %d: %w", info.PID, err))
			continue
		}
		if err := p.KillWithContext(ctx); err != nil {
			errs = append(errs, fmt.Errorf("pid %d: %w", info.PID, err))
			continue
		}
		killed++
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	if killed == 0 {
		return fmt.Errorf("no process named %s", name)
	}
	return nil
}
