package host

import (
	"context"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v4/process"
)

// ProcessInfo describes a running process matched by image name.
type ProcessInfo struct {
	PID       int32
	Name      string
	Exe       string
	StartedAt time.Time
}

// FindProcesses lists running processes whose image name is exeName. Names
// compare case-insensitively, as Windows image names do.
func FindProcesses(ctx context.Context, exeName string) ([]ProcessInfo, error) {
	name := filepath.Base(filepath.FromSlash(exeName))

	procs, err := process.ProcessesWithContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get process list: %w", err)
	}

	var found []ProcessInfo
	for _, p := range procs {
		pname, err := p.NameWithContext(ctx)
		if err != nil {
			continue
		}
		if !strings.EqualFold(pname, name) {
			continue
		}

		info := ProcessInfo{PID: p.Pid, Name: pname}
		if exe, err := p.ExeWithContext(ctx); err == nil {
			info.Exe = exe
		}
		if ms, err := p.CreateTimeWithContext(ctx); err == nil {
			info.StartedAt = time.UnixMilli(ms)
		}
		found = append(found, info)
	}

	sort.Slice(found, func(i, j int) bool { return found[i].PID < found[j].PID })
	return found, nil
}
