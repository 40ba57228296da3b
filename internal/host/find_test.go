package host

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/shirou/gopsutil/v4/process"
	"github.com/stretchr/testify/require"
)

func TestFindProcessesSelf(t *testing.T) {
	ctx := context.Background()
	self, err := process.NewProcessWithContext(ctx, int32(os.Getpid()))
	require.NoError(t, err)
	name, err := self.NameWithContext(ctx)
	require.NoError(t, err)

	found, err := FindProcesses(ctx, filepath.Join("some", "dir", name))
	require.NoError(t, err)

	var pids []int32
	for _, p := range found {
		pids = append(pids, p.PID)
	}
	require.Contains(t, pids, int32(os.Getpid()))
}

func TestFindProcessesNoMatch(t *testing.T) {
	found, err := FindProcesses(context.Background(), "quest-passer-no-such-process.exe")
	require.NoError(t, err)
	require.Empty(t, found)
}
