//go:build unix

package runner

import (
	"os"
	"syscall"
)

// menuSignals stand in for the tray menu: kill -USR1 shows the window and
// kill -USR2 hides it. SIGINT and SIGTERM quit through the run context.
var menuSignals = map[os.Signal]MenuID{
	syscall.SIGUSR1: MenuShow,
	syscall.SIGUSR2: MenuHide,
}
