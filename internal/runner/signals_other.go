//go:build !unix && !windows

package runner

import "os"

var menuSignals = map[os.Signal]MenuID{}
