//go:build windows

package host

import (
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// killByName runs taskkill, which reports no-match and access errors in its
// output.
func killByName(ctx context.Context, name string) error {
	out, err := exec.CommandContext(ctx, "taskkill", "/F", "/IM", name).CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(out))
		if detail == "" {
			detail = "no diagnostic output"
		}
		return fmt.Errorf("%w: %s", err, detail)
	}
	return nil
}
