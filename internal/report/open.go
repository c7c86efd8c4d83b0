package report

import (
	"fmt"
	"os/exec"
	"runtime"
)

// Open launches the platform's default application for the report file,
// matching the desktop original's behavior behind --open-report.
func Open(path string) error {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", path)
	case "windows":
		cmd = exec.Command("cmd", "/c", "start", "", path)
	default:
		cmd = exec.Command("xdg-open", path)
	}
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("open report %s: %w", path, err)
	}
	// Do not wait: the viewer outlives the scan process.
	return cmd.Process.Release()
}
