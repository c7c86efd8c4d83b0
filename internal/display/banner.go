// Package display provides the startup banner and small output formatting
// helpers shared by the CLI and the scan summary.
package display

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// PrintBanner prints the ASCII art banner; magenta when colors are enabled.
func PrintBanner() {
	banner := `  ___  ____  ____
 / _ \|  _ \/ ___|  ___ __ _ _ __
| | | | |_) \___ \ / __/ _` + "`" + ` | '_ \
| |_| |  _ < ___) | (_| (_| | | | |
 \__\_\_| \_\____/ \___\__,_|_| |_|
`
	fmt.Fprint(os.Stdout, color.New(color.FgHiMagenta, color.Bold).Sprint(banner))
	fmt.Fprintln(os.Stdout)
}
