// Package util holds small terminal and filesystem helpers shared by the
// command layer.
package util

import (
	"os"

	"github.com/fatih/color"
)

// IsTTY returns true if stdout is a terminal.
func IsTTY() bool {
	return isCharDevice(os.Stdout)
}

// IsInputTTY returns true if stdin is a terminal.
func IsInputTTY() bool {
	return isCharDevice(os.Stdin)
}

// InitColor configures color output based on flags and terminal detection.
func InitColor(noColor bool) {
	if noColor || os.Getenv("NO_COLOR") != "" || !IsTTY() {
		color.NoColor = true
	}
}

func isCharDevice(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
