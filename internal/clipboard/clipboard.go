// Package clipboard provides cross-platform clipboard access via shell commands.
package clipboard

import (
	"errors"
	"os/exec"
	"runtime"
	"strings"
)

// ErrClipboardUnavailable is returned when no clipboard tool is found on this system.
var ErrClipboardUnavailable = errors.New("clipboard unavailable")

// Clipboard writes text through one acquired clipboard tool.
type Clipboard struct {
	name string
	args []string
}

// lookPath is replaced in tests.
var lookPath = exec.LookPath

// candidates lists the clipboard commands to try for an OS, in preference order.
func candidates(goos string) [][]string {
	switch goos {
	case "darwin":
		return [][]string{{"pbcopy"}}
	case "linux", "freebsd", "openbsd", "netbsd":
		// Wayland first, then X11 tools
		return [][]string{
			{"wl-copy"},
			{"xclip", "-selection", "clipboard"},
			{"xsel", "--clipboard", "--input"},
		}
	case "windows":
		return [][]string{{"clip"}}
	default:
		return nil
	}
}

// Acquire finds a clipboard tool for the current OS.
// Returns ErrClipboardUnavailable if none is installed.
func Acquire() (*Clipboard, error) {
	for _, c := range candidates(runtime.GOOS) {
		if _, err := lookPath(c[0]); err == nil {
			return &Clipboard{name: c[0], args: c[1:]}, nil
		}
	}
	return nil, ErrClipboardUnavailable
}

// Name returns the tool this clipboard writes through.
func (c *Clipboard) Name() string {
	return c.name
}

// SetText replaces the clipboard contents with text.
func (c *Clipboard) SetText(text string) error {
	cmd := exec.Command(c.name, c.args...)
	cmd.Stdin = strings.NewReader(text)
	return cmd.Run()
}
