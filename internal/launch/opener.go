package launch

import (
	"fmt"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// Opener hands a path to the operating system's default handling for its file type
type Opener interface {
	Open(path string) error
}

// OpenerFunc adapts a function to the Opener interface
type OpenerFunc func(path string) error

func (f OpenerFunc) Open(path string) error { return f(path) }

// SystemOpener starts the platform's opener command and does not wait for it
type SystemOpener struct {
	goos string
}

// NewSystemOpener returns an opener for the running platform
func NewSystemOpener() *SystemOpener {
	return &SystemOpener{goos: runtime.GOOS}
}

// Open starts the launch and returns once the opener process is running
func (o *SystemOpener) Open(path string) error {
	name, args := o.command(path)
	cmd := exec.Command(name, args...)
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("failed to start %s for %s: %w", name, path, err)
	}
	// Reap the opener without blocking the caller.
	go func() { _ = cmd.Wait() }()
	return nil
}

// command returns the opener invocation for path
func (o *SystemOpener) command(path string) (string, []string) {
	switch o.goos {
	case "windows":
		// The empty argument is the window title "start" expects before a quoted path.
		return "cmd", []string{"/C", "start", "", path}
	case "darwin":
		return "open", []string{path}
	default:
		if strings.EqualFold(filepath.Ext(path), ".desktop") {
			return "gio", []string{"launch", path}
		}
		return "xdg-open", []string{path}
	}
}
