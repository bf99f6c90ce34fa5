package browser

import (
	"fmt"
	"log/slog"
	"os/exec"
	"runtime"
)

// Launcher opens star URLs in the system browser
type Launcher struct {
	command string // configured opener command, empty for platform default
	logger  *slog.Logger
}

// platformOpeners maps GOOS to the opener commands to try in order
var platformOpeners = map[string][]string{
	"darwin":  {"open"},
	"linux":   {"xdg-open", "sensible-browser", "x-www-browser"},
	"windows": {"rundll32"},
}

// NewLauncher creates a new Launcher. command overrides the platform
// default opener when set.
func NewLauncher(command string, logger *slog.Logger) *Launcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Launcher{command: command, logger: logger}
}

// Open launches the URL detached from the TUI process
func (l *Launcher) Open(url string) error {
	if url == "" {
		return fmt.Errorf("no URL to open")
	}

	if l.command != "" {
		return l.launch(l.command, url)
	}

	openers, ok := platformOpeners[runtime.GOOS]
	if !ok {
		return fmt.Errorf("no known browser opener for %s", runtime.GOOS)
	}

	var lastErr error
	for _, opener := range openers {
		if _, err := exec.LookPath(opener); err != nil {
			lastErr = err
			continue
		}
		return l.launch(opener, url)
	}
	return fmt.Errorf("no browser opener found: %w", lastErr)
}

func (l *Launcher) launch(command, url string) error {
	args := []string{url}
	if command == "rundll32" {
		args = []string{"url.dll,FileProtocolHandler", url}
	}

	l.logger.Debug("opening URL", "command", command, "url", url)

	cmd := exec.Command(command, args...)
	if err := cmd.Start(); err != nil {
		l.logger.Error("failed to open URL", "command", command, "error", err)
		return fmt.Errorf("failed to open %s: %w", url, err)
	}

	// Detach: the browser outlives the TUI and we never wait on it
	go cmd.Wait()

	return nil
}
