package output

import (
	"context"
	"fmt"

	"github.com/charmbracelet/huh/spinner"
)

// SpinnerOption configures a spinner.
type SpinnerOption func(*spinnerConfig)

type spinnerConfig struct {
	title string
}

// WithTitle sets the spinner title.
func WithTitle(title string) SpinnerOption {
	return func(c *spinnerConfig) {
		c.title = title
	}
}

// RunWithSpinner executes an action with a spinner and returns the action's error.
// Without a terminal, or with debug logging on, the action runs directly so that
// log lines and child process output are not interleaved with spinner frames.
func RunWithSpinner(ctx context.Context, action func() error, opts ...SpinnerOption) error {
	cfg := &spinnerConfig{title: "Working..."}
	for _, opt := range opts {
		opt(cfg)
	}

	if !IsTTY() || IsVerbose() {
		return action()
	}

	var actionErr error
	s := spinner.New().
		Context(ctx).
		Title(cfg.title).
		Action(func() {
			actionErr = action()
		})

	if err := s.Run(); err != nil {
		return fmt.Errorf("spinner error: %w", err)
	}

	return actionErr
}
