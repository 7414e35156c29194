// Package app boots the terminal front end.
package app

import (
	"fmt"
	"os"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/socratiq/internal/analytics"
	"github.com/abhisek/socratiq/internal/engine"
	"github.com/abhisek/socratiq/internal/tui"
)

// Options carries the app's injected dependencies.
type Options struct {
	Engine    *engine.Engine
	Analytics *analytics.Service
}

// Run starts the Bubble Tea program.
func Run(opts Options) error {
	p := tea.NewProgram(tui.New(opts.Engine, opts.Analytics))
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, "Error running program:", err)
		return err
	}
	return nil
}
