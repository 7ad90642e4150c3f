// Package tui renders the interactive pet dashboard.
package tui

import (
	"context"
	"io"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"petrack/internal/engine"
)

// RunDashboard blocks until the user quits the dashboard.
func RunDashboard(ctx context.Context, svc *engine.Service, poll time.Duration, out io.Writer) error {
	m := newDashboardModel(ctx, svc, poll)
	p := tea.NewProgram(m, tea.WithOutput(out))
	_, err := p.Run()
	return err
}
