package tui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/ascii-trials/internal/campaign"
	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/engine"
)

// Display receives frames on the simulation goroutine and hands the
// latest one to the model. Frames the model never picked up are dropped.
type Display struct {
	latest engine.Slot[core.Grid]
}

// NewDisplay creates an empty display.
func NewDisplay() *Display {
	return &Display{}
}

func (d *Display) Show(frame core.Grid) error {
	d.latest.Store(frame.Clone())
	return nil
}

// Take returns the newest unseen frame.
func (d *Display) Take() (core.Grid, bool) {
	return d.latest.Take()
}

// doneMsg carries the campaign's result back to the model.
type doneMsg struct {
	outcomes []campaign.Outcome
	err      error
}

// exitMsg tells a parent model that a child screen is finished.
type exitMsg struct{}

// leave quits the program, or hands control back to the parent model.
func leave(embedded bool) tea.Cmd {
	if embedded {
		return func() tea.Msg { return exitMsg{} }
	}
	return tea.Quit
}

// Model is the Bubble Tea model for playing a sequence of scenes.
type Model struct {
	runner *campaign.Runner
	ids    []string

	ctx     context.Context
	cancel  context.CancelFunc
	display *Display
	keys    *engine.ChanKeys
	screen  *core.Screen

	tickRate int
	embedded bool
	sized    bool

	outcomes []campaign.Outcome
	err      error
	done     bool
	quitting bool
}

// NewModel prepares a model that plays ids with runner once started.
func NewModel(ctx context.Context, runner *campaign.Runner, ids []string) Model {
	ctx, cancel := context.WithCancel(ctx)
	return Model{
		runner:   runner,
		ids:      ids,
		ctx:      ctx,
		cancel:   cancel,
		display:  NewDisplay(),
		keys:     engine.NewChanKeys(16),
		screen:   core.NewScreen(runner.Runtime.ScreenW, runner.Runtime.ScreenH),
		tickRate: runner.TickRate,
	}
}

// Init starts the campaign and the frame poll.
func (m Model) Init() tea.Cmd {
	runner, ctx, ids, display, keys := m.runner, m.ctx, m.ids, m.display, m.keys
	play := func() tea.Msg {
		outcomes, err := runner.Run(ctx, ids, display, keys)
		return doneMsg{outcomes: outcomes, err: err}
	}
	return tea.Batch(play, tickCmd(m.tickRate))
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The first size arrives at start-up; later ones end the scene.
		if m.sized && !m.done {
			m.keys.Push(core.Key{Code: core.KeyResize})
		}
		m.sized = true
		return m, nil

	case TickMsg:
		if m.done {
			return m, nil
		}
		if frame, ok := m.display.Take(); ok {
			m.draw(frame)
		}
		return m, tickCmd(m.tickRate)

	case doneMsg:
		m.done = true
		m.outcomes = msg.outcomes
		m.err = msg.err
		m.cancel()
		if campaign.Quit(msg.err) {
			m.quitting = true
			return m, leave(m.embedded)
		}
	}

	return m, nil
}

// handleKey forwards keys to the running scene. After the campaign any
// key closes the summary.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.done {
		m.quitting = true
		return m, leave(m.embedded)
	}
	switch msg.String() {
	case "ctrl+c":
		m.cancel()
		return m, nil
	case "ctrl+s":
		if !m.embedded {
			m.saveScreenshot()
		}
		return m, nil
	}
	if k, ok := KeyFromTea(msg); ok {
		m.keys.Push(k)
	}
	return m, nil
}

// draw copies a frame onto the screen, growing it to fit.
func (m *Model) draw(frame core.Grid) {
	if m.screen.Width() < frame.Width() || m.screen.Height() < frame.Height() {
		m.screen.Resize(max(m.screen.Width(), frame.Width()), max(m.screen.Height(), frame.Height()))
	}
	m.screen.Clear()
	m.screen.DrawGrid(0, 0, frame)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	dir := filepath.Join(os.Getenv("HOME"), ".trials", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("trials_%s.txt", timestamp))

	//nolint:errcheck // Best-effort save, the scene continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if m.done {
		return m.summary()
	}
	return RenderScreen(m.screen)
}

var (
	summaryTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	wonStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	lostStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// summary lists how each scored game ended.
func (m Model) summary() string {
	var b strings.Builder
	title := "TRIALS FAILED"
	if campaign.Completed(m.ids, m.outcomes) {
		title = "TRIALS COMPLETE"
	}
	b.WriteString("\n  " + summaryTitle.Render(title) + "\n\n")

	for _, o := range m.outcomes {
		if o.Narrative {
			continue
		}
		verdict := lostStyle.Render("lost")
		if o.State.Won {
			verdict = wonStyle.Render("won ")
		}
		fmt.Fprintf(&b, "  %-12s %s  score %-4d %s\n",
			o.Title, verdict, o.State.Score, o.Duration.Round(time.Second))
	}
	if m.err != nil {
		b.WriteString("\n  " + lostStyle.Render("error: "+m.err.Error()) + "\n")
	}
	b.WriteString("\n  " + dimStyle.Render("press any key") + "\n")
	return b.String()
}

// Outcomes returns the scenes played so far.
func (m Model) Outcomes() []campaign.Outcome { return m.outcomes }

// Err returns the error that ended the campaign, if any.
func (m Model) Err() error { return m.err }

// Run plays ids in a full-screen Bubble Tea program.
func Run(ctx context.Context, runner *campaign.Runner, ids []string, opts ...tea.ProgramOption) ([]campaign.Outcome, error) {
	model := NewModel(ctx, runner, ids)
	defer model.cancel()

	p := tea.NewProgram(model, append([]tea.ProgramOption{tea.WithAltScreen()}, opts...)...)
	final, err := p.Run()
	if err != nil {
		return nil, fmt.Errorf("tui: %w", err)
	}
	m, ok := final.(Model)
	if !ok {
		return nil, nil
	}
	return m.Outcomes(), m.Err()
}
