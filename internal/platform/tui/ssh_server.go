package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/ascii-trials/internal/campaign"
	"github.com/vovakirdan/ascii-trials/internal/core"
	"github.com/vovakirdan/ascii-trials/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.trials/host_key.
	HostKeyPath string

	// DBPath is the path to the results database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate and AssetsDir are handed to every session's scenes.
	TickRate  int
	AssetsDir string
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.trials/results.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    10,
	}
}

// SSHServer serves the trials over SSH. Every session plays its own
// campaign; sound is never played on the server.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "trials-ssh",
		})
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open results database", "error", err)
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("tui: cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".trials", "host_key")
	}
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a session model for each SSH connection.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	runner := &campaign.Runner{
		Runtime: core.RuntimeConfig{
			ScreenW:   pty.Window.Width,
			ScreenH:   pty.Window.Height,
			TickRate:  s.config.TickRate,
			Seed:      time.Now().UnixNano(),
			AssetsDir: s.config.AssetsDir,
		},
		TickRate: s.config.TickRate,
		Logger:   s.logger.With("user", sshSession.User()),
	}
	var source ResultSource
	if s.store != nil {
		runner.Results = s.store
		source = s.store
	}

	model := NewSessionModel(sshSession.Context(), runner, source, pty.Window.Width, pty.Window.Height)
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type screen int

const (
	screenMenu screen = iota
	screenPlay
	screenBoard
)

// SessionModel is the top-level model of an SSH session:
// menu, then a campaign or the results board, then back to the menu.
type SessionModel struct {
	ctx    context.Context
	runner *campaign.Runner
	source ResultSource
	width  int
	height int

	current screen
	menu    MenuModel
	play    Model
	board   ScoreboardModel
}

// NewSessionModel creates a session starting at the menu.
func NewSessionModel(ctx context.Context, runner *campaign.Runner, source ResultSource, width, height int) SessionModel {
	m := SessionModel{ctx: ctx, runner: runner, source: source, width: width, height: height}
	m.menu = m.newMenu()
	return m
}

func (m SessionModel) newMenu() MenuModel {
	menu := NewMenuModel(m.width)
	menu.embedded = true
	return menu
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.width, m.height = wsm.Width, wsm.Height
	}
	if _, ok := msg.(exitMsg); ok {
		return m.childExited()
	}

	var cmd tea.Cmd
	switch m.current {
	case screenPlay:
		var next tea.Model
		next, cmd = m.play.Update(msg)
		m.play = next.(Model)
	case screenBoard:
		var next tea.Model
		next, cmd = m.board.Update(msg)
		m.board = next.(ScoreboardModel)
	default:
		var next tea.Model
		next, cmd = m.menu.Update(msg)
		m.menu = next.(MenuModel)
	}
	return m, cmd
}

// childExited decides where to go after a screen finished.
func (m SessionModel) childExited() (tea.Model, tea.Cmd) {
	switch m.current {
	case screenMenu:
		switch {
		case m.menu.IsQuitting():
			return m, tea.Quit
		case m.menu.WantsScoreboard():
			m.board = NewScoreboardModel(m.source, m.width, m.height)
			m.board.embedded = true
			m.current = screenBoard
			return m, m.board.Init()
		case m.menu.Selected() != nil:
			runner := *m.runner
			runner.Runtime.ScreenW, runner.Runtime.ScreenH = m.width, m.height
			runner.Runtime.Seed = time.Now().UnixNano()
			m.play = NewModel(m.ctx, &runner, m.menu.Selected().IDs)
			m.play.embedded = true
			m.play.sized = true
			m.current = screenPlay
			return m, m.play.Init()
		}
	case screenBoard:
		if m.board.IsQuitting() {
			return m, tea.Quit
		}
	}
	m.current = screenMenu
	m.menu = m.newMenu()
	return m, nil
}

// View renders the active screen.
func (m SessionModel) View() string {
	switch m.current {
	case screenPlay:
		return m.play.View()
	case screenBoard:
		return m.board.View()
	}
	return m.menu.View()
}
