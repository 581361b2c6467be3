package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
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

	"github.com/vovakirdan/fruit-hunt/internal/config"
	"github.com/vovakirdan/fruit-hunt/internal/feedback"
	"github.com/vovakirdan/fruit-hunt/internal/storage"
)

// guestProfile is used for SSH sessions without a user name.
const guestProfile = "guest"

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":2323").
	Address string

	// HostKeyPath is the path to the host key file. It is generated on
	// first start when missing.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// SSHServerConfigFrom converts the ssh section of the app config.
func SSHServerConfigFrom(cfg config.SSHConfig) SSHServerConfig {
	return SSHServerConfig{
		Address:     cfg.Address,
		HostKeyPath: cfg.HostKey,
		IdleTimeout: cfg.IdleTimeout,
	}
}

// SSHServer serves one Fruit Hunt session per SSH connection. Each SSH user
// name is its own progress profile.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	deps   Deps
	logger *log.Logger
}

// NewSSHServer creates a new SSH server. The storage backend in deps stays
// owned by the caller.
func NewSSHServer(cfg SSHServerConfig, deps Deps) (*SSHServer, error) {
	logger := deps.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	srv := &SSHServer{
		config: cfg,
		deps:   deps,
		logger: logger,
	}

	hostKeyPath, err := storage.ExpandPath(cfg.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("cannot resolve host key path: %w", err)
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}
	if cfg.IdleTimeout > 0 {
		opts = append(opts, wish.WithIdleTimeout(cfg.IdleTimeout))
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// sessionProfile maps an SSH user to a progress profile.
func sessionProfile(user string) string {
	if user == "" {
		return guestProfile
	}
	return user
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	profile := sessionProfile(sshSession.User())
	cues := feedback.Multi{
		feedback.NewBell(sshSession),
		feedback.LogSink{Logger: s.logger.With("user", profile)},
	}

	model, err := s.deps.NewModel(sshSession.Context(), profile, cues)
	if err != nil {
		s.logger.Error("cannot start session", "user", profile, "error", err)
		wish.Fatalln(sshSession, "Sorry, your progress could not be loaded.")
		return nil, nil
	}
	model.width, model.height = pty.Window.Width, pty.Window.Height
	model.board = model.board.Resize(pty.Window.Width, pty.Window.Height)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
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

// ListenAndServe starts the SSH server and blocks until an interrupt or
// until ctx is done.
func (s *SSHServer) ListenAndServe(ctx context.Context) error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("ssh server: %w", err)
	case <-done:
	case <-ctx.Done():
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
