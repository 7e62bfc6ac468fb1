// Package sshserve serves the folio TUI to SSH clients.
package sshserve

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	bm "github.com/charmbracelet/wish/bubbletea"
	gossh "golang.org/x/crypto/ssh"

	"github.com/opencode-ai/folio/internal/content"
	"github.com/opencode-ai/folio/internal/links"
	"github.com/opencode-ai/folio/internal/logging"
	"github.com/opencode-ai/folio/internal/preferences"
	"github.com/opencode-ai/folio/internal/theme"
	"github.com/opencode-ai/folio/internal/tui"
)

// ModeSystem resolves the default mode from the client's terminal
// background.
const ModeSystem = "system"

// Options configures a Server.
type Options struct {
	Address     string
	HostKeyPath string
	IdleTimeout time.Duration
	MaxTimeout  time.Duration
	RateLimit   int // sessions per minute per IP
	RateBurst   int

	Storage  preferences.Storage
	Recorder preferences.Recorder

	Portfolio      *content.Portfolio
	SplashDuration time.Duration
	DefaultMode    string // system, light or dark
	DefaultAccent  string
}

// Server wraps a wish server running the TUI per session.
type Server struct {
	opts   Options
	server *ssh.Server
}

// New builds a Server. The host key is generated at HostKeyPath on first
// start.
func New(opts Options) (*Server, error) {
	if opts.Storage == nil {
		return nil, errors.New("sshserve: storage is required")
	}
	if opts.Portfolio == nil {
		builtin, err := content.Builtin()
		if err != nil {
			return nil, err
		}
		opts.Portfolio = builtin
	}
	if opts.HostKeyPath != "" {
		if err := os.MkdirAll(filepath.Dir(opts.HostKeyPath), 0o700); err != nil {
			return nil, fmt.Errorf("failed to create host key directory: %w", err)
		}
	}

	s := &Server{opts: opts}
	serverOpts := []ssh.Option{
		wish.WithAddress(opts.Address),
		wish.WithHostKeyPath(opts.HostKeyPath),
		wish.WithPublicKeyAuth(func(ssh.Context, ssh.PublicKey) bool { return true }),
		wish.WithKeyboardInteractiveAuth(func(ssh.Context, gossh.KeyboardInteractiveChallenge) bool { return true }),
		wish.WithMiddleware(
			bm.Middleware(s.teaHandler),
			activeterm.Middleware(),
			RateLimitMiddleware(opts.RateLimit, opts.RateBurst),
			SessionLogMiddleware(),
		),
	}
	if opts.IdleTimeout > 0 {
		serverOpts = append(serverOpts, wish.WithIdleTimeout(opts.IdleTimeout))
	}
	if opts.MaxTimeout > 0 {
		serverOpts = append(serverOpts, wish.WithMaxTimeout(opts.MaxTimeout))
	}

	server, err := wish.NewServer(serverOpts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create ssh server: %w", err)
	}
	s.server = server
	return s, nil
}

// Address returns the listen address.
func (s *Server) Address() string {
	return s.server.Addr
}

// Run serves until ctx is cancelled or SIGINT/SIGTERM arrives, then shuts
// down gracefully.
func (s *Server) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger := logging.Component("sshserve")
	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("address", s.server.Addr).Msg("ssh server listening")
		errCh <- s.server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, ssh.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down ssh server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := s.server.Shutdown(shutdownCtx); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
		return fmt.Errorf("failed to shut down ssh server: %w", err)
	}
	return nil
}

func (s *Server) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	renderer := bm.MakeRenderer(sess)
	identity := Identity(sess)

	store := preferences.NewStore(
		s.opts.Storage,
		preferences.WithKeySuffix(identity),
		preferences.WithDefaults(preferences.Preference{
			Mode:        DefaultMode(s.opts.DefaultMode, renderer.HasDarkBackground()),
			AccentColor: s.opts.DefaultAccent,
		}),
		preferences.WithRecorder(s.opts.Recorder),
	)
	store.Load(sess.Context())

	model := tui.NewModel(tui.Config{
		Store:          store,
		Portfolio:      s.opts.Portfolio,
		Opener:         links.Nop{},
		SplashDuration: s.opts.SplashDuration,
		Renderer:       renderer,
	})
	return model, []tea.ProgramOption{tea.WithAltScreen()}
}

// Identity returns the preference key suffix for a session: the SHA256
// fingerprint of the client key, or the user name for keyboard-interactive
// logins.
func Identity(sess ssh.Session) string {
	if key := sess.PublicKey(); key != nil {
		return gossh.FingerprintSHA256(key)
	}
	return "user:" + sess.User()
}

// DefaultMode resolves a configured mode against the client background.
func DefaultMode(configured string, darkBackground bool) theme.Mode {
	if strings.EqualFold(strings.TrimSpace(configured), ModeSystem) || configured == "" {
		if darkBackground {
			return theme.ModeDark
		}
		return theme.ModeLight
	}
	mode, _ := theme.ParseMode(configured)
	return mode
}

func remoteIP(s ssh.Session) string {
	remote := s.RemoteAddr()
	if remote == nil {
		return "unknown"
	}

	host, _, err := net.SplitHostPort(remote.String())
	if err != nil {
		return remote.String()
	}

	if host == "" {
		return "unknown"
	}
	return host
}
