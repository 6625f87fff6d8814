package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"github.com/rshade/fastset/internal/config"
	"github.com/rshade/fastset/internal/eval"
	"github.com/rshade/fastset/internal/fset"
	"github.com/rshade/fastset/internal/logging"
	"github.com/rshade/fastset/internal/option"
	"github.com/rshade/fastset/internal/tui"
)

// Usage errors of the option commands.
var (
	errSetUsage    = errors.New("usage: /set <option> [value]")
	errAppendUsage = errors.New("usage: /append <option> <text>")
)

// session wires the option store, the fset controller and the terminal host.
type session struct {
	store  *option.Store
	host   *tui.Host
	ctrl   *fset.Controller
	logger zerolog.Logger
}

// newSession builds a session for cfg and loads the options.
func newSession(cfg *config.Config, colors *tui.Colors, log zerolog.Logger) (*session, error) {
	s := &session{
		store: option.NewStore(
			option.FileSource(cfg.Options.File),
			option.WithLogger(logging.ComponentLogger(log, "option")),
		),
		host:   tui.NewHost(tui.WithHostLogger(logging.ComponentLogger(log, "tui"))),
		logger: log,
	}
	s.ctrl = fset.NewController(s.host, s.store, eval.New(colors), colors,
		fset.WithLogger(logging.ComponentLogger(log, "fset")),
		fset.WithSettings(cfg.ToSettings()),
	)

	s.store.OnChange(s.ctrl.Refresh)
	s.host.RegisterCommand(fset.CommandName, s.ctrl.Command)
	s.host.RegisterCommand("set", s.set)
	s.host.RegisterCommand("append", s.append)
	s.host.HookWindowScrolled(s.ctrl.OnWindowScrolled)

	if err := s.ctrl.Init(); err != nil {
		return nil, err
	}
	if err := s.store.Reload(); err != nil {
		return nil, fmt.Errorf("loading options: %w", err)
	}
	return s, nil
}

// open opens the pane, filtered by filter when it is not empty.
func (s *session) open(filter string) error {
	if err := s.ctrl.Command(nil); err != nil {
		return err
	}
	if filter != "" {
		s.store.Filter(filter)
	}
	return nil
}

// set handles "/set <option> [value]".
func (s *session) set(args []string) error {
	if len(args) == 0 {
		return errSetUsage
	}
	return s.store.Set(args[0], strings.Join(args[1:], " "))
}

// append handles "/append <option> <text>".
func (s *session) append(args []string) error {
	if len(args) < 2 {
		return errAppendUsage
	}
	return s.store.Append(args[0], strings.Join(args[1:], " "))
}

// reload re-reads the options after the option file changed.
func (s *session) reload() {
	if err := s.store.Reload(); err != nil {
		s.logger.Warn().Err(err).Msg("reloading options failed")
		s.host.SetStatus(err.Error())
		return
	}
	s.ctrl.Refresh(true)
}

// close closes every pane and releases the controller.
func (s *session) close() {
	s.host.CloseAll()
	s.ctrl.End()
}
