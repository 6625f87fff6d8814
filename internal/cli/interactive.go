package cli

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/rshade/fastset/internal/config"
	"github.com/rshade/fastset/internal/logging"
	"github.com/rshade/fastset/internal/option"
	"github.com/rshade/fastset/internal/tui"
)

// watchDebounce delays reloads while the option file is being written.
const watchDebounce = 200 * time.Millisecond

// runInteractive opens the option list in the terminal.
func runInteractive(cmd *cobra.Command, filter string) error {
	ctx := cmd.Context()
	log := logging.FromContext(ctx)
	cfg := config.GetGlobalConfig()

	s, err := newSession(cfg, tui.DetectColors(), log)
	if err != nil {
		return err
	}
	defer s.close()

	if err = s.open(filter); err != nil {
		return err
	}

	p := tea.NewProgram(tui.NewModel(s.host), tea.WithAltScreen(), tea.WithContext(ctx))

	if cfg.Options.Watch && cfg.Options.File != "" {
		w, watchErr := option.NewWatcher(cfg.Options.File, watchDebounce, func() {
			p.Send(tui.CallMsg{Fn: s.reload})
		}, logging.ComponentLogger(log, "watcher"))
		if watchErr != nil {
			log.Warn().Err(watchErr).Str("file", cfg.Options.File).Msg("not watching option file")
		} else {
			defer func() { _ = w.Close() }()
		}
	}

	log.Debug().Ctx(ctx).Str("filter", filter).Msg("starting interactive list")
	if _, err = p.Run(); err != nil {
		return fmt.Errorf("running terminal UI: %w", err)
	}
	return nil
}
