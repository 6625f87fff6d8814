package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rshade/fastset/internal/cli/pagination"
	"github.com/rshade/fastset/internal/config"
	"github.com/rshade/fastset/internal/logging"
	"github.com/rshade/fastset/internal/tui"
)

// newListCmd creates the list command, which prints the rendered rows
// instead of opening the interactive list.
func newListCmd() *cobra.Command {
	var (
		color  string
		paging pagination.Params
	)

	cmd := &cobra.Command{
		Use:   "list [filter]",
		Short: "Print the option list",
		Example: `  # Print every option
  fastset list

  # Print boolean options, without colors
  fastset list --color never t:boolean

  # Print the second page of ten options
  fastset list --page 2 --page-size 10`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := paging.Validate(); err != nil {
				return err
			}
			colors, err := listColors(color, cmd)
			if err != nil {
				return err
			}
			return runList(cmd, strings.Join(args, " "), colors, paging)
		},
	}

	cmd.Flags().StringVar(&color, "color", "auto", "colorize output: auto, always or never")
	paging.AddFlags(cmd)

	return cmd
}

func listColors(mode string, cmd *cobra.Command) (*tui.Colors, error) {
	switch mode {
	case "always":
		return tui.DetectColors(), nil
	case "never":
		return tui.NoColors(), nil
	case "auto":
		if f, ok := cmd.OutOrStdout().(*os.File); ok && isTerminal(f) {
			return tui.DetectColors(), nil
		}
		return tui.NoColors(), nil
	default:
		return nil, fmt.Errorf("invalid --color %q: want auto, always or never", mode)
	}
}

// runList renders the rows with the non-selected template and prints the
// page selected by paging. A page footer goes to stderr.
func runList(cmd *cobra.Command, filter string, colors *tui.Colors, paging pagination.Params) error {
	cfg := *config.GetGlobalConfig()
	cfg.Format.OptionCurrent = cfg.Format.Option

	s, err := newSession(&cfg, colors, logging.FromContext(cmd.Context()))
	if err != nil {
		return err
	}
	defer s.close()

	if err = s.open(filter); err != nil {
		return err
	}

	p := s.host.Current()
	if p == nil {
		return nil
	}
	rows := p.Rows()
	from, to := paging.Bounds(len(rows))
	out := cmd.OutOrStdout()
	for _, row := range rows[from:to] {
		if _, err = fmt.Fprintln(out, row+colors.Color("reset")); err != nil {
			return err
		}
	}
	if paging.IsEnabled() {
		cmd.PrintErrln(pagination.NewMeta(paging, len(rows)))
	}
	return nil
}
