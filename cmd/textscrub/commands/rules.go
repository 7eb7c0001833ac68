package commands

import (
	"fmt"
	"strconv"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/walteh/textscrub/cmd/textscrub/opts"
	"github.com/walteh/textscrub/pkg/config"
	"gitlab.com/tozd/go/errors"
)

// NewRulesCmd creates the command that prints the effective pipeline
func NewRulesCmd(rootOpts *opts.RootOpts) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rules",
		Short: "Show the replacements run applies, in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := rootOpts.LoadConfig(cmd.Context())
			if err != nil {
				return err
			}

			table, err := pterm.DefaultTable.
				WithHasHeader().
				WithData(rulesTable(cfg)).
				Srender()
			if err != nil {
				return errors.Errorf("rendering rules: %w", err)
			}

			fmt.Fprintln(cmd.OutOrStdout(), table)
			return nil
		},
	}

	return cmd
}

func rulesTable(cfg *config.Config) pterm.TableData {
	data := pterm.TableData{{"stage", "#", "from", "to"}}

	for i, r := range cfg.Emoji {
		data = append(data, []string{"emoji", strconv.Itoa(i + 1), strconv.Quote(r.From), strconv.Quote(r.To)})
	}
	for i, r := range cfg.Tags {
		data = append(data, []string{"tag", strconv.Itoa(i + 1), strconv.Quote(r.From), strconv.Quote(r.To)})
	}
	if cfg.Separator.From != "" {
		data = append(data, []string{"separator", "1", strconv.Quote(cfg.Separator.From), strconv.Quote(cfg.Separator.To)})
	}
	if cfg.Cleanup.Pattern != "" {
		data = append(data, []string{"cleanup", "1", cfg.Cleanup.Pattern, strconv.Quote(cfg.Cleanup.Replacement)})
	}

	return data
}
