package commands

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/walteh/textscrub/cmd/textscrub/opts"
	"github.com/walteh/textscrub/pkg/config"
	"github.com/walteh/textscrub/pkg/log"
	"github.com/walteh/textscrub/pkg/operation"
	"gitlab.com/tozd/go/errors"
)

// NewRunCmd creates the command that rewrites a directory tree
func NewRunCmd(rootOpts *opts.RootOpts) *cobra.Command {
	var (
		extension string
		exclude   []string
	)

	cmd := &cobra.Command{
		Use:   "run [ROOT]",
		Short: "Rewrite every matching file under ROOT",
		Long: `Run walks ROOT and rewrites every file ending in the configured extension.
It will:
1. Remove each emoji in the emoji table
2. Remove each tag in the tag table
3. Replace the separator line
4. Collapse runs of whitespace after "//"
5. Write the file back only if it changed

ROOT defaults to $` + config.EnvRoot + `, then to "root" in the config file.
Files that cannot be read or written are reported and skipped.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := zerolog.Ctx(cmd.Context()).With().Str("command", "run").Logger().WithContext(cmd.Context())
			logger := zerolog.Ctx(ctx)

			cfg, err := rootOpts.LoadConfig(ctx)
			if err != nil {
				return err
			}

			switch {
			case len(args) == 1:
				cfg.Root = args[0]
			case os.Getenv(config.EnvRoot) != "":
				cfg.Root = os.Getenv(config.EnvRoot)
			}
			if cfg.Root == "" {
				return errors.Errorf("no root directory: pass ROOT, set %s or set root in the config file", config.EnvRoot)
			}

			if cmd.Flags().Changed("ext") {
				cfg.Extension = extension
			}
			cfg.Exclude = append(cfg.Exclude, exclude...)

			if err := cfg.Validate(); err != nil {
				return errors.Errorf("validating config: %w", err)
			}

			console := log.New(cmd.OutOrStdout(), *logger)
			console.Header("rewriting " + cfg.String())

			rw, err := operation.NewRewriter(operation.Options{
				Config:  cfg,
				Logger:  logger,
				Console: console,
			})
			if err != nil {
				return errors.Errorf("creating rewriter: %w", err)
			}

			return operation.NewRunner(logger).Run(ctx, rw)
		},
	}

	cmd.Flags().StringVar(&extension, "ext", config.DefaultExtension, "only rewrite files ending in this suffix")
	cmd.Flags().StringArrayVar(&exclude, "exclude", nil, "skip paths matching this glob, relative to ROOT (repeatable)")

	return cmd
}
