package cli

import (
	"github.com/bethropolis/struct/internal/app"
	"github.com/bethropolis/struct/internal/config"
	"github.com/spf13/cobra"
)

func newSearchCommand(cfg *config.Config, opts []app.Option) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search PATTERN [PATH]",
		Short: "Find files by name, including inside ignored folders",
		Example: `  struct search "*.env"
  struct search "*.go" ./cmd -d 2 --flat`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg.Mode = config.ModeSearch
			cfg.SearchPattern = args[0]
			if len(args) > 1 {
				cfg.RootDir = args[1]
			}
			return runApp(cfg, opts, (*app.App).Run)
		},
	}
	cmd.Flags().IntVarP(&cfg.MaxDepth, "depth", "d", 0, "deepest level to search (0 = unlimited)")
	cmd.Flags().BoolVarP(&cfg.Flat, "flat", "f", false, "print full paths instead of a tree")
	cmd.Flags().BoolVar(&cfg.JSONOutput, "json", false, "print matches as JSON")
	addOutputFlags(cmd, cfg)
	return cmd
}

func newAddCommand(cfg *config.Config, opts []app.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "add PATTERN",
		Short: "Add a pattern to the ignore file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cfg, opts, func(a *app.App) error { return a.AddPattern(args[0]) })
		},
	}
}

func newRemoveCommand(cfg *config.Config, opts []app.Option) *cobra.Command {
	return &cobra.Command{
		Use:     "remove PATTERN",
		Aliases: []string{"rm"},
		Short:   "Remove a pattern from the ignore file",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cfg, opts, func(a *app.App) error { return a.RemovePattern(args[0]) })
		},
	}
}

func newListCommand(cfg *config.Config, opts []app.Option) *cobra.Command {
	return &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the patterns in the ignore file",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cfg, opts, (*app.App).ListPatterns)
		},
	}
}

func newClearCommand(cfg *config.Config, opts []app.Option) *cobra.Command {
	return &cobra.Command{
		Use:   "clear",
		Short: "Remove every pattern from the ignore file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runApp(cfg, opts, (*app.App).ClearPatterns)
		},
	}
}
