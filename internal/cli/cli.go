// Package cli provides the command line interface.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/bethropolis/struct/internal/app"
	"github.com/bethropolis/struct/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	envPrefix = "STRUCT"

	configFlag   = "config"
	noColorFlag  = "no-color"
	logLevelFlag = "log-level"

	rootUse   = "struct [DEPTH] [PATH]"
	rootShort = "Show a directory tree with the noise folded away"
	rootLong  = `struct lists a directory as a tree. Dependency, cache and build folders
are collapsed to a count of the files they hold.

DEPTH limits how many levels are shown (default: all). A DEPTH of 0 prints
a summary of each top-level entry instead of a tree.`
	rootExample = `  struct                  # whole tree of the current directory
  struct 2 ~/src/project  # two levels
  struct 0                # summary of the current directory
  struct -n venv          # show venv folders in full
  struct -g -z            # git-tracked files with sizes`
)

// Execute runs the struct command line.
func Execute() error {
	return NewRootCommand().Execute()
}

// NewRootCommand builds the command tree. opts are passed to every App the
// commands create.
func NewRootCommand(opts ...app.Option) *cobra.Command {
	cfg := config.New()
	v := viper.New()

	root := &cobra.Command{
		Use:           rootUse,
		Short:         rootShort,
		Long:          rootLong,
		Example:       rootExample,
		Version:       cfg.Version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg.IgnoreFile = v.GetString(configFlag)
			cfg.NoColor = v.GetBool(noColorFlag)
			cfg.LogLevel = v.GetString(logLevelFlag)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			depth, hasDepth, path, err := parseTreeArgs(args)
			if err != nil {
				return err
			}
			cfg.RootDir = path
			cfg.Mode = config.ModeTree
			if hasDepth {
				cfg.MaxDepth = depth
				if depth == 0 {
					cfg.Mode = config.ModeSummary
				}
			}
			return runApp(cfg, opts, (*app.App).Run)
		},
	}
	root.SetVersionTemplate("struct version {{.Version}}\n")

	pf := root.PersistentFlags()
	pf.String(configFlag, "", "pattern file (default: user config dir/struct/ignores.txt)")
	pf.Bool(noColorFlag, false, "disable colored output")
	pf.String(logLevelFlag, "", "log level: debug, info, warn, error, none")
	pf.BoolVarP(&cfg.Verbose, "verbose", "v", false, "enable debug logging")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	for _, name := range []string{configFlag, noColorFlag, logLevelFlag} {
		_ = v.BindPFlag(name, pf.Lookup(name))
	}

	f := root.Flags()
	f.BoolVarP(&cfg.GitOnly, "git", "g", false, "show only files tracked by git")
	f.StringVarP(&cfg.CustomIgnore, "ignore", "i", "", "extra ignore patterns, comma-separated (e.g. \"*.log,tmp*\")")
	f.StringVarP(&cfg.NoIgnore, "no-ignore", "n", "", "re-enable ignored entries: all, defaults, config or a pattern")
	f.Int64VarP(&cfg.SkipLargeMB, "skip-large", "s", 0, "collapse directories larger than this many MB")
	f.BoolVarP(&cfg.ShowSize, "size", "z", false, "show file and folder sizes")
	f.BoolVar(&cfg.UseGitignore, "gitignore", false, "also honour .gitignore files")
	f.BoolVar(&cfg.JSONOutput, "json", false, "print the tree as JSON")
	f.BoolVar(&cfg.ShowSkipped, "show-skipped", false, "list hidden and collapsed entries on stderr")
	addOutputFlags(root, cfg)

	root.AddCommand(
		newSearchCommand(cfg, opts),
		newAddCommand(cfg, opts),
		newRemoveCommand(cfg, opts),
		newListCommand(cfg, opts),
		newClearCommand(cfg, opts),
	)
	return root
}

func addOutputFlags(cmd *cobra.Command, cfg *config.Config) {
	cmd.Flags().StringVarP(&cfg.OutputFile, "output", "o", "", "write the result to a file")
	cmd.Flags().BoolVarP(&cfg.Copy, "copy", "c", false, "copy the result to the clipboard")
}

// parseTreeArgs reads the optional DEPTH and PATH positionals. A single
// argument is a depth when it parses as an integer and a path otherwise.
func parseTreeArgs(args []string) (depth int, hasDepth bool, path string, err error) {
	path = "."
	switch len(args) {
	case 0:
		return 0, false, path, nil
	case 1:
		if n, convErr := strconv.Atoi(args[0]); convErr == nil {
			if n < 0 {
				return 0, false, "", fmt.Errorf("invalid depth %d: must not be negative", n)
			}
			return n, true, path, nil
		}
		return 0, false, args[0], nil
	default:
		n, convErr := strconv.Atoi(args[0])
		if convErr != nil || n < 0 {
			return 0, false, "", fmt.Errorf("invalid depth %q: expected a non-negative integer", args[0])
		}
		return n, true, args[1], nil
	}
}

// runApp builds the App for one command, runs fn and releases the output.
func runApp(cfg *config.Config, opts []app.Option, fn func(*app.App) error) (err error) {
	cfg.ResolveColors()
	a, err := app.New(cfg, opts...)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := a.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(a)
}
