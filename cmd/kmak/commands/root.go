// Package commands implements the CLI commands for kmak.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/kmak/internal/app"
	"go.trai.ch/kmak/internal/build"
	"go.trai.ch/kmak/internal/core/domain"
)

// CLI represents the command line interface for kmak.
type CLI struct {
	app     Application
	rootCmd *cobra.Command
	opts    app.RunOptions
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, scriptPath, taskName string, opts app.RunOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	c := &CLI{app: a}

	rootCmd := &cobra.Command{
		Use:   "kmak <script-file> [task]",
		Short: "Run tasks from a kmak script",
		Long: "kmak reads a script of variable definitions and tasks.\n" +
			"Without a task name the script is only checked.",
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
		RunE:          c.runRoot,
	}
	rootCmd.CompletionOptions.DisableDefaultCmd = true

	// Registered before the default flags so that -v stays free for --verbose.
	flags := rootCmd.Flags()
	flags.StringVarP(&c.opts.ConfigPath, "config", "c", "", "Settings file (default: .kmak.yaml next to the script)")
	flags.StringArrayVarP(&c.opts.Defines, "define", "D", nil, "Set a variable, NAME=VALUE (repeatable)")
	flags.BoolVarP(&c.opts.DryRun, "dry-run", "n", false, "Echo commands without running them")
	flags.BoolVarP(&c.opts.List, "list", "l", false, "List the tasks defined by the script")
	flags.BoolVar(&c.opts.Trace, "trace", false, "Report how long each task and command took")
	flags.BoolVarP(&c.opts.Verbose, "verbose", "v", false, "Enable debug logging")
	flags.StringVar(&c.opts.LogFormat, "log-format", "", "Log format: pretty or json")

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.AddCommand(c.newVersionCmd())

	c.rootCmd = rootCmd
	return c
}

func (c *CLI) runRoot(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		c.printUsage(cmd)
		return domain.ErrNoScriptFile
	}

	var taskName string
	if len(args) > 1 {
		taskName = args[1]
	}

	err := c.app.Run(cmd.Context(), args[0], taskName, c.opts)
	if errors.Is(err, domain.ErrScriptOpenFailed) {
		c.printUsage(cmd)
	}
	return err
}

func (c *CLI) printUsage(cmd *cobra.Command) {
	_, _ = fmt.Fprint(cmd.ErrOrStderr(), cmd.UsageString())
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}
