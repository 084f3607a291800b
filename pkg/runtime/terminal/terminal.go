package terminal

import (
	"context"
	"io"
	"os"

	"github.com/de-tools/budget-atlas/pkg/runtime/terminal/commands"
	"github.com/de-tools/budget-atlas/pkg/runtime/terminal/export"
	"github.com/spf13/cobra"
)

// CLI represents the command-line interface
type CLI struct {
	connect  commands.Connector
	reporter commands.ReportHandler
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Connect commands.Connector
	Output  io.Writer
	// Plain selects the indented list output instead of tables.
	Plain bool
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{connect: opts.Connect}
	if opts.Plain {
		cli.reporter = NewReporter(opts.Output)
	} else {
		cli.reporter = export.NewReporter(opts.Output)
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "budget",
		Short:         "Philippine NEP/GAA budget reports",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().String("profile", "", "Datasource profile (default from config)")

	cmd.AddCommand(commands.NewSummaryCmd(cli.connect, cli.reporter))
	cmd.AddCommand(commands.NewCompareCmd(cli.connect, cli.reporter))
	cmd.AddCommand(commands.NewHierarchyCmd(cli.connect, cli.reporter))

	return cmd
}
