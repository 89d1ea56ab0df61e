package main

import (
	"github.com/Mayamba10/fictional-spoon/internal/cli"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the file mode demo",
	Long: `Run the four steps against the target file: read, write (truncate),
append, read. This is what filemodes does when invoked without a command.`,
	Args: cobra.NoArgs,
	RunE: runDemo,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDemo(cmd *cobra.Command, args []string) error {
	ctx, target, err := newContext(cmd)
	if err != nil {
		return err
	}

	return cli.RunDemo(ctx, target)
}
