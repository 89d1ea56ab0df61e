package main

import (
	"github.com/Mayamba10/fictional-spoon/internal/cli"
	"github.com/spf13/cobra"
)

var resetYes bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Delete the target file",
	Long: `Delete the target file so the next run starts from a missing file.

You are asked to confirm unless --yes is given. Without a terminal --yes is required.`,
	Args: cobra.NoArgs,
	RunE: resetTarget,
}

func init() {
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "Skip confirmation prompt")
	rootCmd.AddCommand(resetCmd)
}

func resetTarget(cmd *cobra.Command, args []string) error {
	ctx, target, err := newContext(cmd)
	if err != nil {
		return err
	}

	return cli.ResetTarget(ctx, target, resetYes)
}
