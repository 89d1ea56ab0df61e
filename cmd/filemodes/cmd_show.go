package main

import (
	"github.com/Mayamba10/fictional-spoon/internal/cli"
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the target file's contents",
	Long:  `Open the target file in read mode and print its contents without changing it.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, target, err := newContext(cmd)
		if err != nil {
			return err
		}

		return cli.ShowTarget(ctx, target)
	},
}

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Launch interactive menu",
	Long:  `Launch the interactive menu to run, inspect or delete the target file.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, target, err := newContext(cmd)
		if err != nil {
			return err
		}

		return cli.NewMenu(ctx, target).Show()
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
	rootCmd.AddCommand(menuCmd)
}
