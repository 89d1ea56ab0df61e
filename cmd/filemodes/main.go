package main

import (
	"fmt"
	"os"

	"github.com/Mayamba10/fictional-spoon/internal/cli"
	"github.com/Mayamba10/fictional-spoon/internal/config"
	"github.com/Mayamba10/fictional-spoon/pkg/version"
	"github.com/spf13/cobra"
)

var (
	// Flags shared by every command
	targetFile     string
	configPath     string
	interactive    bool
	nonInteractive bool
	noColor        bool
)

var rootCmd = &cobra.Command{
	Use:   "filemodes",
	Short: "Demonstrate opening a file in read, write and append modes",
	Long: `Open one target file in three access modes and report its contents
before and after each change:

  1. Read mode:   print the current contents (if any)
  2. Write mode:  overwrite the file with a short introduction
  3. Append mode: add "Favorite subject: Science"
  4. Read mode:   print the final contents

Run without arguments to use demo_target.txt in the current directory.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true, // We handle errors manually, but silence usage on error
	SilenceErrors: true, // We format errors ourselves for consistent output
	RunE:          runDemo,
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.Info())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&targetFile, "file", "f", config.DefaultTargetFile, "Target filename")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Configuration file (KEY=VALUE lines)")
	rootCmd.PersistentFlags().BoolVarP(&interactive, "interactive", "i", false, "Prompt for the target filename")
	rootCmd.PersistentFlags().BoolVar(&nonInteractive, "non-interactive", false, "Never prompt; use defaults and flags only")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")

	rootCmd.AddCommand(versionCmd)
}

// newContext builds the setup context and resolves the target file for cmd
func newContext(cmd *cobra.Command) (*cli.SetupContext, string, error) {
	ctx, err := cli.NewSetupContextWithOptions(cli.Options{
		ConfigPath:     configPath,
		PromptTarget:   interactive,
		NonInteractive: nonInteractive,
		NoColor:        noColor,
	})
	if err != nil {
		return nil, "", fmt.Errorf("failed to initialize setup context: %w", err)
	}

	target, err := ctx.ResolveTarget(targetFile, cmd.Flags().Changed("file"))
	if err != nil {
		return nil, "", err
	}

	return ctx, target, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
