// Package cli provides the command-line interface layer for the filemodes
// tool: dependency wiring, target resolution and the run, show and reset
// actions. It bridges user commands to the file mode demo in package steps.
package cli

import (
	"fmt"

	"github.com/Mayamba10/fictional-spoon/internal/common"
	"github.com/Mayamba10/fictional-spoon/internal/config"
	"github.com/Mayamba10/fictional-spoon/internal/steps"
	"github.com/Mayamba10/fictional-spoon/internal/system"
	"github.com/Mayamba10/fictional-spoon/internal/ui"
)

// Options controls how a SetupContext is built
type Options struct {
	// ConfigPath names an optional KEY=VALUE configuration file
	ConfigPath string
	// PromptTarget asks for the target filename before running
	PromptTarget bool
	// NonInteractive disables every prompt
	NonInteractive bool
	NoColor        bool
}

// SetupContext holds all dependencies needed for file mode operations
type SetupContext struct {
	Config *config.Config
	UI     *ui.UI
	FS     *system.FileSystem
	// PromptTarget indicates whether ResolveTarget should ask for the filename
	PromptTarget bool
}

// NewSetupContextWithOptions creates a new SetupContext with custom options
func NewSetupContextWithOptions(opts Options) (*SetupContext, error) {
	// Initialize configuration
	cfg := config.New(opts.ConfigPath)
	if err := cfg.Load(); err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if opts.NoColor || cfg.GetBool(config.KeyNoColor, false) {
		ui.DisableColor()
	}

	// Initialize UI; survey cannot prompt without a terminal
	uiInstance := ui.New()
	uiInstance.SetNonInteractive(opts.NonInteractive || !ui.StdinIsTerminal())

	// Initialize filesystem
	perms, err := common.ParsePermissions(cfg.GetOrDefault(config.KeyFilePerms, "0644"))
	if err != nil {
		return nil, fmt.Errorf("invalid %s: %w", config.KeyFilePerms, err)
	}
	fs := system.NewFileSystem()
	fs.SetPermissions(perms)

	return &SetupContext{
		Config:       cfg,
		UI:           uiInstance,
		FS:           fs,
		PromptTarget: opts.PromptTarget,
	}, nil
}

// ResolveTarget picks the target filename: the flag value when the flag was
// given, else TARGET_FILE from config or environment, else the default.
// With PromptTarget set the user may edit the result.
func (ctx *SetupContext) ResolveTarget(flagValue string, flagChanged bool) (string, error) {
	target := ctx.Config.GetOrDefault(config.KeyTargetFile, config.DefaultTargetFile)
	if flagChanged {
		target = flagValue
	}

	if ctx.PromptTarget {
		if ctx.UI.IsNonInteractive() {
			ctx.UI.Warningf("Cannot prompt without a terminal, using %s", target)
		} else {
			answer, err := ctx.UI.PromptInputWithValidation("Target file", target, common.ValidateFilename)
			if err != nil {
				return "", fmt.Errorf("failed to prompt for target file: %w", err)
			}
			target = answer
		}
	}

	if err := common.ValidateFilename(target); err != nil {
		return "", fmt.Errorf("invalid target file: %w", err)
	}

	return target, nil
}

// RunDemo executes the full read, write, append, read sequence against target
func RunDemo(ctx *SetupContext, target string) error {
	demo := steps.NewFileModeDemo(ctx.FS, ctx.UI)

	if err := demo.Run(target); err != nil {
		return fmt.Errorf("file mode demo stopped after stage %s: %w", demo.Stage(), err)
	}

	size, err := ctx.FS.GetFileSize(target)
	if err != nil {
		return err
	}
	perms, err := ctx.FS.GetPermissions(target)
	if err != nil {
		return err
	}

	ctx.UI.Print("")
	ctx.UI.Separator()
	ctx.UI.Successf("Reached stage %s, %s now holds %d bytes (mode %04o)", demo.Stage(), target, size, perms)
	return nil
}

// ShowTarget prints the target's current contents without modifying it
func ShowTarget(ctx *SetupContext, target string) error {
	demo := steps.NewFileModeDemo(ctx.FS, ctx.UI)
	return demo.DisplayContents(target, "Current")
}

// ResetTarget removes the target file after confirmation. force skips the prompt.
func ResetTarget(ctx *SetupContext, target string, force bool) error {
	exists, err := ctx.FS.FileExists(target)
	if err != nil {
		return err
	}
	if !exists {
		ctx.UI.Infof("%s does not exist, nothing to reset", target)
		return nil
	}

	if !force {
		if ctx.UI.IsNonInteractive() {
			return fmt.Errorf("refusing to remove %s without confirmation; use --yes", target)
		}

		ctx.UI.Warningf("This will delete %s", target)
		confirm, err := ctx.UI.PromptYesNo("Are you sure you want to reset?", false)
		if err != nil {
			return err
		}
		if !confirm {
			ctx.UI.Info("Reset cancelled")
			return nil
		}
	}

	if err := ctx.FS.RemoveFile(target); err != nil {
		return err
	}
	ctx.UI.Successf("Removed %s", target)
	return nil
}
