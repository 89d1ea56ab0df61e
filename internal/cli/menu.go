package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Mayamba10/fictional-spoon/internal/common"
)

// ErrExit is returned when the user chooses to exit the menu
var ErrExit = errors.New("exit")

// menuOptions lists the menu entries in display order
var menuOptions = []struct{ key, label string }{
	{"R", "Run demo (read, write, append, read)"},
	{"S", "Show current contents"},
	{"T", "Change target file"},
	{"D", "Delete target file"},
	{"X", "Exit"},
}

// Menu provides an interactive menu interface
type Menu struct {
	ctx    *SetupContext
	target string
}

// NewMenu creates a new Menu instance working on target
func NewMenu(ctx *SetupContext, target string) *Menu {
	return &Menu{ctx: ctx, target: target}
}

// Target returns the file the menu currently operates on
func (m *Menu) Target() string {
	return m.target
}

// Show displays the main menu and handles user input
func (m *Menu) Show() error {
	if m.ctx.UI.IsNonInteractive() {
		return fmt.Errorf("the interactive menu requires a terminal")
	}

	labels := make([]string, len(menuOptions))
	for i, opt := range menuOptions {
		labels[i] = fmt.Sprintf("[%s] %s", opt.key, opt.label)
	}

	for {
		m.ctx.UI.ClearScreen()
		m.displayMenu()

		idx, err := m.ctx.UI.PromptSelect("Choose an action", labels)
		if err != nil {
			return err
		}

		if err := m.HandleChoice(menuOptions[idx].key); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			m.ctx.UI.Error(err.Error())
		}

		m.ctx.UI.Print("")
		if _, err := m.ctx.UI.PromptInput("Press Enter to return to menu", ""); err != nil {
			return err
		}
	}
}

// displayMenu prints the menu banner and the current target
func (m *Menu) displayMenu() {
	m.ctx.UI.Header("File Modes")
	m.ctx.UI.Infof("Target file: %s", m.target)
	m.ctx.UI.Print("")
}

// HandleChoice processes a menu choice
func (m *Menu) HandleChoice(choice string) error {
	switch strings.ToUpper(strings.TrimSpace(choice)) {
	case "R":
		return RunDemo(m.ctx, m.target)
	case "S":
		return ShowTarget(m.ctx, m.target)
	case "T":
		return m.changeTarget()
	case "D":
		return ResetTarget(m.ctx, m.target, false)
	case "X":
		return ErrExit
	default:
		return fmt.Errorf("invalid choice: %s", choice)
	}
}

func (m *Menu) changeTarget() error {
	target, err := m.ctx.UI.PromptInputWithValidation("Target file", m.target, common.ValidateFilename)
	if err != nil {
		return fmt.Errorf("failed to prompt for target file: %w", err)
	}
	m.target = target
	m.ctx.UI.Successf("Target file set to %s", target)
	return nil
}
