package ui

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
)

// PromptYesNo prompts the user for a yes/no answer.
// In non-interactive mode the default is returned without asking.
func (u *UI) PromptYesNo(prompt string, defaultYes bool) (bool, error) {
	if u.nonInteractive {
		return defaultYes, nil
	}

	var result bool
	p := &survey.Confirm{
		Message: prompt,
		Default: defaultYes,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptInput prompts the user for text input.
// In non-interactive mode the default is returned without asking.
func (u *UI) PromptInput(prompt, defaultValue string) (string, error) {
	if u.nonInteractive {
		return defaultValue, nil
	}

	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	err := survey.AskOne(p, &result)
	return result, err
}

// PromptInputWithValidation prompts with custom validation
func (u *UI) PromptInputWithValidation(prompt, defaultValue string, validate func(string) error) (string, error) {
	if u.nonInteractive {
		return defaultValue, validate(defaultValue)
	}

	var result string
	p := &survey.Input{
		Message: prompt,
		Default: defaultValue,
	}

	validator := func(ans interface{}) error {
		str, ok := ans.(string)
		if !ok {
			return fmt.Errorf("expected a string answer")
		}
		return validate(str)
	}

	err := survey.AskOne(p, &result, survey.WithValidator(validator))
	return result, err
}

// PromptSelect prompts the user to select from a list
func (u *UI) PromptSelect(prompt string, options []string) (int, error) {
	if u.nonInteractive {
		return -1, fmt.Errorf("cannot prompt for %q in non-interactive mode", prompt)
	}

	var selected string
	p := &survey.Select{
		Message: prompt,
		Options: options,
	}

	if err := survey.AskOne(p, &selected); err != nil {
		return -1, err
	}

	// Find the index of the selected option
	for i, opt := range options {
		if opt == selected {
			return i, nil
		}
	}

	return -1, fmt.Errorf("selected option not found")
}
