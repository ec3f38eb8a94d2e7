// Where: cli/internal/interaction/selector.go
// What: Interactive prompt implementations using the huh library.
// Why: Provide keyboard-based input for the create command.
package interaction

import (
	"github.com/charmbracelet/huh"
)

// HuhPrompter implements the Prompter interface using the huh TUI library.
type HuhPrompter struct{}

func (p HuhPrompter) Input(title, placeholder string) (string, error) {
	var input string
	err := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&input).
		Run()
	if err != nil {
		return "", err
	}
	if input == "" {
		return placeholder, nil
	}
	return input, nil
}

func (p HuhPrompter) SelectValue(title string, options []SelectOption) (string, error) {
	if len(options) == 0 {
		return "", nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected string
	err := huh.NewSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return "", err
	}
	return selected, nil
}

func (p HuhPrompter) MultiSelect(title string, options []SelectOption) ([]string, error) {
	if len(options) == 0 {
		return nil, nil
	}

	huhOptions := make([]huh.Option[string], len(options))
	for i, opt := range options {
		huhOptions[i] = huh.NewOption(opt.Label, opt.Value)
	}

	var selected []string
	err := huh.NewMultiSelect[string]().
		Title(title).
		Options(huhOptions...).
		Value(&selected).
		Run()
	if err != nil {
		return nil, err
	}
	return selected, nil
}

func (p HuhPrompter) Confirm(title string, defaultYes bool) (bool, error) {
	confirmed := defaultYes
	err := huh.NewConfirm().
		Title(title).
		Value(&confirmed).
		Run()
	if err != nil {
		return false, err
	}
	return confirmed, nil
}
