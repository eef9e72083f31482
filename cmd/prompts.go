// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"strings"

	"github.com/pterm/pterm"

	"careerprep/cli/internal/terminal"
)

// promptText asks for a single line of input with the given label.
func promptText(label string) (string, error) {
	value, err := pterm.DefaultInteractiveTextInput.Show(label)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(value), nil
}

// promptSecret asks for a masked line of input and clears the prompt from the
// terminal afterwards so the entry never lingers on screen.
func promptSecret(label string) (string, error) {
	value, err := pterm.DefaultInteractiveTextInput.WithMask("*").Show(label)
	if err != nil {
		return "", err
	}
	terminal.ClearPreviousLines(len(label) + len(value))
	return value, nil
}
