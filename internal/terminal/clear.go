// Package terminal provides utilities for terminal operations such as clearing text.
package terminal

import (
	"fmt"
	"math"
	"os"

	"golang.org/x/term"
)

// ClearPreviousLines clears text from the terminal that was previously printed.
// It calculates how many lines were used by the provided text based on the current
// terminal width, then moves up and clears each line.
//
// This is useful for cleaning up credential prompts after they've been entered.
func ClearPreviousLines(textLength int) {
	// Get terminal width to calculate line wrapping
	termWidth := 80 // default fallback
	if width, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && width > 0 {
		termWidth = width
	}

	lines := int(math.Ceil(float64(textLength) / float64(termWidth)))
	if lines < 1 {
		lines = 1
	}
	// +1 accounts for the newline the user's Enter produced
	for i := 0; i < lines+1; i++ {
		fmt.Print("\033[1A\033[2K")
	}
}
