// Package main is the entry point for the CareerPrep CLI application.
// It provides account and session management against the CareerPrep service.
package main

import (
	"careerprep/cli/cmd"
)

// main initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
