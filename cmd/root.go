// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the CareerPrep CLI.
// It implements subcommands for authentication and session management using
// the Cobra CLI framework. Commands construct the session store from
// configuration at startup and render feedback through the terminal
// notification sink.
package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"careerprep/cli/internal/backend"
	"careerprep/cli/internal/config"
	"careerprep/cli/internal/logging"
	"careerprep/cli/internal/notify"
	"careerprep/cli/internal/session"
	"careerprep/cli/internal/tokenstore"
)

var (
	showVersion bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:           "careerprep",
	Short:         "CareerPrep CLI for account and session management",
	Long:          `CareerPrep is a command-line client for the CareerPrep service. It manages your signed-in session, credentials, and third-party sign-in dispatch.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("careerprep %s\n", Version)
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application. Errors pass through the masking
// presenter so secrets never reach stderr.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("careerprep", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
}

// newSessionStore wires configuration, backend, token persistence, and the
// terminal sink into an initialized session store. The restore attempt runs
// before the store is handed to the command, so Loading is already settled.
func newSessionStore(ctx context.Context) (*session.Store, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	be, err := backend.New(cfg)
	if err != nil {
		return nil, err
	}

	tokens, err := tokenstore.OpenKeyring()
	if err != nil {
		return nil, fmt.Errorf("opening secure token storage: %w", err)
	}

	store := session.New(session.Config{
		Backend:   be,
		Tokens:    tokens,
		Notifier:  notify.NewTerminal(),
		OAuthURLs: cfg.OAuth,
		Logger:    logging.NewLogger(cfg.LogLevel),
	})
	store.Initialize(ctx)
	return store, nil
}
