// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"careerprep/cli/internal/backend"
	"careerprep/cli/internal/config"
	"careerprep/cli/internal/errs"
)

// verifyCmd confirms an email verification token from a registration email.
// This talks to the backend directly; it neither reads nor changes the
// current session.
var verifyCmd = &cobra.Command{
	Use:   "verify-email <token>",
	Short: "Confirm your email address with a verification token",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}
		be, err := backend.New(cfg)
		if err != nil {
			return err
		}

		msg, err := be.VerifyEmail(cmd.Context(), args[0])
		if err != nil {
			pterm.Error.Println(errs.UserMessage(err, "Verification failed"))
			return err
		}
		if msg == "" {
			msg = "Email verified successfully!"
		}
		pterm.Success.Println(msg)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(verifyCmd)
}
