// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"careerprep/cli/internal/errs"
)

// registerCmd creates a new CareerPrep account. Registration does not sign
// the user in; run login afterwards. The session store propagates
// registration failures to this command, which owns the user-facing
// presentation of them.
var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create a new account",
	Long: `The register command creates a new CareerPrep account from your name, email,
and a password. Creating an account does not sign you in; run
'careerprep login' once registration succeeds.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := newSessionStore(ctx)
		if err != nil {
			return err
		}

		name, err := promptText("Name")
		if err != nil {
			return err
		}
		email, err := promptText("Email")
		if err != nil {
			return err
		}
		password, err := promptSecret("Password")
		if err != nil {
			return err
		}

		spinner, _ := pterm.DefaultSpinner.Start("Creating account")
		_, err = store.Register(ctx, name, email, password)
		if spinner != nil {
			_ = spinner.Stop()
		}
		if err != nil {
			// Register failures are not notified by the store; present them here.
			pterm.Error.Println(errs.UserMessage(err, "Registration failed"))
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(registerCmd)
}
