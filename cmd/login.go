// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"careerprep/cli/internal/errs"
	"careerprep/cli/internal/httperrors"
)

var loginEmail string

// loginCmd signs the user in with email and password credentials.
// The session store persists the issued token pair to the OS keychain so the
// session survives restarts; success and failure feedback comes from the
// store's notification sink.
var loginCmd = &cobra.Command{
	Use:     "login",
	Aliases: []string{"auth"},
	Short:   "Sign in with your email and password",
	Long: `The login command authenticates against the CareerPrep backend with your email
and password. On success the issued session token is stored securely and
reused on the next run; there is nothing else to do until you log out.

If you are already signed in, the command reports your current account and
exits without prompting.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		store, err := newSessionStore(ctx)
		if err != nil {
			return err
		}

		// Short-circuit when the restored session is still valid.
		if sess := store.Session(); sess.SignedIn() {
			pterm.Printf("Already logged in as %s\n", sess.User.Email)
			return nil
		}

		email := loginEmail
		if email == "" {
			if email, err = promptText("Email"); err != nil {
				return err
			}
		}
		password, err := promptSecret("Password")
		if err != nil {
			return err
		}

		spinner, _ := pterm.DefaultSpinner.Start("Signing in")
		_, err = store.Login(ctx, email, password)
		if spinner != nil {
			_ = spinner.Stop()
		}
		if err != nil {
			// The store already notified the user; connectivity problems get
			// extra troubleshooting help.
			if errs.KindOf(err) == errs.BackendFailure {
				return httperrors.FormatNetworkError(err, "signing in")
			}
			return err
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	loginCmd.Flags().StringVar(&loginEmail, "email", "", "Account email (prompted when omitted)")
}
