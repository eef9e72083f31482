// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// logoutCmd clears the current session. It removes the access and refresh
// tokens from the OS keychain and the in-memory session state. Logout always
// succeeds and is safe to run repeatedly.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and remove saved tokens",
	Long: `The logout command clears all authentication state from the local system:
the access token and refresh token in the OS keychain and the current
in-memory session. No backend call is involved.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSessionStore(cmd.Context())
		if err != nil {
			return err
		}
		store.Logout()
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
