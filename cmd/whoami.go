// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// whoamiCmd displays the currently authenticated account. It runs the
// store's restore attempt, which validates the persisted token against the
// backend; an unresolvable token silently settles into signed out.
var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show current authenticated account",
	Long: `The whoami command displays information about the currently authenticated
account. It restores the session from the persisted token and validates it
with the backend. If no valid session exists, it will indicate that you are
not logged in.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSessionStore(cmd.Context())
		if err != nil {
			return err
		}

		sess := store.Session()
		if !sess.SignedIn() {
			fmt.Println("🔒 You're not logged in yet!")
			fmt.Println("   Run 'careerprep login' to get started.")
			return nil
		}
		fmt.Printf("👤 Current user: %s <%s>\n", sess.User.Name, sess.User.Email)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(whoamiCmd)
}
