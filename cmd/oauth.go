// Copyright (c) 2025 CareerPrep
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/spf13/cobra"
)

// oauthCmd dispatches a third-party sign-in redirect. The provider's URL
// comes from configuration (CAREERPREP_OAUTH_<PROVIDER>_URL or the config
// file); an unconfigured provider is reported, not treated as a defect.
// After a successful dispatch the sign-in completes in the browser.
var oauthCmd = &cobra.Command{
	Use:   "oauth <provider>",
	Short: "Sign in via a third-party provider (e.g. Google, GitHub)",
	Args:  cobra.ExactArgs(1),

	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := newSessionStore(cmd.Context())
		if err != nil {
			return err
		}
		// The dispatcher already notified the user either way.
		return store.OAuthSignIn(args[0])
	},
}

func init() {
	rootCmd.AddCommand(oauthCmd)
}
