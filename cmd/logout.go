// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"s1fetch/cli/internal/keychain"
)

// logoutCmd removes the stored catalog credentials from the OS keychain.
var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Remove saved catalog credentials",
	Long: `The logout command removes the catalog username and password stored by
's1fetch login' from the OS keychain. Credentials provided via environment
variables or a .env file are unaffected.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		if km, err := keychain.GetManager(); err == nil {
			_ = km.ClearCredentials()
		}
		fmt.Println("✅ Saved catalog credentials have been removed")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(logoutCmd)
}
