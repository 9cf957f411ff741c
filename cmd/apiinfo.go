// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"s1fetch/cli/internal/config"
	"s1fetch/cli/internal/creds"
	"s1fetch/cli/internal/logging"
)

// apiinfoCmd displays the configured catalog endpoint and where credentials
// would be resolved from, without exposing any secret values.
var apiinfoCmd = &cobra.Command{
	Use:   "apiinfo",
	Short: "Show the configured catalog endpoint and credential source",
	Long: `The apiinfo command displays the catalog API URL currently in effect and the
source the credentials resolve from (environment, .env file, or OS keychain).
Secret values are never printed.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Catalog API")).
			WithPadding(1).
			Println(logging.Mask(cfg.APIURL))
		pterm.Println()

		if c, src, err := creds.Resolve(); err == nil {
			pterm.Printf("Credentials: user %q from %s\n", c.User, src)
		} else {
			pterm.Println("⚠️  No catalog credentials configured")
			pterm.Println("   Set the 'user' and 'password' environment variables or run: s1fetch login")
		}
		pterm.Println()

		return nil
	},
}

func init() {
	rootCmd.AddCommand(apiinfoCmd)
}
