// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"s1fetch/cli/internal/catalog"
	"s1fetch/cli/internal/config"
	"s1fetch/cli/internal/keychain"
	"s1fetch/cli/internal/terminal"
)

// loginCmd stores the Copernicus catalog credentials in the OS keychain.
// The credentials are verified against the catalog with a zero-row probe
// query before they are saved.
var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Store and verify catalog credentials",
	Long: `The login command prompts for the Copernicus catalog username and password,
verifies them with a zero-row probe query, and stores them securely in the
OS keychain for future runs.

Credentials provided via the 'user' and 'password' environment variables or a
.env file always take precedence over the keychain entry.`,

	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		reader := bufio.NewReader(os.Stdin)
		fmt.Print("Catalog username: ")
		user, _ := reader.ReadString('\n')
		user = strings.TrimSpace(user)
		if user == "" {
			return fmt.Errorf("a username is required")
		}

		fmt.Print("Catalog password: ")
		pwBytes, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Println()
		if err != nil {
			return err
		}
		password := strings.TrimSpace(string(pwBytes))
		if password == "" {
			return fmt.Errorf("a password is required")
		}

		// Remove the prompts so credentials context does not linger on screen
		terminal.ClearPreviousLines(len("Catalog username: ") + len(user))

		stopSpinner := startInlineSpinner(os.Stderr, "verifying credentials",
			[]string{"-", "\\", "|", "/"}, 100*time.Millisecond)
		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()
		client := catalog.New(cfg.APIURL, user, password, cfg.Timeout(), cfg.PageSize)
		err = client.CheckCredentials(ctx)
		stopSpinner()
		if err != nil {
			fmt.Println("❌ Credential check failed. Please verify your username and password.")
			return err
		}

		km, err := keychain.GetManager()
		if err != nil {
			fmt.Println("❌ Secure storage is not available on this system.")
			fmt.Println("   Credentials verified but not saved.")
			return err
		}
		if err := km.SaveCredentials(user, password); err != nil {
			fmt.Println("❌ Failed to save credentials securely.")
			return err
		}

		fmt.Println("✅ Catalog credentials verified and saved!")
		fmt.Println("   You're ready to run 's1fetch -a <aoi.geojson> -s <start> -e <end>'")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
}
