// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for the s1fetch application.
// It implements the Sentinel-1 catalog search pipeline and the credential
// subcommands using the Cobra CLI framework. The package handles command
// parsing, execution, and provides terminal UI with spinners and grouped
// result listings.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"s1fetch/cli/internal/availability"
	"s1fetch/cli/internal/catalog"
	"s1fetch/cli/internal/config"
	"s1fetch/cli/internal/creds"
	"s1fetch/cli/internal/download"
	"s1fetch/cli/internal/errors"
	"s1fetch/cli/internal/export"
	"s1fetch/cli/internal/footprint"
	"s1fetch/cli/internal/logging"
)

var (
	showVersion   bool
	outDir        string
	footprintPath string
	startDate     string
	endDate       string
	productType   string
	passDirection string
	doDownload    bool
	checkOnline   bool
	csvPath       string
	verbose       bool
)

// rootCmd represents the base command. Running it with search flags executes
// the query pipeline; running it bare shows help.
var rootCmd = &cobra.Command{
	Use:           "s1fetch",
	Short:         "Search and download Sentinel-1 products from a Copernicus catalog",
	Long: `s1fetch searches a Copernicus-style catalog for Sentinel-1 products over a
GeoJSON footprint and date range, optionally filtered by product type and
orbit direction. Matching products can be checked for online availability
and downloaded to a local directory.

Credentials are read from the 'user' and 'password' environment variables,
a .env file, or the OS keychain entry written by 's1fetch login'.

Examples:

  Count the scenes acquired over an AOI in ascending orbit:
    s1fetch -s 20190201 -e 20190816 -a aoi/AOI.geojson -p ascending

  Check whether those scenes are online:
    s1fetch -s 20190201 -e 20190816 -a aoi/AOI.geojson -p ascending --online

  Download every scene found:
    s1fetch -s 20190201 -e 20190816 -a aoi/AOI.geojson -p ascending -d`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Printf("s1fetch %s\n", Version)
			return nil
		}
		if cmd.Flags().NFlag() == 0 {
			return cmd.Help()
		}
		return runSearch(cmd)
	},
}

// runSearch executes the linear pipeline: validate → query → optional CSV
// export → optional availability check → optional download.
func runSearch(cmd *cobra.Command) error {
	ctx := cmd.Context()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logging.Setup(cfg.LogLevel, verbose)

	params, err := buildSearchParams()
	if err != nil {
		return err
	}

	cr, _, err := creds.Resolve()
	if err != nil {
		return err
	}

	client := catalog.New(cfg.APIURL, cr.User, cr.Password, cfg.Timeout(), cfg.PageSize)

	stopSpinner := startInlineSpinner(os.Stderr, "searching the catalog",
		[]string{"|", "/", "-", "\\"}, 120*time.Millisecond)
	rs, err := client.Query(ctx, params)
	stopSpinner()
	if err != nil {
		return err
	}

	pterm.Printf("%d scenes have been found in total\n\n", rs.Total)

	if csvPath != "" {
		if err := export.WriteCSV(csvPath, rs.Products); err != nil {
			return err
		}
		pterm.Printf("Result table written to %s\n", csvPath)
	}

	if checkOnline {
		checker := availability.NewChecker(client)
		online, offline, err := checker.Partition(ctx, rs.Products)
		if err != nil {
			return err
		}
		checker.Report(online, offline)
	}

	if doDownload {
		dir := outDir
		if dir == "" {
			dir, err = os.Getwd()
			if err != nil {
				return err
			}
		}
		if err := download.New(client, dir).Run(ctx, rs.Products); err != nil {
			return err
		}
	}

	return nil
}

// buildSearchParams validates the search flags and converts them into catalog
// search parameters. Every invalid value is rejected here, before any network
// call.
func buildSearchParams() (catalog.SearchParams, error) {
	var params catalog.SearchParams

	if footprintPath == "" {
		return params, errors.New(errors.ValidationFailed,
			"please provide a path to the footprint file (use option -a) to be used as AOI for searching S1 data; the file format is GeoJSON")
	}
	if startDate == "" || endDate == "" {
		return params, errors.New(errors.ValidationFailed,
			"please provide a start and an end date to search for data (options -s and -e, syntax YYYYMMDD)")
	}

	start, err := catalog.ParseDate(startDate)
	if err != nil {
		return params, err
	}
	end, err := catalog.ParseDate(endDate)
	if err != nil {
		return params, err
	}
	if !start.Before(end) {
		return params, errors.New(errors.ValidationFailed, fmt.Sprintf(
			"the start date %s must be earlier than the end date %s",
			start.Format("2006-01-02"), end.Format("2006-01-02")))
	}

	if productType != "" {
		pt, err := catalog.ParseProductType(productType)
		if err != nil {
			return params, errors.Wrap(errors.ValidationFailed, "invalid --product_type", err)
		}
		params.ProductType = pt
	}
	if passDirection != "" {
		pd, err := catalog.ParsePassDirection(passDirection)
		if err != nil {
			return params, errors.Wrap(errors.ValidationFailed, "invalid --pass_direction", err)
		}
		params.PassDirection = pd
	}

	wkt, err := footprint.ReadWKT(footprintPath)
	if err != nil {
		return params, err
	}
	params.FootprintWKT = wkt
	params.Start = start
	params.End = end
	return params, nil
}

// Execute runs the CLI application.
// It executes the root command and handles any errors that occur during execution.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, logging.PresentError("", err))
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.Flags().StringVarP(&outDir, "outdir", "o", "", "Specify an output directory")
	rootCmd.Flags().StringVarP(&footprintPath, "footprint", "a", "", "Path to a GeoJSON file used as the search footprint (AOI)")
	rootCmd.Flags().StringVarP(&startDate, "start_date", "s", "", "Start date for searching data, syntax YYYYMMDD")
	rootCmd.Flags().StringVarP(&endDate, "end_date", "e", "", "End date for searching data, syntax YYYYMMDD")
	rootCmd.Flags().StringVarP(&productType, "product_type", "t", "", "Product type (valid product types: GRD, SLC or OCN)")
	rootCmd.Flags().StringVarP(&passDirection, "pass_direction", "p", "", "Orbit direction (valid orbits: ascending or descending)")
	rootCmd.Flags().BoolVarP(&doDownload, "download", "d", false, "Download the products found")
	rootCmd.Flags().BoolVar(&checkOnline, "online", false, "Check if the requested products are online or offline")
	rootCmd.Flags().StringVar(&csvPath, "csv", "", "Write the result table to the given CSV file")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose debug output")
}
