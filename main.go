// Package main is the entry point for the s1fetch CLI application.
// It searches a Copernicus-style catalog for Sentinel-1 products and
// optionally checks availability or downloads the results.
package main

import (
	"s1fetch/cli/cmd"
)

// main is the entry point for the s1fetch CLI application.
// It initializes and executes the command-line interface.
func main() {
	cmd.Execute()
}
