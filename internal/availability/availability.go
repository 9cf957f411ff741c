// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package availability checks which products of a result set are immediately
// retrievable. Products are queried one at a time in result order; a failed
// status lookup aborts the run.
package availability

import (
	"context"

	"github.com/pterm/pterm"

	"s1fetch/cli/internal/catalog"
)

// Checker partitions a result set into online and offline products.
type Checker struct {
	api catalog.API
}

// NewChecker creates a checker backed by the given catalog API.
func NewChecker(api catalog.API) *Checker {
	return &Checker{api: api}
}

// Partition queries the status of every product sequentially and returns the
// titles grouped by availability. Iteration order follows the result set.
func (c *Checker) Partition(ctx context.Context, products []catalog.Product) (online, offline []string, err error) {
	for _, p := range products {
		status, err := c.api.ProductInfo(ctx, p.ID)
		if err != nil {
			return nil, nil, err
		}
		if status.Online {
			online = append(online, status.Title)
		} else {
			offline = append(offline, status.Title)
		}
	}
	return online, offline, nil
}

// Report prints the availability summary and the grouped titles.
func (c *Checker) Report(online, offline []string) {
	switch {
	case len(offline) == 0 && len(online) > 0:
		pterm.Printf("All products requested (%d) are online\n\n", len(online))
		printTitles(online)
	case len(online) == 0 && len(offline) > 0:
		pterm.Printf("All products requested (%d) are offline\n\n", len(offline))
		printTitles(offline)
	default:
		pterm.Printf("%d online and %d offline products have been found\n\n", len(online), len(offline))
		if len(online) > 0 {
			pterm.Println("Online products")
			pterm.Println()
			printTitles(online)
		}
		if len(offline) > 0 {
			pterm.Println("Offline products")
			pterm.Println()
			printTitles(offline)
		}
	}
}

func printTitles(titles []string) {
	for _, title := range titles {
		pterm.Println(title)
	}
}
