// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package download fetches the products of a result set one at a time.
// Offline products are skipped with a notice; there is no parallelism and no
// resume of interrupted transfers.
package download

import (
	"context"

	"github.com/pterm/pterm"

	"s1fetch/cli/internal/catalog"
)

// Downloader writes online products into a local directory.
type Downloader struct {
	api    catalog.API
	outDir string
}

// New creates a downloader writing into outDir.
func New(api catalog.API, outDir string) *Downloader {
	return &Downloader{api: api, outDir: outDir}
}

// Run iterates the result set sequentially. Every online product triggers
// exactly one download call; offline products are logged and skipped. The
// first failure aborts the run.
func (d *Downloader) Run(ctx context.Context, products []catalog.Product) error {
	for _, p := range products {
		status, err := d.api.ProductInfo(ctx, p.ID)
		if err != nil {
			return err
		}
		if !status.Online {
			pterm.Printf("Product %s is not online.\n", status.Title)
			continue
		}
		pterm.Printf("Product %s is online.\n", status.Title)
		path, err := d.api.Download(ctx, p.ID, status.Title, d.outDir)
		if err != nil {
			return err
		}
		pterm.Printf("Saved %s\n", path)
	}
	return nil
}
