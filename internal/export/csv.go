// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package export writes the search result table to disk for further analysis.
package export

import (
	"os"

	"github.com/jszwec/csvutil"

	"s1fetch/cli/internal/catalog"
)

// row is the CSV representation of one product record. Column names follow
// the catalog attribute names so the file lines up with other tooling.
type row struct {
	Title         string `csv:"title"`
	UUID          string `csv:"uuid"`
	BeginPosition string `csv:"beginposition"`
	IngestionDate string `csv:"ingestiondate"`
	Size          string `csv:"size"`
}

const timeFormat = "2006-01-02T15:04:05Z"

// WriteCSV writes the product table to path, header first, one row per
// product in result order.
func WriteCSV(path string, products []catalog.Product) error {
	rows := make([]row, 0, len(products))
	for _, p := range products {
		rows = append(rows, row{
			Title:         p.Title,
			UUID:          p.ID,
			BeginPosition: p.BeginPosition.UTC().Format(timeFormat),
			IngestionDate: p.IngestionDate.UTC().Format(timeFormat),
			Size:          p.Size,
		})
	}
	data, err := csvutil.Marshal(rows)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
