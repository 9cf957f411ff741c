// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import "context"

// API defines the catalog operations the CLI depends on.
// Implementations may call the real DHuS endpoints or provide mocks for tests.
type API interface {
	// Query searches the catalog and returns the matching products.
	Query(ctx context.Context, params SearchParams) (*ResultSet, error)
	// ProductInfo retrieves the per-product availability status by id.
	ProductInfo(ctx context.Context, id string) (*ProductStatus, error)
	// Download fetches the product data by id into dir and returns the
	// path of the written file.
	Download(ctx context.Context, id, title, dir string) (string, error)
}
