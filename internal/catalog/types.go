// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package catalog implements the client for the Copernicus DHuS catalog
// service. It covers the three operations the CLI needs: the OpenSearch
// product search, the per-product OData availability lookup, and the OData
// product download.
package catalog

import (
	"fmt"
	"strings"
	"time"
)

// ProductType represents a supported Sentinel-1 product type identifier.
type ProductType string

const (
	ProductTypeGRD ProductType = "GRD"
	ProductTypeSLC ProductType = "SLC"
	ProductTypeOCN ProductType = "OCN"
)

// String returns the underlying string value.
func (p ProductType) String() string {
	return string(p)
}

// ParseProductType validates a user-supplied product type value.
func ParseProductType(s string) (ProductType, error) {
	switch ProductType(strings.ToUpper(strings.TrimSpace(s))) {
	case ProductTypeGRD:
		return ProductTypeGRD, nil
	case ProductTypeSLC:
		return ProductTypeSLC, nil
	case ProductTypeOCN:
		return ProductTypeOCN, nil
	}
	return "", fmt.Errorf("the product type specified %q does not exist; valid products: GRD, SLC or OCN", s)
}

// PassDirection represents the satellite orbit direction at acquisition time.
type PassDirection string

const (
	PassAscending  PassDirection = "ascending"
	PassDescending PassDirection = "descending"
)

// String returns the underlying string value.
func (d PassDirection) String() string {
	return string(d)
}

// QueryValue returns the value the catalog expects in the orbitdirection clause.
func (d PassDirection) QueryValue() string {
	return strings.ToUpper(string(d))
}

// ParsePassDirection validates a user-supplied orbit direction value.
func ParsePassDirection(s string) (PassDirection, error) {
	switch PassDirection(strings.ToLower(strings.TrimSpace(s))) {
	case PassAscending:
		return PassAscending, nil
	case PassDescending:
		return PassDescending, nil
	}
	return "", fmt.Errorf("the orbit specified %q does not exist; valid orbits: ascending or descending", s)
}

// Product is one catalog search result. Records are transient; they live only
// for the duration of a single run and are never persisted.
type Product struct {
	ID            string
	Title         string
	BeginPosition time.Time
	IngestionDate time.Time
	Size          string
}

// ProductStatus is the per-product availability information returned by the
// OData endpoint. The online flag is fetched lazily per record, not cached.
type ProductStatus struct {
	ID     string
	Title  string
	Online bool
}

// SearchParams describes one catalog search. Optional filters are zero-valued
// when absent; only populated filters become query clauses.
type SearchParams struct {
	FootprintWKT  string
	Start         time.Time
	End           time.Time
	ProductType   ProductType
	PassDirection PassDirection
}

// ResultSet is the outcome of one search: the matching products in catalog
// order plus the total count the server reported.
type ResultSet struct {
	Products []Product
	Total    int
}
