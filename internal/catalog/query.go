// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import (
	"fmt"
	"strings"
	"time"

	"s1fetch/cli/internal/errors"
)

// queryTimeFormat is the timestamp layout the OpenSearch endpoint expects in
// range clauses.
const queryTimeFormat = "2006-01-02T15:04:05Z"

// validateParams enforces the invariants that must hold before any network
// call is issued.
func validateParams(p SearchParams) error {
	if strings.TrimSpace(p.FootprintWKT) == "" {
		return errors.New(errors.ValidationFailed, "a search footprint is required")
	}
	if p.Start.IsZero() || p.End.IsZero() {
		return errors.New(errors.ValidationFailed, "a start and an end date are required")
	}
	if !p.Start.Before(p.End) {
		return errors.New(errors.ValidationFailed, fmt.Sprintf(
			"the start date %s must be earlier than the end date %s",
			p.Start.Format("2006-01-02"), p.End.Format("2006-01-02")))
	}
	return nil
}

// buildQuery assembles the Solr-style q= expression for one search. The
// mandatory clauses always appear; the optional filters contribute a clause
// only when populated, so every filter combination flows through the same
// path.
func buildQuery(p SearchParams) string {
	clauses := []string{
		fmt.Sprintf("footprint:\"Intersects(%s)\"", p.FootprintWKT),
		fmt.Sprintf("beginposition:[%s TO %s]",
			p.Start.UTC().Format(queryTimeFormat), p.End.UTC().Format(queryTimeFormat)),
		"platformname:Sentinel-1",
	}
	if p.ProductType != "" {
		clauses = append(clauses, "producttype:"+p.ProductType.String())
	}
	if p.PassDirection != "" {
		clauses = append(clauses, "orbitdirection:"+p.PassDirection.QueryValue())
	}
	return strings.Join(clauses, " AND ")
}

// ParseDate parses a YYYYMMDD command-line date value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse("20060102", strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, errors.Wrap(errors.ValidationFailed,
			fmt.Sprintf("invalid date %q, expected syntax YYYYMMDD", s), err)
	}
	return t, nil
}
