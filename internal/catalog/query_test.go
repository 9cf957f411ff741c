// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import (
	"strings"
	"testing"
	"time"
)

const testWKT = "POLYGON((30 10,40 40,20 40,10 20,30 10))"

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := ParseDate(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestValidateParams(t *testing.T) {
	tests := []struct {
		name    string
		params  SearchParams
		wantErr string
	}{
		{
			name:   "valid range",
			params: SearchParams{FootprintWKT: testWKT, Start: date(2019, 2, 1), End: date(2019, 8, 16)},
		},
		{
			name:    "start equals end",
			params:  SearchParams{FootprintWKT: testWKT, Start: date(2019, 2, 1), End: date(2019, 2, 1)},
			wantErr: "must be earlier than",
		},
		{
			name:    "start after end",
			params:  SearchParams{FootprintWKT: testWKT, Start: date(2019, 8, 16), End: date(2019, 2, 1)},
			wantErr: "the start date 2019-08-16 must be earlier than the end date 2019-02-01",
		},
		{
			name:    "missing footprint",
			params:  SearchParams{Start: date(2019, 2, 1), End: date(2019, 8, 16)},
			wantErr: "footprint is required",
		},
		{
			name:    "missing dates",
			params:  SearchParams{FootprintWKT: testWKT},
			wantErr: "start and an end date are required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validateParams(tt.params)
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("validateParams() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatal("validateParams() expected error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error = %v, want substring %q", err, tt.wantErr)
			}
		})
	}
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestBuildQuery(t *testing.T) {
	base := SearchParams{
		FootprintWKT: testWKT,
		Start:        date(2019, 2, 1),
		End:          date(2019, 8, 16),
	}

	tests := []struct {
		name    string
		mutate  func(*SearchParams)
		want    []string
		exclude []string
	}{
		{
			name:    "no filters",
			mutate:  func(p *SearchParams) {},
			want:    []string{"platformname:Sentinel-1"},
			exclude: []string{"producttype:", "orbitdirection:"},
		},
		{
			name:    "pass direction only",
			mutate:  func(p *SearchParams) { p.PassDirection = PassAscending },
			want:    []string{"orbitdirection:ASCENDING"},
			exclude: []string{"producttype:"},
		},
		{
			name:    "product type only",
			mutate:  func(p *SearchParams) { p.ProductType = ProductTypeGRD },
			want:    []string{"producttype:GRD"},
			exclude: []string{"orbitdirection:"},
		},
		{
			name: "both filters",
			mutate: func(p *SearchParams) {
				p.ProductType = ProductTypeSLC
				p.PassDirection = PassDescending
			},
			want: []string{"producttype:SLC", "orbitdirection:DESCENDING"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := base
			tt.mutate(&p)
			q := buildQuery(p)

			always := []string{
				`footprint:"Intersects(` + testWKT + `)"`,
				"beginposition:[2019-02-01T00:00:00Z TO 2019-08-16T00:00:00Z]",
				"platformname:Sentinel-1",
			}
			for _, w := range append(always, tt.want...) {
				if !strings.Contains(q, w) {
					t.Errorf("query %q missing clause %q", q, w)
				}
			}
			for _, e := range tt.exclude {
				if strings.Contains(q, e) {
					t.Errorf("query %q should not contain %q", q, e)
				}
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	got := mustDate(t, "20190201")
	if !got.Equal(date(2019, 2, 1)) {
		t.Errorf("ParseDate() = %v", got)
	}

	for _, bad := range []string{"2019-02-01", "20191301", "abc", ""} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) expected error", bad)
		}
	}
}

func TestParseProductType(t *testing.T) {
	tests := []struct {
		in      string
		want    ProductType
		wantErr bool
	}{
		{in: "GRD", want: ProductTypeGRD},
		{in: "slc", want: ProductTypeSLC},
		{in: " OCN ", want: ProductTypeOCN},
		{in: "XYZ", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParseProductType(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseProductType(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseProductType(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}

func TestParsePassDirection(t *testing.T) {
	tests := []struct {
		in      string
		want    PassDirection
		wantErr bool
	}{
		{in: "ascending", want: PassAscending},
		{in: "DESCENDING", want: PassDescending},
		{in: "north", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePassDirection(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParsePassDirection(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParsePassDirection(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	if PassAscending.QueryValue() != "ASCENDING" {
		t.Errorf("QueryValue() = %q", PassAscending.QueryValue())
	}
}
