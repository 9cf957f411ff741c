// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

package footprint

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const polygonJSON = `{"type":"Polygon","coordinates":[[[30.0,10.0],[40.0,40.0],[20.0,40.0],[10.0,20.0],[30.0,10.0]]]}`

func writeTemp(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "aoi.geojson")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadWKT(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
		wantErr bool
	}{
		{
			name:    "bare polygon geometry",
			content: polygonJSON,
			want:    "POLYGON((30 10,40 40,20 40,10 20,30 10))",
		},
		{
			name:    "feature wrapping a polygon",
			content: `{"type":"Feature","properties":{},"geometry":` + polygonJSON + `}`,
			want:    "POLYGON((30 10,40 40,20 40,10 20,30 10))",
		},
		{
			name:    "feature collection uses first feature",
			content: `{"type":"FeatureCollection","features":[{"type":"Feature","properties":{},"geometry":` + polygonJSON + `}]}`,
			want:    "POLYGON((30 10,40 40,20 40,10 20,30 10))",
		},
		{
			name:    "point geometry rejected",
			content: `{"type":"Point","coordinates":[30.0,10.0]}`,
			wantErr: true,
		},
		{
			name:    "empty feature collection rejected",
			content: `{"type":"FeatureCollection","features":[]}`,
			wantErr: true,
		},
		{
			name:    "malformed json rejected",
			content: `{"type":"Polygon","coordinates":`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ReadWKT(writeTemp(t, tt.content))
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ReadWKT() = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ReadWKT() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ReadWKT() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestReadWKTMissingFile(t *testing.T) {
	_, err := ReadWKT(filepath.Join(t.TempDir(), "missing.geojson"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "footprint_invalid") {
		t.Errorf("error = %v, want footprint_invalid kind", err)
	}
}
