// Copyright (c) 2025 s1fetch
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package footprint reads the area-of-interest vector file and converts it to
// the WKT string the catalog search expects. The file may contain a bare
// GeoJSON geometry, a single Feature, or a FeatureCollection; the first
// polygonal geometry found is used.
package footprint

import (
	"fmt"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/encoding/wkt"
	"github.com/paulmach/orb/geojson"

	"s1fetch/cli/internal/errors"
)

// ReadWKT loads the GeoJSON file at path and returns its footprint as WKT.
func ReadWKT(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(errors.FootprintInvalid, "read footprint file", err)
	}

	geom, err := parseGeometry(data)
	if err != nil {
		return "", errors.Wrap(errors.FootprintInvalid, fmt.Sprintf("parse footprint file %s", path), err)
	}

	switch geom.(type) {
	case orb.Polygon, orb.MultiPolygon:
		return wkt.MarshalString(geom), nil
	default:
		return "", errors.New(errors.FootprintInvalid,
			fmt.Sprintf("footprint geometry must be a Polygon or MultiPolygon, got %s", geom.GeoJSONType()))
	}
}

// parseGeometry accepts the three GeoJSON top-level shapes a footprint file
// commonly uses.
func parseGeometry(data []byte) (orb.Geometry, error) {
	if fc, err := geojson.UnmarshalFeatureCollection(data); err == nil {
		if len(fc.Features) == 0 {
			return nil, fmt.Errorf("feature collection contains no features")
		}
		return fc.Features[0].Geometry, nil
	}
	if f, err := geojson.UnmarshalFeature(data); err == nil {
		return f.Geometry, nil
	}
	g, err := geojson.UnmarshalGeometry(data)
	if err != nil {
		return nil, err
	}
	return g.Geometry(), nil
}
