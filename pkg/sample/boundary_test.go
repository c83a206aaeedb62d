package sample

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mcops/pkg/catalog"
	"mcops/pkg/geo"
)

func TestBoundaryCount(t *testing.T) {
	cat, err := catalog.New([]catalog.Box{
		{Territory: "NLD", MinLat: 50.7, MinLon: 3.3, MaxLat: 53.6, MaxLon: 7.3},
		{Territory: "BEL", MinLat: 49.5, MinLon: 2.5, MaxLat: 51.6, MaxLon: 6.4},
		{Territory: "US-CA", MinLat: 32.5, MinLon: -124.5, MaxLat: 42.0, MaxLon: -114.1},
	})
	require.NoError(t, err)

	pts := collect(NewBoundary(cat))
	require.Len(t, pts, PointsPerRecord*cat.Count())
}

func TestBoundaryDerivedPoints(t *testing.T) {
	cat, err := catalog.New([]catalog.Box{
		{Territory: "X", MinLat: 10, MinLon: 20, MaxLat: 30, MaxLon: 40},
	})
	require.NoError(t, err)

	const d = Epsilon
	exp := []geo.LatLon{
		{Lat: 20, Lon: 30},
		{Lat: 10, Lon: 20},
		{Lat: 10, Lon: 40},
		{Lat: 30, Lon: 20},
		{Lat: 30, Lon: 40},
		{Lat: 10 + d, Lon: 20 + d},
		{Lat: 10 + d, Lon: 40 - d},
		{Lat: 30 - d, Lon: 20 + d},
		{Lat: 30 - d, Lon: 40 - d},
		{Lat: 10 - d, Lon: 20 - d},
		{Lat: 10 - d, Lon: 40 + d},
		{Lat: 30 + d, Lon: 20 - d},
		{Lat: 30 + d, Lon: 40 + d},
	}
	require.Equal(t, exp, collect(NewBoundary(cat)))
}

func TestBoundaryEmptyCatalog(t *testing.T) {
	// New rejects empty files, but a Catalog value with no boxes is
	// still a valid generator input.
	cat, err := catalog.New(nil)
	require.NoError(t, err)
	require.Nil(t, NewBoundary(cat).Next())
}
