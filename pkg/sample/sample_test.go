package sample

import (
	"testing"

	"github.com/stretchr/testify/require"

	"mcops/pkg/geo"
)

func collect(g Generator) []geo.LatLon {
	var pts []geo.LatLon
	for ll := g.Next(); ll != nil; ll = g.Next() {
		pts = append(pts, *ll)
	}
	return pts
}

func TestGridCount(t *testing.T) {
	for _, n := range []int{1, 2, 7, 100, 1024, 10000} {
		pts := collect(NewGrid(n))
		require.Len(t, pts, n, "n=%d", n)
	}
}

func TestGridDeterministic(t *testing.T) {
	a := collect(NewGrid(1000))
	b := collect(NewGrid(1000))
	require.Equal(t, a, b)
}

func TestGridRange(t *testing.T) {
	for _, ll := range collect(NewGrid(500)) {
		require.GreaterOrEqual(t, ll.Lat, -90.0)
		require.LessOrEqual(t, ll.Lat, 90.0)
		require.GreaterOrEqual(t, ll.Lon, -180.0)
		require.LessOrEqual(t, ll.Lon, 180.0)
	}
}

func TestRandomCount(t *testing.T) {
	pts := collect(NewRandom(250, 1))
	require.Len(t, pts, 250)
}

func TestRandomReproducible(t *testing.T) {
	a := collect(NewRandom(500, 42))
	b := collect(NewRandom(500, 42))
	require.Equal(t, a, b)

	c := collect(NewRandom(500, 43))
	require.NotEqual(t, a, c)
}

func TestRandomRange(t *testing.T) {
	for _, ll := range collect(NewRandom(500, 7)) {
		require.GreaterOrEqual(t, ll.Lat, -90.0)
		require.LessOrEqual(t, ll.Lat, 90.0)
		require.GreaterOrEqual(t, ll.Lon, -180.0)
		require.LessOrEqual(t, ll.Lon, 180.0)
	}
}
