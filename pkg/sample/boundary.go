package sample

import (
	"mcops/pkg/catalog"
	"mcops/pkg/geo"
)

// Epsilon is the offset, in degrees, of the just-inside and
// just-outside points from a bounding box edge.
const Epsilon = 1e-6

// PointsPerRecord is the number of coordinates derived from one
// boundary record: the box center, the four corners, four points just
// inside the corners and four just outside them.
const PointsPerRecord = 13

type boundaryState struct {
	cat *catalog.Catalog
	rec int
	pts []geo.LatLon
	idx int
}

// NewBoundary returns a Generator that yields PointsPerRecord
// coordinates per catalog record. Boundaries are where
// adjacent-territory disambiguation is most likely to go wrong, so the
// corpus concentrates samples at and around the box edges. Every
// derived point is yielded independently; duplicates across records
// are not removed.
func NewBoundary(cat *catalog.Catalog) Generator {
	return &boundaryState{cat: cat}
}

func (g *boundaryState) Next() *geo.LatLon {
	if g.idx >= len(g.pts) {
		if g.rec >= g.cat.Count() {
			return nil
		}
		g.pts = derive(g.cat.BoundingBox(g.rec))
		g.idx = 0
		g.rec++
	}
	ll := g.pts[g.idx]
	g.idx++
	return &ll
}

func derive(b catalog.Box) []geo.LatLon {
	const d = Epsilon
	return []geo.LatLon{
		// center
		{Lat: (b.MinLat + b.MaxLat) / 2, Lon: (b.MinLon + b.MaxLon) / 2},
		// corners
		{Lat: b.MinLat, Lon: b.MinLon},
		{Lat: b.MinLat, Lon: b.MaxLon},
		{Lat: b.MaxLat, Lon: b.MinLon},
		{Lat: b.MaxLat, Lon: b.MaxLon},
		// just inside
		{Lat: b.MinLat + d, Lon: b.MinLon + d},
		{Lat: b.MinLat + d, Lon: b.MaxLon - d},
		{Lat: b.MaxLat - d, Lon: b.MinLon + d},
		{Lat: b.MaxLat - d, Lon: b.MaxLon - d},
		// just outside
		{Lat: b.MinLat - d, Lon: b.MinLon - d},
		{Lat: b.MinLat - d, Lon: b.MaxLon + d},
		{Lat: b.MaxLat + d, Lon: b.MinLon - d},
		{Lat: b.MaxLat + d, Lon: b.MaxLon + d},
	}
}
