// Package sample generates the sample coordinates that are driven
// through the codec: a deterministic grid over the sphere, a seeded
// uniform-random distribution, or edge cases derived from a territory
// boundary catalog.
package sample

import (
	"math"
	"math/rand"
	"time"

	"mcops/pkg/geo"
)

// Generator provides an interface for yielding successive sample
// coordinates. Next returns nil when the sequence is exhausted;
// sequences are not restartable.
type Generator interface {
	Next() *geo.LatLon
}

type gridState struct {
	n, i         int
	gridX, gridY int
	line         int
}

// NewGrid returns a Generator that yields n coordinates laid out as a
// fixed grid wrapped around the sphere. The sequence depends only on
// n: the same n always yields the same coordinates in the same order.
func NewGrid(n int) Generator {
	return &gridState{
		n:    n,
		line: int(math.Floor(math.Sqrt(float64(n)) + 0.5)),
	}
}

func (g *gridState) Next() *geo.LatLon {
	if g.i >= g.n {
		return nil
	}
	g.i++

	u1 := float64(g.gridX) / float64(g.line)
	u2 := float64(g.gridY) / float64(g.line)
	if g.gridX < g.line {
		g.gridX++
	} else {
		g.gridX = 0
		g.gridY++
	}

	ll := geo.FromUnit(u1, u2)
	return &ll
}

type randomState struct {
	n, i int
	rng  *rand.Rand
}

// NewRandom returns a Generator that yields n uniformly distributed
// sphere coordinates. A non-zero seed makes the sequence reproducible;
// seed 0 seeds from the clock.
func NewRandom(n int, seed int64) Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &randomState{
		n:   n,
		rng: rand.New(rand.NewSource(seed)),
	}
}

func (g *randomState) Next() *geo.LatLon {
	if g.i >= g.n {
		return nil
	}
	g.i++
	ll := geo.FromUnit(g.rng.Float64(), g.rng.Float64())
	return &ll
}
