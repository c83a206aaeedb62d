// Package codectest provides a deterministic in-memory Codec so the
// harness can be exercised without a real mapcode library linked in.
package codectest

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"mcops/pkg/codec"
	"mcops/pkg/geo"
)

// step is the cell size of the code grid in degrees. Decoding a code
// returns the center of its cell, so the decode error is at most
// step/2, well inside the harness tolerance.
const step = 1e-4

// Region is a rectangular fake territory.
type Region struct {
	Territory                      string
	MinLat, MinLon, MaxLat, MaxLon float64
}

func (r Region) contains(ll geo.LatLon) bool {
	return ll.Lat >= r.MinLat && ll.Lat <= r.MaxLat &&
		ll.Lon >= r.MinLon && ll.Lon <= r.MaxLon
}

// Fake implements codec.Codec over a fixed region table. A coordinate
// gets one alias per region containing it, in table order, plus a
// trailing AAA (international) alias when International is set. With
// International off, a coordinate outside every region fails to encode,
// which is useful for exercising encode-failure paths.
type Fake struct {
	Regions       []Region
	International bool
}

var defaultRegions = []Region{
	{"NLD", 50.7, 3.3, 53.6, 7.3},
	{"BEL", 49.5, 2.5, 51.6, 6.4},
	{"LUX", 49.4, 5.7, 50.2, 6.6},
	{"DEU", 47.2, 5.8, 55.1, 15.1},
	{"FRA", 41.3, -5.2, 51.1, 9.6},
	{"USA", 24.5, -124.8, 49.4, -66.9},
	{"US-CA", 32.5, -124.5, 42.0, -114.1},
	{"US-IN", 37.7, -88.1, 41.8, -84.7},
	{"RU-IN", 42.5, 44.5, 43.6, 45.2},
	{"AUS", -43.7, 112.9, -10.0, 153.7},
}

// NewDefault returns a Fake with a small region table of real-world
// bounding boxes and international codes enabled.
func NewDefault() *Fake {
	return &Fake{Regions: defaultRegions, International: true}
}

// Encode implements codec.Codec.
func (f *Fake) Encode(ll geo.LatLon, territory string, precision int) ([]codec.Alias, error) {
	if !codec.ValidPrecision(precision) {
		return nil, fmt.Errorf("precision %d out of range [0..%d]", precision, codec.MaxPrecision)
	}
	ll = ll.Norm()
	code := cellCode(ll, precision)
	var aliases []codec.Alias
	for _, r := range f.Regions {
		if !r.contains(ll) {
			continue
		}
		if territory != "" && !codec.EquivalentTerritory(territory, r.Territory) {
			continue
		}
		aliases = append(aliases, codec.Alias{Territory: r.Territory, Code: code})
	}
	if f.International && (territory == "" || territory == "AAA") {
		aliases = append(aliases, codec.Alias{Territory: "AAA", Code: code})
	}
	return aliases, nil
}

// Decode implements codec.Codec.
func (f *Fake) Decode(code, territory string) (geo.LatLon, error) {
	if territory != "" && !f.knownTerritory(territory) {
		return geo.LatLon{}, &codec.DecodeError{Code: code, Territory: territory}
	}
	ll, ok := parseCellCode(code)
	if !ok {
		return geo.LatLon{}, &codec.DecodeError{Code: code, Territory: territory}
	}
	return ll, nil
}

func (f *Fake) knownTerritory(territory string) bool {
	if territory == "AAA" {
		return f.International
	}
	for _, r := range f.Regions {
		if codec.EquivalentTerritory(territory, r.Territory) {
			return true
		}
	}
	return false
}

// cellCode renders the cell indices of a coordinate as a base36 pair.
// Extra digits only mirror the shape of high-precision codes; they
// carry no additional resolution here.
func cellCode(ll geo.LatLon, precision int) string {
	latIdx := int64(math.Round((ll.Lat + 90) / step))
	lonIdx := int64(math.Round((ll.Lon + 180) / step))
	code := strings.ToUpper(strconv.FormatInt(latIdx, 36) + "." + strconv.FormatInt(lonIdx, 36))
	if precision > 0 {
		code += "-" + strings.Repeat("0", precision)
	}
	return code
}

func parseCellCode(code string) (geo.LatLon, bool) {
	body := code
	if i := strings.Index(code, "-"); i >= 0 {
		body = code[:i]
	}
	parts := strings.Split(body, ".")
	if len(parts) != 2 {
		return geo.LatLon{}, false
	}
	latIdx, err := strconv.ParseInt(strings.ToLower(parts[0]), 36, 64)
	if err != nil {
		return geo.LatLon{}, false
	}
	lonIdx, err := strconv.ParseInt(strings.ToLower(parts[1]), 36, 64)
	if err != nil {
		return geo.LatLon{}, false
	}
	return geo.LatLon{
		Lat: float64(latIdx)*step - 90,
		Lon: float64(lonIdx)*step - 180,
	}, true
}
