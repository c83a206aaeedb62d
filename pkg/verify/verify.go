// Package verify cross-checks codec output against the coordinates it
// came from. Checks are point-local and stateless: no verification of
// one sample depends on another.
package verify

import (
	"fmt"
	"io"

	"mcops/pkg/codec"
	"mcops/pkg/geo"
)

// Verifier performs round-trip checks against a codec.
//
// With Fatal set (self-check mode) a failed check is returned as an
// error; otherwise it is written to Diag as a warning and a nil error
// is returned so processing continues. Mismatches are not proof of a
// codec defect: a point inside several territories can produce
// legitimately ambiguous aliases.
type Verifier struct {
	C     codec.Codec
	Fatal bool
	Diag  io.Writer
}

// Mismatch is a failed round-trip check.
type Mismatch struct {
	msg string
}

func (m *Mismatch) Error() string {
	return m.msg
}

// CheckDecode verifies that decoding an alias lands within geo.Delta of
// the (clamped) coordinate it was encoded from, on both axes, with
// longitude measured the short way around.
func (v *Verifier) CheckDecode(a codec.Alias, orig geo.LatLon) error {
	limited := orig.Clamp()
	found, err := v.C.Decode(a.Code, a.Territory)
	if err != nil {
		return v.report(&Mismatch{fmt.Sprintf(
			"decoding mapcode to lat/lon failure; cannot decode '%s %s'",
			a.Territory, a.Code)})
	}
	deltaLat := geo.DeltaLat(found.Lat, limited.Lat)
	deltaLon := geo.DeltaLon(found.Lon, limited.Lon)
	if deltaLat > geo.Delta || deltaLon > geo.Delta {
		return v.report(&Mismatch{fmt.Sprintf(
			"decoding mapcode to lat/lon failure; "+
				"lat=%.12g, lon=%.12g produces mapcode %s %s, "+
				"which decodes to lat=%.12g (delta=%.12g), lon=%.12g (delta=%.12g)",
			orig.Lat, orig.Lon, a.Territory, a.Code,
			found.Lat, deltaLat, found.Lon, deltaLon)})
	}
	return nil
}

// CheckEncode verifies that re-encoding the original coordinate with
// the alias territory as hint reproduces the alias: some returned entry
// must carry the same code and an equivalent territory, where a
// qualified territory matches its minimal form.
func (v *Verifier) CheckEncode(a codec.Alias, orig geo.LatLon, precision int) error {
	limited := orig.Clamp()
	aliases, err := v.C.Encode(limited, a.Territory, precision)
	if err != nil || len(aliases) == 0 {
		return v.report(&Mismatch{fmt.Sprintf(
			"encoding lat/lon to mapcode failure; "+
				"cannot encode lat=%.12g, lon=%.12g (default territory=%s)",
			orig.Lat, orig.Lon, a.Territory)})
	}
	for _, found := range aliases {
		if found.Code == a.Code && codec.EquivalentTerritory(a.Territory, found.Territory) {
			return nil
		}
	}
	return v.report(&Mismatch{fmt.Sprintf(
		"encoding lat/lon to mapcode failure; "+
			"mapcode '%s %s' decodes to lat=%.12g(%.12g), lon=%.12g(%.12g), "+
			"which does not encode back to '%s %s'",
		a.Territory, a.Code, orig.Lat, limited.Lat, orig.Lon, limited.Lon,
		a.Territory, a.Code)})
}

func (v *Verifier) report(m *Mismatch) error {
	if v.Fatal {
		return m
	}
	if v.Diag != nil {
		fmt.Fprintf(v.Diag, "error: %s\n", m.msg)
	}
	return nil
}
