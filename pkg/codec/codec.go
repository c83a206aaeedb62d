// Package codec fixes the contract between the harness and a mapcode
// codec. The encode/decode algorithm itself is an external collaborator;
// implementations wrap whatever library or service provides it.
package codec

import (
	"fmt"
	"strings"

	"mcops/pkg/geo"
)

// MaxPrecision is the largest number of extra digits that can be
// requested for high-precision codes.
const MaxPrecision = 8

// Alias is one (territory, code) pair for a coordinate. A coordinate
// may have several aliases; the codec decides how many and their order.
type Alias struct {
	Territory string
	Code      string
}

// String returns the alias in "<territory> <code>" record form.
func (a Alias) String() string {
	return a.Territory + " " + a.Code
}

// Codec encodes coordinates to mapcode-style aliases and decodes codes
// back to coordinates.
type Codec interface {
	// Encode returns the aliases for a coordinate, in codec order. A
	// non-empty territory restricts encoding to that territory. An
	// empty result with a nil error means the coordinate cannot be
	// encoded under the given restriction; it is not an exception.
	Encode(ll geo.LatLon, territory string, precision int) ([]Alias, error)

	// Decode resolves a code to a coordinate. The territory provides
	// context for shorthand local codes; it may be empty.
	Decode(code, territory string) (geo.LatLon, error)
}

// DecodeError reports a code the codec could not resolve, or a
// territory context it does not know.
type DecodeError struct {
	Code      string
	Territory string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("cannot decode '%s %s'", e.Territory, e.Code)
}

// ValidPrecision reports whether p is a legal extra-digits count.
func ValidPrecision(p int) bool {
	return p >= 0 && p <= MaxPrecision
}

// PrecisionFromCode returns the number of extra digits carried in a
// high-precision code suffix, 0 when the code has none.
func PrecisionFromCode(code string) int {
	if i := strings.Index(code, "-"); i >= 0 {
		return len(code) - i - 1
	}
	return 0
}

// EquivalentTerritory reports whether two territory identifiers name
// the same territory. A qualified PARENT-CHILD form is equivalent to
// its minimal CHILD form; only the first hyphen-separated parent is
// stripped, so deeper hierarchies only match literally or on their
// first suffix.
func EquivalentTerritory(a, b string) bool {
	if a == b {
		return true
	}
	return minimal(a) == b || minimal(b) == a
}

func minimal(territory string) string {
	if i := strings.Index(territory, "-"); i >= 0 && i+1 < len(territory) {
		return territory[i+1:]
	}
	return territory
}
