// Package catalog loads the territory bounding-box catalog used to
// derive boundary test cases. The catalog is data, not code: a yaml
// list of boxes, read from a local file or an s3 object.
package catalog

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v2"
)

// Box is one territory bounding box in degrees.
type Box struct {
	Territory string  `yaml:"territory"`
	MinLat    float64 `yaml:"min-lat"`
	MinLon    float64 `yaml:"min-lon"`
	MaxLat    float64 `yaml:"max-lat"`
	MaxLon    float64 `yaml:"max-lon"`
}

type catalogFile struct {
	Boundaries []Box `yaml:"boundaries"`
}

// Catalog is an ordered list of boundary records.
type Catalog struct {
	boxes []Box
}

// New builds a Catalog, validating every record.
func New(boxes []Box) (*Catalog, error) {
	for i, b := range boxes {
		if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
			return nil, fmt.Errorf("record %d (%s): min exceeds max", i, b.Territory)
		}
		if b.MinLat < -90 || b.MaxLat > 90 {
			return nil, fmt.Errorf("record %d (%s): latitude out of range [-90..90]", i, b.Territory)
		}
		if b.MinLon < -180 || b.MaxLon > 180 {
			return nil, fmt.Errorf("record %d (%s): longitude out of range [-180..180]", i, b.Territory)
		}
	}
	return &Catalog{boxes: boxes}, nil
}

// Count returns the number of boundary records.
func (c *Catalog) Count() int {
	return len(c.boxes)
}

// BoundingBox returns record i.
func (c *Catalog) BoundingBox(i int) Box {
	return c.boxes[i]
}

// Read parses a yaml catalog.
func Read(r io.Reader) (*Catalog, error) {
	dec := yaml.NewDecoder(r)
	var cf catalogFile
	if err := dec.Decode(&cf); err != nil {
		return nil, fmt.Errorf("invalid catalog yaml: %w", err)
	}
	if len(cf.Boundaries) == 0 {
		return nil, fmt.Errorf("catalog has no boundary records")
	}
	return New(cf.Boundaries)
}

// Load reads a catalog from a local yaml file.
func Load(path string) (*Catalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Read(f)
}
