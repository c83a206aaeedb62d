package geo

import (
	"math"
	"testing"
)

func TestNorm(t *testing.T) {
	cases := []struct {
		in, exp LatLon
	}{
		{LatLon{0, 0}, LatLon{0, 0}},
		{LatLon{90, 180}, LatLon{90, 180}},
		{LatLon{-90, -180}, LatLon{-90, -180}},
		{LatLon{91, 0}, LatLon{-89, 0}},
		{LatLon{-91, 0}, LatLon{89, 0}},
		{LatLon{0, 181}, LatLon{0, -179}},
		{LatLon{0, -181}, LatLon{0, 179}},
		{LatLon{0, 540}, LatLon{0, 180}},
	}
	for _, c := range cases {
		got := c.in.Norm()
		if got != c.exp {
			t.Errorf("Norm(%v) = %v, want %v", c.in, got, c.exp)
		}
	}
}

func TestClamp(t *testing.T) {
	cases := []struct {
		in, exp LatLon
	}{
		{LatLon{91, 0}, LatLon{90, 0}},
		{LatLon{-91, 0}, LatLon{-90, 0}},
		{LatLon{0, 200}, LatLon{0, 180}},
		{LatLon{0, -200}, LatLon{0, -180}},
		{LatLon{45, 45}, LatLon{45, 45}},
	}
	for _, c := range cases {
		got := c.in.Clamp()
		if got != c.exp {
			t.Errorf("Clamp(%v) = %v, want %v", c.in, got, c.exp)
		}
	}
}

func TestFromUnitPoles(t *testing.T) {
	// u2 = 0 is the north pole, u2 = 1 the south pole.
	north := FromUnit(0, 0)
	if math.Abs(north.Lat-90) > 1e-9 {
		t.Errorf("FromUnit(0, 0).Lat = %v, want 90", north.Lat)
	}
	south := FromUnit(0, 1)
	if math.Abs(south.Lat+90) > 1e-9 {
		t.Errorf("FromUnit(0, 1).Lat = %v, want -90", south.Lat)
	}
	equator := FromUnit(0, 0.5)
	if math.Abs(equator.Lat) > 1e-9 {
		t.Errorf("FromUnit(0, 0.5).Lat = %v, want 0", equator.Lat)
	}
}

func TestFromUnitRange(t *testing.T) {
	for i := 0; i <= 20; i++ {
		for j := 0; j <= 20; j++ {
			u1 := float64(i) / 20
			u2 := float64(j) / 20
			ll := FromUnit(u1, u2)
			if ll.Lat < -90 || ll.Lat > 90 {
				t.Errorf("FromUnit(%v, %v).Lat = %v out of range", u1, u2, ll.Lat)
			}
			if ll.Lon < -180 || ll.Lon > 180 {
				t.Errorf("FromUnit(%v, %v).Lon = %v out of range", u1, u2, ll.Lon)
			}
			if math.IsNaN(ll.Lat) || math.IsNaN(ll.Lon) {
				t.Errorf("FromUnit(%v, %v) = %v is NaN", u1, u2, ll)
			}
		}
	}
}

func TestXYZ(t *testing.T) {
	cases := []struct {
		in      LatLon
		x, y, z float64
	}{
		{LatLon{0, 0}, 1, 0, 0},
		{LatLon{0, 90}, 0, 1, 0},
		{LatLon{90, 0}, 0, 0, 1},
		{LatLon{-90, 0}, 0, 0, -1},
	}
	for _, c := range cases {
		p := c.in.XYZ()
		if math.Abs(p.X-c.x) > 1e-12 || math.Abs(p.Y-c.y) > 1e-12 || math.Abs(p.Z-c.z) > 1e-12 {
			t.Errorf("XYZ(%v) = %v, want (%v, %v, %v)", c.in, p, c.x, c.y, c.z)
		}
	}
}

func TestXYZUnitLength(t *testing.T) {
	for lat := -90.0; lat <= 90; lat += 30 {
		for lon := -180.0; lon <= 180; lon += 45 {
			p := LatLon{lat, lon}.XYZ()
			if math.Abs(p.Norm()-1) > 1e-12 {
				t.Errorf("XYZ(%v %v) norm = %v, want 1", lat, lon, p.Norm())
			}
		}
	}
}

func TestDeltaLonWrap(t *testing.T) {
	d := DeltaLon(179.9995, -179.9995)
	if math.Abs(d-0.001) > 1e-9 {
		t.Errorf("DeltaLon(179.9995, -179.9995) = %v, want 0.001", d)
	}
	d = DeltaLon(10, 11)
	if math.Abs(d-1) > 1e-9 {
		t.Errorf("DeltaLon(10, 11) = %v, want 1", d)
	}
}

func TestParse(t *testing.T) {
	ll, err := Parse("52.376514", "4.908543")
	if err != nil || ll.Lat != 52.376514 || ll.Lon != 4.908543 {
		t.Errorf("Parse = %v, %v", ll, err)
	}
	_, err = Parse("abc", "4.9")
	if err == nil {
		t.Error("Parse accepted non-numeric latitude")
	}
	_, err = Parse("52.3", "xyz")
	if err == nil {
		t.Error("Parse accepted non-numeric longitude")
	}
}
