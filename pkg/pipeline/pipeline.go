// Package pipeline drives sample coordinates through the codec and
// writes the resulting record blocks. Records go to Out, progress and
// warnings to Diag; the two streams are never interleaved, so Out can
// be redirected to a corpus file while Diag shows progress.
package pipeline

import (
	"fmt"
	"io"

	"mcops/pkg/codec"
	"mcops/pkg/geo"
	"mcops/pkg/sample"
	"mcops/pkg/verify"
)

// progressEvery is the number of points processed between progress
// lines on Diag.
const progressEvery = 125

// Stats accumulates per-run counters. A Stats value is owned by a
// single Run call; nothing outlives the run.
type Stats struct {
	Points     int
	Aliases    int
	MaxAliases int
	AtMax      geo.LatLon
}

// Add records one processed point and its alias count. A point that
// failed to encode is added with n = 0: it counts toward Points and
// contributes nothing to Aliases. The first point to reach a given
// maximum stays the recorded extreme.
func (s *Stats) Add(ll geo.LatLon, n int) {
	s.Points++
	s.Aliases += n
	if n > s.MaxAliases {
		s.MaxAliases = n
		s.AtMax = ll
	}
}

// AvgAliases returns the mean number of aliases per processed point.
func (s *Stats) AvgAliases() float64 {
	if s.Points == 0 {
		return 0
	}
	return float64(s.Aliases) / float64(s.Points)
}

// WriteSummary writes the end-of-run statistics block.
func (s *Stats) WriteSummary(w io.Writer) {
	fmt.Fprintf(w, "\nStatistics:\n")
	fmt.Fprintf(w, "Total number of 3D points generated     = %d\n", s.Points)
	fmt.Fprintf(w, "Total number of mapcodes generated      = %d\n", s.Aliases)
	fmt.Fprintf(w, "Average number of mapcodes per 3D point = %.12g\n", s.AvgAliases())
	fmt.Fprintf(w, "Largest number of results for 1 mapcode = %d at (%.12g, %.12g)\n",
		s.MaxAliases, s.AtMax.Lat, s.AtMax.Lon)
}

// Runner processes every coordinate a Generator yields: normalize,
// encode, optionally verify, emit the record block, update statistics.
// Processing is strictly sequential; one point flows through the whole
// pipeline before the next is generated.
type Runner struct {
	Codec     codec.Codec
	Verifier  *verify.Verifier // optional round-trip checks per alias
	Precision int
	XYZ       bool

	// ReportEncodeFail writes a warning to Diag when a coordinate
	// yields zero aliases. The 0-alias record is emitted either way
	// and the run continues.
	ReportEncodeFail bool

	Out  io.Writer
	Diag io.Writer
}

// Run drains g. total is the expected number of points, used for the
// progress percentage. It returns the accumulated statistics and, in
// self-check mode, the first fatal verification mismatch.
func (r *Runner) Run(g sample.Generator, total int) (*Stats, error) {
	stats := &Stats{}
	for ll := g.Next(); ll != nil; ll = g.Next() {
		if err := r.process(*ll, stats); err != nil {
			return stats, err
		}
		if i := stats.Points - 1; i%progressEvery == 0 {
			r.progress(i, total, stats)
		}
	}
	stats.WriteSummary(r.Diag)
	return stats, nil
}

func (r *Runner) process(ll geo.LatLon, stats *Stats) error {
	ll = ll.Norm()
	aliases, err := r.Codec.Encode(ll, "", r.Precision)
	if err != nil {
		return err
	}
	if len(aliases) == 0 && r.ReportEncodeFail {
		fmt.Fprintf(r.Diag, "error: cannot encode lat=%.12g, lon=%.12g\n", ll.Lat, ll.Lon)
	}

	if r.XYZ {
		p := ll.XYZ()
		fmt.Fprintf(r.Out, "%d %.12g %.12g %.12g %.12g %.12g\n",
			len(aliases), ll.Lat, ll.Lon, p.X, p.Y, p.Z)
	} else {
		fmt.Fprintf(r.Out, "%d %.12g %.12g\n", len(aliases), ll.Lat, ll.Lon)
	}
	for _, a := range aliases {
		fmt.Fprintf(r.Out, "%s %s\n", a.Territory, a.Code)
		if r.Verifier != nil {
			if err := r.Verifier.CheckEncode(a, ll, r.Precision); err != nil {
				return err
			}
			if err := r.Verifier.CheckDecode(a, ll); err != nil {
				return err
			}
		}
	}
	fmt.Fprintln(r.Out)

	stats.Add(ll, len(aliases))
	return nil
}

func (r *Runner) progress(i, total int, stats *Stats) {
	pct := int(float64(i)/float64(total)*100 + 0.5)
	fmt.Fprintf(r.Diag, "[%d%%] Processed %d of %d points (generated %d mapcodes)...\r",
		pct, i, total, stats.Aliases)
}
