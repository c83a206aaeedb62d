package main

import (
	"flag"
	"fmt"
	"os"

	"mcops/pkg/cmd"
	"mcops/pkg/codec"
	"mcops/pkg/codec/codectest"
	"mcops/pkg/geo"
	"mcops/pkg/verify"
)

func main() {
	var precision int
	var territory string
	var selfCheck bool

	flag.IntVar(&precision, "p", 0, "extra digits (0-8) for high-precision codes")
	flag.StringVar(&territory, "territory", "", "only encode if the coordinate is in this territory")
	flag.BoolVar(&selfCheck, "self-check", false, "decode every result and fail on a mismatch")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <lat:-90..90> <lon:-180..180>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 2 {
		fmt.Fprintf(os.Stderr, "error: incorrect number of arguments\n")
		cmd.DieWithUsage()
	}
	if !codec.ValidPrecision(precision) {
		fmt.Fprintf(os.Stderr, "error: parameter p must be in [0..%d]\n", codec.MaxPrecision)
		cmd.DieWithUsage()
	}
	ll, err := geo.Parse(flag.Arg(0), flag.Arg(1))
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: latitude and longitude must be numeric: %s\n", err)
		cmd.DieWithUsage()
	}
	ll = ll.Norm()

	mc := codectest.NewDefault()
	aliases, err := mc.Encode(ll, territory, precision)
	if err != nil || len(aliases) == 0 {
		hint := territory
		if hint == "" {
			hint = "AAA"
		}
		cmd.Die(cmd.ExitInputError, "cannot encode lat=%.12g, lon=%.12g (default territory=%s)",
			ll.Lat, ll.Lon, hint)
	}

	v := &verify.Verifier{C: mc, Fatal: true, Diag: os.Stderr}
	for _, a := range aliases {
		fmt.Printf("%s %s\n", a.Territory, a.Code)
		if selfCheck {
			if err := v.CheckDecode(a, ll); err != nil {
				cmd.Die(cmd.ExitInternalError, "%s", err)
			}
		}
	}
}
