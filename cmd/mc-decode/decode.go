package main

import (
	"flag"
	"fmt"
	"os"

	"mcops/pkg/cmd"
	"mcops/pkg/codec"
	"mcops/pkg/codec/codectest"
	"mcops/pkg/verify"
)

func main() {
	var selfCheck bool

	flag.BoolVar(&selfCheck, "self-check", false, "re-encode every result and fail on a mismatch")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [flags] <default-territory> <mapcode> [<mapcode> ...]\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "The default territory resolves shorthand local codes.\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() < 2 {
		fmt.Fprintf(os.Stderr, "error: incorrect number of arguments\n")
		cmd.DieWithUsage()
	}
	territory := flag.Arg(0)

	mc := codectest.NewDefault()
	v := &verify.Verifier{C: mc, Fatal: true, Diag: os.Stderr}
	for _, code := range flag.Args()[1:] {
		ll, err := mc.Decode(code, territory)
		if err != nil {
			cmd.Die(cmd.ExitInputError, "cannot decode '%s %s'", territory, code)
		}
		fmt.Printf("%.12g %.12g\n", ll.Lat, ll.Lon)

		if selfCheck {
			// the precision to re-encode with follows from the code itself
			p := codec.PrecisionFromCode(code)
			alias := codec.Alias{Territory: territory, Code: code}
			if err := v.CheckEncode(alias, ll, p); err != nil {
				cmd.Die(cmd.ExitInternalError, "%s", err)
			}
		}
	}
}
