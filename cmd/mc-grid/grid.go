package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"mcops/pkg/cmd"
	"mcops/pkg/codec"
	"mcops/pkg/codec/codectest"
	"mcops/pkg/pipeline"
	"mcops/pkg/sample"
	"mcops/pkg/verify"
)

func main() {
	var precision int
	var xyz, doVerify, selfCheck bool

	flag.IntVar(&precision, "p", 0, "extra digits (0-8) for high-precision codes")
	flag.BoolVar(&xyz, "xyz", false, "include unit-sphere x y z in each record")
	flag.BoolVar(&doVerify, "verify", false, "round-trip check every alias, warning on mismatch")
	flag.BoolVar(&selfCheck, "self-check", false, "round-trip check every alias, fatal on mismatch")
	flag.Usage = cmd.CorpusUsage("<nrOfPoints>")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "error: incorrect number of arguments\n")
		cmd.DieWithUsage()
	}
	n, err := strconv.Atoi(flag.Arg(0))
	if err != nil || n < 1 {
		fmt.Fprintf(os.Stderr, "error: total number of points to generate must be >= 1\n")
		cmd.DieWithUsage()
	}
	if !codec.ValidPrecision(precision) {
		fmt.Fprintf(os.Stderr, "error: parameter p must be in [0..%d]\n", codec.MaxPrecision)
		cmd.DieWithUsage()
	}

	mc := codectest.NewDefault()
	r := &pipeline.Runner{
		Codec:            mc,
		Precision:        precision,
		XYZ:              xyz,
		ReportEncodeFail: true,
		Out:              os.Stdout,
		Diag:             os.Stderr,
	}
	if doVerify || selfCheck {
		r.Verifier = &verify.Verifier{C: mc, Fatal: selfCheck, Diag: os.Stderr}
	}
	if _, err := r.Run(sample.NewGrid(n), n); err != nil {
		cmd.Die(cmd.ExitInternalError, "%s", err)
	}
}
