package main

import (
	"flag"
	"fmt"
	"os"

	"mcops/pkg/catalog"
	"mcops/pkg/cmd"
	"mcops/pkg/codec"
	"mcops/pkg/codec/codectest"
	"mcops/pkg/pipeline"
	"mcops/pkg/sample"
	"mcops/pkg/verify"
)

func main() {
	var precision int
	var catalogURI, region string
	var xyz, doVerify, selfCheck bool

	flag.StringVar(&catalogURI, "catalog", "", "boundary catalog, a yaml path or s3://bucket/key")
	flag.StringVar(&region, "region", "us-east-1", "aws region for s3 catalogs")
	flag.IntVar(&precision, "p", 0, "extra digits (0-8) for high-precision codes")
	flag.BoolVar(&xyz, "xyz", false, "include unit-sphere x y z in each record")
	flag.BoolVar(&doVerify, "verify", false, "round-trip check every alias, warning on mismatch")
	flag.BoolVar(&selfCheck, "self-check", false, "round-trip check every alias, fatal on mismatch")
	flag.Usage = cmd.CorpusUsage("-catalog <uri>")
	flag.Parse()

	if catalogURI == "" || flag.NArg() != 0 {
		fmt.Fprintf(os.Stderr, "error: incorrect number of arguments\n")
		cmd.DieWithUsage()
	}
	if !codec.ValidPrecision(precision) {
		fmt.Fprintf(os.Stderr, "error: parameter p must be in [0..%d]\n", codec.MaxPrecision)
		cmd.DieWithUsage()
	}
	cat, err := catalog.LoadURI(catalogURI, region)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: cannot load catalog %s: %s\n", catalogURI, err)
		cmd.DieWithUsage()
	}

	mc := codectest.NewDefault()
	r := &pipeline.Runner{
		Codec:     mc,
		Precision: precision,
		XYZ:       xyz,
		Out:       os.Stdout,
		Diag:      os.Stderr,
	}
	if doVerify || selfCheck {
		r.Verifier = &verify.Verifier{C: mc, Fatal: selfCheck, Diag: os.Stderr}
	}
	total := cat.Count() * sample.PointsPerRecord
	if _, err := r.Run(sample.NewBoundary(cat), total); err != nil {
		cmd.Die(cmd.ExitInternalError, "%s", err)
	}
}
