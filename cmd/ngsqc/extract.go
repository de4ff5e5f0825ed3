package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/subset"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"time"
)

func extractUsage(extractFlags *flag.FlagSet) {
	fmt.Print(
		"extract - Pull a deterministic subset of reads from fastq files\n\n" +
			"Each subset is written next to its input as file.subset.fq. When\n" +
			"multiple inputs are given the same record positions are chosen\n" +
			"from each, so paired files stay in sync.\n\n" +
			"Usage:\n" +
			"  ngsqc extract [options] r1.fq.gz [r2.fq.gz ...]\n\n" +
			"Options:\n")
	extractFlags.PrintDefaults()
}

func runExtract(args []string) {
	var err error
	extractFlags := flag.NewFlagSet("extract", flag.ExitOnError)

	n := extractFlags.String("n", "10%", "Number of reads to keep, or a percentage of the total.")
	seed := extractFlags.Int64("seed", -1, "Seed for read sampling. -1 seeds from the clock.")
	pattern := extractFlags.String("pattern", "", "Keep reads matching this regular expression instead of sampling.")

	err = extractFlags.Parse(args)
	exception.PanicOnErr(err)
	extractFlags.Usage = func() { extractUsage(extractFlags) }

	if extractFlags.NArg() == 0 {
		extractFlags.Usage()
		errExit("\nERROR: must have at least one fastq input")
	}

	if *pattern != "" {
		matched, err := subset.ExtractPattern(extractFlags.Args(), *pattern)
		if err != nil {
			log.Fatal("ERROR: ", err)
		}
		for i, f := range extractFlags.Args() {
			log.Printf("%s: kept %d reads matching %q\n", subset.OutputName(f), matched[i], *pattern)
		}
		return
	}

	if *seed == -1 {
		*seed = time.Now().UnixNano()
	}
	kept, total, err := subset.Extract(extractFlags.Args(), *n, *seed)
	if err != nil {
		log.Fatal("ERROR: ", err)
	}
	log.Printf("kept %d of %d reads (seed %d)\n", kept, total, *seed)
}
