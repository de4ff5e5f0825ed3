package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/seqid"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"os"
)

func paircheckUsage(paircheckFlags *flag.FlagSet) {
	fmt.Print(
		"paircheck - Verify that two fastq files form an R1/R2 pair\n\n" +
			"Reads both files in lockstep and checks that each header in the\n" +
			"second file names the mate of the matching header in the first.\n" +
			"Exits zero when the files pair and nonzero when they do not.\n\n" +
			"Usage:\n" +
			"  ngsqc paircheck r1.fq.gz r2.fq.gz\n\n" +
			"Options:\n")
	paircheckFlags.PrintDefaults()
}

func runPaircheck(args []string) {
	var err error
	paircheckFlags := flag.NewFlagSet("paircheck", flag.ExitOnError)

	err = paircheckFlags.Parse(args)
	exception.PanicOnErr(err)
	paircheckFlags.Usage = func() { paircheckUsage(paircheckFlags) }

	if paircheckFlags.NArg() != 2 {
		paircheckFlags.Usage()
		errExit("\nERROR: must have exactly two fastq inputs")
	}

	pair, err := seqid.FastqsArePair(paircheckFlags.Arg(0), paircheckFlags.Arg(1))
	if err != nil {
		log.Fatal("ERROR: ", err)
	}
	if !pair {
		fmt.Println("FAILED")
		os.Exit(1)
	}
	fmt.Println("OK")
}
