package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/subset"
	"github.com/vertgenlab/gonomics/exception"
	"log"
)

func countUsage(countFlags *flag.FlagSet) {
	fmt.Print(
		"count - Count records in fastq or csfasta files\n\n" +
			"Usage:\n" +
			"  ngsqc count [options] reads.fq.gz [more.fq.gz ...]\n\n" +
			"Options:\n")
	countFlags.PrintDefaults()
}

func runCount(args []string) {
	var err error
	countFlags := flag.NewFlagSet("count", flag.ExitOnError)

	verify := countFlags.Bool("verify", false, "Exit with an error unless all files hold the same number of records.")

	err = countFlags.Parse(args)
	exception.PanicOnErr(err)
	countFlags.Usage = func() { countUsage(countFlags) }

	if countFlags.NArg() == 0 {
		countFlags.Usage()
		errExit("\nERROR: must have at least one input file")
	}

	if *verify {
		n, err := subset.VerifyCounts(countFlags.Args()...)
		if err != nil {
			log.Fatal("ERROR: ", err)
		}
		fmt.Println(n)
		return
	}

	for _, f := range countFlags.Args() {
		n, err := subset.CountRecords(f)
		if err != nil {
			log.Fatal("ERROR: ", err)
		}
		fmt.Printf("%s\t%d\n", f, n)
	}
}
