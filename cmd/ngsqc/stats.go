package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/stats"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"os"
)

func statsUsage(statsFlags *flag.FlagSet) {
	fmt.Print(
		"stats - Summarize read lengths, gc content, and base quality\n\n" +
			"Usage:\n" +
			"  ngsqc stats [options] reads.fq.gz [more.fq.gz ...]\n\n" +
			"Options:\n")
	statsFlags.PrintDefaults()
}

func runStats(args []string) {
	var err error
	statsFlags := flag.NewFlagSet("stats", flag.ExitOnError)

	plotFile := statsFlags.String("plot", "", "Write a read length histogram to this PNG file. Single input only.")
	quality := statsFlags.Bool("q", false, "Print a per-cycle mean quality plot to the terminal.")

	err = statsFlags.Parse(args)
	exception.PanicOnErr(err)
	statsFlags.Usage = func() { statsUsage(statsFlags) }

	if statsFlags.NArg() == 0 {
		statsFlags.Usage()
		errExit("\nERROR: must have at least one fastq input")
	}
	if *plotFile != "" && statsFlags.NArg() > 1 {
		statsFlags.Usage()
		errExit("\nERROR: -plot only works with a single input")
	}

	for _, f := range statsFlags.Args() {
		s := stats.Fastq(f)
		s.WriteSummary(os.Stdout)
		if *quality {
			fmt.Println(s.QualityPlot())
		}
		if *plotFile != "" {
			err = stats.SaveLengthHist(s, *plotFile)
			if err != nil {
				log.Fatal("ERROR: ", err)
			}
		}
		fmt.Println()
	}
}
