package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/stats"
	"log"
	"os"
)

func usage() {
	fmt.Print(
		"fqstats - Summarize read lengths, gc content, and base quality.\n\n" +
			"Usage:\n" +
			"  fqstats [options] reads.fq.gz [more.fq.gz ...]\n\n" +
			"options:\n")
	flag.PrintDefaults()
}

func main() {
	var plotFile *string = flag.String("plot", "", "Write a read length histogram to this PNG file. Single input only.")
	var quality *bool = flag.Bool("q", false, "Print a per-cycle mean quality plot to the terminal.")
	flag.Parse()
	flag.Usage = usage

	if flag.NArg() == 0 {
		usage()
		log.Fatalln("ERROR: must input at least one fastq file.")
	}
	if *plotFile != "" && flag.NArg() > 1 {
		usage()
		log.Fatalln("ERROR: -plot only works with a single input.")
	}

	fqstats(flag.Args(), *plotFile, *quality)
}

func fqstats(files []string, plotFile string, quality bool) {
	var err error
	for _, f := range files {
		s := stats.Fastq(f)
		s.WriteSummary(os.Stdout)
		if quality {
			fmt.Println(s.QualityPlot())
		}
		if plotFile != "" {
			err = stats.SaveLengthHist(s, plotFile)
			if err != nil {
				log.Fatal("ERROR: ", err)
			}
		}
		fmt.Println()
	}
}
