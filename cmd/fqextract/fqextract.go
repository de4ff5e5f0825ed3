package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/subset"
	"log"
	"time"
)

func usage() {
	fmt.Print(
		"fqextract - Pull a deterministic subset of reads from fastq files.\n" +
			"Each subset is written next to its input as file.subset.fq. When multiple\n" +
			"inputs are given the same record positions are chosen from each, so paired\n" +
			"files stay in sync.\n\n" +
			"Usage:\n" +
			"  fqextract [options] r1.fq.gz [r2.fq.gz ...]\n\n" +
			"options:\n")
	flag.PrintDefaults()
}

func main() {
	var n *string = flag.String("n", "10%", "Number of reads to keep, or a percentage of the total.")
	var seed *int64 = flag.Int64("seed", -1, "Seed for read sampling. -1 seeds from the clock.")
	var pattern *string = flag.String("pattern", "", "Keep reads matching this regular expression instead of sampling.")
	flag.Parse()
	flag.Usage = usage

	if flag.NArg() == 0 {
		usage()
		log.Fatalln("ERROR: must input at least one fastq file.")
	}

	if *seed == -1 {
		*seed = time.Now().UnixNano()
	}

	fqextract(flag.Args(), *n, *seed, *pattern)
}

func fqextract(files []string, request string, seed int64, pattern string) {
	if pattern != "" {
		matched, err := subset.ExtractPattern(files, pattern)
		if err != nil {
			log.Fatal("ERROR: ", err)
		}
		for i := range files {
			log.Printf("%s: kept %d reads matching %q\n", subset.OutputName(files[i]), matched[i], pattern)
		}
		return
	}

	kept, total, err := subset.Extract(files, request, seed)
	if err != nil {
		log.Fatal("ERROR: ", err)
	}
	log.Printf("kept %d of %d reads (seed %d)\n", kept, total, seed)
}
