package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/strand"
	"log"
)

func usage() {
	fmt.Print(
		"fqstrand - Estimate the strandedness of a paired fastq library.\n" +
			"A subsample of read pairs is aligned against an indexed genome with an\n" +
			"external aligner in gene counting mode, and the percentage of assigned\n" +
			"reads supporting each strand orientation is reported. Values near 100/0\n" +
			"or 0/100 indicate a stranded protocol; near 50/50 an unstranded one.\n\n" +
			"Usage:\n" +
			"  fqstrand [options] -1 r1.fq.gz -2 r2.fq.gz -g /path/to/genomeDir\n\n" +
			"options:\n")
	flag.PrintDefaults()
}

func main() {
	var r1 *string = flag.String("1", "", "FASTQ file containing R1 reads. May be gzipped.")
	var r2 *string = flag.String("2", "", "FASTQ file containing R2 reads. May be gzipped.")
	var genomeDir *string = flag.String("g", "", "Aligner genome index directory.")
	var n *int = flag.Int("n", 10000, "Number of read pairs to subsample for alignment.")
	var seed *int64 = flag.Int64("seed", 1, "Seed for read subsampling.")
	var aligner *string = flag.String("aligner", "STAR", "Name or path of the aligner executable.")
	var threads *int = flag.Int("t", 1, "Number of aligner threads.")
	flag.Parse()
	flag.Usage = usage

	if *r1 == "" || *r2 == "" {
		usage()
		log.Fatalln("ERROR: must have inputs for -1 and -2.")
	}
	if *genomeDir == "" {
		usage()
		log.Fatalln("ERROR: must input a genome index directory with -g.")
	}

	fqstrand(*r1, *r2, *genomeDir, *aligner, *n, *seed, *threads)
}

func fqstrand(r1, r2, genomeDir, aligner string, n int, seed int64, threads int) {
	forward, reverse, err := strand.Estimate(r1, r2, genomeDir, aligner, n, seed, threads)
	if err != nil {
		log.Fatal("ERROR: ", err)
	}
	fmt.Printf("forward\t%.2f%%\n", forward)
	fmt.Printf("reverse\t%.2f%%\n", reverse)
}
