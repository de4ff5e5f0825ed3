package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/seqid"
	"log"
	"os"
)

func usage() {
	fmt.Print(
		"fqpair - Verify that two fastq files form an R1/R2 pair.\n" +
			"Reads both files in lockstep and checks that each header in the second\n" +
			"file names the mate of the matching header in the first. Exits zero when\n" +
			"the files pair and nonzero when they do not.\n\n" +
			"Usage:\n" +
			"  fqpair r1.fq.gz r2.fq.gz\n\n" +
			"options:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Parse()
	flag.Usage = usage

	if flag.NArg() != 2 {
		usage()
		log.Fatalln("ERROR: must input exactly two fastq files.")
	}

	fqpair(flag.Arg(0), flag.Arg(1))
}

func fqpair(file1, file2 string) {
	pair, err := seqid.FastqsArePair(file1, file2)
	if err != nil {
		log.Fatal("ERROR: ", err)
	}
	if !pair {
		fmt.Println("FAILED")
		os.Exit(1)
	}
	fmt.Println("OK")
}
