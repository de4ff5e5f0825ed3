package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/seqid"
	"github.com/dkephart/ngsQC/seqio"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"
	"log"
	"strings"
)

func usage() {
	fmt.Print(
		"fqlanesplit - Split a fastq file into one file per flowcell lane.\n" +
			"The lane number comes from each record's Illumina header. Records from\n" +
			"lane N are written to PREFIX.LNNN.fastq.gz.\n\n" +
			"Usage:\n" +
			"  fqlanesplit [options] -i merged.fq.gz\n\n" +
			"options:\n")
	flag.PrintDefaults()
}

func main() {
	var input *string = flag.String("i", "", "Input fastq file. May be gzipped.")
	var prefix *string = flag.String("o", "", "Output prefix. Defaults to the input name minus .fastq.gz.")
	flag.Parse()
	flag.Usage = usage

	if *input == "" {
		usage()
		log.Fatalln("ERROR: must input a fastq file with -i.")
	}
	if *prefix == "" {
		*prefix = strings.TrimSuffix(strings.TrimSuffix(strings.TrimSuffix(*input, ".gz"), ".fastq"), ".fq")
	}

	fqlanesplit(*input, *prefix)
}

func fqlanesplit(input, prefix string) {
	out := make(map[int]*fileio.EasyWriter)
	counts := make(map[int]int)

	var err error
	var id *seqid.Identifier
	var lane int
	for rec := range seqio.GoReadToChan(input) {
		id = seqid.Parse(rec.Name())
		lane, err = id.LaneNumber()
		if err != nil {
			log.Fatalf("ERROR: cannot determine the lane for %q: %v\n", rec.Name(), err)
		}
		w, ok := out[lane]
		if !ok {
			w = fileio.EasyCreate(fmt.Sprintf("%s.L%03d.fastq.gz", prefix, lane))
			out[lane] = w
		}
		seqio.WriteToFileHandle(w, rec)
		counts[lane]++
	}

	lanes := make([]int, 0, len(out))
	for lane = range out {
		lanes = append(lanes, lane)
	}
	slices.Sort(lanes)
	for _, l := range lanes {
		log.Printf("lane %d\t%d reads\n", l, counts[l])
		err = out[l].Close()
		exception.PanicOnErr(err)
	}
}
