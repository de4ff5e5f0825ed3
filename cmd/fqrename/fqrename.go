package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/seqid"
	"github.com/dkephart/ngsQC/seqio"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"log"
)

func usage() {
	fmt.Print(
		"fqrename - Rewrite the instrument name in fastq read headers.\n" +
			"Headers in either Illumina format are reparsed and re-emitted with the\n" +
			"new instrument name; all other fields are untouched. Headers in an\n" +
			"unrecognized format pass through unchanged.\n\n" +
			"Usage:\n" +
			"  fqrename [options] -i reads.fq.gz -name M00879 -o renamed.fq.gz\n\n" +
			"options:\n")
	flag.PrintDefaults()
}

func main() {
	var input *string = flag.String("i", "", "Input fastq file. May be gzipped.")
	var output *string = flag.String("o", "stdout", "Output fastq file.")
	var name *string = flag.String("name", "", "New instrument name for every read header.")
	flag.Parse()
	flag.Usage = usage

	if *input == "" {
		usage()
		log.Fatalln("ERROR: must input a fastq file with -i.")
	}
	if *name == "" {
		usage()
		log.Fatalln("ERROR: must input a new instrument name with -name.")
	}

	fqrename(*input, *output, *name)
}

func fqrename(input, output, name string) {
	out := fileio.EasyCreate(output)

	var renamed, passed int
	var id *seqid.Identifier
	for rec := range seqio.GoReadToChan(input) {
		id = seqid.Parse(rec.Name())
		if id.Format == seqid.None {
			passed++
		} else {
			id.Instrument = name
			rec[0] = id.String()
			renamed++
		}
		seqio.WriteToFileHandle(out, rec)
	}

	err := out.Close()
	exception.PanicOnErr(err)
	log.Printf("renamed %d headers (%d passed through unchanged)\n", renamed, passed)
}
