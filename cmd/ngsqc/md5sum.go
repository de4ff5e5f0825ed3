package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/checksum"
	"github.com/dkephart/ngsQC/verify"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"os"
	"path/filepath"
)

func md5sumUsage(md5sumFlags *flag.FlagSet) {
	fmt.Print(
		"md5sum - Write md5 checksums for files or a directory tree\n\n" +
			"With a single directory input, every file underneath is summed\n" +
			"and paths are written relative to the directory, so the manifest\n" +
			"can be checked later with ngsqc md5check -c. With file inputs,\n" +
			"paths are written as given.\n\n" +
			"Usage:\n" +
			"  ngsqc md5sum [options] dir > checksums.md5\n" +
			"  ngsqc md5sum [options] reads_R1.fq.gz reads_R2.fq.gz\n\n" +
			"Options:\n")
	md5sumFlags.PrintDefaults()
}

func runMd5sum(args []string) {
	var err error
	md5sumFlags := flag.NewFlagSet("md5sum", flag.ExitOnError)

	outfile := md5sumFlags.String("o", "stdout", "Output manifest file.")
	links := md5sumFlags.String("links", "follow", "Symlink handling when walking a directory: follow or ignore.")

	err = md5sumFlags.Parse(args)
	exception.PanicOnErr(err)
	md5sumFlags.Usage = func() { md5sumUsage(md5sumFlags) }

	if md5sumFlags.NArg() == 0 {
		md5sumFlags.Usage()
		errExit("\nERROR: must have a directory or at least one file input")
	}

	var outputFile *os.File
	switch *outfile {
	case "stdout":
		outputFile = os.Stdout
	case "stderr":
		outputFile = os.Stderr
	default:
		outputFile, err = os.Create(*outfile)
		exception.PanicOnErr(err)
		defer outputFile.Close()
	}

	var entries []checksum.ManifestEntry
	info, err := os.Stat(md5sumFlags.Arg(0))
	if err != nil {
		log.Fatal("ERROR: ", err)
	}

	if md5sumFlags.NArg() == 1 && info.IsDir() {
		policy, err := verify.ParseLinkPolicy(*links)
		if err != nil {
			log.Fatal("ERROR: ", err)
		}
		dir := md5sumFlags.Arg(0)
		files, err := verify.Walk(dir, policy)
		if err != nil {
			log.Fatal("ERROR: ", err)
		}
		for _, f := range files {
			sum, err := checksum.File(filepath.Join(dir, f))
			if err != nil {
				log.Fatal("ERROR: ", err)
			}
			entries = append(entries, checksum.ManifestEntry{Sum: sum, Path: f})
		}
	} else {
		for _, f := range md5sumFlags.Args() {
			sum, err := checksum.File(f)
			if err != nil {
				log.Fatal("ERROR: ", err)
			}
			entries = append(entries, checksum.ManifestEntry{Sum: sum, Path: f})
		}
	}

	checksum.WriteManifestToFileHandle(outputFile, entries)
}
