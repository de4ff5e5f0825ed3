package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/checksum"
	"github.com/dkephart/ngsQC/verify"
	"log"
	"os"
)

func usage() {
	fmt.Print(
		"md5checker - Verify md5 checksums or compare two directory trees.\n" +
			"With -c, every file named in the manifest is checked against its recorded\n" +
			"checksum, optionally under a root directory. With two directory inputs,\n" +
			"every file under the first is checked against its counterpart in the\n" +
			"second. Exits zero only when every file checks out.\n\n" +
			"Usage:\n" +
			"  md5checker [options] -c checksums.md5 [root]\n" +
			"  md5checker [options] dir1 dir2\n\n" +
			"options:\n")
	flag.PrintDefaults()
}

func main() {
	var manifest *string = flag.String("c", "", "Check files against this manifest instead of comparing directories.")
	var links *string = flag.String("links", "follow", "Symlink handling for directory comparison: follow or ignore.")
	var threads *int = flag.Int("t", 1, "Number of checksum workers for directory comparison.")
	var verbose *bool = flag.Bool("v", false, "Report every file checked, not just problems.")
	flag.Parse()
	flag.Usage = usage

	if *manifest == "" && flag.NArg() != 2 {
		usage()
		log.Fatalln("ERROR: must have either -c with a manifest or two directories.")
	}
	if *manifest != "" && flag.NArg() > 1 {
		usage()
		log.Fatalln("ERROR: -c takes at most one root directory.")
	}

	rep := verify.NewReporter(os.Stdout, *verbose)
	if *manifest != "" {
		checkManifest(rep, *manifest, flag.Arg(0))
	} else {
		compareDirs(rep, flag.Arg(0), flag.Arg(1), *links, *threads)
	}

	rep.Summary()
	os.Exit(rep.ExitStatus())
}

func checkManifest(rep *verify.Reporter, manifest, root string) {
	entries, err := checksum.ReadManifest(manifest)
	if err != nil {
		log.Fatal("ERROR: ", err)
	}
	for _, res := range verify.VerifyManifest(entries, root) {
		rep.Add(res.Path, res.Outcome)
	}
}

func compareDirs(rep *verify.Reporter, dir1, dir2, links string, threads int) {
	policy, err := verify.ParseLinkPolicy(links)
	if err != nil {
		log.Fatal("ERROR: ", err)
	}

	if threads > 1 {
		results, err := verify.GoCompareDirs(dir1, dir2, policy, threads)
		if err != nil {
			log.Fatal("ERROR: ", err)
		}
		for res := range results {
			rep.Add(res.Path, res.Outcome)
		}
		return
	}

	results, err := verify.CompareDirs(dir1, dir2, policy)
	if err != nil {
		log.Fatal("ERROR: ", err)
	}
	for _, res := range results {
		rep.Add(res.Path, res.Outcome)
	}
}
