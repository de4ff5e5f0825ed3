package main

import (
	"flag"
	"fmt"
	"github.com/dkephart/ngsQC/checksum"
	"github.com/dkephart/ngsQC/verify"
	"github.com/vertgenlab/gonomics/exception"
	"log"
	"os"
)

func md5checkUsage(md5checkFlags *flag.FlagSet) {
	fmt.Print(
		"md5check - Verify md5 checksums or compare two directory trees\n\n" +
			"With -c, every file named in the manifest is checked against its\n" +
			"recorded checksum, optionally under a root directory. With two\n" +
			"directory inputs, every file under the first is checked against\n" +
			"its counterpart in the second. Exits zero only when every file\n" +
			"checks out.\n\n" +
			"Usage:\n" +
			"  ngsqc md5check [options] -c checksums.md5 [root]\n" +
			"  ngsqc md5check [options] dir1 dir2\n\n" +
			"Options:\n")
	md5checkFlags.PrintDefaults()
}

func runMd5check(args []string) {
	var err error
	md5checkFlags := flag.NewFlagSet("md5check", flag.ExitOnError)

	manifest := md5checkFlags.String("c", "", "Check files against this manifest instead of comparing directories.")
	links := md5checkFlags.String("links", "follow", "Symlink handling for directory comparison: follow or ignore.")
	threads := md5checkFlags.Int("t", 1, "Number of checksum workers for directory comparison.")
	verbose := md5checkFlags.Bool("v", false, "Report every file checked, not just problems.")

	err = md5checkFlags.Parse(args)
	exception.PanicOnErr(err)
	md5checkFlags.Usage = func() { md5checkUsage(md5checkFlags) }

	rep := verify.NewReporter(os.Stdout, *verbose)

	switch {
	case *manifest != "":
		if md5checkFlags.NArg() > 1 {
			md5checkFlags.Usage()
			errExit("\nERROR: -c takes at most one root directory")
		}
		entries, err := checksum.ReadManifest(*manifest)
		if err != nil {
			log.Fatal("ERROR: ", err)
		}
		for _, res := range verify.VerifyManifest(entries, md5checkFlags.Arg(0)) {
			rep.Add(res.Path, res.Outcome)
		}

	case md5checkFlags.NArg() == 2:
		policy, err := verify.ParseLinkPolicy(*links)
		if err != nil {
			log.Fatal("ERROR: ", err)
		}
		if *threads > 1 {
			results, err := verify.GoCompareDirs(md5checkFlags.Arg(0), md5checkFlags.Arg(1), policy, *threads)
			if err != nil {
				log.Fatal("ERROR: ", err)
			}
			for res := range results {
				rep.Add(res.Path, res.Outcome)
			}
		} else {
			results, err := verify.CompareDirs(md5checkFlags.Arg(0), md5checkFlags.Arg(1), policy)
			if err != nil {
				log.Fatal("ERROR: ", err)
			}
			for _, res := range results {
				rep.Add(res.Path, res.Outcome)
			}
		}

	default:
		md5checkFlags.Usage()
		errExit("\nERROR: must have either -c with a manifest or two directories")
	}

	rep.Summary()
	os.Exit(rep.ExitStatus())
}
