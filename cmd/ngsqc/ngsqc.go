package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
)

const version string = "0.1.2"
const gonomicsVersion string = "1.0.1-0.20240426183757-e6c6ab634c20"

type subcommand struct {
	name     string
	function func(args []string)
	blurb    string
}

// SubCommands contains all valid subcommands.
// New subcommands can be added to ngsqc by adding a new entry to this array.
var SubCommands = []*subcommand{
	{"extract", runExtract, "pull a deterministic subset of reads from fastq"}, // formerly: fqextract
	{"count", runCount, "count records in fastq or csfasta files"},
	{"paircheck", runPaircheck, "verify that two fastqs form an R1/R2 pair"}, // formerly: fqpair
	{"stats", runStats, "summarize read lengths, gc content, and quality"},   // formerly: fqstats
	{"md5sum", runMd5sum, "write md5 checksums for a directory tree"},
	{"md5check", runMd5check, "verify checksums or compare two directory trees"}, // formerly: md5checker
}

func usage() {
	s := new(strings.Builder)
	s.WriteString(
		"Program: ngsqc (quality control utilities for NGS fastq data)\n" +
			"Version: " + version + " (gonomics " + gonomicsVersion + ")\n" +
			"Contact: Dana Kephart <dkephart@gmail.com>\n" +
			"\nUsage:\tngsqc <command> [options]\n\n" +
			"Commands:\n")

	// add subcommand text via tabwriter so the columns align
	w := tabwriter.NewWriter(s, 0, 8, 5, '\t', tabwriter.AlignRight)
	for i := range SubCommands {
		fmt.Fprintf(w, "\t%s\t%s\n", SubCommands[i].name, SubCommands[i].blurb)
	}
	w.Flush()
	fmt.Print(s.String())
}

// commandMap builds a map of possible subcommands keyed on the name of the subcommand
func commandMap() map[string]func(args []string) {
	m := make(map[string]func(args []string))
	for i := range SubCommands {
		m[SubCommands[i].name] = SubCommands[i].function
	}
	return m
}

func main() {
	flag.Usage = usage
	flag.Parse()

	// check if first argument is a valid subcommand
	command := commandMap()[flag.Arg(0)]

	// if no command is found, print the usage and return
	if command == nil {
		flag.Usage()
		return
	}

	// if command successfully found, pass in remaining arguments and execute
	command(flag.Args()[1:])
}

func errExit(err string) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
