package verify

import (
	"fmt"
	"io"
	"log"
)

// Reporter buckets a stream of comparison results and renders per-file
// lines plus a closing summary, md5sum -c style. The four buckets
// always sum to Total.
type Reporter struct {
	Out     io.Writer
	Verbose bool

	Total   int
	Ok      int
	Failed  int
	Missing int
	Errored int

	FailedPaths  []string
	MissingPaths []string
	ErroredPaths []string
}

// NewReporter writes per-file lines and the summary to out. Verbose
// reporters write one line per result; quiet ones only write problems.
func NewReporter(out io.Writer, verbose bool) *Reporter {
	return &Reporter{Out: out, Verbose: verbose}
}

// Add routes one result to its bucket and writes its report line.
// Outcomes outside the known set are a caller bug and panic.
func (r *Reporter) Add(path string, outcome Outcome) {
	r.Total++
	var label string
	switch outcome {
	case Match, LinkTargetsMatch:
		r.Ok++
		label = "OK"
	case ChecksumMismatch, LinkTargetsDiffer, TypeMismatch:
		r.Failed++
		r.FailedPaths = append(r.FailedPaths, path)
		label = "FAILED"
	case SourceMissing, TargetMissing:
		r.Missing++
		r.MissingPaths = append(r.MissingPaths, path)
		label = "MISSING"
	case ChecksumError:
		r.Errored++
		r.ErroredPaths = append(r.ErroredPaths, path)
		label = "ERROR"
	default:
		log.Panicf("unknown comparison outcome: %d", byte(outcome))
	}
	if r.Verbose || label != "OK" {
		fmt.Fprintf(r.Out, "%s: %s\n", path, label)
	}
}

// Summary writes the closing count block.
func (r *Reporter) Summary() {
	fmt.Fprintf(r.Out, "Summary:\n")
	fmt.Fprintf(r.Out, "\t%d files checked\n", r.Total)
	fmt.Fprintf(r.Out, "\t%d okay\n", r.Ok)
	fmt.Fprintf(r.Out, "\t%d failed\n", r.Failed)
	fmt.Fprintf(r.Out, "\t%d missing\n", r.Missing)
	fmt.Fprintf(r.Out, "\t%d errors\n", r.Errored)
}

// ExitStatus is 0 when every result was okay, 1 otherwise, suitable for
// passing straight to os.Exit.
func (r *Reporter) ExitStatus() int {
	if r.Ok == r.Total {
		return 0
	}
	return 1
}
