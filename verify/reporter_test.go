package verify

import (
	"bytes"
	"io"
	"strings"
	"testing"
)

func TestReporterBuckets(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewReporter(out, false)
	r.Add("a", Match)
	r.Add("b", LinkTargetsMatch)
	r.Add("c", ChecksumMismatch)
	r.Add("d", LinkTargetsDiffer)
	r.Add("e", TypeMismatch)
	r.Add("f", SourceMissing)
	r.Add("g", TargetMissing)
	r.Add("h", ChecksumError)

	if r.Total != 8 || r.Ok != 2 || r.Failed != 3 || r.Missing != 2 || r.Errored != 1 {
		t.Errorf("bad bucket counts: total %d ok %d failed %d missing %d errored %d",
			r.Total, r.Ok, r.Failed, r.Missing, r.Errored)
	}
	if r.Ok+r.Failed+r.Missing+r.Errored != r.Total {
		t.Error("buckets must sum to the total")
	}
	if r.ExitStatus() != 1 {
		t.Error("expected exit status 1")
	}

	text := out.String()
	if strings.Contains(text, "a: OK") {
		t.Error("quiet reporter must not write OK lines")
	}
	for _, line := range []string{"c: FAILED", "e: FAILED", "f: MISSING", "h: ERROR"} {
		if !strings.Contains(text, line) {
			t.Errorf("missing report line %q in output:\n%s", line, text)
		}
	}
}

func TestReporterVerbose(t *testing.T) {
	out := new(bytes.Buffer)
	r := NewReporter(out, true)
	r.Add("a", Match)
	r.Add("b", ChecksumMismatch)
	r.Summary()

	text := out.String()
	for _, line := range []string{"a: OK", "b: FAILED", "2 files checked", "1 okay", "1 failed"} {
		if !strings.Contains(text, line) {
			t.Errorf("missing %q in output:\n%s", line, text)
		}
	}
}

func TestReporterAllOk(t *testing.T) {
	r := NewReporter(io.Discard, false)
	r.Add("a", Match)
	r.Add("b", LinkTargetsMatch)
	if r.ExitStatus() != 0 {
		t.Error("expected exit status 0 when every result is okay")
	}
}

func TestReporterEmpty(t *testing.T) {
	r := NewReporter(io.Discard, false)
	if r.ExitStatus() != 0 {
		t.Error("zero results means nothing failed")
	}
}

func TestReporterUnknownOutcome(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("an unknown outcome must panic, not get counted")
		}
	}()
	NewReporter(io.Discard, false).Add("x", Outcome(200))
}
