package subset

import (
	"bytes"
	"fmt"
	"github.com/dkephart/ngsQC/seqio"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
)

func fastqText(n int, mate string) string {
	s := new(strings.Builder)
	for i := 0; i < n; i++ {
		fmt.Fprintf(s, "@EAS139:136:FC706VJ:2:2104:15343:%d %s:N:0:\nACGTACGT\n+\nIIIIIIII\n", i, mate)
	}
	return s.String()
}

func writeTemp(t *testing.T, name, content string) string {
	file := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(file, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func parseRecords(t *testing.T, text string) []seqio.Record {
	r := seqio.NewReader(strings.NewReader(text), 4, 0)
	var ans []seqio.Record
	for rec, err := r.Next(); err != io.EOF; rec, err = r.Next() {
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		ans = append(ans, rec)
	}
	return ans
}

func TestSize(t *testing.T) {
	cases := []struct {
		request string
		total   int
		n       int
		ok      bool
	}{
		{"5", 10, 5, true},
		{"0", 10, 0, true},
		{"10", 10, 10, true},
		{"50%", 10, 5, true},
		{"33%", 10, 3, true},
		{"100%", 7, 7, true},
		{"11", 10, 0, false},
		{"200%", 10, 0, false},
		{"-1", 10, 0, false},
		{"lots", 10, 0, false},
	}
	for _, c := range cases {
		n, err := Size(c.request, c.total)
		if c.ok && (err != nil || n != c.n) {
			t.Errorf("Size(%q, %d): expected %d, got %d (err %v)", c.request, c.total, c.n, n, err)
		}
		if !c.ok && err == nil {
			t.Errorf("Size(%q, %d): expected an error", c.request, c.total)
		}
	}
}

func TestIndices(t *testing.T) {
	a := Indices(1000, 50, 42)
	b := Indices(1000, 50, 42)
	if len(a) != 50 {
		t.Fatalf("expected 50 indices, got %d", len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatal("same seed must give the same subset")
		}
		if a[i] < 0 || a[i] >= 1000 {
			t.Errorf("index %d out of range", a[i])
		}
		if i > 0 && a[i] <= a[i-1] {
			t.Errorf("indices not strictly increasing: %d after %d", a[i], a[i-1])
		}
	}

	c := Indices(1000, 50, 43)
	same := true
	for i := range a {
		if a[i] != c[i] {
			same = false
		}
	}
	if same {
		t.Error("different seeds gave an identical subset")
	}

	all := Indices(5, 5, 1)
	for i := range all {
		if all[i] != i {
			t.Errorf("full subset should be every index in order, got %v", all)
		}
	}
}

func TestFilter(t *testing.T) {
	records := parseRecords(t, fastqText(10, "1"))
	out := new(bytes.Buffer)
	r := seqio.NewReader(strings.NewReader(fastqText(10, "1")), 4, 0)
	if err := Filter(r, []int{0, 2, 7}, out); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	got := parseRecords(t, out.String())
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, idx := range []int{0, 2, 7} {
		if got[i].Name() != records[idx].Name() {
			t.Errorf("position %d: expected %s, got %s", i, records[idx].Name(), got[i].Name())
		}
	}
}

func TestFilterOutOfRange(t *testing.T) {
	r := seqio.NewReader(strings.NewReader(fastqText(3, "1")), 4, 0)
	err := Filter(r, []int{5}, new(bytes.Buffer))
	if err == nil {
		t.Error("expected an out of range error")
	}
}

func TestMatchPattern(t *testing.T) {
	text := fastqText(5, "1")
	r := seqio.NewReader(strings.NewReader(text), 4, 0)
	out := new(bytes.Buffer)
	matched, err := MatchPattern(r, regexp.MustCompile(`15343:[23] `), out)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if matched != 2 {
		t.Errorf("expected 2 matches, got %d", matched)
	}
	got := parseRecords(t, out.String())
	if len(got) != 2 || !strings.Contains(got[0].Name(), ":2 ") || !strings.Contains(got[1].Name(), ":3 ") {
		t.Errorf("wrong records matched: %v", got)
	}
}

func TestVerifyCounts(t *testing.T) {
	r1 := writeTemp(t, "r1.fq", fastqText(10, "1"))
	r2 := writeTemp(t, "r2.fq", fastqText(10, "2"))
	n, err := VerifyCounts(r1, r2)
	if err != nil || n != 10 {
		t.Errorf("expected count 10, got %d (err %v)", n, err)
	}

	short := writeTemp(t, "short.fq", fastqText(9, "2"))
	_, err = VerifyCounts(r1, short)
	if err == nil {
		t.Error("expected an error for unequal record counts")
	}
}

func TestOutputName(t *testing.T) {
	cases := map[string]string{
		"reads.fq":          "reads.subset.fq",
		"reads.fastq.gz":    "reads.subset.fastq.gz",
		"dir/reads.csfasta": "dir/reads.subset.csfasta",
	}
	for in, expected := range cases {
		if got := OutputName(in); got != expected {
			t.Errorf("OutputName(%q): expected %q, got %q", in, expected, got)
		}
	}
}

func TestExtract(t *testing.T) {
	dir := t.TempDir()
	r1 := filepath.Join(dir, "r1.fq")
	r2 := filepath.Join(dir, "r2.fq")
	if err := os.WriteFile(r1, []byte(fastqText(10, "1")), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(r2, []byte(fastqText(10, "2")), 0644); err != nil {
		t.Fatal(err)
	}

	subset, total, err := Extract([]string{r1, r2}, "50%", 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if subset != 5 || total != 10 {
		t.Errorf("expected 5 of 10, got %d of %d", subset, total)
	}

	n1, err := CountRecords(OutputName(r1))
	if err != nil || n1 != 5 {
		t.Fatalf("expected 5 records in %s, got %d (err %v)", OutputName(r1), n1, err)
	}
	out1, err := os.ReadFile(OutputName(r1))
	if err != nil {
		t.Fatal(err)
	}
	out2, err := os.ReadFile(OutputName(r2))
	if err != nil {
		t.Fatal(err)
	}
	recs1 := parseRecords(t, string(out1))
	recs2 := parseRecords(t, string(out2))
	for i := range recs1 {
		y1 := strings.Split(strings.Fields(recs1[i].Name())[0], ":")[6]
		y2 := strings.Split(strings.Fields(recs2[i].Name())[0], ":")[6]
		if y1 != y2 {
			t.Errorf("record %d: mates out of sync: %s vs %s", i, recs1[i].Name(), recs2[i].Name())
		}
	}
}

func TestExtractTooLarge(t *testing.T) {
	dir := t.TempDir()
	r1 := filepath.Join(dir, "r1.fq")
	if err := os.WriteFile(r1, []byte(fastqText(10, "1")), 0644); err != nil {
		t.Fatal(err)
	}
	_, _, err := Extract([]string{r1}, "20", 1)
	if err == nil {
		t.Fatal("expected a range error")
	}
	if _, err = os.Stat(OutputName(r1)); !os.IsNotExist(err) {
		t.Error("output must not exist after a failed size check")
	}
}
