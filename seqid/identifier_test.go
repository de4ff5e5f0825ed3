package seqid

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	headers := []string{
		"@EAS139:136:FC706VJ:2:2104:15343:197393 1:Y:18:ATCACG",
		"@EAS139:136:FC706VJ:2:2104:15343:197393 2:N:0:ATCACG",
		"@EAS139:136:FC706VJ:2:2104:15343:197393 1:N:0:",
		"@M00173:119:000000000-A7TRU:1:1101:15645:1323 1:N:0:GGTCCA+TATCCT",
		"@HWUSI-EAS100R:6:73:941:1973#0/1",
		"@HWUSI-EAS100R:6:73:941:1973#ATCACG/2",
		"@squiggle totally unrecognized",
		"plain text, no at sign",
	}
	for _, h := range headers {
		if got := Parse(h).String(); got != h {
			t.Errorf("round trip broke: expected %q, got %q", h, got)
		}
	}
}

func TestParseIllumina18(t *testing.T) {
	id := Parse("@EAS139:136:FC706VJ:2:2104:15343:197393 1:Y:18:ATCACG")
	if id.Format != Illumina18 {
		t.Fatalf("expected format %s, got %s", Illumina18, id.Format)
	}
	if id.Instrument != "EAS139" || id.RunID != "136" || id.FlowcellID != "FC706VJ" {
		t.Errorf("bad instrument/run/flowcell: %q %q %q", id.Instrument, id.RunID, id.FlowcellID)
	}
	if id.Lane != "2" || id.Tile != "2104" || id.X != "15343" || id.Y != "197393" {
		t.Errorf("bad coordinates: %q %q %q %q", id.Lane, id.Tile, id.X, id.Y)
	}
	if id.Pair != "1" || id.BadRead != "Y" || id.ControlBit != "18" || id.Index != "ATCACG" {
		t.Errorf("bad read annotations: %q %q %q %q", id.Pair, id.BadRead, id.ControlBit, id.Index)
	}
}

func TestParseIllumina(t *testing.T) {
	id := Parse("@HWUSI-EAS100R:6:73:941:1973#0/1")
	if id.Format != Illumina {
		t.Fatalf("expected format %s, got %s", Illumina, id.Format)
	}
	if id.Instrument != "HWUSI-EAS100R" || id.Lane != "6" || id.Tile != "73" {
		t.Errorf("bad instrument/lane/tile: %q %q %q", id.Instrument, id.Lane, id.Tile)
	}
	if id.X != "941" || id.Y != "1973" || id.Index != "0" || id.Pair != "1" {
		t.Errorf("bad x/y/index/pair: %q %q %q %q", id.X, id.Y, id.Index, id.Pair)
	}
	if id.RunID != "" || id.FlowcellID != "" || id.BadRead != "" || id.ControlBit != "" {
		t.Error("old format should leave 1.8-only fields empty")
	}
}

func TestParseNone(t *testing.T) {
	id := Parse("@SRR014849.1 EIXKN4201CFU84 length=93")
	if id.Format != None {
		t.Errorf("expected format %s, got %s", None, id.Format)
	}
}

func TestIsPairOf(t *testing.T) {
	r1 := Parse("@EAS139:136:FC706VJ:2:2104:15343:197393 1:N:0:ATCACG")
	r2 := Parse("@EAS139:136:FC706VJ:2:2104:15343:197393 2:N:0:ATCACG")
	if !r1.IsPairOf(r2) || !r2.IsPairOf(r1) {
		t.Error("true mates not recognized as a pair")
	}
	if r1.IsPairOf(r1) {
		t.Error("a header must never pair with itself")
	}

	otherTile := Parse("@EAS139:136:FC706VJ:2:9999:15343:197393 2:N:0:ATCACG")
	if r1.IsPairOf(otherTile) {
		t.Error("mismatched tile accepted as a pair")
	}

	old1 := Parse("@HWUSI-EAS100R:6:73:941:1973#0/1")
	old2 := Parse("@HWUSI-EAS100R:6:73:941:1973#0/2")
	if !old1.IsPairOf(old2) || !old2.IsPairOf(old1) {
		t.Error("old format mates not recognized as a pair")
	}
	if old1.IsPairOf(r2) {
		t.Error("identifiers of different formats can never pair")
	}

	otherIndex := Parse("@HWUSI-EAS100R:6:73:941:1973#CCCC/2")
	if old1.IsPairOf(otherIndex) {
		t.Error("mismatched multiplex index accepted as a pair")
	}

	none := Parse("some junk")
	if none.IsPairOf(none) {
		t.Error("format none can never pair")
	}
}

func TestInstrumentRename(t *testing.T) {
	id := Parse("@EAS139:136:FC706VJ:2:2104:15343:197393 1:N:0:ATCACG")
	id.Instrument = "RENAMED1"
	expected := "@RENAMED1:136:FC706VJ:2:2104:15343:197393 1:N:0:ATCACG"
	if got := id.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}

	id = Parse("@HWUSI-EAS100R:6:73:941:1973#0/1")
	id.Instrument = "RENAMED2"
	expected = "@RENAMED2:6:73:941:1973#0/1"
	if got := id.String(); got != expected {
		t.Errorf("expected %q, got %q", expected, got)
	}
}

func TestLaneNumber(t *testing.T) {
	n, err := Parse("@EAS139:136:FC706VJ:7:2104:15343:197393 1:N:0:ATCACG").LaneNumber()
	if err != nil || n != 7 {
		t.Errorf("expected lane 7, got %d (err %v)", n, err)
	}
	_, err = Parse("not a header").LaneNumber()
	if err == nil {
		t.Error("expected an error for format none")
	}
}

func writePair(t *testing.T, mate string, n int) string {
	s := new(strings.Builder)
	for i := 0; i < n; i++ {
		s.WriteString("@73D9FA:3:FC:1:1:7507:" + strings.Repeat("1", i+1) + " " + mate + ":N:0:\n")
		s.WriteString("ACGTACGT\n+\nIIIIIIII\n")
	}
	file := filepath.Join(t.TempDir(), "r"+mate+".fq")
	if err := os.WriteFile(file, []byte(s.String()), 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestFastqsArePair(t *testing.T) {
	r1 := writePair(t, "1", 3)
	r2 := writePair(t, "2", 3)
	pair, err := FastqsArePair(r1, r2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !pair {
		t.Error("mate files not recognized as a pair")
	}

	pair, err = FastqsArePair(r1, r1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pair {
		t.Error("a file cannot pair with itself")
	}

	short := writePair(t, "2", 2)
	_, err = FastqsArePair(r1, short)
	if err == nil {
		t.Error("expected an inconsistency error for unequal record counts")
	}
}
