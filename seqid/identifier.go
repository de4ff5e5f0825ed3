package seqid

import (
	"fmt"
	"github.com/dkephart/ngsQC/seqio"
	"regexp"
	"strconv"
)

// Format labels which Illumina naming convention an identifier follows.
type Format string

const (
	Illumina18 Format = "illumina18" // casava/bcl2fastq 1.8 and later
	Illumina   Format = "illumina"   // GA pipeline before 1.8
	None       Format = "none"       // unrecognized, kept verbatim
)

var illumina18Regexp = regexp.MustCompile(`^@([^:]+):([^:]+):([^:]+):([^:]+):([^:]+):([^:]+):([^ ]+) ([12]):([YN]):([^:]+):(.*)$`)
var illuminaRegexp = regexp.MustCompile(`^@([^:]+):([^:]+):([^:]+):([^:]+):([^#]+)#([^/]+)/(.+)$`)

// Identifier is the parsed form of one read header line. Fields not
// present in the matched format stay empty. All fields are kept as the
// exact substrings of the input so that String reproduces the original
// header byte for byte.
type Identifier struct {
	Format     Format
	Instrument string
	RunID      string
	FlowcellID string
	Lane       string
	Tile       string
	X          string
	Y          string
	Pair       string
	BadRead    string
	ControlBit string
	Index      string
	raw        string
}

// Parse splits a read header line (leading '@' included) into its
// component fields, trying the casava 1.8+ convention first, then the
// older GA pipeline convention. Headers matching neither are retained
// verbatim with format None; Parse itself never fails.
func Parse(line string) *Identifier {
	if m := illumina18Regexp.FindStringSubmatch(line); m != nil {
		return &Identifier{
			Format:     Illumina18,
			Instrument: m[1],
			RunID:      m[2],
			FlowcellID: m[3],
			Lane:       m[4],
			Tile:       m[5],
			X:          m[6],
			Y:          m[7],
			Pair:       m[8],
			BadRead:    m[9],
			ControlBit: m[10],
			Index:      m[11],
		}
	}
	if m := illuminaRegexp.FindStringSubmatch(line); m != nil {
		return &Identifier{
			Format:     Illumina,
			Instrument: m[1],
			Lane:       m[2],
			Tile:       m[3],
			X:          m[4],
			Y:          m[5],
			Index:      m[6],
			Pair:       m[7],
		}
	}
	return &Identifier{Format: None, raw: line}
}

// String renders the identifier back into header form. For the two known
// formats the output reflects any field edits; for format None the
// original string comes back unchanged.
func (id *Identifier) String() string {
	switch id.Format {
	case Illumina18:
		return fmt.Sprintf("@%s:%s:%s:%s:%s:%s:%s %s:%s:%s:%s",
			id.Instrument, id.RunID, id.FlowcellID, id.Lane, id.Tile, id.X, id.Y,
			id.Pair, id.BadRead, id.ControlBit, id.Index)
	case Illumina:
		return fmt.Sprintf("@%s:%s:%s:%s:%s#%s/%s",
			id.Instrument, id.Lane, id.Tile, id.X, id.Y, id.Index, id.Pair)
	default:
		return id.raw
	}
}

// IsPairOf reports whether id and other are the two mates of one read
// pair: their pair ids form the set {1,2} and every other field agrees.
// Identifiers of different formats, or of format None, are never pairs.
func (id *Identifier) IsPairOf(other *Identifier) bool {
	if id.Format == None || id.Format != other.Format {
		return false
	}
	if !(id.Pair == "1" && other.Pair == "2") && !(id.Pair == "2" && other.Pair == "1") {
		return false
	}
	return id.Instrument == other.Instrument &&
		id.RunID == other.RunID &&
		id.FlowcellID == other.FlowcellID &&
		id.Lane == other.Lane &&
		id.Tile == other.Tile &&
		id.X == other.X &&
		id.Y == other.Y &&
		id.BadRead == other.BadRead &&
		id.ControlBit == other.ControlBit &&
		id.Index == other.Index
}

// LaneNumber returns the flowcell lane field as an integer.
func (id *Identifier) LaneNumber() (int, error) {
	n, err := strconv.Atoi(id.Lane)
	if err != nil {
		return 0, fmt.Errorf("no usable lane number in %q", id.String())
	}
	return n, nil
}

// FastqsArePair streams two FASTQ files in lockstep and reports whether
// every record in the first is the mate of the corresponding record in
// the second. Both files are read to the end so the record counts are
// checked as well; unequal counts are an inconsistency error, not a
// plain false.
func FastqsArePair(file1, file2 string) (bool, error) {
	c1 := seqio.GoReadToChan(file1)
	c2 := seqio.GoReadToChan(file2)
	pair := true
	var n int
	for rec1 := range c1 {
		rec2, ok := <-c2
		if !ok {
			for range c1 {
			}
			return false, fmt.Errorf("record counts differ: %s ends after %d records", file2, n)
		}
		if pair && !Parse(rec1.Name()).IsPairOf(Parse(rec2.Name())) {
			pair = false
		}
		n++
	}
	if _, ok := <-c2; ok {
		for range c2 {
		}
		return false, fmt.Errorf("record counts differ: %s ends after %d records", file1, n)
	}
	return pair, nil
}
