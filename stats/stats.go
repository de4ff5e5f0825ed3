package stats

import (
	"fmt"
	"github.com/dkephart/ngsQC/seqio"
	"github.com/guptarohit/asciigraph"
	"github.com/vertgenlab/gonomics/numbers"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"io"
)

// phred+33 is the only quality encoding handled here
const asciiOffset = 33

// Summary holds the read statistics of one FASTQ file, gathered in a
// single streaming pass.
type Summary struct {
	File    string
	Records int
	Bases   int
	MinLen  int
	MaxLen  int
	Lengths []float64 // per-read lengths in record order

	gc      int
	at      int
	qualSum []float64
	qualN   []float64
}

// Fastq streams filename once and accumulates its Summary.
func Fastq(filename string) Summary {
	s := Summary{File: filename}
	for rec := range seqio.GoReadToChan(filename) {
		s.add(rec)
	}
	return s
}

func (s *Summary) add(rec seqio.Record) {
	seq := rec[1]
	if s.Records == 0 {
		s.MinLen, s.MaxLen = len(seq), len(seq)
	} else {
		if len(seq) < s.MinLen {
			s.MinLen = len(seq)
		}
		s.MaxLen = numbers.Max(s.MaxLen, len(seq))
	}
	s.Records++
	s.Bases += len(seq)
	s.Lengths = append(s.Lengths, float64(len(seq)))

	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'G', 'C', 'g', 'c':
			s.gc++
		case 'A', 'T', 'a', 't':
			s.at++
		}
	}

	if len(rec) < 4 {
		return
	}
	qual := rec[3]
	for len(s.qualSum) < len(qual) {
		s.qualSum = append(s.qualSum, 0)
		s.qualN = append(s.qualN, 0)
	}
	for i := 0; i < len(qual); i++ {
		s.qualSum[i] += float64(qual[i] - asciiOffset)
		s.qualN[i]++
	}
}

// GC is the G+C fraction of called bases.
func (s Summary) GC() float64 {
	if s.gc+s.at == 0 {
		return 0
	}
	return float64(s.gc) / float64(s.gc+s.at)
}

// MeanLength and LengthStdev describe the read length distribution.
func (s Summary) MeanLength() float64 {
	if s.Records == 0 {
		return 0
	}
	return stat.Mean(s.Lengths, nil)
}

func (s Summary) LengthStdev() float64 {
	if s.Records < 2 {
		return 0
	}
	return stat.StdDev(s.Lengths, nil)
}

// MeanQuality is the mean phred score over every base in the file.
func (s Summary) MeanQuality() float64 {
	var sum, n float64
	for i := range s.qualSum {
		sum += s.qualSum[i]
		n += s.qualN[i]
	}
	if n == 0 {
		return 0
	}
	return sum / n
}

// CycleQuality returns the mean phred score per cycle, index 0 being the
// first sequenced base. Reads shorter than the longest read simply stop
// contributing at their length.
func (s Summary) CycleQuality() []float64 {
	ans := make([]float64, len(s.qualSum))
	for i := range s.qualSum {
		if s.qualN[i] > 0 {
			ans[i] = s.qualSum[i] / s.qualN[i]
		}
	}
	return ans
}

// WriteSummary renders the one-file text block.
func (s Summary) WriteSummary(out io.Writer) {
	fmt.Fprintf(out, "File:\t%s\n", s.File)
	fmt.Fprintf(out, "Reads:\t%d\n", s.Records)
	fmt.Fprintf(out, "Bases:\t%d\n", s.Bases)
	fmt.Fprintf(out, "Read Length:\t%d-%d (mean %.1f, sd %.1f)\n", s.MinLen, s.MaxLen, s.MeanLength(), s.LengthStdev())
	fmt.Fprintf(out, "GC:\t%.1f%%\n", s.GC()*100)
	fmt.Fprintf(out, "Mean Quality:\t%.1f\n", s.MeanQuality())
}

// QualityPlot renders the per-cycle mean quality as a terminal plot.
func (s Summary) QualityPlot() string {
	return asciigraph.Plot(s.CycleQuality(),
		asciigraph.Height(10),
		asciigraph.Precision(0),
		asciigraph.Caption("mean phred score per cycle"))
}

// SaveLengthHist writes a read length histogram image (format chosen by
// the output extension, e.g. .png or .pdf).
func SaveLengthHist(s Summary, outfile string) error {
	v := make(plotter.Values, len(s.Lengths))
	copy(v, s.Lengths)
	h, err := plotter.NewHist(v, 20)
	if err != nil {
		return err
	}

	p := plot.New()
	p.Title.Text = s.File
	p.X.Label.Text = "Read Length"
	p.Y.Label.Text = "Count"
	p.Add(h)

	return p.Save(15*vg.Centimeter, 10*vg.Centimeter, outfile)
}
