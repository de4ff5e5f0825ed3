package strand

import (
	"fmt"
	"github.com/dkephart/ngsQC/seqio"
	"github.com/dkephart/ngsQC/subset"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
)

// Estimate subsamples at most n read pairs from r1/r2, aligns them
// against genomeDir with the external aligner, and reports the
// percentage of assigned reads supporting forward and reverse strand
// annotations. The subsample and all aligner output live in a temp
// directory that is removed whether or not the aligner succeeds.
func Estimate(r1, r2, genomeDir, aligner string, n int, seed int64, threads int) (forward, reverse float64, err error) {
	tmpDir, err := os.MkdirTemp("", "fqstrand")
	if err != nil {
		return 0, 0, err
	}
	defer os.RemoveAll(tmpDir)

	sub1, sub2, err := subsample(r1, r2, tmpDir, n, seed)
	if err != nil {
		return 0, 0, err
	}

	cmd := exec.Command(aligner,
		"--runMode", "alignReads",
		"--genomeDir", genomeDir,
		"--readFilesIn", sub1, sub2,
		"--quantMode", "GeneCounts",
		"--outSAMtype", "None",
		"--runThreadN", strconv.Itoa(threads),
		"--outFileNamePrefix", tmpDir+string(os.PathSeparator))
	cmd.Stderr = os.Stderr
	if err = cmd.Run(); err != nil {
		return 0, 0, fmt.Errorf("%s failed: %v", aligner, err)
	}

	unstranded, fwd, rev, err := ParseGeneCounts(filepath.Join(tmpDir, "ReadsPerGene.out.tab"))
	if err != nil {
		return 0, 0, err
	}
	if unstranded == 0 {
		return 0, 0, fmt.Errorf("no reads were assigned to genes")
	}
	return 100 * float64(fwd) / float64(unstranded), 100 * float64(rev) / float64(unstranded), nil
}

// subsample writes the same seeded subset of both mate files into dir,
// uncompressed for the aligner's benefit.
func subsample(r1, r2, dir string, n int, seed int64) (string, string, error) {
	total, err := subset.VerifyCounts(r1, r2)
	if err != nil {
		return "", "", err
	}
	if n > total {
		n = total
	}
	indices := subset.Indices(total, n, seed)

	sub1 := filepath.Join(dir, "subset_R1.fq")
	sub2 := filepath.Join(dir, "subset_R2.fq")
	for _, pair := range [][2]string{{r1, sub1}, {r2, sub2}} {
		out := fileio.EasyCreate(pair[1])
		if err = subset.Filter(seqio.Open(pair[0]), indices, out); err != nil {
			out.Close()
			return "", "", err
		}
		err = out.Close()
		exception.PanicOnErr(err)
	}
	return sub1, sub2, nil
}

// ParseGeneCounts sums the per-gene read counts of an aligner gene
// counts table (gene id, unstranded, forward, reverse columns). The
// first four lines tally unassigned reads and are skipped.
func ParseGeneCounts(filename string) (unstranded, forward, reverse int, err error) {
	file := fileio.EasyOpen(filename)
	var lineNum int
	for line, done := fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		lineNum++
		if lineNum <= 4 {
			continue
		}
		cols := strings.Split(line, "\t")
		if len(cols) < 4 {
			file.Close()
			return 0, 0, 0, fmt.Errorf("%s: malformed gene counts line %d: %q", filename, lineNum, line)
		}
		u, err1 := strconv.Atoi(cols[1])
		f, err2 := strconv.Atoi(cols[2])
		r, err3 := strconv.Atoi(cols[3])
		if err1 != nil || err2 != nil || err3 != nil {
			file.Close()
			return 0, 0, 0, fmt.Errorf("%s: malformed gene counts line %d: %q", filename, lineNum, line)
		}
		unstranded += u
		forward += f
		reverse += r
	}
	err = file.Close()
	exception.PanicOnErr(err)
	return unstranded, forward, reverse, nil
}
