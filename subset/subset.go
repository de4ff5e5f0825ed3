package subset

import (
	"fmt"
	"github.com/dkephart/ngsQC/seqio"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"golang.org/x/exp/slices"
	"io"
	"log"
	"math/rand"
	"path/filepath"
	"regexp"
	"strconv"
	"strings"
)

// Size converts a subset request into a concrete read count. The request
// is either an absolute count ("50000") or a percentage of the total
// ("25%"), truncated toward zero. Requests exceeding the total are a
// range error, raised before any output exists.
func Size(request string, total int) (int, error) {
	var n int
	if strings.HasSuffix(request, "%") {
		pct, err := strconv.ParseFloat(strings.TrimSuffix(request, "%"), 64)
		if err != nil {
			return 0, fmt.Errorf("invalid subset size %q", request)
		}
		n = int(float64(total) * pct / 100)
	} else {
		var err error
		n, err = strconv.Atoi(request)
		if err != nil {
			return 0, fmt.Errorf("invalid subset size %q", request)
		}
	}
	if n < 0 || n > total {
		return 0, fmt.Errorf("requested %d reads but only %d are available", n, total)
	}
	return n, nil
}

// Indices picks n distinct read positions out of total, uniformly and
// reproducibly for a given seed, sorted ascending. Memory use is bounded
// by n, not total. Picking more positions than exist is a caller bug and
// panics; use Size to validate requests first.
func Indices(total, n int, seed int64) []int {
	if n < 0 || n > total {
		log.Panicf("subset: cannot pick %d of %d reads", n, total)
	}
	r := rand.New(rand.NewSource(seed))
	picked := make(map[int]bool, n)
	for i := total - n; i < total; i++ {
		j := r.Intn(i + 1)
		if picked[j] {
			picked[i] = true
		} else {
			picked[j] = true
		}
	}
	ans := make([]int, 0, n)
	for i := range picked {
		ans = append(ans, i)
	}
	slices.Sort(ans)
	return ans
}

// Filter copies the records at the given positions (sorted ascending)
// from r to out, in original order. This is a single merge-join pass;
// reading stops as soon as the last wanted record has been written.
func Filter(r *seqio.Reader, indices []int, out io.Writer) error {
	var pos, next int
	for next < len(indices) {
		rec, err := r.Next()
		if err == io.EOF {
			return fmt.Errorf("subset index %d is out of range: %s has only %d records", indices[next], r.Label(), pos)
		}
		if err != nil {
			return err
		}
		if pos == indices[next] {
			seqio.WriteToFileHandle(out, rec)
			next++
		}
		pos++
	}
	return r.Close()
}

// MatchPattern copies every record whose newline-joined lines match re
// from r to out, returning the number of matches. No index precomputation
// happens; the pass is fully lazy.
func MatchPattern(r *seqio.Reader, re *regexp.Regexp, out io.Writer) (int, error) {
	var matched int
	for rec, err := r.Next(); err != io.EOF; rec, err = r.Next() {
		if err != nil {
			return matched, err
		}
		if re.MatchString(rec.String()) {
			seqio.WriteToFileHandle(out, rec)
			matched++
		}
	}
	return matched, nil
}

// CountRecords reads filename end to end and returns its record count.
func CountRecords(filename string) (int, error) {
	r := seqio.Open(filename)
	var n int
	for _, err := r.Next(); err != io.EOF; _, err = r.Next() {
		if err != nil {
			return 0, err
		}
		n++
	}
	return n, nil
}

// VerifyCounts confirms that every file holds the same number of records
// and returns that count. Mate files that disagree in length cannot
// share a subset, so a mismatch is an error, never ignored.
func VerifyCounts(files ...string) (int, error) {
	if len(files) == 0 {
		return 0, fmt.Errorf("no input files")
	}
	first, err := CountRecords(files[0])
	if err != nil {
		return 0, err
	}
	for _, f := range files[1:] {
		n, err := CountRecords(f)
		if err != nil {
			return 0, err
		}
		if n != first {
			return 0, fmt.Errorf("record counts differ: %s has %d, %s has %d", files[0], first, f, n)
		}
	}
	return first, nil
}

// OutputName derives the subset output file name from an input name:
// reads.fq becomes reads.subset.fq, reads.fastq.gz becomes
// reads.subset.fastq.gz.
func OutputName(filename string) string {
	gz := strings.HasSuffix(filename, ".gz")
	base := strings.TrimSuffix(filename, ".gz")
	ext := filepath.Ext(base)
	name := strings.TrimSuffix(base, ext) + ".subset" + ext
	if gz {
		name += ".gz"
	}
	return name
}

// Extract writes the same deterministic subset of reads from each input
// file to its OutputName sibling. All inputs are counted first and must
// agree, so mate files stay in sync. Returns the subset and total sizes.
func Extract(files []string, request string, seed int64) (subset, total int, err error) {
	total, err = VerifyCounts(files...)
	if err != nil {
		return 0, 0, err
	}
	subset, err = Size(request, total)
	if err != nil {
		return 0, 0, err
	}
	indices := Indices(total, subset, seed)
	for _, f := range files {
		out := fileio.EasyCreate(OutputName(f))
		if err = Filter(seqio.Open(f), indices, out); err != nil {
			out.Close()
			return 0, 0, err
		}
		err = out.Close()
		exception.PanicOnErr(err)
	}
	return subset, total, nil
}

// ExtractPattern writes the records matching pattern from each input
// file to its OutputName sibling, returning the match count per file.
func ExtractPattern(files []string, pattern string) ([]int, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid pattern %q: %v", pattern, err)
	}
	matched := make([]int, len(files))
	for i, f := range files {
		out := fileio.EasyCreate(OutputName(f))
		matched[i], err = MatchPattern(seqio.Open(f), re, out)
		if err != nil {
			out.Close()
			return nil, err
		}
		err = out.Close()
		exception.PanicOnErr(err)
	}
	return matched, nil
}
