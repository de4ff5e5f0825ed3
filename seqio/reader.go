package seqio

import (
	"bytes"
	"fmt"
	gzip "github.com/klauspost/pgzip"
	"github.com/vertgenlab/gonomics/exception"
	"io"
	"log"
	"os"
	"strings"
)

// DefaultChunkSize is the number of bytes pulled from the underlying
// stream per I/O call.
const DefaultChunkSize = 100 * 1024

// A Record is one sequencing read as an ordered tuple of raw lines,
// trailing newline stripped and all other bytes preserved. FASTQ records
// span 4 lines, CSFASTA and QUAL records span 2.
type Record []string

// Name returns the header line of the record.
func (r Record) Name() string {
	return r[0]
}

// String joins the record's lines with newlines, without a trailing newline.
func (r Record) String() string {
	return strings.Join(r, "\n")
}

// Reader streams fixed-size records from a sequence file. Input is
// consumed in large chunks and reassembled into lines, carrying any
// partial trailing line over to the next chunk, so records never split
// across I/O boundaries from the caller's point of view.
type Reader struct {
	linesPerRecord int
	src            io.Reader
	file           *os.File
	gz             *gzip.Reader
	buf            []byte
	carry          []byte
	lines          []string
	next           int
	dataSeen       bool
	eof            bool
	closed         bool
	name           string
}

// NewReader wraps an already-open stream. The stream is never closed by
// the reader; ownership stays with the caller. linesPerRecord is the
// number of lines forming one record (4 for FASTQ, 2 for CSFASTA/QUAL).
// A chunkSize < 1 selects DefaultChunkSize.
func NewReader(src io.Reader, linesPerRecord, chunkSize int) *Reader {
	if linesPerRecord < 1 {
		log.Panicf("seqio: invalid lines per record: %d", linesPerRecord)
	}
	if chunkSize < 1 {
		chunkSize = DefaultChunkSize
	}
	return &Reader{
		linesPerRecord: linesPerRecord,
		src:            src,
		buf:            make([]byte, chunkSize),
	}
}

// Open opens a sequence file for record streaming. Files ending in .gz
// are decompressed on the fly. Record size is derived from the file
// extension. The file handle is closed once the last record has been read.
func Open(filename string) *Reader {
	return OpenChunkSize(filename, DefaultChunkSize)
}

// OpenChunkSize is Open with an explicit I/O chunk size in bytes.
func OpenChunkSize(filename string, chunkSize int) *Reader {
	file, err := os.Open(filename)
	exception.PanicOnErr(err)
	r := NewReader(file, LinesPerRecord(filename), chunkSize)
	r.file = file
	r.name = filename
	if strings.HasSuffix(filename, ".gz") {
		r.gz, err = gzip.NewReader(file)
		exception.PanicOnErr(err)
		r.src = r.gz
	}
	return r
}

// LinesPerRecord maps a sequence file name to the number of lines in one
// of its records: 4 for fastq/fq, 2 for csfasta/qual. A .gz suffix is
// stripped before the extension is checked. Unrecognized extensions are
// a caller bug and panic.
func LinesPerRecord(filename string) int {
	base := strings.TrimSuffix(filename, ".gz")
	switch {
	case strings.HasSuffix(base, ".fastq"), strings.HasSuffix(base, ".fq"):
		return 4
	case strings.HasSuffix(base, ".csfasta"), strings.HasSuffix(base, ".qual"):
		return 2
	default:
		log.Panicf("seqio: unrecognized sequence file extension: %s", filename)
		return 0
	}
}

// Next returns the next record. io.EOF signals a clean end of input.
// Input ending partway through a record returns a malformed input error
// naming the expected and observed line counts. Lines starting with '#'
// are skipped until the first data line has been seen, then treated as
// ordinary data.
func (r *Reader) Next() (Record, error) {
	rec := make(Record, 0, r.linesPerRecord)
	for len(rec) < r.linesPerRecord {
		line, ok, err := r.nextLine()
		if err != nil {
			return nil, err
		}
		if !ok {
			if err = r.Close(); err != nil {
				return nil, err
			}
			if len(rec) == 0 {
				return nil, io.EOF
			}
			return nil, fmt.Errorf("%s: malformed input: ends mid-record with %d of %d lines", r.Label(), len(rec), r.linesPerRecord)
		}
		if !r.dataSeen && strings.HasPrefix(line, "#") {
			continue
		}
		r.dataSeen = true
		rec = append(rec, line)
	}
	return rec, nil
}

// Close releases the file handle if the reader owns it. Readers over
// caller-provided streams are unaffected. Safe to call more than once.
func (r *Reader) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	if r.gz != nil {
		if err := r.gz.Close(); err != nil {
			r.file.Close()
			return err
		}
	}
	if r.file != nil {
		return r.file.Close()
	}
	return nil
}

func (r *Reader) nextLine() (string, bool, error) {
	for r.next >= len(r.lines) {
		if r.eof {
			return "", false, nil
		}
		if err := r.refill(); err != nil {
			return "", false, err
		}
	}
	line := r.lines[r.next]
	r.next++
	return line, true, nil
}

// refill pulls one chunk from the stream and commits every complete line
// in it, searching backward for the last newline so a chunk ending
// mid-line leaves the fragment in carry. The final line of a file needs
// no trailing newline.
func (r *Reader) refill() error {
	r.lines = r.lines[:0]
	r.next = 0
	n, err := r.src.Read(r.buf)
	if n > 0 {
		chunk := r.buf[:n]
		cut := bytes.LastIndexByte(chunk, '\n')
		if cut == -1 {
			r.carry = append(r.carry, chunk...)
		} else {
			whole := string(append(r.carry, chunk[:cut]...))
			r.lines = append(r.lines, strings.Split(whole, "\n")...)
			r.carry = append(r.carry[:0], chunk[cut+1:]...)
		}
	}
	switch err {
	case nil:
		return nil
	case io.EOF:
		r.eof = true
		if len(r.carry) > 0 {
			r.lines = append(r.lines, string(r.carry))
			r.carry = nil
		}
		return nil
	default:
		return err
	}
}

// Label names the reader's source for error messages: the file name when
// opened by path, "stream" otherwise.
func (r *Reader) Label() string {
	if r.name == "" {
		return "stream"
	}
	return r.name
}

// GoReadToChan launches a goroutine streaming records from filename and
// returns the receiving channel. Malformed input panics inside the
// goroutine.
func GoReadToChan(filename string) <-chan Record {
	data := make(chan Record, 1000)
	r := Open(filename)
	go readToChan(r, data)
	return data
}

func readToChan(r *Reader, data chan<- Record) {
	for rec, err := r.Next(); err != io.EOF; rec, err = r.Next() {
		exception.PanicOnErr(err)
		data <- rec
	}
	close(data)
}
