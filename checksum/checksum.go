package checksum

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"github.com/vertgenlab/gonomics/exception"
	"github.com/vertgenlab/gonomics/fileio"
	"io"
	"os"
	"strings"
)

// blockSize bounds memory per digest regardless of file size.
const blockSize = 1024 * 1024

// Reader digests everything remaining in r and returns the hex MD5.
func Reader(r io.Reader) (string, error) {
	h := md5.New()
	buf := make([]byte, blockSize)
	if _, err := io.CopyBuffer(h, r, buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// File digests the named file. Every call recomputes from scratch.
func File(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	return Reader(f)
}

// ManifestEntry is one line of a checksum manifest.
type ManifestEntry struct {
	Sum  string
	Path string
}

// WriteManifest writes entries as "<md5><two spaces><path>" lines,
// compatible with md5sum(1) -c.
func WriteManifest(filename string, entries []ManifestEntry) {
	out := fileio.EasyCreate(filename)
	WriteManifestToFileHandle(out, entries)
	err := out.Close()
	exception.PanicOnErr(err)
}

// WriteManifestToFileHandle writes manifest lines to an open handle.
func WriteManifestToFileHandle(out io.Writer, entries []ManifestEntry) {
	for _, e := range entries {
		_, err := fmt.Fprintf(out, "%s  %s\n", e.Sum, e.Path)
		exception.PanicOnErr(err)
	}
}

// ReadManifest parses a checksum manifest. The separator is exactly two
// spaces, so paths may themselves contain spaces. Digests are lowercased
// on the way in; anything that is not a hex digest of at least 32
// characters is a malformed line, reported with its line number.
func ReadManifest(filename string) ([]ManifestEntry, error) {
	var ans []ManifestEntry
	var lineNum int
	file := fileio.EasyOpen(filename)
	for line, done := fileio.EasyNextRealLine(file); !done; line, done = fileio.EasyNextRealLine(file) {
		lineNum++
		fields := strings.SplitN(line, "  ", 2)
		if len(fields) != 2 || !validSum(fields[0]) {
			file.Close()
			return nil, fmt.Errorf("%s: malformed checksum line %d: %q", filename, lineNum, line)
		}
		ans = append(ans, ManifestEntry{Sum: strings.ToLower(fields[0]), Path: fields[1]})
	}
	err := file.Close()
	exception.PanicOnErr(err)
	return ans, nil
}

func validSum(s string) bool {
	if len(s) < 2*md5.Size {
		return false
	}
	_, err := hex.DecodeString(s)
	return err == nil
}
