package verify

import (
	"errors"
	"github.com/dkephart/ngsQC/checksum"
	"log"
	"os"
	"path/filepath"
	"sync"
	"syscall"
)

// Outcome classifies the comparison of one source/target path pair.
type Outcome byte

const (
	Match Outcome = iota
	ChecksumMismatch
	ChecksumError
	SourceMissing
	TargetMissing
	LinkTargetsMatch
	LinkTargetsDiffer
	TypeMismatch
)

func (o Outcome) String() string {
	switch o {
	case Match:
		return "match"
	case ChecksumMismatch:
		return "checksum mismatch"
	case ChecksumError:
		return "checksum error"
	case SourceMissing:
		return "source missing"
	case TargetMissing:
		return "target missing"
	case LinkTargetsMatch:
		return "link targets match"
	case LinkTargetsDiffer:
		return "link targets differ"
	case TypeMismatch:
		return "type mismatch"
	default:
		log.Panicf("unknown comparison outcome: %d", byte(o))
		return ""
	}
}

// Result pairs a relative path with its comparison outcome.
type Result struct {
	Path    string
	Outcome Outcome
}

// Compare classifies a single source/target pair. Symlinks compare by
// the literal text of their targets, never resolved content; directories
// compare by existence only, recursion being the walk's job; regular
// files compare by MD5. An unreadable path on either side yields a
// checksum error outcome so a whole-tree run can continue past it.
func Compare(path1, path2 string) Outcome {
	info1, err := os.Lstat(path1)
	if err != nil {
		if isMissing(err) {
			return SourceMissing
		}
		return ChecksumError
	}
	info2, err := os.Lstat(path2)
	if err != nil {
		if isMissing(err) {
			return TargetMissing
		}
		return ChecksumError
	}

	link1 := info1.Mode()&os.ModeSymlink != 0
	link2 := info2.Mode()&os.ModeSymlink != 0
	switch {
	case link1 && link2:
		target1, err := os.Readlink(path1)
		if err != nil {
			return ChecksumError
		}
		target2, err := os.Readlink(path2)
		if err != nil {
			return ChecksumError
		}
		if target1 == target2 {
			return LinkTargetsMatch
		}
		return LinkTargetsDiffer
	case link1 != link2:
		return TypeMismatch
	}

	switch {
	case info1.IsDir() && info2.IsDir():
		return Match
	case info1.IsDir() || info2.IsDir():
		return TypeMismatch
	}

	sum1, err := checksum.File(path1)
	if err != nil {
		return ChecksumError
	}
	sum2, err := checksum.File(path2)
	if err != nil {
		return ChecksumError
	}
	if sum1 == sum2 {
		return Match
	}
	return ChecksumMismatch
}

// CompareDirs compares every file found under dir1 against the same
// relative path under dir2, yielding one Result per file in walk order.
// Files present only under dir2 are never reported; run the comparison
// the other way around to find them.
func CompareDirs(dir1, dir2 string, policy LinkPolicy) ([]Result, error) {
	files, err := Walk(dir1, policy)
	if err != nil {
		return nil, err
	}
	results := make([]Result, len(files))
	for i, f := range files {
		results[i] = Result{Path: f, Outcome: Compare(filepath.Join(dir1, f), filepath.Join(dir2, f))}
	}
	return results, nil
}

// GoCompareDirs is CompareDirs fanned out over a fixed pool of worker
// goroutines for large trees. Each pair is still attributed correctly,
// but results arrive in completion order rather than walk order.
func GoCompareDirs(dir1, dir2 string, policy LinkPolicy, threads int) (<-chan Result, error) {
	files, err := Walk(dir1, policy)
	if err != nil {
		return nil, err
	}
	if threads < 1 {
		threads = 1
	}
	paths := make(chan string, 100)
	results := make(chan Result, 100)
	go func() {
		for _, f := range files {
			paths <- f
		}
		close(paths)
	}()

	wg := new(sync.WaitGroup)
	for i := 0; i < threads; i++ {
		wg.Add(1)
		go spawnCompareThread(dir1, dir2, paths, results, wg)
	}
	go func() {
		wg.Wait()
		close(results)
	}()
	return results, nil
}

func spawnCompareThread(dir1, dir2 string, paths <-chan string, results chan<- Result, wg *sync.WaitGroup) {
	defer wg.Done()
	for f := range paths {
		results <- Result{Path: f, Outcome: Compare(filepath.Join(dir1, f), filepath.Join(dir2, f))}
	}
}

// VerifyManifest recomputes the digest of every manifest entry, resolved
// relative to root when root is not empty, and classifies each one.
func VerifyManifest(entries []checksum.ManifestEntry, root string) []Result {
	results := make([]Result, len(entries))
	for i, e := range entries {
		path := e.Path
		if root != "" {
			path = filepath.Join(root, e.Path)
		}
		results[i] = Result{Path: e.Path, Outcome: verifyEntry(path, e.Sum)}
	}
	return results
}

func verifyEntry(path, want string) Outcome {
	if _, err := os.Stat(path); err != nil && isMissing(err) {
		return TargetMissing
	}
	sum, err := checksum.File(path)
	if err != nil {
		return ChecksumError
	}
	if sum == want {
		return Match
	}
	return ChecksumMismatch
}

// isMissing treats a path under something that is not a directory the
// same as an absent path, the way a plain existence test would.
func isMissing(err error) bool {
	return os.IsNotExist(err) || errors.Is(err, syscall.ENOTDIR)
}
