package verify

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
)

// LinkPolicy selects how symbolic links are treated during a tree walk.
// It is threaded through every recursive call rather than held globally.
type LinkPolicy byte

const (
	FollowLinks LinkPolicy = iota
	IgnoreLinks
)

func (p LinkPolicy) String() string {
	switch p {
	case FollowLinks:
		return "follow"
	case IgnoreLinks:
		return "ignore"
	default:
		log.Panicf("unknown link policy: %d", byte(p))
		return ""
	}
}

// ParseLinkPolicy maps a -links flag value to a policy.
func ParseLinkPolicy(s string) (LinkPolicy, error) {
	switch s {
	case "follow":
		return FollowLinks, nil
	case "ignore":
		return IgnoreLinks, nil
	}
	return 0, fmt.Errorf("invalid link policy %q (must be follow or ignore)", s)
}

// Walk lists every file under root as a path relative to root, depth
// first, sorted within each directory. Under FollowLinks, symlinks to
// files appear in the listing and symlinked directories are descended;
// under IgnoreLinks, symlinks never appear and are never descended, so
// anything reachable only through a symlinked directory stays hidden.
func Walk(root string, policy LinkPolicy) ([]string, error) {
	var files []string
	err := walk(root, "", policy, &files)
	return files, err
}

func walk(root, rel string, policy LinkPolicy, files *[]string) error {
	entries, err := os.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return err
	}
	for _, e := range entries {
		sub := filepath.Join(rel, e.Name())
		switch {
		case e.Type()&fs.ModeSymlink != 0:
			if policy == IgnoreLinks {
				continue
			}
			// a link to a directory walks like one; anything else,
			// broken links included, lists like a file
			info, statErr := os.Stat(filepath.Join(root, sub))
			if statErr == nil && info.IsDir() {
				if err = walk(root, sub, policy, files); err != nil {
					return err
				}
			} else {
				*files = append(*files, sub)
			}
		case e.IsDir():
			if err = walk(root, sub, policy, files); err != nil {
				return err
			}
		default:
			*files = append(*files, sub)
		}
	}
	return nil
}
