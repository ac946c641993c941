package findup

import (
	"iter"
	"os"
	"path/filepath"
	"strings"
)

// splitPattern separates pattern into its leading directory components and its
// final name. A trailing separator leaves the name empty.
func splitPattern(pattern string) (dir, name string) {
	i := len(pattern) - 1
	for i >= 0 && !os.IsPathSeparator(pattern[i]) {
		i--
	}
	return pattern[:i+1], pattern[i+1:]
}

// matchName compares raw name bytes. Go strings are byte sequences, so names
// that are not valid text compare like any other.
func matchName(entry, target string, prefix bool) bool {
	if prefix {
		return strings.HasPrefix(entry, target)
	}
	return entry == target
}

// resolveLiteral lists dir once and returns the entries whose names match name.
// A listing that fails before producing any entry is a level error; a listing
// that fails part way yields the entries it got and then an EntryError.
func resolveLiteral(fsys FileSystem, dir, name string, prefix bool) (iter.Seq2[string, error], error) {
	entries, err := fsys.ReadDir(dir)
	if err != nil && len(entries) == 0 {
		return nil, &DirectoryError{Dir: dir, Err: err}
	}

	return func(yield func(string, error) bool) {
		for _, entry := range entries {
			if !matchName(entry.Name(), name, prefix) {
				continue
			}
			if !yield(filepath.Join(dir, entry.Name()), nil) {
				return
			}
		}
		if err != nil {
			yield("", &EntryError{Dir: dir, Err: err})
		}
	}, nil
}
