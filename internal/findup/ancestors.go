package findup

import (
	"iter"
	"path/filepath"
	"strings"
)

// Parent returns the parent of p and true, or "" and false when p is a
// filesystem root or a relative path with a single component.
func Parent(p string) (string, bool) {
	p = filepath.Clean(p)
	dir := filepath.Dir(p)
	if dir == p {
		return "", false
	}
	if !filepath.IsAbs(p) && !strings.ContainsRune(strings.TrimPrefix(p, filepath.VolumeName(p)), filepath.Separator) {
		return "", false
	}
	return dir, true
}

// Ancestors yields start and then each of its parents, ending with the
// element that has no parent. No filesystem access is made.
func Ancestors(start string) iter.Seq[string] {
	return func(yield func(string) bool) {
		current := filepath.Clean(start)
		for {
			if !yield(current) {
				return
			}
			parent, ok := Parent(current)
			if !ok {
				return
			}
			current = parent
		}
	}
}
