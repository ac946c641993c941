package findup

import (
	"errors"
	"io/fs"
	"iter"
	"path"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/bmatcuk/doublestar/v4"
)

var errStopWalk = errors.New("findup: walk stopped")

// isDotArtifact reports results that name a directory through a trailing "."
// or ".." segment. They are never meaningful matches.
func isDotArtifact(match string) bool {
	return match == "." || match == ".." ||
		strings.HasSuffix(match, "/.") || strings.HasSuffix(match, "/..")
}

// globBase joins ancestor and pattern and splits the result into the literal
// directory the engine starts from and the pattern relative to it. The
// ancestor is a real directory, so its metacharacters are escaped.
func globBase(ancestor, pattern string) (base, rest string, err error) {
	joined := filepath.Join(ancestor, pattern)
	if !utf8.ValidString(joined) {
		return "", "", &PathEncodingError{Path: joined}
	}

	escaped := path.Join(doublestar.EscapePattern(filepath.ToSlash(ancestor)), filepath.ToSlash(pattern))
	if !doublestar.ValidatePattern(escaped) {
		return "", "", &PatternError{Pattern: pattern, Err: doublestar.ErrBadPattern}
	}

	base, rest = doublestar.SplitPattern(escaped)
	return filepath.FromSlash(unescape(base)), rest, nil
}

// unescape drops the backslash escapes EscapePattern put into a literal path.
func unescape(s string) string {
	if !strings.ContainsRune(s, '\\') {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\\' && i+1 < len(s) {
			i++
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

// resolveGlob matches rest below base with the doublestar engine. The
// engine runs while the returned sequence is ranged over and stops as soon as
// the consumer does. A directory the engine cannot read is reported as a
// GlobError and the walk carries on with its siblings.
func resolveGlob(fsys FileSystem, base, rest string) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		if rest == "" {
			if _, err := fs.Stat(fsys.DirFS(base), "."); err != nil {
				yield("", &GlobError{Pattern: base, Err: err})
				return
			}
			yield(base, nil)
			return
		}

		walked := newRecordingFS(fsys.DirFS(base))
		flush := func() bool {
			for _, err := range walked.take() {
				if !yield("", &GlobError{Pattern: filepath.Join(base, filepath.FromSlash(rest)), Err: err}) {
					return false
				}
			}
			return true
		}

		stopped := false
		err := doublestar.GlobWalk(walked, rest, func(match string, _ fs.DirEntry) error {
			if !flush() {
				stopped = true
				return errStopWalk
			}
			if isDotArtifact(match) {
				return nil
			}
			if !yield(filepath.Join(base, filepath.FromSlash(match)), nil) {
				stopped = true
				return errStopWalk
			}
			return nil
		}, globOptions()...)

		if stopped || !flush() {
			return
		}
		if err != nil {
			yield("", &GlobError{Pattern: filepath.Join(base, filepath.FromSlash(rest)), Err: err})
		}
	}
}

// recordingFS hands failures to read the tree back to the engine, which skips
// the path and keeps walking, and keeps them for the caller. Each failing
// path is recorded once; absent paths are not failures.
type recordingFS struct {
	fsys    fs.FS
	seen    map[string]bool
	pending []error
}

func newRecordingFS(fsys fs.FS) *recordingFS {
	return &recordingFS{fsys: fsys, seen: map[string]bool{}}
}

func (r *recordingFS) record(name string, err error) error {
	if err != nil && !IsNotFound(err) && !r.seen[name] {
		r.seen[name] = true
		r.pending = append(r.pending, err)
	}
	return err
}

// take returns the errors recorded since the last call.
func (r *recordingFS) take() []error {
	errs := r.pending
	r.pending = nil
	return errs
}

func (r *recordingFS) Open(name string) (fs.File, error) {
	f, err := r.fsys.Open(name)
	return f, r.record(name, err)
}

func (r *recordingFS) ReadDir(name string) ([]fs.DirEntry, error) {
	entries, err := fs.ReadDir(r.fsys, name)
	return entries, r.record(name, err)
}

func (r *recordingFS) Stat(name string) (fs.FileInfo, error) {
	info, err := fs.Stat(r.fsys, name)
	return info, r.record(name, err)
}
