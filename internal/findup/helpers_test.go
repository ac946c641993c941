package findup

import (
	"io/fs"
	"iter"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"testing/fstest"
)

// mapFileSystem serves unix-style absolute paths out of an fstest.MapFS and
// records every call made to it.
type mapFileSystem struct {
	files   fstest.MapFS
	errs    map[string]error
	partial map[string]error
	reads   []string
	dirFSs  []string
}

func newMapFileSystem(t *testing.T, files ...string) *mapFileSystem {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses unix-style absolute paths")
	}

	m := &mapFileSystem{
		files:   fstest.MapFS{},
		errs:    map[string]error{},
		partial: map[string]error{},
	}
	for _, f := range files {
		if strings.HasSuffix(f, "/") {
			m.files[mapKey(f)] = &fstest.MapFile{Mode: fs.ModeDir | 0o755}
			continue
		}
		m.files[mapKey(f)] = &fstest.MapFile{Data: []byte("x")}
	}
	return m
}

func mapKey(name string) string {
	key := strings.Trim(filepath.ToSlash(name), "/")
	if key == "" {
		return "."
	}
	return key
}

func (m *mapFileSystem) ReadDir(name string) ([]fs.DirEntry, error) {
	m.reads = append(m.reads, name)
	if err, ok := m.errs[name]; ok {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}

	entries, err := fs.ReadDir(m.files, mapKey(name))
	if err != nil {
		return nil, err
	}
	if err, ok := m.partial[name]; ok {
		return entries, &fs.PathError{Op: "readdirent", Path: name, Err: err}
	}
	return entries, nil
}

func (m *mapFileSystem) DirFS(dir string) fs.FS {
	m.dirFSs = append(m.dirFSs, dir)
	sub, err := fs.Sub(m.files, mapKey(dir))
	if err != nil {
		panic(err)
	}
	return sub
}

// levelResult is a fully drained Level with errors rendered as text.
type levelResult struct {
	Ancestor string
	Pattern  string
	Err      string
	Matches  []string
	Errs     []string
}

func drain(seq iter.Seq2[Level, error]) []levelResult {
	var results []levelResult
	for level, err := range seq {
		r := levelResult{Ancestor: level.Ancestor, Pattern: level.Pattern}
		if err != nil {
			r.Err = err.Error()
			results = append(results, r)
			continue
		}
		for match, err := range level.Matches {
			if err != nil {
				r.Errs = append(r.Errs, err.Error())
				continue
			}
			r.Matches = append(r.Matches, match)
		}
		results = append(results, r)
	}
	return results
}

func allMatches(results []levelResult) []string {
	var matches []string
	for _, r := range results {
		matches = append(matches, r.Matches...)
	}
	return matches
}
