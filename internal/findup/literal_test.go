package findup

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitPattern(t *testing.T) {
	tests := []struct {
		pattern  string
		wantDir  string
		wantName string
	}{
		{pattern: "config.toml", wantDir: "", wantName: "config.toml"},
		{pattern: "a/b/config.toml", wantDir: "a/b/", wantName: "config.toml"},
		{pattern: "a/", wantDir: "a/", wantName: ""},
		{pattern: "", wantDir: "", wantName: ""},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			dir, name := splitPattern(filepath.FromSlash(tt.pattern))
			assert.Equal(t, filepath.FromSlash(tt.wantDir), dir)
			assert.Equal(t, tt.wantName, name)
		})
	}
}

func TestMatchName(t *testing.T) {
	assert.True(t, matchName("build", "build", false))
	assert.False(t, matchName("build-debug", "build", false))
	assert.False(t, matchName("Build", "build", false))
	assert.True(t, matchName("build-debug", "build", true))
	assert.False(t, matchName("rebuild", "build", true))
	assert.True(t, matchName("anything", "", true))
	assert.True(t, matchName("\xff\xferaw", "\xff\xfe", true))
	assert.False(t, matchName("\xff\xferaw", "\xff\xfd", true))
}

func writeTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, f := range files {
		path := filepath.Join(root, filepath.FromSlash(f))
		if f[len(f)-1] == '/' {
			require.NoError(t, os.MkdirAll(path, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte("test content"), 0o644))
	}
}

// onlyUnder keeps the levels at or below root so that files outside the
// test's temporary directory cannot influence results.
func onlyUnder(root string, results []levelResult) []levelResult {
	var kept []levelResult
	for _, r := range results {
		if rel, err := filepath.Rel(root, r.Ancestor); err == nil && filepath.IsLocal(rel) || r.Ancestor == root {
			kept = append(kept, r)
		}
	}
	return kept
}

func TestSearchHostFileSystem(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a/b/c/", "a/b/config.toml", "a/marker-1", "a/marker-2", "a/b/c/sub.toml/")
	start := filepath.Join(root, "a", "b", "c")

	t.Run("exact", func(t *testing.T) {
		matches := allMatches(onlyUnder(root, drain(Search(start, []string{"config.toml"}))))
		assert.Equal(t, []string{filepath.Join(root, "a", "b", "config.toml")}, matches)
	})

	t.Run("prefix", func(t *testing.T) {
		matches := allMatches(onlyUnder(root, drain(Search(start, []string{"marker-"}, WithMode(ModePrefix)))))
		assert.ElementsMatch(t, []string{
			filepath.Join(root, "a", "marker-1"),
			filepath.Join(root, "a", "marker-2"),
		}, matches)
	})

	t.Run("glob", func(t *testing.T) {
		matches := allMatches(onlyUnder(root, drain(Search(start, []string{"*.toml"}, WithMode(ModeGlob)))))
		assert.ElementsMatch(t, []string{
			filepath.Join(root, "a", "b", "c", "sub.toml"),
			filepath.Join(root, "a", "b", "config.toml"),
		}, matches)
	})
}

func TestSearchThroughFileIsAbsence(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, "a/notadir")

	for level, err := range Search(filepath.Join(root, "a"), []string{"notadir/x"}) {
		require.NoError(t, err, "level %s", level.Dir)
	}
}

func TestSearchPermissionDenied(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not enforced on windows")
	}
	if os.Geteuid() == 0 {
		t.Skip("root ignores directory permissions")
	}

	root := t.TempDir()
	writeTree(t, root, "a/b/c/", "a/b/target", "a/target", "a/b/c/target")
	locked := filepath.Join(root, "a", "b")
	require.NoError(t, os.Chmod(locked, 0o300))
	t.Cleanup(func() { os.Chmod(locked, 0o755) })

	results := onlyUnder(root, drain(Search(filepath.Join(root, "a", "b", "c"), []string{"target"})))
	require.Len(t, results, 4)
	assert.Equal(t, []string{filepath.Join(root, "a", "b", "c", "target")}, results[0].Matches)
	assert.Contains(t, results[1].Err, "permission denied")
	assert.Equal(t, []string{filepath.Join(root, "a", "target")}, results[2].Matches)
	assert.Empty(t, results[3].Matches)
}

func TestSearchRawByteNames(t *testing.T) {
	if runtime.GOOS != "linux" {
		t.Skip("needs a filesystem that accepts arbitrary bytes in names")
	}

	root := t.TempDir()
	name := "\xff\xferaw.bin"
	if err := os.WriteFile(filepath.Join(root, name), nil, 0o644); err != nil {
		t.Skipf("filesystem rejected non-UTF-8 name: %v", err)
	}

	t.Run("exact", func(t *testing.T) {
		matches := allMatches(onlyUnder(root, drain(Search(root, []string{name}))))
		assert.Equal(t, []string{filepath.Join(root, name)}, matches)
	})

	t.Run("prefix", func(t *testing.T) {
		matches := allMatches(onlyUnder(root, drain(Search(root, []string{"\xff"}, WithMode(ModePrefix)))))
		assert.Equal(t, []string{filepath.Join(root, name)}, matches)
	})

	t.Run("glob reports encoding", func(t *testing.T) {
		level, err := NewSearcher(WithMode(ModeGlob)).resolve(root, "\xff*")
		var encErr *PathEncodingError
		require.ErrorAs(t, err, &encErr)
		assert.Equal(t, filepath.Join(root, "\xff*"), encErr.Path)
		assert.Nil(t, level.Matches)
	})
}
