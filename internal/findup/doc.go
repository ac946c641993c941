// Package findup searches a directory and all of its ancestors for relative
// sub-paths.
//
// A search pairs every ancestor of the starting directory (the directory itself
// first, the filesystem root last) with every requested pattern. Each pair is a
// level. Levels are resolved lazily: nothing touches the filesystem until the
// caller pulls the level, and a caller that stops ranging stops all further I/O.
//
// # Matching modes
//
// Three modes are supported and selected once per search:
//
//   - ModeExact: the pattern's final component must equal an entry name byte for byte
//   - ModePrefix: an entry matches when its name starts with the final component
//   - ModeGlob: the whole pattern is handed to a doublestar glob engine
//
// In ModeExact and ModePrefix, leading components of the pattern name a fixed
// directory below each ancestor ("cfg/app.toml" reads "<ancestor>/cfg").
//
// # Errors
//
// Errors are values in the result sequences and never end a search early.
// Level errors (DirectoryError, PathEncodingError, PatternError) are returned
// alongside the level they concern. Entry errors (EntryError, GlobError) are
// returned inside the level's Matches sequence. Not-found errors mean the level
// simply has nothing to offer and are dropped unless WithReportNotFound is set.
//
//	for level, err := range findup.Search(cwd, []string{"go.mod"}) {
//	    if err != nil {
//	        log.Printf("skipping %s: %v", level.Dir, err)
//	        continue
//	    }
//	    for match, err := range level.Matches {
//	        ...
//	    }
//	}
package findup
