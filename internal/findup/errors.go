package findup

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// ErrAbsolutePattern is wrapped by a PatternError for patterns that are not
// relative paths.
var ErrAbsolutePattern = errors.New("pattern must be a relative path")

// DirectoryError reports a candidate directory that could not be listed.
type DirectoryError struct {
	Dir string
	Err error
}

func (e *DirectoryError) Error() string {
	return fmt.Sprintf("read directory %s: %v", e.Dir, e.Err)
}

func (e *DirectoryError) Unwrap() error { return e.Err }

// PathEncodingError reports a path that has to be handed to the glob engine
// but is not valid UTF-8. Path holds the raw bytes.
type PathEncodingError struct {
	Path string
}

func (e *PathEncodingError) Error() string {
	return fmt.Sprintf("path is not valid UTF-8: %q", e.Path)
}

// PatternError reports a pattern that cannot be used at all.
type PatternError struct {
	Pattern string
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// EntryError reports a failure while listing entries of a directory that
// was opened successfully.
type EntryError struct {
	Dir string
	Err error
}

func (e *EntryError) Error() string {
	return fmt.Sprintf("read entry in %s: %v", e.Dir, e.Err)
}

func (e *EntryError) Unwrap() error { return e.Err }

// GlobError reports an I/O failure raised by the glob engine.
type GlobError struct {
	Pattern string
	Err     error
}

func (e *GlobError) Error() string {
	return fmt.Sprintf("glob %s: %v", e.Pattern, e.Err)
}

func (e *GlobError) Unwrap() error { return e.Err }

// IsNotFound reports whether err means the thing looked for is simply absent:
// the path does not exist, or one of its leading components is a file.
func IsNotFound(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR)
}
