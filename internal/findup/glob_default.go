//go:build !windows

package findup

import "github.com/bmatcuk/doublestar/v4"

// globOptions keeps matching case-sensitive and leaves dotfiles alone unless a
// pattern segment names them. Read failures reach the caller through
// recordingFS, so the engine is left to skip them.
func globOptions() []doublestar.GlobOption {
	return []doublestar.GlobOption{
		doublestar.WithNoHidden(),
	}
}
