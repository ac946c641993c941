//go:build windows

package findup

import "github.com/bmatcuk/doublestar/v4"

// globOptions matches case-insensitively, as the Windows filesystems do.
func globOptions() []doublestar.GlobOption {
	return []doublestar.GlobOption{
		doublestar.WithCaseInsensitive(),
		doublestar.WithNoHidden(),
	}
}
