package findup

import (
	"errors"
	"fmt"
	"iter"
	"path/filepath"
	"strings"
)

// ErrNoMatch is returned by First when no level produced a match.
var ErrNoMatch = errors.New("no match found")

// Mode selects how a pattern is matched at each level.
type Mode int

const (
	// ModeExact matches entries whose name equals the pattern's final component.
	ModeExact Mode = iota
	// ModePrefix matches entries whose name starts with the pattern's final component.
	ModePrefix
	// ModeGlob matches the whole pattern with a glob engine.
	ModeGlob
)

func (m Mode) String() string {
	switch m {
	case ModeExact:
		return "exact"
	case ModePrefix:
		return "prefix"
	case ModeGlob:
		return "glob"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode converts "exact", "prefix" or "glob" (case-insensitive) to a Mode.
func ParseMode(s string) (Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "exact":
		return ModeExact, nil
	case "prefix":
		return ModePrefix, nil
	case "glob":
		return ModeGlob, nil
	}
	return 0, fmt.Errorf("unknown match mode %q, must be one of: exact, prefix, glob", s)
}

// Order selects the order in which levels are produced.
type Order int

const (
	// AncestorMajor resolves every pattern at one ancestor before moving up.
	AncestorMajor Order = iota
	// PatternMajor walks all ancestors for one pattern before the next pattern.
	PatternMajor
)

func (o Order) String() string {
	switch o {
	case AncestorMajor:
		return "ancestor"
	case PatternMajor:
		return "pattern"
	default:
		return fmt.Sprintf("Order(%d)", int(o))
	}
}

// ParseOrder converts "ancestor" or "pattern" (case-insensitive) to an Order.
func ParseOrder(s string) (Order, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "ancestor":
		return AncestorMajor, nil
	case "pattern":
		return PatternMajor, nil
	}
	return 0, fmt.Errorf("unknown search order %q, must be one of: ancestor, pattern", s)
}

// Level is one (ancestor, pattern) pair of a search.
type Level struct {
	// Ancestor is the ancestor directory of the starting directory.
	Ancestor string
	// Pattern is the pattern as given by the caller.
	Pattern string
	// Dir is the directory the level reads: the ancestor joined with the
	// pattern's leading components, or the glob engine's literal base.
	Dir string
	// Matches yields matched paths and entry errors. It is nil when the level
	// failed and is safe to range over more than once.
	Matches iter.Seq2[string, error]
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithMode sets the matching mode. The default is ModeExact.
func WithMode(mode Mode) Option {
	return func(s *Searcher) { s.mode = mode }
}

// WithOrder sets the level order. The default is AncestorMajor.
func WithOrder(order Order) Option {
	return func(s *Searcher) { s.order = order }
}

// WithFileSystem replaces the host filesystem.
func WithFileSystem(fsys FileSystem) Option {
	return func(s *Searcher) { s.fsys = fsys }
}

// WithReportNotFound surfaces not-found errors instead of treating the level
// or entry as empty.
func WithReportNotFound(report bool) Option {
	return func(s *Searcher) { s.reportNotFound = report }
}

// Searcher resolves patterns against a directory and its ancestors.
// It holds no state between searches.
type Searcher struct {
	mode           Mode
	order          Order
	fsys           FileSystem
	reportNotFound bool
}

// NewSearcher returns a Searcher configured by opts.
func NewSearcher(opts ...Option) *Searcher {
	s := &Searcher{
		mode:  ModeExact,
		order: AncestorMajor,
		fsys:  OSFileSystem{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Search is shorthand for NewSearcher(opts...).Search(start, patterns).
func Search(start string, patterns []string, opts ...Option) iter.Seq2[Level, error] {
	return NewSearcher(opts...).Search(start, patterns)
}

// Search yields one Level per (ancestor, pattern) pair. A pair is resolved
// only when it is pulled, so stopping early stops all further I/O. A non-nil
// error belongs to the level it is yielded with and does not end the search.
func (s *Searcher) Search(start string, patterns []string) iter.Seq2[Level, error] {
	return func(yield func(Level, error) bool) {
		for ancestor, pattern := range s.pairs(start, patterns) {
			if !yield(s.resolve(ancestor, pattern)) {
				return
			}
		}
	}
}

// First returns the first match of a search. When nothing matched, the error
// wraps ErrNoMatch together with every error met on the way.
func (s *Searcher) First(start string, patterns []string) (string, error) {
	errs := []error{ErrNoMatch}
	for level, err := range s.Search(start, patterns) {
		if err != nil {
			errs = append(errs, err)
			continue
		}
		for match, err := range level.Matches {
			if err != nil {
				errs = append(errs, err)
				continue
			}
			return match, nil
		}
	}
	return "", errors.Join(errs...)
}

func (s *Searcher) pairs(start string, patterns []string) iter.Seq2[string, string] {
	if s.order == PatternMajor {
		return func(yield func(string, string) bool) {
			for _, pattern := range patterns {
				for ancestor := range Ancestors(start) {
					if !yield(ancestor, pattern) {
						return
					}
				}
			}
		}
	}

	return func(yield func(string, string) bool) {
		for ancestor := range Ancestors(start) {
			for _, pattern := range patterns {
				if !yield(ancestor, pattern) {
					return
				}
			}
		}
	}
}

// resolve performs the I/O for one level.
func (s *Searcher) resolve(ancestor, pattern string) (Level, error) {
	level := Level{Ancestor: ancestor, Pattern: pattern}
	if filepath.IsAbs(pattern) || (pattern != "" && filepath.VolumeName(pattern) != "") {
		return level, &PatternError{Pattern: pattern, Err: ErrAbsolutePattern}
	}

	var (
		matches iter.Seq2[string, error]
		err     error
	)
	switch s.mode {
	case ModeGlob:
		var rest string
		level.Dir, rest, err = globBase(ancestor, pattern)
		if err == nil {
			matches = resolveGlob(s.fsys, level.Dir, rest)
		}
	case ModeExact, ModePrefix:
		sub, name := splitPattern(pattern)
		level.Dir = filepath.Join(ancestor, sub)
		matches, err = resolveLiteral(s.fsys, level.Dir, name, s.mode == ModePrefix)
	default:
		return level, fmt.Errorf("unknown match mode %v", s.mode)
	}

	if err != nil {
		if !s.reportNotFound && IsNotFound(err) {
			level.Matches = emptyMatches
			return level, nil
		}
		return level, err
	}

	level.Matches = s.filterEntries(matches)
	return level, nil
}

// filterEntries drops not-found entry errors unless they are reported.
func (s *Searcher) filterEntries(matches iter.Seq2[string, error]) iter.Seq2[string, error] {
	if s.reportNotFound {
		return matches
	}
	return func(yield func(string, error) bool) {
		for match, err := range matches {
			if err != nil && IsNotFound(err) {
				continue
			}
			if !yield(match, err) {
				return
			}
		}
	}
}

func emptyMatches(func(string, error) bool) {}
