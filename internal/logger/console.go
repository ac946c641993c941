// Package logger provides diagnostic logging for the findup command.
//
// The search core never logs. The command feeds the levels and entries it
// consumes into a Logger, which decides what reaches the user: per-level
// tallies at debug, unreadable directories and entries at error.
package logger

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/fatih/color"
	"github.com/harrison/findup/internal/findup"
)

// Log level constants for filtering
const (
	levelTrace int = 0
	levelDebug int = 1
	levelInfo  int = 2
	levelWarn  int = 3
	levelError int = 4
)

// Logger receives the diagnostics produced while consuming a search.
type Logger interface {
	LogLevelStart(level findup.Level)
	LogLevelDone(level findup.Level, matches int)
	LogLevelError(level findup.Level, err error)
	LogEntryError(level findup.Level, err error)
	LogSummary(summary Summary)
}

// Summary counts what a search produced.
type Summary struct {
	Levels      int
	Matches     int
	LevelErrors int
	EntryErrors int
	Duration    time.Duration
}

// ConsoleLogger logs to a writer with timestamps and thread safety.
// All output is prefixed with [HH:MM:SS] timestamps.
// Color output is enabled for terminal output (os.Stdout/os.Stderr).
type ConsoleLogger struct {
	writer      io.Writer
	logLevel    string
	mutex       sync.Mutex
	colorOutput bool
}

// NewConsoleLogger creates a ConsoleLogger that writes to the provided io.Writer.
// If writer is nil, messages are silently discarded.
// Valid levels: trace, debug, info, warn, error (case-insensitive).
// If logLevel is empty or invalid, defaults to "info".
func NewConsoleLogger(writer io.Writer, logLevel string) *ConsoleLogger {
	return &ConsoleLogger{
		writer:      writer,
		logLevel:    NormalizeLogLevel(logLevel),
		colorOutput: isTerminal(writer),
	}
}

// isTerminal checks if the writer is a terminal that supports colors.
func isTerminal(w io.Writer) bool {
	if w == nil {
		return false
	}

	if w == os.Stdout || w == os.Stderr {
		// fatih/color honours NO_COLOR and its own TTY detection
		return !color.NoColor
	}

	return false
}

// NormalizeLogLevel lowercases a level and falls back to "info" for
// unknown values.
func NormalizeLogLevel(level string) string {
	normalized := strings.ToLower(strings.TrimSpace(level))
	if IsValidLevel(normalized) {
		return normalized
	}
	return "info"
}

// IsValidLevel reports whether level is one of trace, debug, info, warn, error.
func IsValidLevel(level string) bool {
	switch level {
	case "trace", "debug", "info", "warn", "error":
		return true
	}
	return false
}

func (cl *ConsoleLogger) shouldLog(messageLevel string) bool {
	return logLevelToInt(messageLevel) >= logLevelToInt(cl.logLevel)
}

func logLevelToInt(level string) int {
	switch level {
	case "trace":
		return levelTrace
	case "debug":
		return levelDebug
	case "info":
		return levelInfo
	case "warn":
		return levelWarn
	case "error":
		return levelError
	default:
		return levelInfo
	}
}

// LogTrace logs a trace-level message (most verbose).
// Format: "[HH:MM:SS] [TRACE] <message>"
func (cl *ConsoleLogger) LogTrace(message string) {
	cl.logWithLevel("TRACE", message)
}

// LogDebug logs a debug-level message.
func (cl *ConsoleLogger) LogDebug(message string) {
	cl.logWithLevel("DEBUG", message)
}

// LogWarn logs a warning-level message.
func (cl *ConsoleLogger) LogWarn(message string) {
	cl.logWithLevel("WARN", message)
}

// LogError logs an error-level message.
func (cl *ConsoleLogger) LogError(message string) {
	cl.logWithLevel("ERROR", message)
}

func (cl *ConsoleLogger) logWithLevel(level string, message string) {
	if cl.writer == nil {
		return
	}
	if !cl.shouldLog(strings.ToLower(level)) {
		return
	}

	cl.mutex.Lock()
	defer cl.mutex.Unlock()

	ts := timestamp()
	var formatted string
	if cl.colorOutput {
		formatted = cl.formatWithColor(ts, level, message)
	} else {
		formatted = fmt.Sprintf("[%s] [%s] %s\n", ts, level, message)
	}

	cl.writer.Write([]byte(formatted))
}

func (cl *ConsoleLogger) formatWithColor(ts, level, message string) string {
	var coloredLevel string

	switch level {
	case "TRACE":
		coloredLevel = color.New(color.FgHiBlack).Sprint(level)
	case "DEBUG":
		coloredLevel = color.New(color.FgCyan).Sprint(level)
	case "INFO":
		coloredLevel = color.New(color.FgBlue).Sprint(level)
	case "WARN":
		coloredLevel = color.New(color.FgYellow).Sprint(level)
	case "ERROR":
		coloredLevel = color.New(color.FgRed).Sprint(level)
	default:
		coloredLevel = level
	}

	return fmt.Sprintf("[%s] [%s] %s\n", ts, coloredLevel, message)
}

// LogLevelStart logs the level about to be consumed at TRACE level.
func (cl *ConsoleLogger) LogLevelStart(level findup.Level) {
	cl.LogTrace(fmt.Sprintf("resolving %q in %s", level.Pattern, level.Dir))
}

// LogLevelDone logs the number of matches a level produced at DEBUG level.
func (cl *ConsoleLogger) LogLevelDone(level findup.Level, matches int) {
	cl.LogDebug(fmt.Sprintf("%s: %d matches for %q", level.Ancestor, matches, level.Pattern))
}

// LogLevelError logs a level that could not be resolved.
// Format: "[HH:MM:SS] [ERROR] failed to read a directory: <err>" for
// directory errors, "failed to resolve <pattern> in <ancestor>: <err>" otherwise.
// Missing directories, which only reach the logger when not-found errors are
// reported, are logged at WARN as "no such directory: <err>".
func (cl *ConsoleLogger) LogLevelError(level findup.Level, err error) {
	if findup.IsNotFound(err) {
		cl.LogWarn(fmt.Sprintf("no such directory: %v", err))
		return
	}

	var dirErr *findup.DirectoryError
	if errors.As(err, &dirErr) {
		cl.LogError(fmt.Sprintf("failed to read a directory: %v", err))
		return
	}
	cl.LogError(fmt.Sprintf("failed to resolve %q in %s: %v", level.Pattern, level.Ancestor, err))
}

// LogEntryError logs an entry that could not be read.
// Format: "[HH:MM:SS] [ERROR] failed to read an entry in a directory: <err>",
// or "[WARN] entry vanished: <err>" for a reported not-found entry.
func (cl *ConsoleLogger) LogEntryError(level findup.Level, err error) {
	if findup.IsNotFound(err) {
		cl.LogWarn(fmt.Sprintf("entry vanished: %v", err))
		return
	}
	cl.LogError(fmt.Sprintf("failed to read an entry in a directory: %v", err))
}

// LogSummary logs the totals of a search at DEBUG level.
func (cl *ConsoleLogger) LogSummary(summary Summary) {
	cl.LogDebug(fmt.Sprintf("searched %d levels in %s: %d matches, %d level errors, %d entry errors",
		summary.Levels, formatDuration(summary.Duration), summary.Matches, summary.LevelErrors, summary.EntryErrors))
}

// timestamp returns the current time formatted as HH:MM:SS.
func timestamp() string {
	return time.Now().Format("15:04:05")
}

// formatDuration renders sub-second durations in milliseconds and longer
// ones rounded to the millisecond.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return d.Round(time.Millisecond).String()
}
