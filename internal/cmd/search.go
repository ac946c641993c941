package cmd

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/harrison/findup/internal/config"
	"github.com/harrison/findup/internal/display"
	"github.com/harrison/findup/internal/findup"
	"github.com/harrison/findup/internal/logger"
	"github.com/spf13/cobra"
)

// errNoPatterns is returned when neither arguments nor the config name a pattern.
var errNoPatterns = errors.New("requires at least one PATTERN argument or patterns in the config file")

func addSearchFlags(cmd *cobra.Command) {
	cmd.Flags().BoolP("prefix-match", "p", false, "Match entries whose name starts with the pattern's last component")
	cmd.Flags().BoolP("glob", "g", false, "Treat patterns as glob patterns (*, ?, [...], {a,b}, **)")
	cmd.Flags().BoolP("first", "1", false, "Stop after the first match")
	cmd.Flags().String("order", "", "Level order: ancestor (all patterns per directory) or pattern (all directories per pattern)")
	cmd.Flags().StringP("from", "C", "", "Start from this directory instead of the working directory")
	cmd.Flags().BoolP("print0", "0", false, "Terminate each match with NUL instead of newline")
	cmd.Flags().Bool("report-not-found", false, "Report directories that do not exist instead of skipping them")
	cmd.Flags().String("log-level", "", "Diagnostic verbosity: trace, debug, info, warn, error")
	cmd.Flags().String("config", "", "Path to config file (default: nearest .findup.yaml)")

	cmd.MarkFlagsMutuallyExclusive("prefix-match", "glob")
}

// runSearchCommand implements the root command logic
func runSearchCommand(cmd *cobra.Command, args []string) error {
	start, err := startDirectory(cmd)
	if err != nil {
		return err
	}

	configPath, _ := cmd.Flags().GetString("config")
	cfg, loadedFrom, err := config.Load(start, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	mergeFlags(cmd, cfg)
	if err := cfg.Validate(); err != nil {
		if loadedFrom != "" {
			return fmt.Errorf("invalid configuration in %s: %w", loadedFrom, err)
		}
		return fmt.Errorf("invalid configuration: %w", err)
	}

	patterns := args
	if len(patterns) == 0 {
		patterns = cfg.Patterns
	}
	if len(patterns) == 0 {
		return errNoPatterns
	}

	log := logger.NewConsoleLogger(cmd.ErrOrStderr(), cfg.LogLevel)
	if loadedFrom != "" {
		log.LogDebug(fmt.Sprintf("loaded config from %s", loadedFrom))
	}

	return runSearch(cmd, start, patterns, cfg, log)
}

// startDirectory resolves --from, or the working directory, to an absolute path.
func startDirectory(cmd *cobra.Command) (string, error) {
	from, _ := cmd.Flags().GetString("from")
	if from == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return cwd, nil
	}

	abs, err := filepath.Abs(from)
	if err != nil {
		return "", fmt.Errorf("resolve start directory %s: %w", from, err)
	}
	return abs, nil
}

// mergeFlags applies the flags the user actually set on top of cfg.
func mergeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()

	var mode *string
	if flags.Changed("prefix-match") {
		m := findup.ModeExact.String()
		if on, _ := flags.GetBool("prefix-match"); on {
			m = findup.ModePrefix.String()
		}
		mode = &m
	}
	if flags.Changed("glob") {
		m := findup.ModeExact.String()
		if on, _ := flags.GetBool("glob"); on {
			m = findup.ModeGlob.String()
		}
		mode = &m
	}

	cfg.MergeWithFlags(
		mode,
		changedString(cmd, "order"),
		changedString(cmd, "log-level"),
		changedBool(cmd, "first"),
		changedBool(cmd, "report-not-found"),
		changedBool(cmd, "print0"),
	)
}

func changedString(cmd *cobra.Command, name string) *string {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetString(name)
	return &v
}

func changedBool(cmd *cobra.Command, name string) *bool {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	v, _ := cmd.Flags().GetBool(name)
	return &v
}

// runSearch consumes the search, printing matches to stdout and diagnostics
// through log. It returns findup.ErrNoMatch when nothing was printed.
func runSearch(cmd *cobra.Command, start string, patterns []string, cfg *config.Config, log logger.Logger) error {
	printer := display.NewMatchPrinter(cmd.OutOrStdout(), cfg.Print0)
	searcher := findup.NewSearcher(cfg.SearchOptions()...)

	summary := logger.Summary{}
	began := time.Now()
	defer func() {
		summary.Duration = time.Since(began)
		log.LogSummary(summary)
	}()

levels:
	for level, err := range searcher.Search(start, patterns) {
		summary.Levels++
		log.LogLevelStart(level)
		if err != nil {
			summary.LevelErrors++
			log.LogLevelError(level, err)
			continue
		}

		found := 0
		for match, err := range level.Matches {
			if err != nil {
				summary.EntryErrors++
				log.LogEntryError(level, err)
				continue
			}
			if err := printer.Print(match); err != nil {
				return fmt.Errorf("write match: %w", err)
			}
			found++
			summary.Matches++
			if cfg.First {
				log.LogLevelDone(level, found)
				break levels
			}
		}
		log.LogLevelDone(level, found)
	}

	if summary.Matches == 0 {
		return findup.ErrNoMatch
	}
	return nil
}
