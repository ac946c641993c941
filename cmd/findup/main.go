package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/harrison/findup/internal/cmd"
	"github.com/harrison/findup/internal/findup"
)

func main() {
	rootCmd := cmd.NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// No match is an answer, not a failure worth a message.
		if !errors.Is(err, findup.ErrNoMatch) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
