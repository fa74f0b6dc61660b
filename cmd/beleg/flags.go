package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"beleg/internal/diag"
	"beleg/internal/diagfmt"
)

type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func readColorMode(cmd *cobra.Command) (colorMode, error) {
	value, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return "", fmt.Errorf("failed to get color flag: %w", err)
	}
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return colorAuto, nil
	case "always":
		return colorAlways, nil
	case "never":
		return colorNever, nil
	default:
		return "", fmt.Errorf("invalid --color value %q (expected auto|always|never)", value)
	}
}

func shouldColor(mode colorMode, f *os.File) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	default:
		return isTerminal(f)
	}
}

// diagOptionsFromFlags собирает политику объёма диагностик.
func diagOptionsFromFlags(cmd *cobra.Command) (diag.Options, error) {
	opts := diag.DefaultOptions()

	maxErrors, err := cmd.Root().PersistentFlags().GetUint32("max-errors")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-errors flag: %w", err)
	}
	maxWarnings, err := cmd.Root().PersistentFlags().GetUint32("max-warnings")
	if err != nil {
		return opts, fmt.Errorf("failed to get max-warnings flag: %w", err)
	}

	opts.MaxErrors = maxErrors
	opts.MaxWarnings = maxWarnings
	return opts, nil
}

// prettyOptionsFromFlags настраивает рендер диагностик под вывод в f.
func prettyOptionsFromFlags(cmd *cobra.Command, f *os.File) (diagfmt.Options, error) {
	mode, err := readColorMode(cmd)
	if err != nil {
		return diagfmt.Options{}, err
	}
	ascii, err := cmd.Root().PersistentFlags().GetBool("ascii")
	if err != nil {
		return diagfmt.Options{}, fmt.Errorf("failed to get ascii flag: %w", err)
	}

	opts := diagfmt.DefaultOptions()
	opts.Color = shouldColor(mode, f)
	opts.Unicode = !ascii
	return opts, nil
}
