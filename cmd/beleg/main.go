package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"beleg/internal/diag"
	"beleg/internal/version"
)

var rootCmd = &cobra.Command{
	Use:   "beleg",
	Short: "Beleg language front end",
	Long:  `Beleg tokenizes and parses Beleg sources and reports diagnostics`,
}

func main() {
	// Версия для автоматического флага --version
	rootCmd.Version = version.Version

	rootCmd.AddCommand(tokenizeCmd)
	rootCmd.AddCommand(parseCmd)
	rootCmd.AddCommand(scanCmd)
	rootCmd.AddCommand(versionCmd)

	// Глобальные флаги
	defaults := diag.DefaultOptions()
	rootCmd.PersistentFlags().String("color", "auto", "colorize output (auto|always|never)")
	rootCmd.PersistentFlags().Bool("ascii", false, "draw diagnostics with ASCII frames")
	rootCmd.PersistentFlags().Bool("quiet", false, "suppress non-essential output")
	rootCmd.PersistentFlags().Bool("timings", false, "show timing information")
	rootCmd.PersistentFlags().Uint32("max-errors", defaults.MaxErrors, "stop reporting after this many errors")
	rootCmd.PersistentFlags().Uint32("max-warnings", defaults.MaxWarnings, "stop reporting after this many warnings")
	rootCmd.PersistentFlags().String("cpu-profile", "", "write a CPU profile to the given file")
	rootCmd.PersistentFlags().String("mem-profile", "", "write a heap profile to the given file on exit")
	rootCmd.PersistentFlags().String("runtime-trace", "", "write a runtime trace to the given file")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// isTerminal проверяет, является ли файл терминалом
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
