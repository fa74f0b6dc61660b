package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"beleg/internal/diagfmt"
	"beleg/internal/driver"
)

var tokenizeCmd = &cobra.Command{
	Use:   "tokenize [flags] <file.bl>",
	Short: "Tokenize a Beleg source file",
	Long:  `Tokenize splits a Beleg source file into tokens, comments included`,
	Args:  cobra.ExactArgs(1),
	RunE:  runTokenize,
}

func init() {
	tokenizeCmd.Flags().Bool("json", false, "emit tokens as JSON")
}

func runTokenize(cmd *cobra.Command, args []string) error {
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}

	result, err := driver.TokenizeFile(args[0])
	if err != nil {
		return fmt.Errorf("tokenization failed: %w", err)
	}
	if timings {
		result.Timer.Report(os.Stderr)
	}

	file := result.SourceMap.GetFile(result.FileID)
	if asJSON {
		return diagfmt.FormatTokensJSON(os.Stdout, result.Tokens, file)
	}
	return diagfmt.FormatTokensPretty(os.Stdout, result.Tokens, file)
}
