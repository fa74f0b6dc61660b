package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"beleg/internal/diag"
	"beleg/internal/diagfmt"
	"beleg/internal/driver"
	"beleg/internal/project"
	"beleg/internal/source"
)

var parseCmd = &cobra.Command{
	Use:   "parse [flags] [file.bl|directory]",
	Short: "Parse a Beleg source file, directory or the current project",
	Long: `Parse runs the front end over a single file or over every Beleg
source under a directory. Without an argument it looks for the
enclosing package.toml and parses that project.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	parseCmd.Flags().Bool("json", false, "emit diagnostics as JSON on stdout")
	parseCmd.Flags().Bool("progress", false, "show per-file progress (TTY only)")
	parseCmd.Flags().Bool("no-cache", false, "disable the on-disk parse cache")
	parseCmd.Flags().Int("jobs", 0, "max parallel workers for directories (0=auto)")
}

func runParse(cmd *cobra.Command, args []string) error {
	cleanup, err := setupProfiling(cmd)
	if err != nil {
		return err
	}
	defer cleanup()

	target, isDir, err := parseTarget(args)
	if err != nil {
		return err
	}
	if isDir {
		return runParseDir(cmd, target)
	}
	return runParseFile(cmd, target)
}

// parseTarget определяет, что разбирать: аргумент или корень проекта.
func parseTarget(args []string) (string, bool, error) {
	if len(args) == 1 {
		st, err := os.Stat(args[0])
		if err != nil {
			return "", false, fmt.Errorf("failed to stat path: %w", err)
		}
		return args[0], st.IsDir(), nil
	}

	cwd, err := os.Getwd()
	if err != nil {
		return "", false, err
	}
	root, ok, err := project.FindProjectRoot(cwd)
	if err != nil {
		return "", false, err
	}
	if !ok {
		return "", false, fmt.Errorf("no %s found from %s upwards; pass a file or directory", project.ManifestName, cwd)
	}
	return root, true, nil
}

func runParseFile(cmd *cobra.Command, path string) error {
	dopts, err := diagOptionsFromFlags(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to load file: %w", err)
	}

	run := diag.NewContext(dopts)
	collect := diag.NewCollectEmitter()
	run.AddEmitter(collect)

	sm := source.NewSourceMap()
	result := driver.ParseFile(sm, path, content, run)
	collect.Sort()

	if timings {
		result.Timer.Report(os.Stderr)
	}
	if err := reportDiags(cmd, collect.Diags(), sm, asJSON); err != nil {
		return err
	}
	if !quiet && !asJSON {
		fmt.Fprintf(os.Stdout, "parsed %s: %d nodes, %d tokens\n",
			path, result.Tree.Len()-1, result.TokenCount)
	}
	return failOnErrors(cmd, run)
}

func runParseDir(cmd *cobra.Command, root string) error {
	dopts, err := diagOptionsFromFlags(cmd)
	if err != nil {
		return err
	}
	quiet, err := cmd.Root().PersistentFlags().GetBool("quiet")
	if err != nil {
		return fmt.Errorf("failed to get quiet flag: %w", err)
	}
	timings, err := cmd.Root().PersistentFlags().GetBool("timings")
	if err != nil {
		return fmt.Errorf("failed to get timings flag: %w", err)
	}
	asJSON, err := cmd.Flags().GetBool("json")
	if err != nil {
		return fmt.Errorf("failed to get json flag: %w", err)
	}
	progress, err := cmd.Flags().GetBool("progress")
	if err != nil {
		return fmt.Errorf("failed to get progress flag: %w", err)
	}
	noCache, err := cmd.Flags().GetBool("no-cache")
	if err != nil {
		return fmt.Errorf("failed to get no-cache flag: %w", err)
	}
	jobs, err := cmd.Flags().GetInt("jobs")
	if err != nil {
		return fmt.Errorf("failed to get jobs flag: %w", err)
	}

	opts := driver.Options{Jobs: jobs, Diag: dopts}
	if !noCache {
		// Недоступный кэш не мешает разбору
		if cache, err := driver.OpenDiskCache("beleg"); err == nil {
			opts.Cache = cache
		}
	}

	run := diag.NewContext(dopts)
	collect := diag.NewCollectEmitter()
	run.AddEmitter(collect)

	var res *driver.DirResult
	if progress && !asJSON && isTerminal(os.Stdout) {
		res, err = runParseDirWithUI(cmd, fmt.Sprintf("parsing %s", root), root, run, opts)
	} else {
		res, err = driver.ParseDir(cmd.Context(), root, run, opts)
	}
	if err != nil {
		return fmt.Errorf("parsing failed: %w", err)
	}

	if timings {
		res.Timer.Report(os.Stderr)
	}
	if err := reportDiags(cmd, collect.Diags(), res.SourceMap, asJSON); err != nil {
		return err
	}
	if !quiet && !asJSON {
		cached := 0
		for i := range res.Files {
			if res.Files[i].Cached {
				cached++
			}
		}
		fmt.Fprintf(os.Stdout, "parsed %d files (%d cached): %d errors, %d warnings\n",
			len(res.Files), cached, run.ErrorCount(), run.WarningCount())
	}
	return failOnErrors(cmd, run)
}

// reportDiags печатает диагностики: pretty в stderr или JSON в stdout.
func reportDiags(cmd *cobra.Command, diags []diag.Diag, sm *source.SourceMap, asJSON bool) error {
	if asJSON {
		return diagfmt.JSON(os.Stdout, diags, sm, diagfmt.JSONOpts{IncludePositions: true})
	}
	if len(diags) == 0 {
		return nil
	}
	popts, err := prettyOptionsFromFlags(cmd, os.Stderr)
	if err != nil {
		return err
	}
	diagfmt.Pretty(os.Stderr, diags, sm, popts)
	return nil
}

// failOnErrors возвращает ненулевой код выхода при ошибках разбора.
func failOnErrors(cmd *cobra.Command, run *diag.Context) error {
	n := run.ErrorCount()
	if n == 0 {
		return nil
	}
	cmd.SilenceUsage = true
	return fmt.Errorf("parse failed with %d error(s)", n)
}
