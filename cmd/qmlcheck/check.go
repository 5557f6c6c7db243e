package main

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"qmlcheck/internal/diag"
	"qmlcheck/internal/diagfmt"
	"qmlcheck/internal/driver"
	"qmlcheck/internal/project"
	"qmlcheck/internal/source"
)

var checkCmd = &cobra.Command{
	Use:   "check [flags] <file.qml|directory>",
	Short: "Check QML files for semantic errors",
	Long:  `Check a QML file, or every *.qml file under a directory, for unknown types, invalid property names, and incompatible bindings`,
	Args:  cobra.ExactArgs(1),
	RunE:  runCheck,
}

func init() {
	checkCmd.Flags().String("format", "pretty", "output format (pretty|json|short)")
	checkCmd.Flags().Bool("no-warnings", false, "drop warnings from the output")
	checkCmd.Flags().Bool("warnings-as-errors", false, "treat warnings as errors")
	checkCmd.Flags().Bool("ignore-unknown-types", false, "suppress unknown type errors")
	checkCmd.Flags().Bool("check-script-bindings", false, "resolve identifiers inside script bindings (experimental)")
	checkCmd.Flags().Int("jobs", 0, "max parallel workers for directory processing (0=auto)")
	checkCmd.Flags().Bool("with-notes", false, "include diagnostic notes in output")
	checkCmd.Flags().Bool("fullpath", false, "emit absolute file paths in output")
	checkCmd.Flags().Bool("disk-cache", false, "reuse cached results for unchanged files")
	checkCmd.Flags().StringSlice("import-dir", nil, "extra directory whose components join resolution (repeatable)")
	checkCmd.Flags().String("ui", "auto", "interactive progress display (auto|on|off)")
}

func runCheck(cmd *cobra.Command, args []string) error {
	path := args[0]

	format, err := cmd.Flags().GetString("format")
	if err != nil {
		return fmt.Errorf("failed to get format flag: %w", err)
	}
	noWarnings, err := cmd.Flags().GetBool("no-warnings")
	if err != nil {
		return fmt.Errorf("failed to get no-warnings flag: %w", err)
	}
	warningsAsErrors, err := cmd.Flags().GetBool("warnings-as-errors")
	if err != nil {
		return fmt.Errorf("failed to get warnings-as-errors flag: %w", err)
	}
	if noWarnings && warningsAsErrors {
		return fmt.Errorf("no-warnings and warnings-as-errors flags cannot be used together")
	}
	withNotes, err := cmd.Flags().GetBool("with-notes")
	if err != nil {
		return fmt.Errorf("failed to get with-notes flag: %w", err)
	}
	fullPath, err := cmd.Flags().GetBool("fullpath")
	if err != nil {
		return fmt.Errorf("failed to get fullpath flag: %w", err)
	}
	uiFlag, err := cmd.Flags().GetString("ui")
	if err != nil {
		return fmt.Errorf("failed to get ui flag: %w", err)
	}
	showProgress, err := progressEnabled(uiFlag)
	if err != nil {
		return err
	}

	opts, err := driverOptions(cmd, path)
	if err != nil {
		return err
	}

	st, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("failed to stat path: %w", err)
	}

	var (
		fs      *source.FileSet
		results []driver.CheckResult
	)
	if st.IsDir() {
		if showProgress && format == "pretty" {
			fs, results, err = runCheckDirWithUI(cmd.Context(), path, opts)
		} else {
			fs, results, err = driver.CheckDir(cmd.Context(), path, opts)
		}
	} else {
		var result driver.CheckResult
		fs, result, err = driver.CheckFile(path, opts)
		results = []driver.CheckResult{result}
	}
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}

	for _, r := range results {
		switch {
		case noWarnings:
			r.Bag.DropWarnings()
		case warningsAsErrors:
			r.Bag.PromoteWarnings()
		}
	}

	exit := 0
	for _, r := range results {
		if r.Bag.HasErrors() {
			exit = 1
			break
		}
	}

	colorFlag, err := cmd.Root().PersistentFlags().GetString("color")
	if err != nil {
		return err
	}
	useColor := colorFlag == "on" || (colorFlag == "auto" && isTerminal(os.Stdout))
	pathMode := diagfmt.PathModeAuto
	if fullPath {
		pathMode = diagfmt.PathModeAbsolute
	}

	switch format {
	case "pretty":
		prettyOpts := diagfmt.PrettyOpts{
			Color:     useColor,
			Context:   2,
			PathMode:  pathMode,
			ShowNotes: withNotes,
		}
		shown := 0
		for _, r := range results {
			if r.Bag.Len() == 0 {
				continue
			}
			if shown > 0 {
				fmt.Fprintln(os.Stdout)
			}
			shown++
			diagfmt.Pretty(os.Stdout, r.Bag, fs, prettyOpts)
		}
	case "short":
		merged := diag.NewBag(0)
		for _, r := range results {
			merged.Merge(r.Bag)
		}
		merged.Sort()
		if output := diag.FormatShort(merged.Items(), fs); output != "" {
			fmt.Fprint(os.Stdout, output)
		}
	case "json":
		jsonOpts := diagfmt.JSONOpts{
			IncludePositions: true,
			PathMode:         pathMode,
			IncludeNotes:     withNotes,
		}
		output := make(map[string]diagfmt.DiagnosticsOutput, len(results))
		for _, r := range results {
			output[r.Path] = diagfmt.BuildDiagnosticsOutput(r.Bag, fs, jsonOpts)
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(output); err != nil {
			return fmt.Errorf("failed to encode diagnostics output: %w", err)
		}
	default:
		return fmt.Errorf("unknown format: %s", format)
	}

	if exit != 0 {
		// Diagnostics already printed; suppress cobra's usage noise.
		cmd.SilenceUsage = true
		cmd.SilenceErrors = true
		return fmt.Errorf("")
	}
	return nil
}

// progressEnabled decides whether the live progress display runs: the
// --ui flag when explicit, otherwise whether stdout is a terminal.
func progressEnabled(value string) (bool, error) {
	switch strings.TrimSpace(strings.ToLower(value)) {
	case "", "auto":
		return isTerminal(os.Stdout), nil
	case "on":
		return true, nil
	case "off":
		return false, nil
	default:
		return false, fmt.Errorf("invalid --ui value %q (expected auto|on|off)", value)
	}
}

// driverOptions merges manifest defaults with flags; a flag set on the
// command line wins over the manifest.
func driverOptions(cmd *cobra.Command, path string) (driver.Options, error) {
	var opts driver.Options

	startDir := path
	if st, err := os.Stat(path); err == nil && !st.IsDir() {
		startDir = filepath.Dir(path)
	}
	manifest, found, err := project.Load(startDir)
	if err != nil {
		return opts, err
	}
	if found {
		cfg := manifest.Config.Check
		opts.IgnoreUnknownTypes = cfg.IgnoreUnknownTypes
		opts.CheckScriptBindings = cfg.CheckScriptBindings
		opts.Jobs = cfg.Jobs
		opts.MaxDiagnostics = cfg.MaxDiagnostics
		opts.ImportDirs = manifest.ImportDirs()
	}

	flags := cmd.Flags()
	if flags.Changed("ignore-unknown-types") {
		opts.IgnoreUnknownTypes, err = flags.GetBool("ignore-unknown-types")
		if err != nil {
			return opts, err
		}
	}
	if flags.Changed("check-script-bindings") {
		opts.CheckScriptBindings, err = flags.GetBool("check-script-bindings")
		if err != nil {
			return opts, err
		}
	}
	if flags.Changed("jobs") {
		opts.Jobs, err = flags.GetInt("jobs")
		if err != nil {
			return opts, err
		}
	}
	if dirs, err := flags.GetStringSlice("import-dir"); err == nil && len(dirs) > 0 {
		opts.ImportDirs = append(opts.ImportDirs, dirs...)
	}

	maxDiagnostics, err := cmd.Root().PersistentFlags().GetInt("max-diagnostics")
	if err != nil {
		return opts, err
	}
	if maxDiagnostics > 0 {
		opts.MaxDiagnostics = maxDiagnostics
	}

	useCache, err := flags.GetBool("disk-cache")
	if err != nil {
		return opts, err
	}
	if useCache {
		cache, err := driver.OpenDiskCache("qmlcheck")
		if err != nil {
			return opts, fmt.Errorf("failed to open disk cache: %w", err)
		}
		opts.Cache = cache
	}

	return opts, nil
}
