// i18nlint — hardcoded-string detector and translation-key reconciler for
// UI source trees.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/i18nlint/i18nlint/analyze"
	"github.com/i18nlint/i18nlint/classify"
	"github.com/i18nlint/i18nlint/config"
	"github.com/i18nlint/i18nlint/locales"
	"github.com/i18nlint/i18nlint/scan"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// ANSI colors
const (
	colorReset  = "\033[0m"
	colorRed    = "\033[0;31m"
	colorGreen  = "\033[0;32m"
	colorYellow = "\033[1;33m"
	colorBlue   = "\033[0;34m"
)

func logInfo(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorBlue+"[INFO]"+colorReset+" "+format+"\n", args...)
}

func logSuccess(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorGreen+"[OK]"+colorReset+" "+format+"\n", args...)
}

func logWarning(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorYellow+"[WARN]"+colorReset+" "+format+"\n", args...)
}

func logError(format string, args ...any) {
	fmt.Fprintf(os.Stderr, colorRed+"[ERROR]"+colorReset+" "+format+"\n", args...)
}

// ---------------------------------------------------------------------------
// Global flag
// ---------------------------------------------------------------------------

var rootDir string

// ---------------------------------------------------------------------------
// Root command
// ---------------------------------------------------------------------------

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "i18nlint",
		Short: "Find hardcoded UI strings and missing translation keys",
		Long: `i18nlint — hardcoded-string detector and translation-key reconciler.

Scans a UI source tree for string literals that are likely user-facing text
needing localization, and cross-checks the translation keys referenced in
code against the keys defined per locale.

Commands:
  check       Run the full analysis and print the inspection report
  keys        Show used translation keys and per-locale gaps
  status      Show detected project layout and locale catalogs

Suppression annotations (recognized in any comment style):
  i18n-ignore             ignore literals on this line
  i18n-ignore-block       start ignoring (until i18n-ignore-block-end)
  i18n-ignore-block-end   stop ignoring
  i18n-ignore-file        ignore the entire file`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global persistent flag — inherited by all subcommands
	root.PersistentFlags().StringVar(&rootDir, "root", ".", "Project root directory")

	root.AddCommand(
		newCheckCmd(),
		newKeysCmd(),
		newStatusCmd(),
		newVersionCmd(),
	)

	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		logError("%v", err)
		os.Exit(1)
	}
}

// ---------------------------------------------------------------------------
// version (display version information)
// ---------------------------------------------------------------------------

func newVersionCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display version, commit hash, and build date.`,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("i18nlint version %s\n", version)
			fmt.Printf("  commit:    %s\n", commit)
			fmt.Printf("  built:     %s\n", date)
		},
	}

	return cmd
}

// ---------------------------------------------------------------------------
// check (full analysis: hardcoded strings + key reconciliation)
// ---------------------------------------------------------------------------

func newCheckCmd() *cobra.Command {
	var strict bool
	var showIgnored bool

	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the full analysis and print the inspection report",
		Long: `Scan source files for hardcoded user-facing strings, reconcile used
translation keys against every locale catalog, and print an inspection
report with file and line numbers.

By default the report is informational and the exit code is 0. With
--strict, any issue or missing key exits non-zero for CI gating.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(strict, showIgnored)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "Exit non-zero on issues or missing keys")
	cmd.Flags().BoolVar(&showIgnored, "show-ignored", false, "List suppressed strings in the report")

	return cmd
}

func runCheck(strict, showIgnored bool) error {
	report, catalogs, err := runAnalysis()
	if err != nil {
		return err
	}

	printHeader("i18n check")

	for _, c := range catalogs {
		logInfo("%s: %d defined keys (%s)", c.Locale, len(c.Keys), c.Path)
	}

	issues := report.Issues()
	if len(issues) > 0 {
		fmt.Fprintf(os.Stderr, "\n%sHardcoded strings requiring translation%s\n", colorRed, colorReset)
		currentFile := ""
		for _, f := range issues {
			if f.File != currentFile {
				currentFile = f.File
				fmt.Fprintf(os.Stderr, "  %s\n", f.File)
			}
			fmt.Fprintf(os.Stderr, "    %4d: %q\n", f.Line, truncate(f.Text, 50))
		}
	}

	if showIgnored {
		if ignored := report.IgnoredFindings(); len(ignored) > 0 {
			fmt.Fprintf(os.Stderr, "\n%sIgnored strings%s\n", colorGreen, colorReset)
			for _, f := range ignored {
				fmt.Fprintf(os.Stderr, "  %s:%d %q (%s)\n", f.File, f.Line, truncate(f.Text, 50), f.Disposition)
			}
		}
	}

	printMissingKeys(report)
	printSummary(report)

	totalIssues := report.Summary.Issues + len(report.MissingKeys)
	if totalIssues == 0 {
		logSuccess("no i18n issues found")
		return nil
	}

	logInfo("inspection complete: %d potential issues found", totalIssues)
	logInfo("fix: replace hardcoded strings with t('translation.key'), add missing keys to every catalog, or annotate legitimate literals with i18n-ignore")

	if strict {
		os.Exit(1)
	}
	return nil
}

// ---------------------------------------------------------------------------
// keys (key reconciliation view only)
// ---------------------------------------------------------------------------

func newKeysCmd() *cobra.Command {
	var showUsed bool

	cmd := &cobra.Command{
		Use:   "keys",
		Short: "Show used translation keys and per-locale gaps",
		Long: `Collect every translation key referenced by lookup calls in the source
tree and report, per locale, the keys missing from its catalog.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(showUsed)
		},
	}

	cmd.Flags().BoolVar(&showUsed, "used", false, "Also list every key referenced in code")

	return cmd
}

func runKeys(showUsed bool) error {
	report, catalogs, err := runAnalysis()
	if err != nil {
		return err
	}

	printHeader("Translation keys")
	logInfo("%d keys referenced in code across %d locale catalogs", report.Summary.KeysUsed, len(catalogs))

	if showUsed {
		fmt.Fprintf(os.Stderr, "\n%sUsed keys%s\n", colorBlue, colorReset)
		for _, k := range report.UsedKeys {
			fmt.Fprintf(os.Stderr, "  %s\n", k)
		}
	}

	printMissingKeys(report)

	if len(report.MissingKeys) == 0 {
		logSuccess("all used keys are defined in every locale")
	}
	return nil
}

// ---------------------------------------------------------------------------
// status (read-only: detected layout + locale catalogs)
// ---------------------------------------------------------------------------

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show detected project layout and locale catalogs",
		Long: `Show the project configuration i18nlint would run with: configured or
auto-detected source directories, locales directory, and per-locale key
counts. Does not modify any files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}

	return cmd
}

func runStatus() error {
	cfg, err := config.Resolve(rootDir)
	if err != nil {
		return err
	}

	printHeader("Project")

	absRoot, _ := filepath.Abs(rootDir)
	fmt.Fprintf(os.Stderr, "  Root:       %s\n", absRoot)
	fmt.Fprintf(os.Stderr, "  Sources:    %s\n", strings.Join(cfg.SourceDirs, ", "))
	fmt.Fprintf(os.Stderr, "  Extensions: %s\n", strings.Join(cfg.Extensions, ", "))

	if cfg.LocalesDir == "" {
		fmt.Fprintf(os.Stderr, "  Locales:    (none detected)\n")
		return nil
	}
	fmt.Fprintf(os.Stderr, "  Locales:    %s\n", cfg.LocalesDir)

	for _, c := range loadCatalogs(cfg) {
		fmt.Fprintf(os.Stderr, "    %-8s %5d keys  (%s)\n", c.Locale, len(c.Keys), filepath.Base(c.Path))
	}

	return nil
}

// ---------------------------------------------------------------------------
// Shared analysis plumbing
// ---------------------------------------------------------------------------

// runAnalysis resolves configuration, loads locale catalogs, scans the tree,
// and runs the engine. Per-file read failures and broken catalogs are
// warnings, never fatal.
func runAnalysis() (*analyze.Report, []*locales.Catalog, error) {
	cfg, err := config.Resolve(rootDir)
	if err != nil {
		return nil, nil, err
	}

	catalogs := loadCatalogs(cfg)

	sourceDirs := make([]string, len(cfg.SourceDirs))
	for i, d := range cfg.SourceDirs {
		sourceDirs[i] = filepath.Join(rootDir, d)
	}
	files, err := scan.FindSources(sourceDirs, cfg.Extensions)
	if err != nil {
		return nil, nil, err
	}
	if len(files) == 0 {
		logWarning("no source files found under %s", strings.Join(sourceDirs, ", "))
	}

	classifier := classify.New(classify.Options{
		ExtraTechnicalTokens: cfg.TechnicalTokens,
		ExtraVocabulary:      cfg.Vocabulary,
	})

	engine := analyze.New(classifier, cfg.AnnotationMarkers())
	report := engine.Run(files, catalogs)

	for _, skipped := range report.Skipped {
		logWarning("skipped %s", skipped)
	}

	return report, catalogs, nil
}

// loadCatalogs discovers and loads every locale catalog, degrading broken
// catalogs to empty key sets with a warning.
func loadCatalogs(cfg *config.Config) []*locales.Catalog {
	if cfg.LocalesDir == "" {
		logWarning("no locales directory configured or detected; key reconciliation is disabled")
		return nil
	}

	dir := filepath.Join(rootDir, cfg.LocalesDir)
	paths, err := locales.Discover(dir, cfg.Locales)
	if err != nil {
		logWarning("%v", err)
		return nil
	}

	var catalogs []*locales.Catalog
	for _, p := range paths {
		c, err := locales.Load(p)
		if err != nil {
			logWarning("%v (treating %s as empty)", err, c.Locale)
		}
		catalogs = append(catalogs, c)
	}
	return catalogs
}

func printMissingKeys(report *analyze.Report) {
	for _, locale := range report.MissingLocales() {
		missing := report.MissingKeys[locale]
		fmt.Fprintf(os.Stderr, "\n%sMissing translation keys in %s%s (%d)\n", colorRed, locale, colorReset, len(missing))
		for _, k := range missing {
			fmt.Fprintf(os.Stderr, "  - %s\n", k)
		}
	}
}

func printSummary(report *analyze.Report) {
	fmt.Fprintf(os.Stderr, "\n%sSummary%s\n", colorBlue, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
	fmt.Fprintf(os.Stderr, "  Files scanned:   %d\n", report.Summary.FilesScanned)
	fmt.Fprintf(os.Stderr, "  Keys used:       %d\n", report.Summary.KeysUsed)
	fmt.Fprintf(os.Stderr, "  Strings ignored: %d\n", report.Summary.Ignored)
	fmt.Fprintf(os.Stderr, "  Issues found:    %d\n", report.Summary.Issues)
}

func printHeader(title string) {
	fmt.Fprintf(os.Stderr, "\n%s%s%s\n", colorBlue, title, colorReset)
	fmt.Fprintln(os.Stderr, strings.Repeat("─", 60))
}

// truncate shortens s for display, keeping reports one line per finding.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n-3] + "..."
}
