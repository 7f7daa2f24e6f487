package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/codemap-dev/codemap/internal/config"
	"github.com/codemap-dev/codemap/internal/lang"
	"github.com/codemap-dev/codemap/internal/mapper"
	"github.com/codemap-dev/codemap/internal/scanner"
)

var (
	quietFlag  bool
	formatFlag string
	outputFlag string
)

// mapCmd represents the map command
var mapCmd = &cobra.Command{
	Use:   "map [directory]",
	Short: "Analyze a source tree and report its structure",
	Long: `Map walks a directory, parses every supported source file and produces
a structural report.

The mapper:
  - Parses source code (Go, TypeScript, Python, Java, Rust, etc.)
  - Extracts classes, functions, parameters, base classes and imports
  - Records files that could not be parsed, with the reason
  - Aggregates per-language totals and the largest files

Examples:
  # Map the current directory as JSON
  codemap map

  # Map a specific directory as a readable tree
  codemap map /path/to/project --format text

  # Write the report to a file
  codemap map --output report.json
`,
	Args: cobra.MaximumNArgs(1),
	RunE: runMap,
}

func init() {
	rootCmd.AddCommand(mapCmd)
	mapCmd.Flags().BoolVarP(&quietFlag, "quiet", "q", false, "Disable progress bars and non-error output")
	mapCmd.Flags().StringVarP(&formatFlag, "format", "f", "", "Report format: json or text (default from config)")
	mapCmd.Flags().StringVarP(&outputFlag, "output", "o", "", "Write the report to a file instead of stdout")
}

func runMap(cmd *cobra.Command, args []string) error {
	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted! Finishing in-flight files...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}
	if len(args) == 1 {
		rootDir, err = filepath.Abs(args[0])
		if err != nil {
			return fmt.Errorf("failed to resolve directory: %w", err)
		}
	}

	info, err := os.Stat(rootDir)
	if err != nil {
		return fmt.Errorf("cannot access %s: %w", rootDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", rootDir)
	}

	// Load configuration from .codemap/config.yml
	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	format := cfg.Output.Format
	if formatFlag != "" {
		format = strings.ToLower(formatFlag)
	}
	if format != "json" && format != "text" {
		return fmt.Errorf("unknown format %q: must be 'json' or 'text'", format)
	}

	sc, err := scanner.New(rootDir, cfg.Scan.Ignore, cfg.Scan.UseGitignore)
	if err != nil {
		return fmt.Errorf("failed to set up scanner: %w", err)
	}
	paths, err := sc.Scan()
	if err != nil {
		return fmt.Errorf("failed to enumerate files: %w", err)
	}

	progress := NewCLIProgressReporter(quietFlag)

	analyzer := mapper.NewAnalyzer(lang.NewRegistry(), int(cfg.Limits.MaxFileSize))
	m := mapper.NewMapper(analyzer, progress, mapper.Options{Concurrency: cfg.Scan.Concurrency})
	report := m.Run(ctx, rootDir, paths, sc.ReadFile)

	doc := mapper.BuildDocument(report)

	var rendered []byte
	if format == "text" {
		rendered = []byte(mapper.RenderText(doc))
	} else {
		rendered, err = mapper.EncodeJSON(doc)
		if err != nil {
			return fmt.Errorf("failed to encode report: %w", err)
		}
	}

	if outputFlag != "" {
		if err := os.WriteFile(outputFlag, rendered, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		if !quietFlag {
			totals := doc.Totals
			fmt.Printf("✓ Mapped %d files (%d failed) → %s\n",
				totals.FilesAnalyzed+totals.FilesFailed, totals.FilesFailed, outputFlag)
		}
		return nil
	}

	_, err = os.Stdout.Write(rendered)
	return err
}
