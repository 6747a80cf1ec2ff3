package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/resume-renderer/internal/config"
	"github.com/jonathan/resume-renderer/internal/converting"
	"github.com/jonathan/resume-renderer/internal/ingestion"
	"github.com/jonathan/resume-renderer/internal/observability"
	"github.com/jonathan/resume-renderer/internal/styles"
)

// generateConcurrency bounds how many resumes are converted at once. PDF
// conversion spawns a browser per document, so this stays small.
const generateConcurrency = 4

var generateCmd = &cobra.Command{
	Use:   "generate [resume files...]",
	Short: "Render resume documents",
	Long:  "Loads one or more resume documents, validates them, and renders each to the requested output format.",
	RunE:  runGenerate,
}

var (
	generateInputs     []string
	generateFormat     string
	generateOut        string
	generateOutDir     string
	generateStyle      string
	generatePDFTimeout int
	generateConfigFile string
	generateVerbose    bool
)

func init() {
	generateCmd.Flags().StringArrayVarP(&generateInputs, "in", "i", nil, "Path to a resume YAML/JSON file (repeatable)")
	generateCmd.Flags().StringVarP(&generateFormat, "format", "f", "", "Output format: markdown, html, or pdf (default markdown)")
	generateCmd.Flags().StringVarP(&generateOut, "out", "o", "", "Output file path (single input only)")
	generateCmd.Flags().StringVar(&generateOutDir, "out-dir", "", "Output directory (default: next to each input)")
	generateCmd.Flags().StringVar(&generateStyle, "style", "", "Path to a CSS file replacing the embedded stylesheet")
	generateCmd.Flags().IntVar(&generatePDFTimeout, "pdf-timeout", 0, "Headless-browser print timeout in seconds")
	generateCmd.Flags().StringVarP(&generateConfigFile, "config", "c", "", "Path to a JSON config file")
	generateCmd.Flags().BoolVarP(&generateVerbose, "verbose", "v", false, "Print document summaries while generating")

	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, args []string) error {
	inputs := append(append([]string{}, generateInputs...), args...)
	if len(inputs) == 0 {
		return fmt.Errorf("no resume files given: pass them as arguments or with --in")
	}

	cfg := config.Config{
		Format:            generateFormat,
		Out:               generateOut,
		OutDir:            generateOutDir,
		Style:             generateStyle,
		PDFTimeoutSeconds: generatePDFTimeout,
	}
	verbose := generateVerbose
	if generateConfigFile != "" {
		fileCfg, err := config.LoadConfig(generateConfigFile)
		if err != nil {
			return err
		}
		cfg = cfg.MergeWithDefaults(*fileCfg)
		verbose = verbose || fileCfg.Verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.Format == "" {
		cfg.Format = string(converting.FormatMarkdown)
	}
	format, err := converting.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}

	if cfg.Out != "" && len(inputs) > 1 {
		return fmt.Errorf("--out only works with a single input; use --out-dir for multiple files")
	}

	styleBlock := styles.Default()
	if cfg.Style != "" {
		styleBlock, err = styles.Load(cfg.Style)
		if err != nil {
			return err
		}
	}

	if cfg.OutDir != "" {
		if err := os.MkdirAll(cfg.OutDir, 0755); err != nil {
			return fmt.Errorf("failed to create output directory %s: %w", cfg.OutDir, err)
		}
	}

	opts := converting.Options{
		StyleBlock: styleBlock,
		PDFTimeout: time.Duration(cfg.PDFTimeoutSeconds) * time.Second,
	}
	printer := observability.NewPrinter(os.Stdout)

	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(generateConcurrency)
	for _, input := range inputs {
		g.Go(func() error {
			resume, err := ingestion.LoadResume(input)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", input, err)
			}
			if verbose {
				printer.PrintResumeSummary(resume)
				for _, chart := range resume.Charts {
					printer.PrintChartSummary(chart)
				}
			}

			converter, err := converting.New(format, resume, opts)
			if err != nil {
				return err
			}
			outPath := outputPath(input, cfg.Out, cfg.OutDir, format)
			if err := converter.WriteFile(ctx, outPath); err != nil {
				return err
			}
			fmt.Printf("Wrote %s\n", outPath)
			return nil
		})
	}
	return g.Wait()
}

// outputPath picks the destination for one input: the explicit --out path,
// or the input's base name with the format's extension, placed in --out-dir
// when set and next to the input otherwise.
func outputPath(input, out, outDir string, format converting.Format) string {
	if out != "" {
		return out
	}
	base := strings.TrimSuffix(filepath.Base(input), filepath.Ext(input)) + format.Extension()
	if outDir != "" {
		return filepath.Join(outDir, base)
	}
	return filepath.Join(filepath.Dir(input), base)
}
