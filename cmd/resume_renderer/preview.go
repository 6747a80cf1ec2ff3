package main

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/jonathan/resume-renderer/internal/ingestion"
	"github.com/jonathan/resume-renderer/internal/rendering"
)

var previewCmd = &cobra.Command{
	Use:   "preview <resume file>",
	Short: "Preview a rendered resume in the terminal",
	Long:  "Renders the resume to Markdown and displays it with terminal formatting. The stylesheet block is omitted since it only matters for HTML and PDF output.",
	Args:  cobra.ExactArgs(1),
	RunE:  runPreview,
}

var previewWidth int

func init() {
	previewCmd.Flags().IntVarP(&previewWidth, "width", "w", 100, "Word-wrap width")

	rootCmd.AddCommand(previewCmd)
}

func runPreview(_ *cobra.Command, args []string) error {
	resume, err := ingestion.LoadResume(args[0])
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", args[0], err)
	}

	source := rendering.RenderMarkdown(resume, "")

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(previewWidth),
	)
	if err != nil {
		return fmt.Errorf("failed to create terminal renderer: %w", err)
	}

	out, err := renderer.Render(source)
	if err != nil {
		return fmt.Errorf("failed to render preview: %w", err)
	}
	fmt.Print(out)
	return nil
}
