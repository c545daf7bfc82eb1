package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docpress/internal/pdftext"
	"github.com/pdiddy/docpress/internal/secrets"
	"github.com/pdiddy/docpress/pkg/types"
)

var textCmd = &cobra.Command{
	Use:   "text <document.pdf...>",
	Short: "Extract plain text from PDF files",
	Long: `Text extracts the embedded text layer of one or more PDF files into
.txt files. Extraction can be limited to a page range and can preserve
simple row alignment with --layout. Encrypted PDFs are unlocked with
--password or the .secrets/pdf-password file.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runText,
}

func init() {
	textCmd.Flags().String("out", "", "output path (single PDF only)")
	textCmd.Flags().String("out-dir", "", "output directory (default: next to each PDF)")
	textCmd.Flags().String("pages", "", "1-indexed page selection, e.g. 1-3,5,9")
	textCmd.Flags().String("password", "", "password for encrypted PDFs")
	textCmd.Flags().Bool("overwrite", false, "overwrite existing .txt output")
	textCmd.Flags().Bool("layout", false, "preserve row layout (better for simple tables)")

	rootCmd.AddCommand(textCmd)
}

func runText(cmd *cobra.Command, args []string) error {
	pagesSpec, _ := cmd.Flags().GetString("pages")
	pages, err := pdftext.ParsePageRange(pagesSpec)
	if err != nil {
		return err
	}

	password, _ := cmd.Flags().GetString("password")
	overwrite, _ := cmd.Flags().GetBool("overwrite")
	layout, _ := cmd.Flags().GetBool("layout")
	outDir, _ := cmd.Flags().GetString("out-dir")
	if outDir == "" {
		outDir = viper.GetString("text.out_dir")
	}

	cfg := types.TextConfig{
		OutDir:    outDir,
		Password:  secretDefault(secrets.PDFPasswordKey, password),
		Pages:     pages,
		Overwrite: overwrite,
		Layout:    layout,
	}

	out, _ := cmd.Flags().GetString("out")
	if out != "" && len(args) > 1 {
		fmt.Fprintln(os.Stderr, "warning: --out is ignored with multiple PDFs; use --out-dir")
		out = ""
	}
	outFor := func(pdfPath string) string {
		if out != "" {
			return out
		}
		return pdftext.DeriveOutputPath(pdfPath, cfg.OutDir)
	}

	result := pdftext.ExtractBatch(pdftext.NewTextLayer(), args, outFor, cfg, os.Stdout)
	recordRun(cmd, types.Run{
		Kind:   types.RunText,
		Input:  strings.Join(args, ", "),
		Detail: fmt.Sprintf("%d extracted, %d skipped, %d failed", result.Extracted, result.Skipped, result.Failed),
		Status: batchRunStatus(result),
	})
	if result.HasFailures() {
		return fmt.Errorf("%d PDF(s) failed extraction", result.Failed)
	}
	return nil
}

// batchRunStatus collapses a batch result into one log status.
func batchRunStatus(r pdftext.BatchResult) types.RunStatus {
	switch {
	case r.Failed > 0:
		return types.RunFailed
	case r.Extracted == 0 && r.Skipped > 0:
		return types.RunSkipped
	default:
		return types.RunDone
	}
}
