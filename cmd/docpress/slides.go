package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/docpress/internal/odp"
	"github.com/pdiddy/docpress/internal/slides"
	"github.com/pdiddy/docpress/pkg/types"
)

var slidesCmd = &cobra.Command{
	Use:   "slides <document.md>",
	Short: "Convert a markdown document into an OpenDocument presentation",
	Long: `Slides reads a markdown-like document, splits it into one slide per
"## " heading, and writes a LibreOffice Impress compatible .odp package.
Within a slide, "### " lines become subtitles, "- " lines become bullets,
**bold** lines become emphasized text, table rows are flattened, and other
non-empty lines become plain text.`,
	Args: cobra.ExactArgs(1),
	RunE: runSlides,
}

func init() {
	slidesCmd.Flags().String("output", "", "output .odp path (default: input name with .odp extension)")
	slidesCmd.Flags().String("title", "", "presentation title for meta.xml")
	slidesCmd.Flags().String("description", "", "presentation description for meta.xml")
	slidesCmd.Flags().String("creator", "", "presentation creator for meta.xml")
	slidesCmd.Flags().String("report", "", "write a YAML run report to this path")

	rootCmd.AddCommand(slidesCmd)
}

func runSlides(cmd *cobra.Command, args []string) error {
	input := args[0]

	output, _ := cmd.Flags().GetString("output")
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + ".odp"
	}

	cfg := slidesConfig(cmd)

	res, err := odp.ConvertFile(input, output, cfg.Meta)
	recordRun(cmd, types.Run{
		Kind:   types.RunSlides,
		Input:  input,
		Output: output,
		Detail: fmt.Sprintf("%d slides, %d blocks", res.Slides, res.Blocks),
		Status: runStatus(err),
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "converted: %s -> %s (%d slides)\n", input, output, res.Slides)

	if cfg.ReportPath != "" {
		if err := slides.WriteReport(cfg.ReportPath, slides.BuildReport(input, output, res.Deck)); err != nil {
			return err
		}
		fmt.Fprintf(os.Stdout, "report: %s\n", cfg.ReportPath)
	}
	return nil
}

// slidesConfig resolves flags, falling back to config file values.
func slidesConfig(cmd *cobra.Command) types.SlidesConfig {
	title, _ := cmd.Flags().GetString("title")
	if title == "" {
		title = viper.GetString("slides.title")
	}
	description, _ := cmd.Flags().GetString("description")
	if description == "" {
		description = viper.GetString("slides.description")
	}
	creator, _ := cmd.Flags().GetString("creator")
	if creator == "" {
		creator = viper.GetString("slides.creator")
	}
	report, _ := cmd.Flags().GetString("report")

	return types.SlidesConfig{
		Meta: types.DeckMeta{
			Title:       title,
			Description: description,
			Creator:     creator,
		},
		ReportPath: report,
	}
}

func runStatus(err error) types.RunStatus {
	if err != nil {
		return types.RunFailed
	}
	return types.RunDone
}
