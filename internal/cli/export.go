package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/opencode-ai/folio/internal/export"
)

var (
	exportRender bool
	exportWidth  int
	exportStyle  string
	exportOutput string
)

func init() {
	rootCmd.AddCommand(exportCmd)

	exportCmd.Flags().BoolVar(&exportRender, "render", false, "render the Markdown for the terminal")
	exportCmd.Flags().IntVar(&exportWidth, "width", 80, "word wrap width when rendering")
	exportCmd.Flags().StringVar(&exportStyle, "style", export.StyleAuto, "render style (auto, dark, light, notty)")
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to a file instead of stdout")
}

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the portfolio as Markdown",
	Long:  "Export the portfolio as Markdown, optionally rendered for the terminal.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		portfolio, err := loadPortfolio(GetConfig())
		if err != nil {
			return err
		}

		doc, err := export.Markdown(portfolio)
		if err != nil {
			return err
		}
		if exportRender {
			doc, err = export.Render(doc, exportWidth, exportStyle)
			if err != nil {
				return err
			}
		}

		if IsJSONOutput() {
			return WriteOutput(cmd.OutOrStdout(), map[string]string{
				"source":   portfolio.Source,
				"markdown": doc,
			})
		}

		if exportOutput == "" {
			_, err = fmt.Fprint(cmd.OutOrStdout(), doc)
			return err
		}

		step := startProgress(cmd.ErrOrStderr(), fmt.Sprintf("Writing %s", exportOutput))
		if err := writeExport(exportOutput, doc); err != nil {
			step.Fail(err)
			return err
		}
		step.Done()
		return nil
	},
}

func writeExport(path, doc string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create output directory: %w", err)
		}
	}
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		return fmt.Errorf("failed to write export: %w", err)
	}
	return nil
}
