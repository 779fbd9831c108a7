package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/labelpress/labelpress/pkg/media"
	"github.com/labelpress/labelpress/pkg/pipeline"
)

// exportCommand creates the export command. Export always produces a
// vector PDF under the deterministic label_<sku>_<size>.pdf name, so
// re-exporting a label replaces the previous file instead of multiplying
// copies in the output directory.
func (c *CLI) exportCommand() *cobra.Command {
	var (
		dir     string
		sizeStr string
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "export <product-id>",
		Short: "Write a print-ready PDF with a deterministic file name",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			prog := newProgress(loggerFromContext(ctx))

			size, err := media.Parse(sizeStr)
			if err != nil {
				return err
			}

			runner := c.newRunner(ctx, noCache)
			defer runner.Close()

			opts := pipeline.Options{
				ProductID:  args[0],
				BackendURL: c.Config.BackendURL,
				Refresh:    refresh,
				Size:       size,
				Formats:    []string{pipeline.FormatPDF},
				Source:     c.newSource(refresh),
				Logger:     c.Logger,
			}

			sp := newSpinner(ctx, fmt.Sprintf("Exporting %s at %s...", args[0], size))
			sp.Start()

			result, err := runner.Execute(ctx, opts)
			if err != nil {
				sp.StopWithError(fmt.Sprintf("Export failed: %v", err))
				return err
			}
			sp.Stop()

			path := filepath.Join(dir, pipeline.ExportFilename(result.Document.SKU, size))
			if err := os.WriteFile(path, result.Artifacts[pipeline.FormatPDF], 0o644); err != nil {
				return fmt.Errorf("write %s: %w", path, err)
			}

			printSuccess("Exported %s", result.Document.ProductName)
			for _, w := range result.Warnings {
				printWarning("%s", w)
			}
			printFile(path)
			prog.done("export complete")
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "output directory")
	cmd.Flags().StringVarP(&sizeStr, "size", "s", string(media.DefaultSize), "media size: compact, verticalNarrow, fullLarge, fullPage")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the local cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch from the back office even if cached")

	return cmd
}
