package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/labelpress/labelpress/pkg/media"
	"github.com/labelpress/labelpress/pkg/pipeline"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output  string   // output file path (or base path for multiple formats)
	size    string   // media size key
	formats []string // output formats: pdf, png, svg, html, json
	noCache bool     // bypass the local cache
	refresh bool     // refetch from the back office
}

// renderCommand creates the render command for producing label artifacts.
func (c *CLI) renderCommand() *cobra.Command {
	var formatsStr string
	opts := renderOpts{
		size: string(media.DefaultSize),
	}

	cmd := &cobra.Command{
		Use:   "render <product-id>",
		Short: "Render a label in one or more formats",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			return c.runRender(cmd, args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.size, "size", "s", opts.size, "media size: compact, verticalNarrow, fullLarge, fullPage")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): pdf (default), png, svg, html, json (comma-separated)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the local cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "refetch from the back office even if cached")

	return cmd
}

func (c *CLI) runRender(cmd *cobra.Command, productID string, opts *renderOpts) error {
	ctx := cmd.Context()

	size, err := media.Parse(opts.size)
	if err != nil {
		return err
	}

	runner := c.newRunner(ctx, opts.noCache)
	defer runner.Close()

	pipeOpts := pipeline.Options{
		ProductID:  productID,
		BackendURL: c.Config.BackendURL,
		Refresh:    opts.refresh,
		Size:       size,
		Formats:    opts.formats,
		Source:     c.newSource(opts.refresh),
		Logger:     c.Logger,
	}

	sp := newSpinner(ctx, fmt.Sprintf("Rendering %s at %s...", productID, size))
	sp.Start()

	result, err := runner.Execute(ctx, pipeOpts)
	if err != nil {
		sp.StopWithError(fmt.Sprintf("Render failed: %v", err))
		return err
	}
	sp.Stop()

	printSuccess("Rendered %s", result.Document.ProductName)
	printStats(len(result.Document.Seals), result.Document.Nutrition != nil, result.CacheInfo.RenderHit)
	for _, w := range result.Warnings {
		printWarning("%s", w)
	}

	for _, format := range opts.formats {
		path := outputPath(opts.output, result.Document.SKU, size, format, len(opts.formats) > 1)
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	return nil
}

// outputPath derives the output file path for one format. Explicit single
// outputs are honored verbatim; everything else gets the deterministic
// label_<sku>_<size> base name.
func outputPath(output, sku string, size media.Size, format string, multi bool) string {
	if output != "" && !multi {
		return output
	}
	base := strings.TrimSuffix(pipeline.ExportFilename(sku, size), ".pdf")
	name := base + "." + format
	if output != "" {
		return filepath.Join(output, name)
	}
	return name
}
