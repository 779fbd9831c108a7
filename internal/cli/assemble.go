package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/labelpress/labelpress/pkg/pipeline"
)

// assembleCommand creates the assemble command. It fetches product data
// from the back office and prints the assembled label document without
// rendering anything, which is the quickest way to inspect what a label
// will contain.
func (c *CLI) assembleCommand() *cobra.Command {
	var (
		noCache bool
		refresh bool
	)

	cmd := &cobra.Command{
		Use:   "assemble <product-id>",
		Short: "Fetch product data and print the label document",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			runner := c.newRunner(ctx, noCache)
			defer runner.Close()

			opts := pipeline.Options{
				ProductID:  args[0],
				BackendURL: c.Config.BackendURL,
				Refresh:    refresh,
				Source:     c.newSource(refresh),
				Logger:     c.Logger,
			}

			sp := newSpinner(ctx, fmt.Sprintf("Assembling label for %s...", args[0]))
			sp.Start()

			doc, hit, err := runner.AssembleWithCacheInfo(ctx, opts)
			if err != nil {
				sp.StopWithError(fmt.Sprintf("Assembly failed: %v", err))
				return err
			}
			sp.Stop()

			printSuccess("Assembled %s", doc.ProductName)
			printStats(len(doc.Seals), doc.Nutrition != nil, hit)
			if doc.BarcodeValue == "" {
				printWarning("product has no barcode; it will be omitted from the label")
			}

			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(doc)
		},
	}

	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the local cache")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch from the back office even if cached")

	return cmd
}
