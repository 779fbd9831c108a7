package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/labelpress/labelpress/pkg/pipeline"
)

// previewCommand creates the interactive preview command. The preview
// always opens at the default media size regardless of what was chosen
// last time; the size selector is session state, not preference.
func (c *CLI) previewCommand() *cobra.Command {
	var (
		dir     string
		noCache bool
	)

	cmd := &cobra.Command{
		Use:   "preview <product-id>",
		Short: "Interactive terminal preview with a media size selector",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			runner := c.newRunner(ctx, noCache)
			defer runner.Close()

			model := newPreviewModel(previewDeps{
				ctx:       ctx,
				productID: args[0],
				exportDir: dir,
				runner:    runner,
				opts: pipeline.Options{
					ProductID:  args[0],
					BackendURL: c.Config.BackendURL,
					Source:     c.newSource(false),
					Logger:     c.Logger,
				},
			})

			p := tea.NewProgram(model, tea.WithContext(ctx))
			final, err := p.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(previewModel); ok && m.exported != "" {
				printSuccess("Exported")
				printFile(m.exported)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", ".", "export directory")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "bypass the local cache")

	return cmd
}
