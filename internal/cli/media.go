package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/labelpress/labelpress/pkg/layout"
	"github.com/labelpress/labelpress/pkg/media"
)

// mediaCommand creates the media command listing the supported sizes.
func (c *CLI) mediaCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "media",
		Short: "List the supported media sizes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rows := [][]string{}
			for _, p := range media.All() {
				orientation := "portrait"
				if p.Landscape() {
					orientation = "landscape"
				}
				def := ""
				if p.Size == media.DefaultSize {
					def = "✓"
				}
				rows = append(rows, []string{
					string(p.Size),
					fmt.Sprintf("%g × %g mm", p.WidthMM, p.HeightMM),
					orientation,
					string(layout.SelectTemplate(p.Size)),
					def,
				})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Size", "Dimensions", "Orientation", "Template", "Default").
				Rows(rows...)

			fmt.Println(t)
			return nil
		},
	}
}
