package cli

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

// sealsCommand creates the seals command listing the back office's
// warning-seal catalog. Useful to check which seal codes a product can be
// assigned before inspecting a label.
func (c *CLI) sealsCommand() *cobra.Command {
	var refresh bool

	cmd := &cobra.Command{
		Use:   "seals",
		Short: "List the warning-seal catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			catalog, err := c.newSource(refresh).SealCatalog(ctx)
			if err != nil {
				return fmt.Errorf("fetch seal catalog: %w", err)
			}
			if len(catalog) == 0 {
				printInfo("The back office has no seals defined")
				return nil
			}

			rows := [][]string{}
			for _, s := range catalog {
				rows = append(rows, []string{s.Code, s.Name, s.Description})
			}

			t := table.New().
				Border(lipgloss.RoundedBorder()).
				BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
				Headers("Code", "Name", "Description").
				Rows(rows...)

			fmt.Println(t)
			return nil
		},
	}

	cmd.Flags().BoolVar(&refresh, "refresh", false, "refetch from the back office even if cached")

	return cmd
}
