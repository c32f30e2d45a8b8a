package cli

import (
	"fmt"
	"strings"

	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/AntonioJCosta/osla/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// runListCmd prints every template with the aliases that resolve to it.
func runListCmd(cmd *cobra.Command, catalog ports.CatalogService) error {
	infos, err := catalog.List()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if len(infos) == 0 {
		fmt.Fprintln(out, ui.InfoColor(fmt.Sprintf("No licenses found in %s.", catalog.Source())))
		return nil
	}

	fmt.Fprintln(out, ui.HeaderColor("Available licenses:"))
	fmt.Fprintln(out, ui.DetailColor(fmt.Sprintf("Source: %s", catalog.Source())))

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"Short Name", "Aliases"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, info := range infos {
		table.Append([]string{info.Name, strings.Join(info.Aliases, ", ")})
	}
	table.Render()
	return nil
}
