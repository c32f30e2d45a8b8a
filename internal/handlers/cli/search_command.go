package cli

import (
	"fmt"

	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/AntonioJCosta/osla/internal/handlers/ui"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// snippetLength is how much of a template's first line search results show.
const snippetLength = 27

// runSearchCmd prints the templates whose name or first line contain keyword.
func runSearchCmd(cmd *cobra.Command, catalog ports.CatalogService, keyword string) error {
	matches, err := catalog.Search(keyword)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HeaderColor(fmt.Sprintf("Search results for %q:", keyword)))
	if len(matches) == 0 {
		fmt.Fprintln(out, ui.InfoColor("No matching licenses."))
		return nil
	}

	table := tablewriter.NewWriter(out)
	table.SetHeader([]string{"License", "Snippet"})
	table.SetBorder(true)
	table.SetAutoWrapText(false)
	table.SetColumnAlignment([]int{tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})

	for _, m := range matches {
		table.Append([]string{m.Name, snippet(m.FirstLine)})
	}
	table.Render()
	return nil
}

// snippet shortens line to snippetLength runes and marks it as cut.
func snippet(line string) string {
	runes := []rune(line)
	if len(runes) > snippetLength {
		runes = runes[:snippetLength]
	}
	return string(runes) + "..."
}
