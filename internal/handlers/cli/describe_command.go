package cli

import (
	"fmt"

	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/spf13/cobra"
)

// runDescribeCmd prints a license description exactly as stored.
func runDescribeCmd(cmd *cobra.Command, catalog ports.CatalogService, name string) error {
	text, err := catalog.Describe(name)
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), text)
	return nil
}
