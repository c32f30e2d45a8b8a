package cli

import (
	"fmt"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/handlers/ui"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// runGenerateCmd fills the template for name and writes it to LICENSE, or
// to stdout when toStdout is set. Nothing is written if generation fails.
func runGenerateCmd(cmd *cobra.Command, deps Dependencies, name string, toStdout bool, cfg license.Config) error {
	generated, err := deps.Generator.Generate(name, cfg)
	if err != nil {
		return err
	}

	if toStdout {
		return deps.StdOutput.Write(generated.Content)
	}

	if err := deps.FileOutput.Write(generated.Content); err != nil {
		return err
	}
	deps.Logger.Debug("license written",
		zap.String("license", generated.Canonical),
		zap.String("path", deps.FileOutput.Destination()))
	fmt.Fprintln(cmd.OutOrStdout(), ui.SuccessColor("Generated LICENSE file."))
	return nil
}
