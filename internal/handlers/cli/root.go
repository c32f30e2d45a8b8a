package cli

import (
	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/core/ports"
	"github.com/AntonioJCosta/osla/internal/errors"
	"github.com/AntonioJCosta/osla/internal/logging"
	"github.com/spf13/cobra"
)

// Dependencies are the services and writers the root command dispatches to.
type Dependencies struct {
	Generator  ports.LicenseGenerator
	Catalog    ports.CatalogService
	Config     ports.ConfigLoader
	FileOutput ports.OutputWriter
	StdOutput  ports.OutputWriter
	Logger     *logging.Logger
}

// NewRootCommand builds the osla command. Help and version never reach RunE.
func NewRootCommand(version string, deps Dependencies) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   license.ProgramName + " [flags] <license>",
		Short: "osla generates license files from a local template database.",
		Long: `osla writes a LICENSE file for the named license or alias, filling in
the copyright year and author from ~/.config/OSLA/osla.conf.`,
		Example: `  osla mit
  osla gpl --stdout
  osla --search apache
  osla -D gpl`,
		Version:       version,
		Args:          cobra.ArbitraryArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if missing := deps.missing(); missing != "" {
				return errors.Newf("%s not initialized", missing)
			}
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				deps.Logger.EnableDebug()
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRootCmd(cmd, args, deps)
		},
	}

	rootCmd.SetVersionTemplate("{{.Version}}\n")
	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.Flags().BoolP("default", "d", false, "Use the default license from the config file.")
	rootCmd.Flags().BoolP("list", "l", false, "List all available licenses.")
	rootCmd.Flags().StringP("description", "D", "", "Show the description of a license.")
	rootCmd.Flags().Bool("debug", false, "Enable debug output to stderr.")
	rootCmd.Flags().Bool("stdout", false, "Write the license to stdout instead of LICENSE.")
	rootCmd.Flags().String("search", "", "Search licenses by keyword.")

	return rootCmd
}

func runRootCmd(cmd *cobra.Command, args []string, deps Dependencies) error {
	flags := parseRootFlags(cmd, args)

	cfg, err := deps.Config.Load()
	if err != nil {
		return err
	}
	if flags.useDefault {
		flags.license = cfg.DefaultLicense
	}

	switch {
	case flags.list:
		return runListCmd(cmd, deps.Catalog)
	case flags.describe:
		return runDescribeCmd(cmd, deps.Catalog, flags.description)
	case flags.search:
		return runSearchCmd(cmd, deps.Catalog, flags.keyword)
	}

	if flags.license == "" {
		return errors.Mark(errors.New("no license specified. Use -h for help."), license.ErrUsage)
	}
	return runGenerateCmd(cmd, deps, flags.license, flags.toStdout, cfg)
}
