package cli

import (
	"strings"

	"github.com/AntonioJCosta/osla/internal/core/domain/license"
	"github.com/AntonioJCosta/osla/internal/errors"
	"github.com/spf13/cobra"
)

type rootCommandFlags struct {
	license     string
	useDefault  bool
	list        bool
	describe    bool
	description string
	search      bool
	keyword     string
	toStdout    bool
}

// parseRootFlags reads the parsed flags. Only the first positional argument
// is used as the license name.
func parseRootFlags(cmd *cobra.Command, args []string) rootCommandFlags {
	flags := rootCommandFlags{}
	if len(args) > 0 {
		flags.license = args[0]
	}
	flags.useDefault, _ = cmd.Flags().GetBool("default")
	flags.list, _ = cmd.Flags().GetBool("list")
	flags.toStdout, _ = cmd.Flags().GetBool("stdout")

	flags.describe = cmd.Flags().Changed("description")
	flags.description, _ = cmd.Flags().GetString("description")
	flags.search = cmd.Flags().Changed("search")
	flags.keyword, _ = cmd.Flags().GetString("search")
	return flags
}

// flagError turns flag parsing failures into usage errors, with the
// messages osla has always used for a missing license or keyword.
func flagError(_ *cobra.Command, err error) error {
	msg := err.Error()
	if strings.Contains(msg, "needs an argument") {
		switch {
		case strings.Contains(msg, "--description"), strings.Contains(msg, "'D'"):
			return usageError("Missing <license> argument for --description flag")
		case strings.Contains(msg, "--search"):
			return usageError("Missing <keyword> argument for --search flag")
		}
	}
	return errors.WithHintf(errors.Mark(err, license.ErrUsage), "Try '%s --help' for usage.", license.ProgramName)
}

func usageError(msg string) error {
	return errors.WithHintf(errors.Mark(errors.New(msg), license.ErrUsage), "Try '%s --help' for usage.", license.ProgramName)
}

func (d Dependencies) missing() string {
	switch {
	case d.Generator == nil:
		return "license generator"
	case d.Catalog == nil:
		return "catalog service"
	case d.Config == nil:
		return "config loader"
	case d.FileOutput == nil, d.StdOutput == nil:
		return "output writer"
	case d.Logger == nil:
		return "logger"
	}
	return ""
}
