package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/conneroisu/pass-tutor/internal/version"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

func newVersionCommand() *cobra.Command {
	var (
		format string
		short  bool
	)

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long: `Display version information for pass-tutor including:

- Semantic version number
- Git commit hash
- Build timestamp
- Go version used for compilation
- Target platform (OS/architecture)

Examples:
  pass-tutor version                # Show version
  pass-tutor version --short        # Version only
  pass-tutor version --format json  # Output as JSON
  pass-tutor version --format yaml  # Output as YAML`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVersionCommand(cmd.OutOrStdout(), format, short)
		},
	}

	versionCmd.Flags().StringVarP(&format, "format", "f", "text", "Output format (text, json, yaml)")
	versionCmd.Flags().BoolVar(&short, "short", false, "Show short version only")

	return versionCmd
}

func runVersionCommand(w io.Writer, format string, short bool) error {
	switch format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(version.GetBuildInfo())
	case "yaml":
		encoder := yaml.NewEncoder(w)
		defer encoder.Close()
		encoder.SetIndent(2)
		return encoder.Encode(version.GetBuildInfo())
	case "text":
		if short {
			_, err := fmt.Fprintln(w, version.GetShortVersion())
			return err
		}
		_, err := fmt.Fprintln(w, version.GetDetailedVersion())
		return err
	default:
		return fmt.Errorf("unsupported format: %s (supported: text, json, yaml)", format)
	}
}
