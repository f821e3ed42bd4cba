package gen

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// NewRootCommand creates the root command for fixgen.
func NewRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fixgen",
		Short: "Generate fixed-point descriptors",
		Long: `Generate Go declarations for the fixed-point descriptors listed in a
YAML manifest, resolving storage widths and derived descriptors ahead of
time.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.AddCommand(NewGenerateCommand())
	cmd.AddCommand(NewCheckCommand())

	return cmd
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "generate <manifest.yaml>",
		Short: "Write the Go file for a manifest",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := Load(args[0])
			if err != nil {
				return err
			}
			src, err := Generate(m)
			if err != nil {
				return err
			}
			if output == "" || output == "-" {
				_, err = cmd.OutOrStdout().Write(src)
				return err
			}
			return os.WriteFile(output, src, 0644)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")

	return cmd
}

// NewCheckCommand creates the check command.
func NewCheckCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "check <manifest.yaml>",
		Short: "Validate a manifest and print its resolved descriptors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := Load(args[0])
			if err != nil {
				return err
			}
			entries, err := Resolve(m)
			if err != nil {
				return err
			}

			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 8, 2, ' ', 0)
			fmt.Fprintln(tw, "NAME\tDESCRIPTOR\tSTORAGE\tFROM")
			for _, e := range entries {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", e.Name, e.Desc, e.Kind, e.Expr)
			}
			return tw.Flush()
		},
	}
}
