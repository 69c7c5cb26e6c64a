package cli

import (
	"strings"

	"github.com/Station-Manager/tabular/export"
	"github.com/spf13/cobra"
)

func newRenderCommand(a *app) *cobra.Command {
	var input, table string
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Render records as a table",
		Example: `  tabulate render --input contacts.json
  tabulate render -i contacts.yaml --format md`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			t, err := a.loadTable(input, table, cmd.InOrStdin())
			if err != nil {
				return err
			}
			return export.Render(cmd.OutOrStdout(), t, a.cfg.Format)
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "-", "Input file (.json, .yaml or .yml; - for stdin)")
	cmd.Flags().StringVar(&table, "table", "", "Table name (default: input file name)")
	cmd.Flags().StringP("format", "f", "", "Output format ("+strings.Join(export.Formats, "|")+")")

	_ = cmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return export.Formats, cobra.ShellCompDirectiveNoFileComp
	})
	return cmd
}
