package cli

import (
	"fmt"
	"toolcrib/internal/types"
	"toolcrib/internal/views"

	"github.com/spf13/cobra"
)

func (c *CLI) newExportCommand() *cobra.Command {
	var inspect bool

	cmd := &cobra.Command{
		Use:       "export <atribuicoes|servicos-externos> <pdf|excel>",
		Short:     "Baixa um relatório gerado pelo servidor",
		Args:      cobra.ExactArgs(2),
		PreRunE:   c.requireSession,
		ValidArgs: []string{string(types.ExportAssignments), string(types.ExportExternalServices)},
		RunE: func(cmd *cobra.Command, args []string) error {
			resource, err := types.ParseExportResource(args[0])
			if err != nil {
				return err
			}
			format, err := types.ParseExportFormat(args[1])
			if err != nil {
				return err
			}

			path, err := c.app.Controllers.Export.ExportFile(cmd.Context(), resource, format)
			if err != nil {
				return err
			}
			fmt.Fprintln(c.out, path)

			if !inspect {
				return nil
			}
			if format != types.ExportExcel {
				return fmt.Errorf("--inspect só se aplica a exportações excel")
			}

			summary, err := c.app.Controllers.Export.Inspect(path)
			if err != nil {
				return err
			}
			return views.RenderWorkbookSummary(c.out, summary)
		},
	}
	cmd.Flags().BoolVar(&inspect, "inspect", false, "resume as planilhas do arquivo excel baixado")

	return cmd
}
