package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func (c *CLI) newRootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:           "toolcrib",
		Short:         "Controle de ferramentas, EPIs e serviços externos",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.CompletionOptions.DisableDefaultCmd = true

	root.AddCommand(
		c.newLoginCommand(),
		c.newLogoutCommand(),
		c.newWhoamiCommand(),
		c.newReloadCommand(),
		c.newElectriciansCommand(),
		c.newItemsCommand(),
		c.newAssignmentsCommand(),
		c.newVehiclesCommand(),
		c.newServiceCommand(),
		c.newExportCommand(),
		c.newVersionCommand(),
	)
	if !c.shell {
		root.AddCommand(c.newShellCommand())
	}

	return root
}

func (c *CLI) newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Mostra a versão",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(c.out, "toolcrib", c.app.Config.GeneralVersion)
		},
	}
}

// joinArgs lets free text be passed without quoting, e.g. "add Ana Souza".
func joinArgs(args []string) string {
	return strings.Join(args, " ")
}
