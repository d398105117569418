package cli

import (
	"fmt"
	"toolcrib/internal/state"
	"toolcrib/internal/views"

	"github.com/spf13/cobra"
)

func (c *CLI) newLoginCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "login <usuário> <senha>",
		Short: "Inicia uma sessão",
		Args:  cobra.MaximumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			username, password := "", ""
			if len(args) > 0 {
				username = args[0]
			}
			if len(args) > 1 {
				password = args[1]
			}
			return c.app.Controllers.Session.Login(cmd.Context(), username, password)
		},
	}
}

func (c *CLI) newLogoutCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "logout",
		Short:   "Encerra a sessão",
		Args:    cobra.NoArgs,
		PreRunE: c.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Controllers.Session.Logout(cmd.Context())
		},
	}
}

func (c *CLI) newWhoamiCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "whoami",
		Short:   "Mostra o usuário atual",
		Args:    cobra.NoArgs,
		PreRunE: c.requireSession,
		Run: func(cmd *cobra.Command, args []string) {
			user := c.app.Controllers.Session.Current()
			fmt.Fprintf(c.out, "%s (%s)\n", user.Username, user.Permission)
		},
	}
}

func (c *CLI) newReloadCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "reload",
		Short:   "Recarrega todas as coleções",
		Args:    cobra.NoArgs,
		PreRunE: c.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := c.app.Controllers.Sync.ReloadAll(cmd.Context()); err != nil {
				return err
			}

			snapshot := c.snapshot()
			for _, collection := range state.Collections {
				if snapshot.IsStale(collection) {
					fmt.Fprintln(c.out, collection, views.StaleMarker)
				}
			}
			return nil
		},
	}
}
