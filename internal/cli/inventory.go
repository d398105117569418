package cli

import (
	"fmt"
	"strconv"
	"toolcrib/internal/models"
	"toolcrib/internal/state"
	"toolcrib/internal/utils"
	"toolcrib/internal/views"

	"github.com/spf13/cobra"
)

func (c *CLI) newElectriciansCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "electricians",
		Aliases: []string{"eletricistas"},
		Short:   "Eletricistas",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Short:   "Lista os eletricistas",
			Args:    cobra.NoArgs,
			PreRunE: c.requireSession,
			RunE: func(cmd *cobra.Command, args []string) error {
				snapshot := c.snapshot()
				return views.RenderElectricians(
					c.out,
					snapshot.Electricians,
					snapshot.IsStale(state.CollectionElectricians),
				)
			},
		},
		&cobra.Command{
			Use:     "add <nome>",
			Short:   "Cadastra um eletricista",
			PreRunE: c.requireAdmin,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Controllers.Inventory.CreateElectrician(cmd.Context(), joinArgs(args))
			},
		},
	)

	return cmd
}

func (c *CLI) newItemsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "items",
		Aliases: []string{"ferramentas"},
		Short:   "Ferramentas e EPIs",
	}

	var itemType string
	add := &cobra.Command{
		Use:     "add <nome>",
		Short:   "Cadastra uma ferramenta ou EPI",
		PreRunE: c.requireAdmin,
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed := models.ItemType(itemType)
			if itemType != "" && !parsed.Valid() {
				return fmt.Errorf("tipo inválido %q: use %s ou %s", itemType, models.ItemTypeTool, models.ItemTypePPE)
			}
			return c.app.Controllers.Inventory.CreateToolPPE(cmd.Context(), joinArgs(args), parsed)
		},
	}
	add.Flags().StringVar(&itemType, "type", string(models.ItemTypeTool), "Ferramenta ou EPI")

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Short:   "Lista ferramentas e EPIs",
			Args:    cobra.NoArgs,
			PreRunE: c.requireSession,
			RunE: func(cmd *cobra.Command, args []string) error {
				snapshot := c.snapshot()
				return views.RenderToolsPPE(c.out, snapshot.ToolsPPE, snapshot.IsStale(state.CollectionToolsPPE))
			},
		},
		add,
	)

	return cmd
}

func (c *CLI) newAssignmentsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "assignments",
		Aliases: []string{"atribuicoes"},
		Short:   "Atribuições de ferramentas e EPIs",
	}

	cmd.AddCommand(
		c.newAssignmentsListCommand(),
		&cobra.Command{
			Use:     "add <eletricista-id> <item-id> [observação]",
			Short:   "Atribui um item a um eletricista",
			Args:    cobra.MinimumNArgs(2),
			PreRunE: c.requireSession,
			RunE: func(cmd *cobra.Command, args []string) error {
				electricianID, err := parseID(args[0])
				if err != nil {
					return err
				}
				toolPPEID, err := parseID(args[1])
				if err != nil {
					return err
				}
				return c.app.Controllers.Inventory.CreateAssignment(
					cmd.Context(),
					electricianID,
					toolPPEID,
					joinArgs(args[2:]),
				)
			},
		},
		&cobra.Command{
			Use:     "return <id>",
			Short:   "Registra a devolução de um item",
			Args:    cobra.ExactArgs(1),
			PreRunE: c.requireSession,
			RunE: func(cmd *cobra.Command, args []string) error {
				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				return c.app.Controllers.Inventory.ReturnAssignment(cmd.Context(), id)
			},
		},
	)

	return cmd
}

func (c *CLI) newAssignmentsListCommand() *cobra.Command {
	var (
		activeOnly bool
		since      string
		until      string
	)

	cmd := &cobra.Command{
		Use:     "list [filtro]",
		Short:   "Lista as atribuições",
		PreRunE: c.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			query := views.AssignmentQuery{ActiveOnly: activeOnly}

			if since != "" {
				parsed, _, err := utils.ParseDate(since)
				if err != nil {
					return err
				}
				query.Since = &parsed
			}
			if until != "" {
				parsed, format, err := utils.ParseDate(until)
				if err != nil {
					return err
				}
				if !format.HasTime() {
					parsed = utils.EndOfDay(parsed)
				}
				query.Until = &parsed
			}

			snapshot := c.app.Store.Dispatch(state.AssignmentFilterSet{Text: joinArgs(args)})
			query.Text = snapshot.AssignmentFilter

			return views.RenderAssignments(
				c.out,
				views.QueryAssignments(snapshot.Assignments, query),
				snapshot.IsStale(state.CollectionAssignments),
			)
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "somente itens não devolvidos")
	cmd.Flags().StringVar(&since, "since", "", "retirada a partir de (ex. 2024-01-31 ou 31/01/2024)")
	cmd.Flags().StringVar(&until, "until", "", "retirada até (inclusive)")

	return cmd
}

func parseID(value string) (int, error) {
	id, err := strconv.Atoi(value)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("id inválido %q", value)
	}
	return id, nil
}
