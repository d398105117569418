package cli

import (
	"fmt"
	"sort"
	"strings"
	"toolcrib/internal/forms"
	"toolcrib/internal/models"
	"toolcrib/internal/state"
	"toolcrib/internal/views"

	"github.com/spf13/cobra"
)

type draftSetter func(draft forms.ExternalServiceDraft, value string) (forms.ExternalServiceDraft, error)

// draftSetters maps "service set" field names to draft edits. Checklist
// statuses are addressed by their wire names and handled separately.
var draftSetters = map[string]draftSetter{
	"vehicle": func(d forms.ExternalServiceDraft, value string) (forms.ExternalServiceDraft, error) {
		id, err := parseID(value)
		if err != nil {
			return d, err
		}
		d.VehicleID = id
		return d, nil
	},
	"destination": func(d forms.ExternalServiceDraft, value string) (forms.ExternalServiceDraft, error) {
		d.Destination = value
		return d, nil
	},
	"company": func(d forms.ExternalServiceDraft, value string) (forms.ExternalServiceDraft, error) {
		d.ServedCompany = value
		return d, nil
	},
	"harness-notes": func(d forms.ExternalServiceDraft, value string) (forms.ExternalServiceDraft, error) {
		d.HarnessChecklist.Notes = value
		return d, nil
	},
	"ladder-notes": func(d forms.ExternalServiceDraft, value string) (forms.ExternalServiceDraft, error) {
		d.LadderChecklist.Notes = value
		return d, nil
	},
}

func setterFor(field string) (draftSetter, error) {
	if setter, ok := draftSetters[field]; ok {
		return setter, nil
	}

	for _, checklistField := range forms.ChecklistFields {
		if checklistField != field {
			continue
		}
		return func(d forms.ExternalServiceDraft, value string) (forms.ExternalServiceDraft, error) {
			return d.WithStatus(field, models.StatusCode(strings.ToUpper(value)))
		}, nil
	}

	names := make([]string, 0, len(draftSetters)+len(forms.ChecklistFields))
	for name := range draftSetters {
		names = append(names, name)
	}
	sort.Strings(names)
	names = append(names, forms.ChecklistFields...)
	return nil, fmt.Errorf("campo desconhecido %q; campos: %s", field, strings.Join(names, ", "))
}

func (c *CLI) newVehiclesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "vehicles",
		Aliases: []string{"veiculos"},
		Short:   "Veículos",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list",
			Short:   "Lista os veículos",
			Args:    cobra.NoArgs,
			PreRunE: c.requireSession,
			RunE: func(cmd *cobra.Command, args []string) error {
				snapshot := c.snapshot()
				return views.RenderVehicles(c.out, snapshot.Vehicles, snapshot.IsStale(state.CollectionVehicles))
			},
		},
		&cobra.Command{
			Use:     "add <identificação>",
			Short:   "Cadastra um veículo",
			PreRunE: c.requireAdmin,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Controllers.Fleet.CreateVehicle(cmd.Context(), joinArgs(args))
			},
		},
	)

	return cmd
}

func (c *CLI) newServiceCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "service",
		Aliases: []string{"servicos"},
		Short:   "Serviços externos",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:     "list [filtro]",
			Short:   "Lista os serviços externos",
			PreRunE: c.requireSession,
			RunE: func(cmd *cobra.Command, args []string) error {
				snapshot := c.app.Store.Dispatch(state.ExternalServiceFilterSet{Text: joinArgs(args)})
				return views.RenderExternalServices(
					c.out,
					views.FilterExternalServices(snapshot.ExternalServices, snapshot.ExternalServiceFilter),
					snapshot.IsStale(state.CollectionExternalServices),
				)
			},
		},
		&cobra.Command{
			Use:     "show [id]",
			Short:   "Mostra um serviço externo ou o rascunho atual",
			Args:    cobra.MaximumNArgs(1),
			PreRunE: c.requireSession,
			RunE: func(cmd *cobra.Command, args []string) error {
				snapshot := c.snapshot()
				if len(args) == 0 {
					return views.RenderExternalServiceDraft(c.out, snapshot.Drafts.ExternalService, snapshot.Vehicles)
				}

				id, err := parseID(args[0])
				if err != nil {
					return err
				}
				for _, es := range snapshot.ExternalServices {
					if es.ID == id {
						return views.RenderExternalServiceDetail(c.out, es)
					}
				}
				return fmt.Errorf("serviço externo %d não encontrado", id)
			},
		},
		&cobra.Command{
			Use:     "set <campo> <valor>",
			Short:   "Altera um campo do rascunho",
			Args:    cobra.MinimumNArgs(2),
			PreRunE: c.requireSession,
			RunE: func(cmd *cobra.Command, args []string) error {
				setter, err := setterFor(args[0])
				if err != nil {
					return err
				}
				value := joinArgs(args[1:])
				return c.app.Controllers.Fleet.EditExternalServiceDraft(
					func(d forms.ExternalServiceDraft) (forms.ExternalServiceDraft, error) {
						return setter(d, value)
					},
				)
			},
		},
		c.newMaterialCommand(),
		&cobra.Command{
			Use:     "reset",
			Short:   "Descarta o rascunho",
			Args:    cobra.NoArgs,
			PreRunE: c.requireSession,
			Run: func(cmd *cobra.Command, args []string) {
				c.app.Controllers.Fleet.ResetExternalServiceDraft()
			},
		},
		&cobra.Command{
			Use:     "submit",
			Short:   "Envia o rascunho",
			Args:    cobra.NoArgs,
			PreRunE: c.requireSession,
			RunE: func(cmd *cobra.Command, args []string) error {
				return c.app.Controllers.Fleet.CreateExternalService(cmd.Context())
			},
		},
	)

	return cmd
}

func (c *CLI) newMaterialCommand() *cobra.Command {
	var material models.Material
	var status string

	add := &cobra.Command{
		Use:     "add <nome>",
		Short:   "Adiciona um material ao rascunho",
		Args:    cobra.MinimumNArgs(1),
		PreRunE: c.requireSession,
		RunE: func(cmd *cobra.Command, args []string) error {
			material.Name = joinArgs(args)
			material.Status = models.StatusCode(strings.ToUpper(status))
			return c.app.Controllers.Fleet.EditExternalServiceDraft(
				func(d forms.ExternalServiceDraft) (forms.ExternalServiceDraft, error) {
					return d.WithMaterial(material), nil
				},
			)
		},
	}
	add.Flags().StringVar(&material.Type, "type", "", "tipo do material")
	add.Flags().StringVar(&status, "status", string(models.StatusGood), "B, I, N ou A")
	add.Flags().StringVar(&material.TechnicalNote, "note", "", "observação técnica")
	add.Flags().StringVar(&material.PhotoPath, "photo", "", "caminho da foto")

	cmd := &cobra.Command{
		Use:   "material",
		Short: "Materiais do rascunho",
	}
	cmd.AddCommand(add)
	return cmd
}
