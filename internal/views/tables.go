package views

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"toolcrib/internal/forms"
	"toolcrib/internal/models"
	"toolcrib/internal/services"
	"toolcrib/internal/utils"
)

const StaleMarker = "(desatualizado)"

func FormatTimestamp(ts *models.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return "-"
	}
	return ts.Format(utils.DisplayFormat)
}

func text(value *string) string {
	cell := utils.Cell(utils.Deref(value))
	if cell == "" {
		return "-"
	}
	return cell
}

func newTable(w io.Writer) *tabwriter.Writer {
	return tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
}

func title(w io.Writer, name string, count int, stale bool) {
	if stale {
		fmt.Fprintf(w, "%s (%d) %s\n", name, count, StaleMarker)
		return
	}
	fmt.Fprintf(w, "%s (%d)\n", name, count)
}

func RenderElectricians(w io.Writer, electricians []models.Electrician, stale bool) error {
	title(w, "Eletricistas", len(electricians), stale)

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNOME\tCADASTRO")
	for _, e := range electricians {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", e.ID, utils.Cell(e.Name), FormatTimestamp(e.CreatedAt))
	}
	return tw.Flush()
}

func RenderToolsPPE(w io.Writer, items []models.ToolPPE, stale bool) error {
	title(w, "Ferramentas e EPIs", len(items), stale)

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tNOME\tTIPO")
	for _, item := range items {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", item.ID, utils.Cell(item.Name), item.Type)
	}
	return tw.Flush()
}

func RenderAssignments(w io.Writer, assignments []models.Assignment, stale bool) error {
	title(w, "Atribuições", len(assignments), stale)

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tELETRICISTA\tITEM\tTIPO\tRETIRADA\tDEVOLUÇÃO\tOBSERVAÇÃO\tAÇÃO")
	for _, a := range assignments {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			a.ID,
			text(a.ElectricianName),
			text(a.ToolPPEName),
			text(a.ToolPPEType),
			FormatTimestamp(a.CheckedOutAt),
			FormatTimestamp(a.ReturnedAt),
			text(a.Observation),
			AssignmentAction(a),
		)
	}
	return tw.Flush()
}

func RenderVehicles(w io.Writer, vehicles []models.Vehicle, stale bool) error {
	title(w, "Veículos", len(vehicles), stale)

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tIDENTIFICAÇÃO\tCADASTRO")
	for _, v := range vehicles {
		fmt.Fprintf(tw, "%d\t%s\t%s\n", v.ID, utils.Cell(v.Identification), FormatTimestamp(v.CreatedAt))
	}
	return tw.Flush()
}

func RenderExternalServices(w io.Writer, externalServices []models.ExternalService, stale bool) error {
	title(w, "Serviços externos", len(externalServices), stale)

	tw := newTable(w)
	fmt.Fprintln(tw, "ID\tVEÍCULO\tDESTINO\tEMPRESA\tCOLABORADOR\tSAÍDA\tMATERIAIS")
	for _, es := range externalServices {
		fmt.Fprintf(tw, "%d\t%s\t%s\t%s\t%s\t%s\t%d\n",
			es.ID,
			text(es.VehicleIdentification),
			text(es.Destination),
			text(es.ServedCompany),
			text(es.CollaboratorName),
			FormatTimestamp(es.DepartedAt),
			len(es.Materials),
		)
	}
	return tw.Flush()
}

func renderChecklist(w io.Writer, heading string, items []models.ChecklistItem, notes string) {
	parts := make([]string, 0, len(items))
	for _, item := range items {
		parts = append(parts, fmt.Sprintf("%s: %s", item.Label, StatusBadge(item.Status)))
	}
	fmt.Fprintf(w, "  %s: %s\n", heading, strings.Join(parts, ", "))
	if notes = utils.Cell(notes); notes != "" {
		fmt.Fprintf(w, "    %s\n", notes)
	}
}

func renderMaterials(w io.Writer, materials []models.Material) error {
	if len(materials) == 0 {
		fmt.Fprintln(w, "  Materiais: nenhum")
		return nil
	}

	fmt.Fprintln(w, "  Materiais:")
	tw := newTable(w)
	fmt.Fprintln(tw, "    NOME\tTIPO\tSTATUS\tOBSERVAÇÃO TÉCNICA\tFOTO")
	for _, m := range materials {
		fmt.Fprintf(tw, "    %s\t%s\t%s\t%s\t%s\n",
			utils.Cell(m.Name),
			utils.Cell(m.Type),
			StatusBadge(m.Status),
			utils.Cell(m.TechnicalNote),
			utils.Cell(m.PhotoPath),
		)
	}
	return tw.Flush()
}

// RenderExternalServiceDetail prints one service with its checklists and
// materials. Checklists missing on the wire are skipped.
func RenderExternalServiceDetail(w io.Writer, es models.ExternalService) error {
	fmt.Fprintf(w, "#%d %s: %s -> %s\n",
		es.ID, text(es.VehicleIdentification), text(es.Destination), text(es.ServedCompany))
	fmt.Fprintf(w, "  %s, %s\n", text(es.CollaboratorName), FormatTimestamp(es.DepartedAt))

	if es.HarnessChecklist != nil {
		renderChecklist(w, "Cinto de Segurança", es.HarnessChecklist.Items(), es.HarnessChecklist.Notes)
	}
	if es.LadderChecklist != nil {
		renderChecklist(w, "Escadas", es.LadderChecklist.Items(), es.LadderChecklist.Notes)
	}
	return renderMaterials(w, es.Materials)
}

// RenderExternalServiceDraft prints the draft being edited and whether it can
// be submitted yet.
func RenderExternalServiceDraft(
	w io.Writer,
	draft forms.ExternalServiceDraft,
	vehicles []models.Vehicle,
) error {
	vehicle := "-"
	for _, v := range vehicles {
		if v.ID == draft.VehicleID {
			vehicle = utils.Cell(v.Identification)
		}
	}
	if vehicle == "-" && draft.VehicleID > 0 {
		vehicle = fmt.Sprintf("#%d", draft.VehicleID)
	}

	fmt.Fprintln(w, "Novo serviço externo")
	fmt.Fprintf(w, "  Veículo: %s\n", vehicle)
	fmt.Fprintf(w, "  Destino: %s\n", orDash(draft.Destination))
	fmt.Fprintf(w, "  Empresa atendida: %s\n", orDash(draft.ServedCompany))
	renderChecklist(w, "Cinto de Segurança", draft.HarnessChecklist.Items(), draft.HarnessChecklist.Notes)
	renderChecklist(w, "Escadas", draft.LadderChecklist.Items(), draft.LadderChecklist.Notes)
	if err := renderMaterials(w, draft.Materials); err != nil {
		return err
	}

	if draft.Ready() {
		fmt.Fprintln(w, "  Pronto para enviar")
	} else {
		fmt.Fprintln(w, "  Faltando: veículo, destino e empresa atendida são obrigatórios")
	}
	return nil
}

func orDash(value string) string {
	if cell := utils.Cell(value); cell != "" {
		return cell
	}
	return "-"
}

func RenderWorkbookSummary(w io.Writer, summary *services.WorkbookSummary) error {
	fmt.Fprintf(w, "Planilha %s\n", summary.Path)

	tw := newTable(w)
	fmt.Fprintln(tw, "ABA\tLINHAS")
	for _, sheet := range summary.Sheets {
		fmt.Fprintf(tw, "%s\t%d\n", sheet.Name, sheet.Rows)
	}
	return tw.Flush()
}
