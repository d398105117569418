package backendtest

import (
	"fmt"
	"strconv"
	"toolcrib/internal/models"
	"toolcrib/internal/types"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

const (
	pdfContentType   = "application/pdf"
	excelContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

var assignmentHeaders = []any{
	"ID", "Eletricista", "Ferramenta/EPI", "Tipo", "Data Retirada", "Data Devolução", "Observação",
}

var externalServiceHeaders = []any{
	"ID", "Colaborador", "Veículo", "Destino", "Empresa Atendida", "Data/Hora Saída",
}

func (s *Server) export(c *fiber.Ctx) error {
	resource, err := types.ParseExportResource(c.Params("resource"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Tipo de exportação inválido")
	}
	format, err := types.ParseExportFormat(c.Params("format"))
	if err != nil {
		return errorResponse(c, fiber.StatusBadRequest, "Formato de exportação inválido")
	}

	rows := s.exportRows(resource)
	filename := types.FileName(resource, format)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))

	if format == types.ExportPDF {
		c.Set(fiber.HeaderContentType, pdfContentType)
		return c.Send(fakePDF(resource, len(rows)-1))
	}

	payload, err := workbook(string(resource), rows)
	if err != nil {
		s.log.Function("export").Er("failed to build workbook", err, "resource", resource)
		return errorResponse(c, fiber.StatusInternalServerError, "Erro ao gerar planilha")
	}
	c.Set(fiber.HeaderContentType, excelContentType)
	return c.Send(payload)
}

// exportRows returns the header row followed by one row per record.
func (s *Server) exportRows(resource types.ExportResource) [][]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	if resource == types.ExportAssignments {
		rows := [][]any{assignmentHeaders}
		for _, a := range s.data.assignmentViews() {
			rows = append(rows, []any{
				a.ID,
				deref(a.ElectricianName),
				deref(a.ToolPPEName),
				deref(a.ToolPPEType),
				formatTimestamp(a.CheckedOutAt),
				formatTimestamp(a.ReturnedAt),
				deref(a.Observation),
			})
		}
		return rows
	}

	rows := [][]any{externalServiceHeaders}
	for _, es := range s.data.externalServiceViews() {
		rows = append(rows, []any{
			es.ID,
			deref(es.CollaboratorName),
			deref(es.VehicleIdentification),
			deref(es.Destination),
			deref(es.ServedCompany),
			formatTimestamp(es.DepartedAt),
		})
	}
	return rows
}

func workbook(sheet string, rows [][]any) ([]byte, error) {
	file := excelize.NewFile()
	defer file.Close()

	if err := file.SetSheetName("Sheet1", sheet); err != nil {
		return nil, err
	}

	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			return nil, err
		}
		if err := file.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buffer.Bytes(), nil
}

// fakePDF is enough of a PDF for clients that only store the bytes.
func fakePDF(resource types.ExportResource, records int) []byte {
	return []byte("%PDF-1.4\n% " + string(resource) + " " + strconv.Itoa(records) + "\n%%EOF\n")
}

func deref(value *string) string {
	if value == nil {
		return ""
	}
	return *value
}

func formatTimestamp(ts *models.Timestamp) string {
	if ts == nil || ts.IsZero() {
		return ""
	}
	return ts.Format("02/01/2006 15:04")
}
