package types

import "fmt"

type ExportResource string

const (
	ExportAssignments      ExportResource = "atribuicoes"
	ExportExternalServices ExportResource = "servicos-externos"
)

var ExportResources = []ExportResource{ExportAssignments, ExportExternalServices}

type ExportFormat string

const (
	ExportPDF   ExportFormat = "pdf"
	ExportExcel ExportFormat = "excel"
)

// Extension is the file extension the downloaded payload is saved with.
func (f ExportFormat) Extension() string {
	switch f {
	case ExportExcel:
		return "xlsx"
	default:
		return string(f)
	}
}

func ParseExportResource(value string) (ExportResource, error) {
	for _, resource := range ExportResources {
		if string(resource) == value {
			return resource, nil
		}
	}
	return "", fmt.Errorf("unknown export resource %q", value)
}

func ParseExportFormat(value string) (ExportFormat, error) {
	switch ExportFormat(value) {
	case ExportPDF, ExportExcel:
		return ExportFormat(value), nil
	}
	return "", fmt.Errorf("unknown export format %q", value)
}

// FileName builds the name a download is saved under, e.g. atribuicoes.xlsx.
func FileName(resource ExportResource, format ExportFormat) string {
	return fmt.Sprintf("%s.%s", resource, format.Extension())
}
