package models

// ExternalService is a single vehicle trip. Checklists are optional on the
// wire because the list endpoint omits them when none was recorded.
type ExternalService struct {
	ID                    int               `json:"id"`
	CollaboratorID        int               `json:"colaborador_id"`
	VehicleID             int               `json:"veiculo_id"`
	Destination           *string           `json:"destino"`
	ServedCompany         *string           `json:"empresa_atendida"`
	DepartedAt            *Timestamp        `json:"data_hora_saida"`
	CollaboratorName      *string           `json:"colaborador_nome"`
	VehicleIdentification *string           `json:"veiculo_identificacao"`
	Materials             []Material        `json:"materiais"`
	HarnessChecklist      *HarnessChecklist `json:"checklist_cinto,omitempty"`
	LadderChecklist       *LadderChecklist  `json:"checklist_escada,omitempty"`
}
