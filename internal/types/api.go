package types

import "toolcrib/internal/models"

// ErrorResponse is the body the backend sends with every non-2xx reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Message string      `json:"message"`
	User    models.User `json:"user"`
}

type CreateElectricianRequest struct {
	Name string `json:"nome"`
}

type CreateToolPPERequest struct {
	Name string          `json:"nome"`
	Type models.ItemType `json:"tipo"`
}

type CreateAssignmentRequest struct {
	ElectricianID int    `json:"eletricista_id"`
	ToolPPEID     int    `json:"ferramenta_epi_id"`
	Observation   string `json:"observacao"`
}

// ReturnAssignmentRequest is intentionally empty: the server alone stamps
// the return time.
type ReturnAssignmentRequest struct{}

type CreateVehicleRequest struct {
	Identification string `json:"identificacao"`
}

type CreateExternalServiceRequest struct {
	VehicleID        int                     `json:"veiculo_id"`
	Destination      string                  `json:"destino"`
	ServedCompany    string                  `json:"empresa_atendida"`
	Materials        []models.Material       `json:"materiais"`
	HarnessChecklist models.HarnessChecklist `json:"checklist_cinto"`
	LadderChecklist  models.LadderChecklist  `json:"checklist_escada"`
}
