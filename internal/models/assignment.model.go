package models

// Assignment links one electrician to one tool/PPE item. ReturnedAt is set
// once by the server and never cleared, so a returned assignment is terminal.
type Assignment struct {
	ID              int        `json:"id"`
	ElectricianID   int        `json:"eletricista_id"`
	ToolPPEID       int        `json:"ferramenta_epi_id"`
	CheckedOutAt    *Timestamp `json:"data_retirada"`
	ReturnedAt      *Timestamp `json:"data_devolucao"`
	Observation     *string    `json:"observacao"`
	ElectricianName *string    `json:"eletricista_nome"`
	ToolPPEName     *string    `json:"ferramenta_epi_nome"`
	ToolPPEType     *string    `json:"ferramenta_epi_tipo"`
}

func (a Assignment) IsReturned() bool {
	return a.ReturnedAt != nil && !a.ReturnedAt.IsZero()
}

func (a Assignment) CanReturn() bool {
	return !a.IsReturned()
}
