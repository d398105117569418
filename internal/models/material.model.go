package models

type Material struct {
	ID            int        `json:"id,omitempty"`
	ServiceID     int        `json:"servico_externo_id,omitempty"`
	Name          string     `json:"nome"`
	Type          string     `json:"tipo"`
	Status        StatusCode `json:"status"`
	TechnicalNote string     `json:"observacao_tecnica"`
	PhotoPath     string     `json:"foto_path"`
}
