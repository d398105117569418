package models

type Vehicle struct {
	ID             int        `json:"id"`
	Identification string     `json:"identificacao"`
	CreatedAt      *Timestamp `json:"data_criacao,omitempty"`
}
