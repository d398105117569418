package models

type Electrician struct {
	ID        int        `json:"id"`
	Name      string     `json:"nome"`
	CreatedAt *Timestamp `json:"data_criacao,omitempty"`
}
