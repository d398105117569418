package models

type ItemType string

const (
	ItemTypeTool ItemType = "Ferramenta"
	ItemTypePPE  ItemType = "EPI"
)

var ItemTypes = []ItemType{ItemTypeTool, ItemTypePPE}

func (t ItemType) Valid() bool {
	return t == ItemTypeTool || t == ItemTypePPE
}

type ToolPPE struct {
	ID        int        `json:"id"`
	Name      string     `json:"nome"`
	Type      ItemType   `json:"tipo"`
	CreatedAt *Timestamp `json:"data_criacao,omitempty"`
}
