package models

type ChecklistItem struct {
	Label  string
	Status StatusCode
}

type HarnessChecklist struct {
	ID              int        `json:"id,omitempty"`
	ServiceID       int        `json:"servico_externo_id,omitempty"`
	HarnessStatus   StatusCode `json:"cinto_seguranca_status"`
	LanyardStatus   StatusCode `json:"talabarte_status"`
	CarabinerStatus StatusCode `json:"mosquetao_status"`
	Notes           string     `json:"observacoes"`
}

func DefaultHarnessChecklist() HarnessChecklist {
	return HarnessChecklist{
		HarnessStatus:   StatusGood,
		LanyardStatus:   StatusGood,
		CarabinerStatus: StatusGood,
	}
}

func (c HarnessChecklist) Items() []ChecklistItem {
	return []ChecklistItem{
		{Label: "Cinto de Segurança", Status: c.HarnessStatus},
		{Label: "Talabarte", Status: c.LanyardStatus},
		{Label: "Mosquetão", Status: c.CarabinerStatus},
	}
}

type LadderChecklist struct {
	ID                    int        `json:"id,omitempty"`
	ServiceID             int        `json:"servico_externo_id,omitempty"`
	SimpleLadderStatus    StatusCode `json:"escada_simples_status"`
	ExtensionLadderStatus StatusCode `json:"escada_extensivel_status"`
	RungsStatus           StatusCode `json:"degraus_status"`
	LocksStatus           StatusCode `json:"travas_status"`
	Notes                 string     `json:"observacoes"`
}

func DefaultLadderChecklist() LadderChecklist {
	return LadderChecklist{
		SimpleLadderStatus:    StatusGood,
		ExtensionLadderStatus: StatusGood,
		RungsStatus:           StatusGood,
		LocksStatus:           StatusGood,
	}
}

func (c LadderChecklist) Items() []ChecklistItem {
	return []ChecklistItem{
		{Label: "Escada Simples", Status: c.SimpleLadderStatus},
		{Label: "Escada Extensível", Status: c.ExtensionLadderStatus},
		{Label: "Degraus", Status: c.RungsStatus},
		{Label: "Travas", Status: c.LocksStatus},
	}
}
