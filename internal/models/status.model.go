package models

// StatusCode describes the condition of a piece of safety equipment at
// checklist time.
type StatusCode string

const (
	StatusGood          StatusCode = "B"
	StatusIrregular     StatusCode = "I"
	StatusNonConforming StatusCode = "N"
	StatusAbsent        StatusCode = "A"
)

var StatusCodes = []StatusCode{StatusGood, StatusIrregular, StatusNonConforming, StatusAbsent}

var statusLabels = map[StatusCode]string{
	StatusGood:          "Bom",
	StatusIrregular:     "Irregular",
	StatusNonConforming: "Não Conforme",
	StatusAbsent:        "Ausente",
}

func (s StatusCode) Known() bool {
	_, ok := statusLabels[s]
	return ok
}

// Label falls back to the raw code for values outside the four known codes.
func (s StatusCode) Label() string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}
