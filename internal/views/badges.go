package views

import "toolcrib/internal/models"

type Variant string

const (
	VariantDefault     Variant = "default"
	VariantSecondary   Variant = "secondary"
	VariantDestructive Variant = "destructive"
	VariantOutline     Variant = "outline"
)

type Badge struct {
	Label   string
	Variant Variant
}

func (b Badge) String() string {
	return b.Label
}

var statusVariants = map[models.StatusCode]Variant{
	models.StatusGood:          VariantDefault,
	models.StatusIrregular:     VariantSecondary,
	models.StatusNonConforming: VariantDestructive,
	models.StatusAbsent:        VariantOutline,
}

// StatusBadge renders unknown codes as themselves with the default variant.
func StatusBadge(status models.StatusCode) Badge {
	variant, ok := statusVariants[status]
	if !ok {
		variant = VariantDefault
	}
	return Badge{Label: status.Label(), Variant: variant}
}

type Action string

const (
	// ActionReturn is offered while the item is still checked out.
	ActionReturn Action = "Devolver"
	// ActionReturned is a badge, not an action.
	ActionReturned Action = "Devolvido"
)

func AssignmentAction(a models.Assignment) Action {
	if a.CanReturn() {
		return ActionReturn
	}
	return ActionReturned
}

// ReturnableAssignments lists the assignments that offer ActionReturn.
func ReturnableAssignments(assignments []models.Assignment) []models.Assignment {
	result := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if AssignmentAction(a) == ActionReturn {
			result = append(result, a)
		}
	}
	return result
}
