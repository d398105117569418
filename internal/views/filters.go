package views

import (
	"strings"
	"time"
	"toolcrib/internal/models"
)

// contains matches case-insensitively. A nil field never matches.
func contains(field *string, needle string) bool {
	return field != nil && strings.Contains(strings.ToLower(*field), needle)
}

// FilterAssignments keeps assignments whose electrician name, item name or
// observation contains filter. An empty filter keeps everything.
func FilterAssignments(assignments []models.Assignment, filter string) []models.Assignment {
	if filter == "" {
		return assignments
	}

	needle := strings.ToLower(filter)
	result := make([]models.Assignment, 0, len(assignments))
	for _, a := range assignments {
		if contains(a.ElectricianName, needle) ||
			contains(a.ToolPPEName, needle) ||
			contains(a.Observation, needle) {
			result = append(result, a)
		}
	}
	return result
}

// FilterExternalServices matches on destination, served company and
// collaborator name.
func FilterExternalServices(services []models.ExternalService, filter string) []models.ExternalService {
	if filter == "" {
		return services
	}

	needle := strings.ToLower(filter)
	result := make([]models.ExternalService, 0, len(services))
	for _, es := range services {
		if contains(es.Destination, needle) ||
			contains(es.ServedCompany, needle) ||
			contains(es.CollaboratorName, needle) {
			result = append(result, es)
		}
	}
	return result
}

// AssignmentQuery narrows the assignment list beyond the text filter. Since
// and Until are inclusive bounds on the checkout time.
type AssignmentQuery struct {
	Text       string
	ActiveOnly bool
	Since      *time.Time
	Until      *time.Time
}

func QueryAssignments(assignments []models.Assignment, query AssignmentQuery) []models.Assignment {
	filtered := FilterAssignments(assignments, query.Text)
	if !query.ActiveOnly && query.Since == nil && query.Until == nil {
		return filtered
	}

	result := make([]models.Assignment, 0, len(filtered))
	for _, a := range filtered {
		if query.ActiveOnly && a.IsReturned() {
			continue
		}
		if query.Since != nil || query.Until != nil {
			if a.CheckedOutAt == nil || a.CheckedOutAt.IsZero() {
				continue
			}
			checkedOut := a.CheckedOutAt.Time
			if query.Since != nil && checkedOut.Before(*query.Since) {
				continue
			}
			if query.Until != nil && checkedOut.After(*query.Until) {
				continue
			}
		}
		result = append(result, a)
	}
	return result
}
