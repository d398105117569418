package state

import (
	"toolcrib/internal/forms"
	"toolcrib/internal/models"
)

// Action is a state transition request handled by Reduce.
type Action interface {
	actionName() string
}

type ProbeStarted struct{}

// ProbeFinished carries a nil User when the probe failed.
type ProbeFinished struct{ User *models.User }

type LoginStarted struct{}

type LoginSucceeded struct{ User *models.User }

type LoginFailed struct{}

type SessionCleared struct{}

type ReloadStarted struct{}

type ElectriciansLoaded struct{ Items []models.Electrician }

type ToolsPPELoaded struct{ Items []models.ToolPPE }

type AssignmentsLoaded struct{ Items []models.Assignment }

type VehiclesLoaded struct{ Items []models.Vehicle }

type ExternalServicesLoaded struct{ Items []models.ExternalService }

// ReloadFinished closes every reload, including one abandoned after a
// transport failure.
type ReloadFinished struct{ Aborted bool }

// CollectionFailed keeps the previous value and marks it stale.
type CollectionFailed struct{ Collection Collection }

type ErrorNoticed struct{ Message string }

type SuccessNoticed struct{ Message string }

type ElectricianDraftSet struct{ Draft forms.ElectricianDraft }

type ToolPPEDraftSet struct{ Draft forms.ToolPPEDraft }

type AssignmentDraftSet struct{ Draft forms.AssignmentDraft }

type VehicleDraftSet struct{ Draft forms.VehicleDraft }

type ExternalServiceDraftSet struct{ Draft forms.ExternalServiceDraft }

type DraftReset struct{ Form forms.Form }

type AssignmentFilterSet struct{ Text string }

type ExternalServiceFilterSet struct{ Text string }

func (ProbeStarted) actionName() string { return "probeStarted" }
func (ProbeFinished) actionName() string { return "probeFinished" }
func (LoginStarted) actionName() string { return "loginStarted" }
func (LoginSucceeded) actionName() string { return "loginSucceeded" }
func (LoginFailed) actionName() string { return "loginFailed" }
func (SessionCleared) actionName() string { return "sessionCleared" }
func (ReloadStarted) actionName() string { return "reloadStarted" }
func (ElectriciansLoaded) actionName() string { return "electriciansLoaded" }
func (ToolsPPELoaded) actionName() string { return "toolsPPELoaded" }
func (AssignmentsLoaded) actionName() string { return "assignmentsLoaded" }
func (VehiclesLoaded) actionName() string { return "vehiclesLoaded" }
func (ExternalServicesLoaded) actionName() string { return "externalServicesLoaded" }
func (ReloadFinished) actionName() string { return "reloadFinished" }
func (CollectionFailed) actionName() string { return "collectionFailed" }
func (ErrorNoticed) actionName() string { return "errorNoticed" }
func (SuccessNoticed) actionName() string { return "successNoticed" }
func (ElectricianDraftSet) actionName() string { return "electricianDraftSet" }
func (ToolPPEDraftSet) actionName() string { return "toolPPEDraftSet" }
func (AssignmentDraftSet) actionName() string { return "assignmentDraftSet" }
func (VehicleDraftSet) actionName() string { return "vehicleDraftSet" }
func (ExternalServiceDraftSet) actionName() string { return "externalServiceDraftSet" }
func (DraftReset) actionName() string { return "draftReset" }
func (AssignmentFilterSet) actionName() string { return "assignmentFilterSet" }
func (ExternalServiceFilterSet) actionName() string { return "externalServiceFilterSet" }
