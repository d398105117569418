package state

// Reduce applies action to a copy of s and returns it. s is never modified.
func Reduce(s State, action Action) State {
	next := s.Clone()

	switch a := action.(type) {
	case ProbeStarted:
		next.Probing = true
	case ProbeFinished:
		next.Probing = false
		next.User = a.User
	case LoginStarted:
		next.LoggingIn = true
	case LoginSucceeded:
		next.LoggingIn = false
		next.User = a.User
	case LoginFailed:
		next.LoggingIn = false
	case SessionCleared:
		next.User = nil
	case ReloadStarted:
		next.Reloads++
	case ElectriciansLoaded:
		next.Electricians = a.Items
		delete(next.Stale, CollectionElectricians)
	case ToolsPPELoaded:
		next.ToolsPPE = a.Items
		delete(next.Stale, CollectionToolsPPE)
	case AssignmentsLoaded:
		next.Assignments = a.Items
		delete(next.Stale, CollectionAssignments)
	case VehiclesLoaded:
		next.Vehicles = a.Items
		delete(next.Stale, CollectionVehicles)
	case ExternalServicesLoaded:
		next.ExternalServices = a.Items
		delete(next.Stale, CollectionExternalServices)
	case CollectionFailed:
		next.Stale[a.Collection] = true
	case ErrorNoticed:
		next.Notice.Seq++
		next.Notice.Error = a.Message
		next.Notice.ErrorSeq = next.Notice.Seq
	case SuccessNoticed:
		next.Notice.Seq++
		next.Notice.Success = a.Message
		next.Notice.SuccessSeq = next.Notice.Seq
	case ElectricianDraftSet:
		next.Drafts.Electrician = a.Draft
	case ToolPPEDraftSet:
		next.Drafts.ToolPPE = a.Draft
	case AssignmentDraftSet:
		next.Drafts.Assignment = a.Draft
	case VehicleDraftSet:
		next.Drafts.Vehicle = a.Draft
	case ExternalServiceDraftSet:
		next.Drafts.ExternalService = a.Draft.Clone()
	case DraftReset:
		next.Drafts = next.Drafts.Reset(a.Form)
	case AssignmentFilterSet:
		next.AssignmentFilter = a.Text
	case ExternalServiceFilterSet:
		next.ExternalServiceFilter = a.Text
	}

	return next
}
