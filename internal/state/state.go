package state

import (
	"toolcrib/internal/forms"
	"toolcrib/internal/models"
)

// Collection names one of the five remote collections by its API path.
type Collection string

const (
	CollectionElectricians     Collection = "eletricistas"
	CollectionToolsPPE         Collection = "ferramentas-epis"
	CollectionAssignments      Collection = "atribuicoes"
	CollectionVehicles         Collection = "veiculos"
	CollectionExternalServices Collection = "servicos-externos"
)

// Collections is the reload order.
var Collections = []Collection{
	CollectionElectricians,
	CollectionToolsPPE,
	CollectionAssignments,
	CollectionVehicles,
	CollectionExternalServices,
}

// Notice holds the two notification slots. Each write takes the next value of
// Seq so renderers can tell which slot changed last.
type Notice struct {
	Error      string
	Success    string
	ErrorSeq   uint64
	SuccessSeq uint64
	Seq        uint64
}

type State struct {
	User      *models.User
	Probing   bool
	LoggingIn bool

	Electricians     []models.Electrician
	ToolsPPE         []models.ToolPPE
	Assignments      []models.Assignment
	Vehicles         []models.Vehicle
	ExternalServices []models.ExternalService

	// Stale marks collections whose last fetch attempt did not succeed.
	Stale   map[Collection]bool
	Reloads int

	Notice Notice
	Drafts forms.Drafts

	AssignmentFilter      string
	ExternalServiceFilter string
}

func New() State {
	return State{
		Electricians:     []models.Electrician{},
		ToolsPPE:         []models.ToolPPE{},
		Assignments:      []models.Assignment{},
		Vehicles:         []models.Vehicle{},
		ExternalServices: []models.ExternalService{},
		Stale:            map[Collection]bool{},
		Drafts:           forms.NewDrafts(),
	}
}

func (s State) Authenticated() bool {
	return s.User != nil
}

func (s State) IsAdmin() bool {
	return s.User.IsAdmin()
}

func (s State) IsStale(collection Collection) bool {
	return s.Stale[collection]
}

// Clone copies everything a caller could mutate in place. Collection slices
// are only ever replaced wholesale and are shared.
func (s State) Clone() State {
	stale := make(map[Collection]bool, len(s.Stale))
	for collection, flag := range s.Stale {
		stale[collection] = flag
	}
	s.Stale = stale

	if s.User != nil {
		user := *s.User
		s.User = &user
	}

	s.Drafts = s.Drafts.Clone()
	return s
}
