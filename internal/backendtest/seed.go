package backendtest

import (
	"toolcrib/internal/models"
)

// Seed helpers write straight into the dataset without going through HTTP,
// so they do not count as hits.

func (s *Server) SeedElectrician(name string) models.Electrician {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createElectrician(name)
}

func (s *Server) SeedToolPPE(name string, itemType models.ItemType) models.ToolPPE {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createToolPPE(name, itemType)
}

// SeedAssignment checks item out to electrician, returning it right away when
// returned is set.
func (s *Server) SeedAssignment(electricianID, toolPPEID int, observation string, returned bool) models.Assignment {
	s.mu.Lock()
	defer s.mu.Unlock()

	assignment := s.data.createAssignment(electricianID, toolPPEID, observation)
	if returned {
		assignment, _ = s.data.returnAssignment(assignment.ID)
	}
	return assignment
}

func (s *Server) SeedVehicle(identification string) models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.createVehicle(identification)
}

// SeedExternalService stores service as given. A zero CollaboratorID is
// credited to the admin account.
func (s *Server) SeedExternalService(service models.ExternalService) models.ExternalService {
	s.mu.Lock()
	defer s.mu.Unlock()

	if service.CollaboratorID == 0 {
		if admin, ok := s.data.authenticate(AdminUsername, AdminPassword); ok {
			service.CollaboratorID = admin.ID
		}
	}
	return s.data.createExternalService(service)
}

// Vehicles returns the server-side vehicle list.
func (s *Server) Vehicles() []models.Vehicle {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]models.Vehicle(nil), s.data.vehicles...)
}

// ExternalServices returns the server-side external services, denormalized
// the way the list endpoint sends them.
func (s *Server) ExternalServices() []models.ExternalService {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.externalServiceViews()
}

func (s *Server) Assignment(id int) (models.Assignment, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	assignment, ok := s.data.assignment(id)
	if !ok {
		return assignment, false
	}
	return s.data.assignmentView(assignment), true
}
