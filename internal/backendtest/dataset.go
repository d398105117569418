package backendtest

import (
	"time"
	"toolcrib/internal/models"
)

type account struct {
	user     models.User
	password string
}

// dataset is guarded by Server.mu.
type dataset struct {
	accounts         []account
	electricians     []models.Electrician
	toolsPPE         []models.ToolPPE
	assignments      []models.Assignment
	vehicles         []models.Vehicle
	externalServices []models.ExternalService
	nextID           int
}

func newDataset() *dataset {
	d := &dataset{}
	d.addAccount(AdminUsername, AdminPassword, models.PermissionAdmin)
	d.addAccount(CollaboratorUsername, CollaboratorPassword, models.PermissionCollaborator)
	return d
}

func (d *dataset) id() int {
	d.nextID++
	return d.nextID
}

func now() *models.Timestamp {
	return models.NewTimestamp(time.Now())
}

func (d *dataset) addAccount(username, password string, permission models.Permission) {
	d.accounts = append(d.accounts, account{
		user: models.User{
			ID:         d.id(),
			Username:   username,
			Permission: permission,
			CreatedAt:  now(),
		},
		password: password,
	})
}

func (d *dataset) authenticate(username, password string) (models.User, bool) {
	for _, acc := range d.accounts {
		if acc.user.Username == username && acc.password == password {
			return acc.user, true
		}
	}
	return models.User{}, false
}

func (d *dataset) user(id int) (models.User, bool) {
	for _, acc := range d.accounts {
		if acc.user.ID == id {
			return acc.user, true
		}
	}
	return models.User{}, false
}

func (d *dataset) electrician(id int) (models.Electrician, bool) {
	for _, electrician := range d.electricians {
		if electrician.ID == id {
			return electrician, true
		}
	}
	return models.Electrician{}, false
}

func (d *dataset) toolPPE(id int) (models.ToolPPE, bool) {
	for _, item := range d.toolsPPE {
		if item.ID == id {
			return item, true
		}
	}
	return models.ToolPPE{}, false
}

func (d *dataset) vehicle(id int) (models.Vehicle, bool) {
	for _, vehicle := range d.vehicles {
		if vehicle.ID == id {
			return vehicle, true
		}
	}
	return models.Vehicle{}, false
}

func (d *dataset) vehicleByIdentification(identification string) bool {
	for _, vehicle := range d.vehicles {
		if vehicle.Identification == identification {
			return true
		}
	}
	return false
}

func (d *dataset) activeAssignment(toolPPEID int) bool {
	for _, assignment := range d.assignments {
		if assignment.ToolPPEID == toolPPEID && !assignment.IsReturned() {
			return true
		}
	}
	return false
}

func (d *dataset) createElectrician(name string) models.Electrician {
	electrician := models.Electrician{ID: d.id(), Name: name, CreatedAt: now()}
	d.electricians = append(d.electricians, electrician)
	return electrician
}

func (d *dataset) createToolPPE(name string, itemType models.ItemType) models.ToolPPE {
	item := models.ToolPPE{ID: d.id(), Name: name, Type: itemType, CreatedAt: now()}
	d.toolsPPE = append(d.toolsPPE, item)
	return item
}

func (d *dataset) createAssignment(electricianID, toolPPEID int, observation string) models.Assignment {
	assignment := models.Assignment{
		ID:            d.id(),
		ElectricianID: electricianID,
		ToolPPEID:     toolPPEID,
		CheckedOutAt:  now(),
	}
	if observation != "" {
		assignment.Observation = &observation
	}
	d.assignments = append(d.assignments, assignment)
	return d.assignmentView(assignment)
}

// returnAssignment stamps the return time. It reports false when no such
// assignment exists.
func (d *dataset) returnAssignment(id int) (models.Assignment, bool) {
	for i := range d.assignments {
		if d.assignments[i].ID == id {
			if !d.assignments[i].IsReturned() {
				d.assignments[i].ReturnedAt = now()
			}
			return d.assignmentView(d.assignments[i]), true
		}
	}
	return models.Assignment{}, false
}

func (d *dataset) assignment(id int) (models.Assignment, bool) {
	for _, assignment := range d.assignments {
		if assignment.ID == id {
			return assignment, true
		}
	}
	return models.Assignment{}, false
}

func (d *dataset) createVehicle(identification string) models.Vehicle {
	vehicle := models.Vehicle{ID: d.id(), Identification: identification, CreatedAt: now()}
	d.vehicles = append(d.vehicles, vehicle)
	return vehicle
}

func (d *dataset) createExternalService(service models.ExternalService) models.ExternalService {
	service.ID = d.id()
	if service.DepartedAt == nil {
		service.DepartedAt = now()
	}
	if service.Materials == nil {
		service.Materials = []models.Material{}
	}
	for i := range service.Materials {
		service.Materials[i].ID = d.id()
		service.Materials[i].ServiceID = service.ID
		if service.Materials[i].Status == "" {
			service.Materials[i].Status = models.StatusGood
		}
	}
	if service.HarnessChecklist != nil {
		service.HarnessChecklist.ID = d.id()
		service.HarnessChecklist.ServiceID = service.ID
	}
	if service.LadderChecklist != nil {
		service.LadderChecklist.ID = d.id()
		service.LadderChecklist.ServiceID = service.ID
	}
	d.externalServices = append(d.externalServices, service)
	return d.externalServiceView(service)
}

func (d *dataset) assignmentView(assignment models.Assignment) models.Assignment {
	if electrician, ok := d.electrician(assignment.ElectricianID); ok {
		assignment.ElectricianName = &electrician.Name
	}
	if item, ok := d.toolPPE(assignment.ToolPPEID); ok {
		name := item.Name
		itemType := string(item.Type)
		assignment.ToolPPEName = &name
		assignment.ToolPPEType = &itemType
	}
	return assignment
}

func (d *dataset) externalServiceView(service models.ExternalService) models.ExternalService {
	if user, ok := d.user(service.CollaboratorID); ok {
		service.CollaboratorName = &user.Username
	}
	if vehicle, ok := d.vehicle(service.VehicleID); ok {
		service.VehicleIdentification = &vehicle.Identification
	}
	return service
}

func (d *dataset) assignmentViews() []models.Assignment {
	views := make([]models.Assignment, 0, len(d.assignments))
	for _, assignment := range d.assignments {
		views = append(views, d.assignmentView(assignment))
	}
	return views
}

func (d *dataset) externalServiceViews() []models.ExternalService {
	views := make([]models.ExternalService, 0, len(d.externalServices))
	for _, service := range d.externalServices {
		views = append(views, d.externalServiceView(service))
	}
	return views
}
