package forms

import (
	"fmt"
	"strings"
	"toolcrib/internal/models"
	"toolcrib/internal/types"
)

// Form names one of the five creation forms.
type Form string

const (
	FormElectrician     Form = "electrician"
	FormToolPPE         Form = "toolPPE"
	FormAssignment      Form = "assignment"
	FormVehicle         Form = "vehicle"
	FormExternalService Form = "externalService"
)

// Drafts holds the in-progress values of every form.
type Drafts struct {
	Electrician     ElectricianDraft
	ToolPPE         ToolPPEDraft
	Assignment      AssignmentDraft
	Vehicle         VehicleDraft
	ExternalService ExternalServiceDraft
}

func NewDrafts() Drafts {
	return Drafts{
		Electrician:     NewElectricianDraft(),
		ToolPPE:         NewToolPPEDraft(),
		Assignment:      NewAssignmentDraft(),
		Vehicle:         NewVehicleDraft(),
		ExternalService: NewExternalServiceDraft(),
	}
}

// Reset returns a copy of d with the given form back at its defaults.
func (d Drafts) Reset(form Form) Drafts {
	switch form {
	case FormElectrician:
		d.Electrician = NewElectricianDraft()
	case FormToolPPE:
		d.ToolPPE = NewToolPPEDraft()
	case FormAssignment:
		d.Assignment = NewAssignmentDraft()
	case FormVehicle:
		d.Vehicle = NewVehicleDraft()
	case FormExternalService:
		d.ExternalService = NewExternalServiceDraft()
	}
	return d
}

// Clone copies the nested slices so the result can be edited freely.
func (d Drafts) Clone() Drafts {
	d.ExternalService = d.ExternalService.Clone()
	return d
}

func filled(value string) bool {
	return strings.TrimSpace(value) != ""
}

type ElectricianDraft struct {
	Name string
}

func NewElectricianDraft() ElectricianDraft {
	return ElectricianDraft{}
}

func (d ElectricianDraft) Ready() bool {
	return filled(d.Name)
}

func (d ElectricianDraft) Request() types.CreateElectricianRequest {
	return types.CreateElectricianRequest{Name: d.Name}
}

type ToolPPEDraft struct {
	Name string
	Type models.ItemType
}

func NewToolPPEDraft() ToolPPEDraft {
	return ToolPPEDraft{Type: models.ItemTypeTool}
}

func (d ToolPPEDraft) Ready() bool {
	return filled(d.Name)
}

// Request sends Ferramenta when no type was chosen.
func (d ToolPPEDraft) Request() types.CreateToolPPERequest {
	itemType := d.Type
	if itemType == "" {
		itemType = models.ItemTypeTool
	}
	return types.CreateToolPPERequest{Name: d.Name, Type: itemType}
}

// AssignmentDraft uses zero ids for "nothing chosen yet".
type AssignmentDraft struct {
	ElectricianID int
	ToolPPEID     int
	Observation   string
}

func NewAssignmentDraft() AssignmentDraft {
	return AssignmentDraft{}
}

func (d AssignmentDraft) Ready() bool {
	return d.ElectricianID > 0 && d.ToolPPEID > 0
}

func (d AssignmentDraft) Request() types.CreateAssignmentRequest {
	return types.CreateAssignmentRequest{
		ElectricianID: d.ElectricianID,
		ToolPPEID:     d.ToolPPEID,
		Observation:   d.Observation,
	}
}

type VehicleDraft struct {
	Identification string
}

func NewVehicleDraft() VehicleDraft {
	return VehicleDraft{}
}

func (d VehicleDraft) Ready() bool {
	return filled(d.Identification)
}

func (d VehicleDraft) Request() types.CreateVehicleRequest {
	return types.CreateVehicleRequest{Identification: d.Identification}
}

type ExternalServiceDraft struct {
	VehicleID        int
	Destination      string
	ServedCompany    string
	Materials        []models.Material
	HarnessChecklist models.HarnessChecklist
	LadderChecklist  models.LadderChecklist
}

func NewExternalServiceDraft() ExternalServiceDraft {
	return ExternalServiceDraft{
		Materials:        []models.Material{},
		HarnessChecklist: models.DefaultHarnessChecklist(),
		LadderChecklist:  models.DefaultLadderChecklist(),
	}
}

func (d ExternalServiceDraft) Ready() bool {
	return d.VehicleID > 0 && filled(d.Destination) && filled(d.ServedCompany)
}

func (d ExternalServiceDraft) Clone() ExternalServiceDraft {
	materials := make([]models.Material, len(d.Materials))
	copy(materials, d.Materials)
	d.Materials = materials
	return d
}

// WithMaterial appends a material, defaulting its status to B like the
// backend does.
func (d ExternalServiceDraft) WithMaterial(material models.Material) ExternalServiceDraft {
	if material.Status == "" {
		material.Status = models.StatusGood
	}
	d = d.Clone()
	d.Materials = append(d.Materials, material)
	return d
}

// WithStatus sets one checklist status addressed by its wire name, for
// example "cinto_seguranca_status" or "travas_status".
func (d ExternalServiceDraft) WithStatus(field string, status models.StatusCode) (ExternalServiceDraft, error) {
	switch field {
	case "cinto_seguranca_status":
		d.HarnessChecklist.HarnessStatus = status
	case "talabarte_status":
		d.HarnessChecklist.LanyardStatus = status
	case "mosquetao_status":
		d.HarnessChecklist.CarabinerStatus = status
	case "escada_simples_status":
		d.LadderChecklist.SimpleLadderStatus = status
	case "escada_extensivel_status":
		d.LadderChecklist.ExtensionLadderStatus = status
	case "degraus_status":
		d.LadderChecklist.RungsStatus = status
	case "travas_status":
		d.LadderChecklist.LocksStatus = status
	default:
		return d, fmt.Errorf("unknown checklist field %q", field)
	}
	return d, nil
}

func (d ExternalServiceDraft) Request() types.CreateExternalServiceRequest {
	materials := d.Materials
	if materials == nil {
		materials = []models.Material{}
	}
	return types.CreateExternalServiceRequest{
		VehicleID:        d.VehicleID,
		Destination:      d.Destination,
		ServedCompany:    d.ServedCompany,
		Materials:        materials,
		HarnessChecklist: d.HarnessChecklist,
		LadderChecklist:  d.LadderChecklist,
	}
}

// ChecklistFields lists the wire names accepted by WithStatus.
var ChecklistFields = []string{
	"cinto_seguranca_status",
	"talabarte_status",
	"mosquetao_status",
	"escada_simples_status",
	"escada_extensivel_status",
	"degraus_status",
	"travas_status",
}
