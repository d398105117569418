package backendtest

import (
	"strings"
	"toolcrib/internal/models"
	"toolcrib/internal/types"

	"github.com/gofiber/fiber/v2"
)

func (s *Server) routes(api fiber.Router) {
	auth := api.Group("/auth")
	auth.Post("/login", s.login)
	auth.Post("/logout", s.logout)
	auth.Get("/me", s.me)

	api.Get("/eletricistas", s.requireAuth(), s.listElectricians)
	api.Post("/eletricistas", s.requireAdmin(), s.createElectrician)

	api.Get("/ferramentas-epis", s.requireAuth(), s.listToolsPPE)
	api.Post("/ferramentas-epis", s.requireAdmin(), s.createToolPPE)

	api.Get("/atribuicoes", s.requireAuth(), s.listAssignments)
	api.Post("/atribuicoes", s.requireAuth(), s.createAssignment)
	api.Put("/atribuicoes/:id/devolver", s.requireAuth(), s.returnAssignment)

	api.Get("/veiculos", s.requireAuth(), s.listVehicles)
	api.Post("/veiculos", s.requireAdmin(), s.createVehicle)

	api.Get("/servicos-externos", s.requireAuth(), s.listExternalServices)
	api.Post("/servicos-externos", s.requireAuth(), s.createExternalService)

	api.Get("/export/:resource/:format", s.requireAuth(), s.export)
}

func errorResponse(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(types.ErrorResponse{Error: message})
}

func (s *Server) sessionUser(c *fiber.Ctx) (models.User, bool) {
	sess, err := s.sessions.Get(c)
	if err != nil {
		return models.User{}, false
	}

	userID, ok := sess.Get(sessionUserKey).(int)
	if !ok {
		return models.User{}, false
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.user(userID)
}

func currentUser(c *fiber.Ctx) models.User {
	user, _ := c.Locals(userLocalKey).(models.User)
	return user
}

func (s *Server) login(c *fiber.Ctx) error {
	var req types.LoginRequest
	if err := c.BodyParser(&req); err != nil || req.Username == "" || req.Password == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Username e password são obrigatórios")
	}

	s.mu.Lock()
	user, ok := s.data.authenticate(req.Username, req.Password)
	s.mu.Unlock()
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	sess, err := s.sessions.Get(c)
	if err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Falha ao iniciar sessão")
	}
	sess.Set(sessionUserKey, user.ID)
	if err := sess.Save(); err != nil {
		return errorResponse(c, fiber.StatusInternalServerError, "Falha ao iniciar sessão")
	}

	return c.JSON(types.LoginResponse{Message: "Login realizado com sucesso", User: user})
}

func (s *Server) logout(c *fiber.Ctx) error {
	if sess, err := s.sessions.Get(c); err == nil {
		_ = sess.Destroy()
	}
	return c.JSON(types.MessageResponse{Message: "Logout realizado com sucesso"})
}

func (s *Server) me(c *fiber.Ctx) error {
	user, ok := s.sessionUser(c)
	if !ok {
		return errorResponse(c, fiber.StatusUnauthorized, "Usuário não autenticado")
	}
	return c.JSON(user)
}

func (s *Server) listElectricians(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(append([]models.Electrician{}, s.data.electricians...))
}

func (s *Server) createElectrician(c *fiber.Ctx) error {
	var req types.CreateElectricianRequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Nome é obrigatório")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return c.Status(fiber.StatusCreated).JSON(s.data.createElectrician(req.Name))
}

func (s *Server) listToolsPPE(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(append([]models.ToolPPE{}, s.data.toolsPPE...))
}

func (s *Server) createToolPPE(c *fiber.Ctx) error {
	var req types.CreateToolPPERequest
	if err := c.BodyParser(&req); err != nil || req.Name == "" || req.Type == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Nome e tipo são obrigatórios")
	}
	if !req.Type.Valid() {
		return errorResponse(c, fiber.StatusBadRequest, "Tipo deve ser Ferramenta ou EPI")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return c.Status(fiber.StatusCreated).JSON(s.data.createToolPPE(req.Name, req.Type))
}

func (s *Server) listAssignments(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(s.data.assignmentViews())
}

func (s *Server) createAssignment(c *fiber.Ctx) error {
	var req types.CreateAssignmentRequest
	if err := c.BodyParser(&req); err != nil || req.ElectricianID == 0 || req.ToolPPEID == 0 {
		return errorResponse(c, fiber.StatusBadRequest, "Eletricista e ferramenta/EPI são obrigatórios")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.electrician(req.ElectricianID); !ok {
		return errorResponse(c, fiber.StatusNotFound, "Eletricista não encontrado")
	}
	if _, ok := s.data.toolPPE(req.ToolPPEID); !ok {
		return errorResponse(c, fiber.StatusNotFound, "Ferramenta/EPI não encontrado")
	}
	if s.data.activeAssignment(req.ToolPPEID) {
		return errorResponse(
			c,
			fiber.StatusBadRequest,
			"Esta ferramenta/EPI já está atribuída a outro eletricista",
		)
	}

	assignment := s.data.createAssignment(req.ElectricianID, req.ToolPPEID, req.Observation)
	return c.Status(fiber.StatusCreated).JSON(assignment)
}

func (s *Server) returnAssignment(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return errorResponse(c, fiber.StatusNotFound, "Atribuição não encontrada")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.data.assignment(id)
	if !ok {
		return errorResponse(c, fiber.StatusNotFound, "Atribuição não encontrada")
	}
	if current.IsReturned() {
		return errorResponse(c, fiber.StatusBadRequest, "Esta atribuição já foi devolvida")
	}

	assignment, _ := s.data.returnAssignment(id)
	return c.JSON(assignment)
}

func (s *Server) listVehicles(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(append([]models.Vehicle{}, s.data.vehicles...))
}

func (s *Server) createVehicle(c *fiber.Ctx) error {
	var req types.CreateVehicleRequest
	if err := c.BodyParser(&req); err != nil || req.Identification == "" {
		return errorResponse(c, fiber.StatusBadRequest, "Identificação é obrigatória")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.data.vehicleByIdentification(req.Identification) {
		return errorResponse(c, fiber.StatusBadRequest, "Já existe um veículo com esta identificação")
	}
	return c.Status(fiber.StatusCreated).JSON(s.data.createVehicle(req.Identification))
}

func (s *Server) listExternalServices(c *fiber.Ctx) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return c.JSON(s.data.externalServiceViews())
}

func (s *Server) createExternalService(c *fiber.Ctx) error {
	var req types.CreateExternalServiceRequest
	if err := c.BodyParser(&req); err != nil ||
		req.VehicleID == 0 ||
		strings.TrimSpace(req.Destination) == "" ||
		strings.TrimSpace(req.ServedCompany) == "" {
		return errorResponse(
			c,
			fiber.StatusBadRequest,
			"Veículo, destino e empresa atendida são obrigatórios",
		)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.data.vehicle(req.VehicleID); !ok {
		return errorResponse(c, fiber.StatusNotFound, "Veículo não encontrado")
	}

	harness := req.HarnessChecklist
	ladder := req.LadderChecklist
	service := s.data.createExternalService(models.ExternalService{
		CollaboratorID:   currentUser(c).ID,
		VehicleID:        req.VehicleID,
		Destination:      &req.Destination,
		ServedCompany:    &req.ServedCompany,
		Materials:        req.Materials,
		HarnessChecklist: &harness,
		LadderChecklist:  &ladder,
	})
	return c.Status(fiber.StatusCreated).JSON(service)
}
