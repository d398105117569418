package services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"toolcrib/config"
	appContext "toolcrib/internal/context"
	"toolcrib/internal/models"
	"toolcrib/internal/types"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/go-resty/resty/v2"
)

const (
	TraceIDHeader = "X-Trace-ID"
	APIUserAgent  = "toolcrib/1.0"
)

var (
	// ErrTransport marks failures where no HTTP response was obtained.
	ErrTransport = errors.New("transport failure")
	// ErrDecode marks a 2xx reply whose body could not be read into the
	// expected shape. The server did answer, so this is not a transport failure.
	ErrDecode = errors.New("unreadable response body")
)

// APIError is a non-2xx reply. Message holds the server-provided error text
// and is empty when the body carried none.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("api responded with status %d", e.StatusCode)
	}
	return fmt.Sprintf("api responded with status %d: %s", e.StatusCode, e.Message)
}

// ServerMessage extracts the server-provided message from err, if any.
func ServerMessage(err error) (string, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return apiErr.Message, true
	}
	return "", false
}

type APIService struct {
	client *resty.Client
	log    logger.Logger
}

func NewAPIService(cfg config.Config) *APIService {
	log := logger.New("apiService")

	// The session cookie set by /auth/login is replayed on every request.
	jar, _ := cookiejar.New(nil)

	client := resty.New().
		SetBaseURL(strings.TrimSuffix(cfg.APIBaseURL, "/")).
		SetCookieJar(jar).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", APIUserAgent).
		SetLogger(restyLogger{log: log})

	if cfg.Timeout() > 0 {
		client.SetTimeout(cfg.Timeout())
	}

	client.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		if traceID, ok := appContext.GetTraceID(req.Context()); ok {
			req.SetHeader(TraceIDHeader, traceID)
		}
		return nil
	})

	log.Info("API service initialized", "baseURL", cfg.APIBaseURL, "timeout", cfg.Timeout())

	return &APIService{
		client: client,
		log:    log,
	}
}

// SetTransport swaps the underlying round tripper, keeping the cookie jar.
func (s *APIService) SetTransport(transport http.RoundTripper) *APIService {
	s.client.SetTransport(transport)
	return s
}

func (s *APIService) CurrentUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := s.do(ctx, http.MethodGet, "/auth/me", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *APIService) Login(ctx context.Context, req types.LoginRequest) (*models.User, error) {
	var response types.LoginResponse
	if err := s.do(ctx, http.MethodPost, "/auth/login", req, &response); err != nil {
		return nil, err
	}
	return &response.User, nil
}

func (s *APIService) Logout(ctx context.Context) error {
	return s.do(ctx, http.MethodPost, "/auth/logout", nil, nil)
}

func (s *APIService) ListElectricians(ctx context.Context) ([]models.Electrician, error) {
	electricians := []models.Electrician{}
	err := s.do(ctx, http.MethodGet, "/eletricistas", nil, &electricians)
	return electricians, err
}

func (s *APIService) ListToolsPPE(ctx context.Context) ([]models.ToolPPE, error) {
	items := []models.ToolPPE{}
	err := s.do(ctx, http.MethodGet, "/ferramentas-epis", nil, &items)
	return items, err
}

func (s *APIService) ListAssignments(ctx context.Context) ([]models.Assignment, error) {
	assignments := []models.Assignment{}
	err := s.do(ctx, http.MethodGet, "/atribuicoes", nil, &assignments)
	return assignments, err
}

func (s *APIService) ListVehicles(ctx context.Context) ([]models.Vehicle, error) {
	vehicles := []models.Vehicle{}
	err := s.do(ctx, http.MethodGet, "/veiculos", nil, &vehicles)
	return vehicles, err
}

func (s *APIService) ListExternalServices(ctx context.Context) ([]models.ExternalService, error) {
	externalServices := []models.ExternalService{}
	err := s.do(ctx, http.MethodGet, "/servicos-externos", nil, &externalServices)
	return externalServices, err
}

// Mutations only care about the status code. The reply body is never decoded
// so a committed write is never reported as a failure.

func (s *APIService) CreateElectrician(ctx context.Context, req types.CreateElectricianRequest) error {
	return s.do(ctx, http.MethodPost, "/eletricistas", req, nil)
}

func (s *APIService) CreateToolPPE(ctx context.Context, req types.CreateToolPPERequest) error {
	return s.do(ctx, http.MethodPost, "/ferramentas-epis", req, nil)
}

func (s *APIService) CreateAssignment(ctx context.Context, req types.CreateAssignmentRequest) error {
	return s.do(ctx, http.MethodPost, "/atribuicoes", req, nil)
}

func (s *APIService) ReturnAssignment(ctx context.Context, assignmentID int) error {
	path := fmt.Sprintf("/atribuicoes/%d/devolver", assignmentID)
	return s.do(ctx, http.MethodPut, path, types.ReturnAssignmentRequest{}, nil)
}

func (s *APIService) CreateVehicle(ctx context.Context, req types.CreateVehicleRequest) error {
	return s.do(ctx, http.MethodPost, "/veiculos", req, nil)
}

func (s *APIService) CreateExternalService(ctx context.Context, req types.CreateExternalServiceRequest) error {
	return s.do(ctx, http.MethodPost, "/servicos-externos", req, nil)
}

// Export downloads an export file. The payload is returned untouched.
func (s *APIService) Export(
	ctx context.Context,
	resource types.ExportResource,
	format types.ExportFormat,
) ([]byte, error) {
	log := s.log.TraceFromContext(ctx).Function("Export")
	path := fmt.Sprintf("/export/%s/%s", resource, format)

	resp, err := s.client.R().
		SetContext(ctx).
		SetHeader("Accept", "*/*").
		Get(path)
	if err != nil {
		log.Warn("export request failed", "path", path, "error", err)
		return nil, fmt.Errorf("%w: GET %s: %v", ErrTransport, path, err)
	}

	if !resp.IsSuccess() {
		log.Info("export rejected", "path", path, "status", resp.StatusCode())
		return nil, &APIError{StatusCode: resp.StatusCode()}
	}

	log.Debug("export downloaded", "path", path, "bytes", len(resp.Body()))
	return resp.Body(), nil
}

func (s *APIService) do(ctx context.Context, method, path string, body, result any) error {
	log := s.log.TraceFromContext(ctx).Function("do")

	req := s.client.R().
		SetContext(ctx).
		SetError(&types.ErrorResponse{})
	if body != nil {
		req.SetBody(body)
	}
	if result != nil {
		req.SetResult(result)
	}

	resp, err := req.Execute(method, path)
	if err != nil && !answered(resp) {
		log.Warn("request failed", "method", method, "path", path, "error", err)
		return fmt.Errorf("%w: %s %s: %v", ErrTransport, method, path, err)
	}
	if err != nil && resp.IsSuccess() {
		log.Warn("response body not decoded",
			"method", method,
			"path", path,
			"status", resp.StatusCode(),
			"error", err)
		return fmt.Errorf("%w: %s %s: %v", ErrDecode, method, path, err)
	}

	if !resp.IsSuccess() {
		apiErr := &APIError{StatusCode: resp.StatusCode()}
		if errBody, ok := resp.Error().(*types.ErrorResponse); ok && errBody != nil {
			apiErr.Message = errBody.Error
		}
		log.Info("request rejected",
			"method", method,
			"path", path,
			"status", apiErr.StatusCode,
			"message", apiErr.Message)
		return apiErr
	}

	log.Debug("request completed", "method", method, "path", path, "status", resp.StatusCode())
	return nil
}

// answered reports whether the server sent a status line, even when resty
// failed afterwards while reading the body.
func answered(resp *resty.Response) bool {
	return resp != nil && resp.RawResponse != nil
}

type restyLogger struct {
	log logger.Logger
}

func (l restyLogger) Errorf(format string, v ...any) {
	l.log.Warn("resty: " + fmt.Sprintf(format, v...))
}

func (l restyLogger) Warnf(format string, v ...any) {
	l.log.Warn("resty: " + fmt.Sprintf(format, v...))
}

func (l restyLogger) Debugf(format string, v ...any) {
	l.log.Debug("resty: " + fmt.Sprintf(format, v...))
}
