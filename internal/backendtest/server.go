// Package backendtest runs an in-memory stand-in for the tool crib REST API
// on a loopback port. It keeps the backend's routes, session cookie, error
// bodies and admin rules, counts every request and can be told to fail
// individual routes.
package backendtest

import (
	"fmt"
	"net"
	"strings"
	"sync"
	"testing"
	"time"

	logger "github.com/Bparsons0904/goLogger"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/session"
	"github.com/gofiber/helmet/v2"
)

const (
	AdminUsername        = "admin"
	AdminPassword        = "admin123"
	CollaboratorUsername = "tecnico"
	CollaboratorPassword = "tecnico123"
)

type failure struct {
	status  int
	message string
}

type Server struct {
	// URL is the API root, ending in /api.
	URL string

	app      *fiber.App
	sessions *session.Store
	log      logger.Logger

	mu       sync.Mutex
	data     *dataset
	hits     map[string]int
	traceIDs []string
	failures map[string]failure
	bodies   map[string]string
}

// New starts a server seeded with an admin and a collaborator account and
// stops it when the test ends.
func New(t testing.TB) *Server {
	t.Helper()

	s, err := Start()
	if err != nil {
		t.Fatalf("backendtest: %v", err)
	}
	t.Cleanup(func() {
		_ = s.Close()
	})
	return s
}

func Start() (*Server, error) {
	log := logger.New("backendtest").Function("Start")

	listener, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		return nil, log.Err("failed to listen on loopback", err)
	}

	app := fiber.New(fiber.Config{
		AppName:               "toolcrib_backendtest",
		ReadTimeout:           10 * time.Second,
		WriteTimeout:          10 * time.Second,
		DisableStartupMessage: true,
	})

	s := &Server{
		URL: fmt.Sprintf("http://%s/api", listener.Addr().String()),
		app: app,
		sessions: session.New(session.Config{
			KeyLookup:  "cookie:session",
			CookiePath: "/",
			Expiration: time.Hour,
		}),
		log:      logger.New("backendtest"),
		data:     newDataset(),
		hits:     make(map[string]int),
		failures: make(map[string]failure),
		bodies:   make(map[string]string),
	}

	app.Use(helmet.New(helmet.Config{
		ContentTypeNosniff: "nosniff",
		XFrameOptions:      "DENY",
		ReferrerPolicy:     "no-referrer",
	}))
	app.Use(s.traceID())
	app.Use(s.record())

	s.routes(app.Group("/api"))

	go func() {
		if err := app.Listener(listener); err != nil {
			log.Warn("backendtest listener stopped", "error", err)
		}
	}()

	return s, nil
}

func (s *Server) Close() error {
	return s.app.Shutdown()
}

func routeKey(method, path string) string {
	return method + " " + strings.TrimPrefix(path, "/api")
}

// Hits reports how many requests reached method and path, path given without
// the /api prefix, e.g. Hits("GET", "/veiculos").
func (s *Server) Hits(method, path string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.hits[routeKey(method, path)]
}

// TotalHits counts every request received so far.
func (s *Server) TotalHits() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	total := 0
	for _, count := range s.hits {
		total += count
	}
	return total
}

// TraceIDs lists the X-Trace-ID values sent by clients, in arrival order.
func (s *Server) TraceIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.traceIDs...)
}

// Fail makes method and path answer with status and an {"error": message}
// body until ClearFailures. An empty message sends an empty JSON object.
func (s *Server) Fail(method, path string, status int, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures[routeKey(method, path)] = failure{status: status, message: message}
}

// ReplaceBody lets method and path run normally but swaps the body of a 2xx
// reply for body, sent as JSON, until ClearFailures.
func (s *Server) ReplaceBody(method, path, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bodies[routeKey(method, path)] = body
}

func (s *Server) ClearFailures() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.failures = make(map[string]failure)
	s.bodies = make(map[string]string)
}
