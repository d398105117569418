package backendtest

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

const (
	TraceIDHeader   = "X-Trace-ID"
	traceIDLocalKey = "traceID"
	userLocalKey    = "user"
	sessionUserKey  = "user_id"
)

func (s *Server) traceID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		traceID := c.Get(TraceIDHeader)
		if traceID != "" {
			s.mu.Lock()
			s.traceIDs = append(s.traceIDs, traceID)
			s.mu.Unlock()
		} else {
			traceID = uuid.New().String()
		}

		c.Set(TraceIDHeader, traceID)
		c.Locals(traceIDLocalKey, traceID)
		return c.Next()
	}
}

// record counts the request and answers with an injected failure if one is
// registered for the route, or rewrites a successful body.
func (s *Server) record() fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := routeKey(c.Method(), c.Path())

		s.mu.Lock()
		s.hits[key]++
		injected, fail := s.failures[key]
		body, replace := s.bodies[key]
		s.mu.Unlock()

		if !fail {
			if err := c.Next(); err != nil || !replace {
				return err
			}
			if status := c.Response().StatusCode(); status >= 200 && status < 300 {
				c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
				return c.SendString(body)
			}
			return nil
		}

		s.log.Function("record").Debug("injecting failure", "route", key, "status", injected.status)
		if injected.message == "" {
			return c.Status(injected.status).JSON(fiber.Map{})
		}
		return c.Status(injected.status).JSON(fiber.Map{"error": injected.message})
	}
}

func (s *Server) requireAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := s.sessionUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Autenticação necessária",
			})
		}
		c.Locals(userLocalKey, user)
		return c.Next()
	}
}

func (s *Server) requireAdmin() fiber.Handler {
	return func(c *fiber.Ctx) error {
		user, ok := s.sessionUser(c)
		if !ok {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "Autenticação necessária",
			})
		}
		if !user.IsAdmin() {
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{
				"error": "Permissão de administrador necessária",
			})
		}
		c.Locals(userLocalKey, user)
		return c.Next()
	}
}
