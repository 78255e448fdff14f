package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/a1technologies/cooling-crm/internal/persistence"
)

// HealthHandler responds to liveness and readiness checks.
type HealthHandler struct {
	serviceName string
	version     string
	postgres    *persistence.Postgres
	redis       *persistence.Redis
	bolt        *persistence.Bolt
}

// HealthDependencies lists the backing stores in use. Nil entries are not configured and
// are reported as "disabled".
type HealthDependencies struct {
	Postgres *persistence.Postgres
	Redis    *persistence.Redis
	Bolt     *persistence.Bolt
}

// NewHealthHandler returns a new handler instance.
func NewHealthHandler(serviceName, version string, deps HealthDependencies) *HealthHandler {
	return &HealthHandler{
		serviceName: serviceName,
		version:     version,
		postgres:    deps.Postgres,
		redis:       deps.Redis,
		bolt:        deps.Bolt,
	}
}

// Live reports service liveness.
func (h *HealthHandler) Live(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "alive",
		"service": h.serviceName,
		"version": h.version,
	})
}

// Ready reports service readiness by checking dependencies.
func (h *HealthHandler) Ready(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	depStatus := fiber.Map{}
	ready := true
	check := func(name string, configured bool, ping func() error) {
		if !configured {
			depStatus[name] = "disabled"
			return
		}
		if err := ping(); err != nil {
			depStatus[name] = err.Error()
			ready = false
			return
		}
		depStatus[name] = "ok"
	}

	check("postgres", h.postgres != nil, func() error { return h.postgres.Ping(ctx) })
	check("redis", h.redis != nil, func() error { return h.redis.Ping(ctx) })
	check("bolt", h.bolt != nil, h.bolt.Ping)

	if ready {
		return c.JSON(fiber.Map{
			"status":       "ready",
			"dependencies": depStatus,
		})
	}

	return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
		"error": fiber.Map{
			"code":    "DEPENDENCY_UNAVAILABLE",
			"message": "one or more dependencies unavailable",
			"details": depStatus,
		},
	})
}
