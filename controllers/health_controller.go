package controllers

import (
	"net/http"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/services"
)

// HealthController handles liveness and database diagnostics
type HealthController struct {
	services *services.Services
	resp     *responder
}

// NewHealthController creates a new health controller
func NewHealthController(services *services.Services, resp *responder) *HealthController {
	return &HealthController{
		services: services,
		resp:     resp,
	}
}

// Health handles GET /api/health
func (c *HealthController) Health(w http.ResponseWriter, r *http.Request) {
	c.resp.writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:    "ok",
		Timestamp: c.services.Health.Now(),
	})
}

// TestDB handles GET /api/test-db
func (c *HealthController) TestDB(w http.ResponseWriter, r *http.Request) {
	now, err := c.services.Health.DatabaseTime(r.Context())
	if err != nil {
		c.resp.writeError(w, r, http.StatusInternalServerError, codeInternal, "Database connection failed", err)
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.TestDBResponse{
		Status:  models.StatusSuccess,
		Message: "Database connection successful",
		Data:    models.ConnectionInfo{CurrentTime: now},
	})
}
