package controllers

import (
	"encoding/json"
	"html/template"
	"net/http"
	"time"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/services"
	"github.com/blogem/radiocalco/webutil"
)

// AuditController serves the audit log as JSON and as an HTML page
type AuditController struct {
	services *services.Services
	resp     *responder
	now      func() time.Time
}

// NewAuditController creates a new audit controller
func NewAuditController(services *services.Services, resp *responder) *AuditController {
	return &AuditController{
		services: services,
		resp:     resp,
		now:      time.Now,
	}
}

// Index handles GET /api/audit
func (c *AuditController) Index(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Audit.GetRecentEntries(r.Context())
	if err != nil {
		c.resp.serviceError(w, r, err, errorMessages{Failure: "Failed to fetch audit logs"})
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.AuditListResponse{
		Status: models.StatusSuccess,
		Count:  len(entries),
		Logs:   entries,
	})
}

// Page handles GET /audit
func (c *AuditController) Page(w http.ResponseWriter, r *http.Request) {
	entries, err := c.services.Audit.GetRecentEntries(r.Context())
	if err != nil {
		c.resp.log.WithError(err).Error("failed to load audit page")
		http.Error(w, "Failed to fetch audit logs", http.StatusInternalServerError)
		return
	}

	now := c.now()
	funcs := template.FuncMap{
		"formatDate": webutil.FormatDate,
		// the relative-age suffix is fixed markup around a formatted time
		"formatTimestamp": func(t time.Time) template.HTML {
			return template.HTML(webutil.FormatTimestamp(t, now))
		},
		"changes": func(raw json.RawMessage) template.HTML {
			return template.HTML(webutil.EscapeHTML(string(raw)))
		},
	}

	templateData := struct {
		Title       string
		GeneratedAt time.Time
		Count       int
		Entries     []models.AuditLogEntry
	}{
		Title:       "Audit Log",
		GeneratedAt: now,
		Count:       len(entries),
		Entries:     entries,
	}

	if err := renderTemplate(w, "audit.html", funcs, templateData); err != nil {
		c.resp.log.WithError(err).Error("failed to render audit page")
	}
}
