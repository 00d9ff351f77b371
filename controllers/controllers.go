package controllers

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/sirupsen/logrus"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/services"
	"github.com/blogem/radiocalco/webutil"
)

//go:embed templates/*.html
var templateFiles embed.FS

// Error codes carried in the error envelope
const (
	codeValidation    = "validation_error"
	codeInvalidBody   = "invalid_body"
	codeInvalidID     = "invalid_id"
	codeNotFound      = "not_found"
	codeConflict      = "conflict"
	codeInvalidRating = "invalid_rating"
	codeDuplicateVote = "duplicate_vote"
	codeInternal      = "internal_error"
)

const maxBodyBytes = 1 << 20

// Options tunes how controllers report errors
type Options struct {
	// ExposeErrorDetail adds the raw error text to 500 responses
	ExposeErrorDetail bool
}

// Controllers holds all controller instances
type Controllers struct {
	Health   *HealthController
	Users    *UserController
	Students *StudentController
	Ratings  *RatingController
	Audit    *AuditController
}

// NewControllers creates and initializes all controller instances
func NewControllers(services *services.Services, log logrus.FieldLogger, opts Options) *Controllers {
	resp := &responder{log: log, exposeErrorDetail: opts.ExposeErrorDetail}

	return &Controllers{
		Health:   NewHealthController(services, resp),
		Users:    NewUserController(services, resp),
		Students: NewStudentController(services, resp),
		Ratings:  NewRatingController(services, resp),
		Audit:    NewAuditController(services, resp),
	}
}

// errorMessages are the client-facing messages of one resource
type errorMessages struct {
	MissingFields string
	InvalidID     string
	NotFound      string
	Failure       string
}

// responder writes JSON envelopes and maps service errors to statuses
type responder struct {
	log               logrus.FieldLogger
	exposeErrorDetail bool
}

func (rs *responder) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		rs.log.WithError(err).Warn("failed to encode response")
	}
}

func (rs *responder) writeError(w http.ResponseWriter, r *http.Request, status int, code, message string, err error) {
	resp := models.ErrorResponse{
		Status:  models.StatusError,
		Code:    code,
		Message: message,
	}

	logger := rs.log.WithFields(logrus.Fields{
		"method":     r.Method,
		"path":       r.URL.Path,
		"status":     status,
		"request_id": middleware.GetReqID(r.Context()),
	})
	if err != nil {
		logger = logger.WithError(err)
	}

	if status >= http.StatusInternalServerError {
		logger.Error(message)
		if rs.exposeErrorDetail && err != nil {
			resp.Error = err.Error()
		}
	} else {
		logger.Debug(message)
	}

	rs.writeJSON(w, status, resp)
}

// serviceError maps a service error to its HTTP status and message
func (rs *responder) serviceError(w http.ResponseWriter, r *http.Request, err error, msgs errorMessages) {
	switch {
	case errors.Is(err, services.ErrMissingFields):
		rs.writeError(w, r, http.StatusBadRequest, codeValidation, msgs.MissingFields, err)
	case errors.Is(err, services.ErrInvalidID):
		rs.writeError(w, r, http.StatusBadRequest, codeInvalidID, msgs.InvalidID, err)
	case errors.Is(err, services.ErrNotFound):
		rs.writeError(w, r, http.StatusNotFound, codeNotFound, msgs.NotFound, err)
	case errors.Is(err, services.ErrDuplicateEmail):
		rs.writeError(w, r, http.StatusConflict, codeConflict, "Email already exists", err)
	case errors.Is(err, services.ErrInvalidRating):
		rs.writeError(w, r, http.StatusBadRequest, codeInvalidRating, `Rating must be either "up" or "down"`, err)
	case errors.Is(err, services.ErrDuplicateVote):
		rs.writeError(w, r, http.StatusBadRequest, codeDuplicateVote, "You have already rated this song", err)
	default:
		rs.writeError(w, r, http.StatusInternalServerError, codeInternal, msgs.Failure, err)
	}
}

// decodeForm reads a JSON or urlencoded request body into dst. An empty
// body leaves dst untouched so validation reports the missing fields.
func decodeForm(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "application/x-www-form-urlencoded" {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
		if err := r.ParseForm(); err != nil {
			return fmt.Errorf("failed to parse form: %w", err)
		}
		encoded, err := json.Marshal(webutil.FormData(r.PostForm))
		if err != nil {
			return err
		}
		return json.Unmarshal(encoded, dst)
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes))
	if err != nil {
		return fmt.Errorf("failed to read body: %w", err)
	}
	if len(body) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, dst); err != nil {
		return fmt.Errorf("failed to decode body: %w", err)
	}
	return nil
}

// parseID reads the {id} route parameter. Anything but a base-10 integer is
// reported as services.ErrInvalidID; range checks are left to the services.
func parseID(r *http.Request) (int64, error) {
	idStr := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("id %q: %w", idStr, services.ErrInvalidID)
	}
	return id, nil
}

// pathParam returns a decoded route parameter. chi matches against the raw
// path when the request carries escaped separators, so those values still
// need unescaping.
func pathParam(r *http.Request, name string) string {
	value := chi.URLParam(r, name)
	if r.URL.RawPath == "" {
		return value
	}
	if decoded, err := url.PathUnescape(value); err == nil {
		return decoded
	}
	return value
}

// renderTemplate renders an embedded page inside the shared layout
func renderTemplate(w http.ResponseWriter, pageTemplate string, funcs template.FuncMap, data interface{}) error {
	tmpl := template.New("layout.html").Funcs(funcs)

	if _, err := tmpl.ParseFS(templateFiles, "templates/layout.html", "templates/"+pageTemplate); err != nil {
		http.Error(w, "Failed to parse template", http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template", http.StatusInternalServerError)
		return err
	}

	return nil
}
