package controllers

import (
	"net/http"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/services"
)

var studentMessages = errorMessages{
	MissingFields: "Name, email, and grade are required",
	InvalidID:     "Invalid student ID",
	NotFound:      "Student not found",
}

// StudentController handles student management requests
type StudentController struct {
	services *services.Services
	resp     *responder
}

// NewStudentController creates a new student controller
func NewStudentController(services *services.Services, resp *responder) *StudentController {
	return &StudentController{
		services: services,
		resp:     resp,
	}
}

func (c *StudentController) messages(failure string) errorMessages {
	msgs := studentMessages
	msgs.Failure = failure
	return msgs
}

// Index handles GET /api/students
func (c *StudentController) Index(w http.ResponseWriter, r *http.Request) {
	students, err := c.services.Students.GetAllStudents(r.Context())
	if err != nil {
		c.resp.serviceError(w, r, err, c.messages("Failed to fetch students"))
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.StudentListResponse{
		Status:   models.StatusSuccess,
		Count:    len(students),
		Students: students,
	})
}

// Show handles GET /api/students/{id}
func (c *StudentController) Show(w http.ResponseWriter, r *http.Request) {
	msgs := c.messages("Failed to fetch student")

	id, err := parseID(r)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	student, err := c.services.Students.GetStudentByID(r.Context(), id)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.StudentResponse{
		Status:  models.StatusSuccess,
		Student: *student,
	})
}

// Create handles POST /api/students
func (c *StudentController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.StudentForm
	if err := decodeForm(w, r, &form); err != nil {
		c.resp.writeError(w, r, http.StatusBadRequest, codeInvalidBody, "Invalid request body", err)
		return
	}

	student, err := c.services.Students.RegisterStudent(r.Context(), &form)
	if err != nil {
		c.resp.serviceError(w, r, err, c.messages("Failed to register student"))
		return
	}

	c.resp.writeJSON(w, http.StatusCreated, models.StudentResponse{
		Status:  models.StatusSuccess,
		Message: "Student registered successfully",
		Student: *student,
	})
}

// Update handles PUT /api/students/{id}
func (c *StudentController) Update(w http.ResponseWriter, r *http.Request) {
	msgs := c.messages("Failed to update student")

	id, err := parseID(r)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	var form models.StudentForm
	if err := decodeForm(w, r, &form); err != nil {
		c.resp.writeError(w, r, http.StatusBadRequest, codeInvalidBody, "Invalid request body", err)
		return
	}

	student, err := c.services.Students.UpdateStudent(r.Context(), id, &form)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.StudentResponse{
		Status:  models.StatusSuccess,
		Message: "Student updated successfully",
		Student: *student,
	})
}

// Delete handles DELETE /api/students/{id}
func (c *StudentController) Delete(w http.ResponseWriter, r *http.Request) {
	msgs := c.messages("Failed to delete student")

	id, err := parseID(r)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	student, err := c.services.Students.DeleteStudent(r.Context(), id)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.StudentResponse{
		Status:  models.StatusSuccess,
		Message: "Student deleted successfully",
		Student: *student,
	})
}
