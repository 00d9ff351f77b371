package controllers

import (
	"net/http"

	"github.com/blogem/radiocalco/models"
	"github.com/blogem/radiocalco/services"
)

var userMessages = errorMessages{
	MissingFields: "Name and email are required",
	InvalidID:     "Invalid user ID",
	NotFound:      "User not found",
}

// UserController handles user management requests
type UserController struct {
	services *services.Services
	resp     *responder
}

// NewUserController creates a new user controller
func NewUserController(services *services.Services, resp *responder) *UserController {
	return &UserController{
		services: services,
		resp:     resp,
	}
}

func (c *UserController) messages(failure string) errorMessages {
	msgs := userMessages
	msgs.Failure = failure
	return msgs
}

// Index handles GET /api/users
func (c *UserController) Index(w http.ResponseWriter, r *http.Request) {
	users, err := c.services.Users.GetAllUsers(r.Context())
	if err != nil {
		c.resp.serviceError(w, r, err, c.messages("Failed to fetch users"))
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.UserListResponse{
		Status: models.StatusSuccess,
		Count:  len(users),
		Users:  users,
	})
}

// Show handles GET /api/users/{id}
func (c *UserController) Show(w http.ResponseWriter, r *http.Request) {
	msgs := c.messages("Failed to fetch user")

	id, err := parseID(r)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	user, err := c.services.Users.GetUserByID(r.Context(), id)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.UserResponse{
		Status: models.StatusSuccess,
		User:   *user,
	})
}

// Create handles POST /api/users
func (c *UserController) Create(w http.ResponseWriter, r *http.Request) {
	var form models.UserForm
	if err := decodeForm(w, r, &form); err != nil {
		c.resp.writeError(w, r, http.StatusBadRequest, codeInvalidBody, "Invalid request body", err)
		return
	}

	user, err := c.services.Users.CreateUser(r.Context(), &form)
	if err != nil {
		c.resp.serviceError(w, r, err, c.messages("Failed to create user"))
		return
	}

	c.resp.writeJSON(w, http.StatusCreated, models.UserResponse{
		Status:  models.StatusSuccess,
		Message: "User created successfully",
		User:    *user,
	})
}

// Update handles PUT /api/users/{id}
func (c *UserController) Update(w http.ResponseWriter, r *http.Request) {
	msgs := c.messages("Failed to update user")

	id, err := parseID(r)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	var form models.UserForm
	if err := decodeForm(w, r, &form); err != nil {
		c.resp.writeError(w, r, http.StatusBadRequest, codeInvalidBody, "Invalid request body", err)
		return
	}

	user, err := c.services.Users.UpdateUser(r.Context(), id, &form)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.UserResponse{
		Status:  models.StatusSuccess,
		Message: "User updated successfully",
		User:    *user,
	})
}

// Delete handles DELETE /api/users/{id}
func (c *UserController) Delete(w http.ResponseWriter, r *http.Request) {
	msgs := c.messages("Failed to delete user")

	id, err := parseID(r)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	user, err := c.services.Users.DeleteUser(r.Context(), id)
	if err != nil {
		c.resp.serviceError(w, r, err, msgs)
		return
	}

	c.resp.writeJSON(w, http.StatusOK, models.UserResponse{
		Status:  models.StatusSuccess,
		Message: "User deleted successfully",
		User:    *user,
	})
}
