package handler

import (
	"net/http"

	"guardian/internal/delivery/api/middleware"
	"guardian/internal/delivery/api/response"
	"guardian/internal/delivery/api/validator"
	"guardian/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ContactHandlerParams holds dependencies for ContactHandler, injected by Fx.
type ContactHandlerParams struct {
	fx.In

	Directory usecase.ContactDirectory
}

// ContactHandler manages the caller's emergency contacts
type ContactHandler struct {
	directory usecase.ContactDirectory
}

// NewContactHandler is the constructor for ContactHandler
func NewContactHandler(params ContactHandlerParams) *ContactHandler {
	return &ContactHandler{directory: params.Directory}
}

// AddContactRequest represents the request body for adding a contact
type AddContactRequest struct {
	Name         string `json:"name" validate:"required,max=100"`
	Phone        string `json:"phone" validate:"required,phone,max=32"`
	Email        string `json:"email" validate:"omitempty,email"`
	Relationship string `json:"relationship" validate:"max=50"`
	Priority     *int   `json:"priority,omitempty" validate:"omitempty,gte=0"`
}

// UpdateContactRequest represents a partial update of a contact
type UpdateContactRequest struct {
	Name         *string `json:"name,omitempty" validate:"omitempty,min=1,max=100"`
	Phone        *string `json:"phone,omitempty" validate:"omitempty,phone,max=32"`
	Email        *string `json:"email,omitempty" validate:"omitempty,email"`
	Relationship *string `json:"relationship,omitempty" validate:"omitempty,max=50"`
	Priority     *int    `json:"priority,omitempty" validate:"omitempty,gte=0"`
	Verified     *bool   `json:"verified,omitempty"`
}

// ListContacts returns the caller's contacts ordered by priority
func (h *ContactHandler) ListContacts(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	contacts, err := h.directory.ListContacts(c.Request().Context(), userID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contacts)
}

// AddContact creates a contact for the caller
func (h *ContactHandler) AddContact(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	var req AddContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	contact, err := h.directory.AddContact(c.Request().Context(), userID, &usecase.AddContactInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
		Priority:     req.Priority,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, contact)
}

// UpdateContact applies a partial update to one of the caller's contacts
func (h *ContactHandler) UpdateContact(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	var req UpdateContactRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "Invalid contact input")
	}
	if err := c.Validate(&req); err != nil {
		return response.BadRequestWithDetails(c, "VALIDATION_FAILED", "Request validation failed", validator.FieldErrors(err))
	}

	contact, err := h.directory.UpdateContact(c.Request().Context(), userID, contactID, &usecase.UpdateContactInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Email:        req.Email,
		Relationship: req.Relationship,
		Priority:     req.Priority,
		Verified:     req.Verified,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, contact)
}

// DeleteContact removes one of the caller's contacts
func (h *ContactHandler) DeleteContact(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "CONTEXT_ERROR", "User ID not found in context")
	}

	contactID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid contact ID")
	}

	if err := h.directory.DeleteContact(c.Request().Context(), userID, contactID); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.NoContent(c)
}
