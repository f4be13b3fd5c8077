package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

type clientRequest struct {
	Name        string `json:"name"        validate:"required,min=5,max=30"`
	Description string `json:"description"`
	Email       string `json:"email"       validate:"required,email"`
	CPFCNPJ     string `json:"cpf_cnpj"    validate:"omitempty,min=11,max=14"`
	Phone       string `json:"phone"       validate:"omitempty,min=5,max=20"`
	Status      string `json:"status"      validate:"required,oneof=ACTIVE INACTIVE LEAD"`
}

func (r clientRequest) toInput() ports.ClientInput {
	return ports.ClientInput{
		Name:        r.Name,
		Description: r.Description,
		Email:       r.Email,
		CPFCNPJ:     r.CPFCNPJ,
		Phone:       r.Phone,
		Status:      domain.ClientStatus(r.Status),
	}
}

// Create
//
// @Summary      Create a client in an organization
// @Tags         client
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        organizationID  path      string         true  "Organization id"
// @Param        body            body      clientRequest  true  "Client"
// @Success      201             {object}  Response{data=domain.Client}
// @Failure      400             {object}  Response
// @Failure      403             {object}  Response
// @Failure      404             {object}  Response
// @Router       /api/v1/organization/{organizationID}/client [post]
func (h *ClientHandler) Create(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req clientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	client, err := h.service.Create(c.Request().Context(), who, c.Param("organizationID"), req.toInput())
	if err != nil {
		return err
	}
	return Respond(c, http.StatusCreated, client)
}

// List
//
// @Summary      List the clients of an organization
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Param        organizationID  path      string  true   "Organization id"
// @Param        page            query     int     false  "0-based page"
// @Param        size            query     int     false  "Page size (max 100)"
// @Success      200             {object}  Response{data=[]domain.Client}
// @Failure      403             {object}  Response
// @Failure      404             {object}  Response
// @Router       /api/v1/organization/{organizationID}/client [get]
func (h *ClientHandler) List(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	clients, err := h.service.List(c.Request().Context(), who, c.Param("organizationID"), pageParams(c))
	if err != nil {
		return err
	}
	return OK(c, clients)
}

// Update
//
// @Summary      Update a client
// @Tags         client
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        organizationID  path      string         true  "Organization id"
// @Param        id              path      string         true  "Client id"
// @Param        body            body      clientRequest  true  "Client"
// @Success      200             {object}  Response{data=domain.Client}
// @Failure      403             {object}  Response
// @Failure      404             {object}  Response
// @Router       /api/v1/organization/{organizationID}/client/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req clientRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	client, err := h.service.Update(c.Request().Context(), who, c.Param("organizationID"), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return OK(c, client)
}

// Delete
//
// @Summary      Delete a client
// @Tags         client
// @Produce      json
// @Security     BearerAuth
// @Param        organizationID  path      string  true  "Organization id"
// @Param        id              path      string  true  "Client id"
// @Success      200             {object}  Response
// @Failure      403             {object}  Response
// @Failure      404             {object}  Response
// @Router       /api/v1/organization/{organizationID}/client/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), who, c.Param("organizationID"), c.Param("id")); err != nil {
		return err
	}
	return OK(c, nil)
}
