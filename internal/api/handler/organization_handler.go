package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/core/ports"
)

type OrganizationHandler struct {
	service ports.OrganizationService
}

func NewOrganizationHandler(service ports.OrganizationService) *OrganizationHandler {
	return &OrganizationHandler{service: service}
}

type organizationRequest struct {
	Name string `json:"name" validate:"required,max=15"`
}

// Create
//
// @Summary      Create an organization owned by the caller
// @Tags         organization
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      organizationRequest  true  "Organization"
// @Success      201   {object}  Response{data=domain.Organization}
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Router       /api/v1/organization [post]
func (h *OrganizationHandler) Create(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req organizationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	org, err := h.service.Create(c.Request().Context(), who, req.Name)
	if err != nil {
		return err
	}
	return Respond(c, http.StatusCreated, org)
}

// List
//
// @Summary      List the caller's organizations
// @Tags         organization
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response{data=[]domain.Organization}
// @Failure      401  {object}  Response
// @Router       /api/v1/organization [get]
func (h *OrganizationHandler) List(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	orgs, err := h.service.List(c.Request().Context(), who)
	if err != nil {
		return err
	}
	return OK(c, orgs)
}

// Rename
//
// @Summary      Rename an organization
// @Tags         organization
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        organizationID  path      string               true  "Organization id"
// @Param        body            body      organizationRequest  true  "New name"
// @Success      200             {object}  Response{data=domain.Organization}
// @Failure      403             {object}  Response
// @Failure      404             {object}  Response
// @Router       /api/v1/organization/{organizationID} [put]
func (h *OrganizationHandler) Rename(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req organizationRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	org, err := h.service.Rename(c.Request().Context(), who, c.Param("organizationID"), req.Name)
	if err != nil {
		return err
	}
	return OK(c, org)
}

// Delete
//
// @Summary      Delete an organization
// @Tags         organization
// @Produce      json
// @Security     BearerAuth
// @Param        organizationID  path      string  true  "Organization id"
// @Success      200             {object}  Response
// @Failure      403             {object}  Response
// @Failure      404             {object}  Response
// @Router       /api/v1/organization/{organizationID} [delete]
func (h *OrganizationHandler) Delete(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), who, c.Param("organizationID")); err != nil {
		return err
	}
	return OK(c, nil)
}
