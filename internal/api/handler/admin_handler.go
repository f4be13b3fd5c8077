package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

// AdminHandler serves the ADMIN-only account routes.
type AdminHandler struct {
	accounts ports.AccountAdminService
}

func NewAdminHandler(accounts ports.AccountAdminService) *AdminHandler {
	return &AdminHandler{accounts: accounts}
}

type setActiveRequest struct {
	Active *bool `json:"active" validate:"required"`
}

type setRoleRequest struct {
	Role string `json:"role" validate:"required,oneof=USER ADMIN"`
}

// FindByID
//
// @Summary      Find an account by id
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  Response{data=domain.AccountSummary}
// @Failure      400  {object}  Response
// @Failure      403  {object}  Response
// @Failure      404  {object}  Response
// @Router       /api/v1/admin/find/id/{id} [get]
func (h *AdminHandler) FindByID(c echo.Context) error {
	summary, err := h.accounts.FindByID(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return OK(c, summary)
}

// FindByEmail
//
// @Summary      Find an account by email
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  Response{data=domain.AccountSummary}
// @Failure      404    {object}  Response
// @Router       /api/v1/admin/find/email/{email} [get]
func (h *AdminHandler) FindByEmail(c echo.Context) error {
	summary, err := h.accounts.FindByEmail(c.Request().Context(), c.Param("email"))
	if err != nil {
		return err
	}
	return OK(c, summary)
}

// FindAll
//
// @Summary      List accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        page  query     int  false  "0-based page"
// @Param        size  query     int  false  "Page size (max 100)"
// @Success      200   {object}  Response{data=[]domain.AccountSummary}
// @Router       /api/v1/admin/find/all [get]
func (h *AdminHandler) FindAll(c echo.Context) error {
	p := pageParams(c)
	summaries, err := h.accounts.FindAll(c.Request().Context(), p.Number, p.Size)
	if err != nil {
		return err
	}
	return OK(c, summaries)
}

// DeleteByID
//
// @Summary      Delete an account by id
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Account id"
// @Success      200  {object}  Response
// @Failure      404  {object}  Response
// @Router       /api/v1/admin/delete/id/{id} [delete]
func (h *AdminHandler) DeleteByID(c echo.Context) error {
	if err := h.accounts.DeleteByID(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	return OK(c, nil)
}

// DeleteByEmail
//
// @Summary      Delete an account by email
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Param        email  path      string  true  "Account email"
// @Success      200    {object}  Response
// @Failure      404    {object}  Response
// @Router       /api/v1/admin/delete/email/{email} [delete]
func (h *AdminHandler) DeleteByEmail(c echo.Context) error {
	if err := h.accounts.DeleteByEmail(c.Request().Context(), c.Param("email")); err != nil {
		return err
	}
	return OK(c, nil)
}

// SetActive activates or deactivates an account. Deactivation takes effect
// at the account's next login.
//
// @Summary      Set the active flag of an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string            true  "Account id"
// @Param        body  body      setActiveRequest  true  "Active flag"
// @Success      200   {object}  Response
// @Failure      404   {object}  Response
// @Router       /api/v1/admin/account/{id}/active [patch]
func (h *AdminHandler) SetActive(c echo.Context) error {
	var req setActiveRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	if err := h.accounts.SetActive(c.Request().Context(), c.Param("id"), *req.Active); err != nil {
		return err
	}
	return OK(c, map[string]bool{"active": *req.Active})
}

// SetRole changes the role of an account. Tokens already issued keep their
// role until they expire.
//
// @Summary      Set the role of an account
// @Tags         admin
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string          true  "Account id"
// @Param        body  body      setRoleRequest  true  "Role"
// @Success      200   {object}  Response
// @Failure      404   {object}  Response
// @Router       /api/v1/admin/account/{id}/role [patch]
func (h *AdminHandler) SetRole(c echo.Context) error {
	var req setRoleRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	role, err := domain.ParseRole(req.Role)
	if err != nil {
		return err
	}
	if err := h.accounts.SetRole(c.Request().Context(), c.Param("id"), role); err != nil {
		return err
	}
	return OK(c, map[string]string{"role": role.String()})
}
