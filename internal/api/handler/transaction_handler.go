package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

type TransactionHandler struct {
	service ports.TransactionService
}

func NewTransactionHandler(service ports.TransactionService) *TransactionHandler {
	return &TransactionHandler{service: service}
}

type transactionRequest struct {
	Description string  `json:"description" validate:"required"`
	Amount      float64 `json:"amount"      validate:"required,gt=0"`
	Type        string  `json:"type"        validate:"required,oneof=INCOME EXPENSE"`
}

func (r transactionRequest) toInput() ports.TransactionInput {
	return ports.TransactionInput{
		Description: r.Description,
		Amount:      r.Amount,
		Type:        domain.TransactionType(r.Type),
	}
}

// Create
//
// @Summary      Book a transaction against an organization
// @Tags         transaction
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        organizationID  path      string              true  "Organization id"
// @Param        body            body      transactionRequest  true  "Transaction"
// @Success      201             {object}  Response{data=domain.Transaction}
// @Failure      400             {object}  Response
// @Failure      403             {object}  Response
// @Failure      404             {object}  Response
// @Router       /api/v1/organization/{organizationID}/transaction [post]
func (h *TransactionHandler) Create(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req transactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	tx, err := h.service.Create(c.Request().Context(), who, c.Param("organizationID"), req.toInput())
	if err != nil {
		return err
	}
	return Respond(c, http.StatusCreated, tx)
}

// List
//
// @Summary      List the transactions of an organization
// @Tags         transaction
// @Produce      json
// @Security     BearerAuth
// @Param        organizationID  path      string  true   "Organization id"
// @Param        page            query     int     false  "0-based page"
// @Param        size            query     int     false  "Page size (max 100)"
// @Success      200             {object}  Response{data=[]domain.Transaction}
// @Router       /api/v1/organization/{organizationID}/transaction [get]
func (h *TransactionHandler) List(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	txs, err := h.service.List(c.Request().Context(), who, c.Param("organizationID"), pageParams(c))
	if err != nil {
		return err
	}
	return OK(c, txs)
}

// Update
//
// @Summary      Update a transaction
// @Tags         transaction
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        organizationID  path      string              true  "Organization id"
// @Param        id              path      string              true  "Transaction id"
// @Param        body            body      transactionRequest  true  "Transaction"
// @Success      200             {object}  Response{data=domain.Transaction}
// @Router       /api/v1/organization/{organizationID}/transaction/{id} [put]
func (h *TransactionHandler) Update(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	var req transactionRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	tx, err := h.service.Update(c.Request().Context(), who, c.Param("organizationID"), c.Param("id"), req.toInput())
	if err != nil {
		return err
	}
	return OK(c, tx)
}

// Delete
//
// @Summary      Delete a transaction
// @Tags         transaction
// @Produce      json
// @Security     BearerAuth
// @Param        organizationID  path      string  true  "Organization id"
// @Param        id              path      string  true  "Transaction id"
// @Success      200             {object}  Response
// @Router       /api/v1/organization/{organizationID}/transaction/{id} [delete]
func (h *TransactionHandler) Delete(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	if err := h.service.Delete(c.Request().Context(), who, c.Param("organizationID"), c.Param("id")); err != nil {
		return err
	}
	return OK(c, nil)
}
