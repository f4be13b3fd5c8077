package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/core/ports"
)

type AuthHandler struct {
	register ports.RegisterService
	login    ports.LoginService
}

func NewAuthHandler(register ports.RegisterService, login ports.LoginService) *AuthHandler {
	return &AuthHandler{register: register, login: login}
}

type credentialsRequest struct {
	Email    string `json:"email"    validate:"required,email,max=50"`
	Password string `json:"password" validate:"required,min=6,max=20,password"`
}

// Register creates a new USER account.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Account credentials"
// @Success      201   {object}  Response{data=domain.AccountSummary}
// @Failure      400   {object}  Response
// @Failure      409   {object}  Response
// @Failure      500   {object}  Response
// @Router       /api/v1/auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	summary, err := h.register.Register(c.Request().Context(), ports.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return Respond(c, http.StatusCreated, summary)
}

// Login authenticates an account and returns a bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      credentialsRequest  true  "Login credentials"
// @Success      200   {object}  Response{data=string}
// @Failure      400   {object}  Response
// @Failure      401   {object}  Response
// @Failure      403   {object}  Response
// @Failure      404   {object}  Response
// @Router       /api/v1/auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req credentialsRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	token, err := h.login.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return err
	}
	return OK(c, token)
}
