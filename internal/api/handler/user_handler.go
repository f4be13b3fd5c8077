package handler

import (
	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/core/ports"
)

type UserHandler struct {
	profiles ports.ProfileService
}

func NewUserHandler(profiles ports.ProfileService) *UserHandler {
	return &UserHandler{profiles: profiles}
}

// Me returns the profile of the authenticated caller.
//
// @Summary      Current profile
// @Tags         user
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  Response{data=domain.ProfileSummary}
// @Failure      401  {object}  Response
// @Failure      404  {object}  Response
// @Router       /api/v1/user/me [get]
func (h *UserHandler) Me(c echo.Context) error {
	who, err := requireIdentity(c)
	if err != nil {
		return err
	}
	profile, err := h.profiles.Profile(c.Request().Context(), who.SubjectID)
	if err != nil {
		return err
	}
	return OK(c, profile)
}
