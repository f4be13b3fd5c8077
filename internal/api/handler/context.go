package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/springcrm/crm-api/internal/api/middleware"
	"github.com/springcrm/crm-api/internal/core/domain"
	"github.com/springcrm/crm-api/internal/core/ports"
)

// requireIdentity returns the identity established by the Authenticate
// middleware. Route guards reject anonymous callers first, so a miss here
// means a handler was mounted outside its guarded group.
func requireIdentity(c echo.Context) (domain.Identity, error) {
	who := middleware.CurrentIdentity(c)
	if who == nil {
		return domain.Identity{}, domain.ErrUnauthenticated
	}
	return *who, nil
}

// pageParams reads the optional page and size query parameters. Missing or
// malformed values fall back to zero and are normalized by the services.
func pageParams(c echo.Context) ports.Page {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	size, _ := strconv.Atoi(c.QueryParam("size"))
	return ports.Page{Number: page, Size: size}
}
