package rest

import (
	"strconv"

	"spotQuest/domain"

	"github.com/labstack/echo/v4"
)

// currentUserID reads the id set by the auth middleware.
func currentUserID(c echo.Context) (uint, error) {
	id, ok := c.Get("user_id").(uint)
	if !ok || id == 0 {
		return 0, domain.ErrUnauthorized
	}
	return id, nil
}

func pathID(c echo.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, domain.Errorf(domain.ErrInvalidInput, "invalid %s", name)
	}
	return uint(id), nil
}
