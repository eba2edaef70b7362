package rest

import (
	"context"
	"net/http"
	"time"

	"spotQuest/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type BadgeService interface {
	Evaluate(ctx context.Context, userID uint) ([]domain.BadgeDefinition, error)
	List(ctx context.Context, userID uint) ([]domain.BadgeStatus, error)
}

type BadgeHandler struct {
	badgeService BadgeService
	timeout      time.Duration
}

func NewBadgeHandler(badgeService BadgeService, timeout time.Duration) *BadgeHandler {
	return &BadgeHandler{
		badgeService: badgeService,
		timeout:      timeout,
	}
}

// Check evaluates the caller's badges and returns only those earned by this
// call.
func (h *BadgeHandler) Check(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	earned, err := h.badgeService.Evaluate(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(earned))
}

func (h *BadgeHandler) List(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	badges, err := h.badgeService.List(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(badges))
}
