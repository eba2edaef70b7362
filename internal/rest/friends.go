package rest

import (
	"context"
	"net/http"
	"time"

	"spotQuest/domain"

	"github.com/AMFarhan21/fres"
	"github.com/labstack/echo/v4"
)

type CompatibilityService interface {
	Compatibility(ctx context.Context, userID, friendID uint) (domain.CompatibilityResult, error)
}

type ExplorationCompareService interface {
	Compare(ctx context.Context, userID, friendID uint) (domain.ExplorationComparison, error)
}

type FriendsHandler struct {
	compatibilityService CompatibilityService
	compareService       ExplorationCompareService
	timeout              time.Duration
}

func NewFriendsHandler(compatibilityService CompatibilityService, compareService ExplorationCompareService, timeout time.Duration) *FriendsHandler {
	return &FriendsHandler{
		compatibilityService: compatibilityService,
		compareService:       compareService,
		timeout:              timeout,
	}
}

func (h *FriendsHandler) GetCompatibility(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	friendID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.compatibilityService.Compatibility(ctx, userID, friendID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

func (h *FriendsHandler) GetExplorationCompare(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	friendID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	comparison, err := h.compareService.Compare(ctx, userID, friendID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(comparison))
}
