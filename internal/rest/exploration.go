package rest

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"spotQuest/domain"
	"spotQuest/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ExplorationService interface {
	Stats(ctx context.Context, userID uint) (domain.ExplorationSnapshot, error)
	CheckNewNeighborhood(ctx context.Context, userID, placeID uint) (domain.NewNeighborhoodResult, error)
	Neighborhoods(near *domain.LatLng) []domain.NeighborhoodListing
}

type ExplorationHandler struct {
	explorationService ExplorationService
	validator          *validator.Validate
	timeout            time.Duration
}

func NewExplorationHandler(explorationService ExplorationService, timeout time.Duration) *ExplorationHandler {
	return &ExplorationHandler{
		explorationService: explorationService,
		validator:          validator.New(),
		timeout:            timeout,
	}
}

type CheckNeighborhoodRequest struct {
	PlaceID uint `query:"placeId" validate:"required"`
}

func (h *ExplorationHandler) GetStats(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	snapshot, err := h.explorationService.Stats(ctx, userID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(snapshot))
}

func (h *ExplorationHandler) CheckNewNeighborhood(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CheckNeighborhoodRequest
	if err := (&echo.DefaultBinder{}).BindQueryParams(c, &req); err != nil {
		return domain.Errorf(domain.ErrInvalidInput, "placeId must be a positive integer")
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Debug("Invalid check-new-neighborhood request", "error", err)
		return domain.Errorf(domain.ErrInvalidInput, "placeId is required")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	result, err := h.explorationService.CheckNewNeighborhood(ctx, userID, req.PlaceID)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(result))
}

// ListNeighborhoods serves the catalog. lat and lng are optional but must be
// given together.
func (h *ExplorationHandler) ListNeighborhoods(c echo.Context) error {
	latRaw, lngRaw := c.QueryParam("lat"), c.QueryParam("lng")
	if latRaw == "" && lngRaw == "" {
		return c.JSON(http.StatusOK, fres.Response.StatusOK(h.explorationService.Neighborhoods(nil)))
	}

	lat, latErr := strconv.ParseFloat(latRaw, 64)
	lng, lngErr := strconv.ParseFloat(lngRaw, 64)
	if latErr != nil || lngErr != nil ||
		h.validator.Var(lat, "latitude") != nil ||
		h.validator.Var(lng, "longitude") != nil {
		return domain.Errorf(domain.ErrInvalidInput, "lat and lng must be valid coordinates")
	}

	near := &domain.LatLng{Lat: lat, Lng: lng}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(h.explorationService.Neighborhoods(near)))
}
