package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/pkg/utils"
	"github.com/travel-admin/internal/pkg/validator"
	"github.com/travel-admin/internal/usecase"
	"github.com/travel-admin/internal/usecase/dto"
)

type DestinationHandler struct {
	destinationUC *usecase.DestinationUseCase
	logger        *zap.Logger
}

func NewDestinationHandler(destinationUC *usecase.DestinationUseCase, logger *zap.Logger) *DestinationHandler {
	return &DestinationHandler{
		destinationUC: destinationUC,
		logger:        logger,
	}
}

// List godoc
// @Summary List destinations
// @Description Groups destination-flagged tours by region, in the order regions first appear, with the region image attached.
// @Tags Destinations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Destination}
// @Router /api/v1/destinations [get]
func (h *DestinationHandler) List(c *fiber.Ctx) error {
	destinations, err := h.destinationUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, destinations, &utils.Meta{Total: len(destinations)})
}

// SetRegionImage godoc
// @Summary Set a region's card image
// @Tags Destinations
// @Accept json
// @Produce json
// @Param request body dto.RegionImageRequest true "Region image payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/destinations/region-image [put]
func (h *DestinationHandler) SetRegionImage(c *fiber.Ctx) error {
	var req dto.RegionImageRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := h.destinationUC.SetRegionImage(c.Context(), req); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"region": req.Region}, nil)
}
