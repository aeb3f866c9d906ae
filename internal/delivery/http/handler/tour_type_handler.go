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

type TourTypeHandler struct {
	tourTypeUC *usecase.TourTypeUseCase
	logger     *zap.Logger
}

func NewTourTypeHandler(tourTypeUC *usecase.TourTypeUseCase, logger *zap.Logger) *TourTypeHandler {
	return &TourTypeHandler{
		tourTypeUC: tourTypeUC,
		logger:     logger,
	}
}

// List godoc
// @Summary List tour types
// @Tags TourTypes
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TourTypeSettings}
// @Router /api/v1/tour-types [get]
func (h *TourTypeHandler) List(c *fiber.Ctx) error {
	types, err := h.tourTypeUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, types, &utils.Meta{Total: len(types)})
}

// Get godoc
// @Summary Get a tour type
// @Tags TourTypes
// @Produce json
// @Param id path string true "Tour type id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.TourTypeSettings}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tour-types/{id} [get]
func (h *TourTypeHandler) Get(c *fiber.Ctx) error {
	tt, err := h.tourTypeUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tt, nil)
}

// Create godoc
// @Summary Create a tour type
// @Description Creates a tour type page. Inline SVG icons are rejected if they carry scripts or event handlers.
// @Tags TourTypes
// @Accept json
// @Produce json
// @Param request body dto.TourTypeRequest true "Tour type payload"
// @Security BearerAuth
// @Success 201 {object} utils.SuccessResponse{data=domain.TourTypeSettings}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/tour-types [post]
func (h *TourTypeHandler) Create(c *fiber.Ctx) error {
	var req dto.TourTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tt, err := h.tourTypeUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, tt)
}

// Update godoc
// @Summary Update a tour type
// @Tags TourTypes
// @Accept json
// @Produce json
// @Param id path string true "Tour type id"
// @Param request body dto.TourTypeRequest true "Tour type payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.TourTypeSettings}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tour-types/{id} [put]
func (h *TourTypeHandler) Update(c *fiber.Ctx) error {
	var req dto.TourTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	tt, err := h.tourTypeUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tt, nil)
}

// Delete godoc
// @Summary Delete a tour type
// @Description Removes the tour type's stored images, then the record.
// @Tags TourTypes
// @Produce json
// @Param id path string true "Tour type id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tour-types/{id} [delete]
func (h *TourTypeHandler) Delete(c *fiber.Ctx) error {
	if err := h.tourTypeUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
