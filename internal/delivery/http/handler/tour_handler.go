package handler

import (
	"context"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/pkg/utils"
	"github.com/travel-admin/internal/pkg/validator"
	"github.com/travel-admin/internal/usecase"
	"github.com/travel-admin/internal/usecase/dto"
)

type TourHandler struct {
	tourUC *usecase.TourUseCase
	logger *zap.Logger
}

func NewTourHandler(tourUC *usecase.TourUseCase, logger *zap.Logger) *TourHandler {
	return &TourHandler{
		tourUC: tourUC,
		logger: logger,
	}
}

// List godoc
// @Summary List tours
// @Description Lists all tours with their tour type name joined in, newest first.
// @Tags Tours
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Tour}
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/tours [get]
func (h *TourHandler) List(c *fiber.Ctx) error {
	tours, err := h.tourUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tours, &utils.Meta{Total: len(tours)})
}

// Get godoc
// @Summary Get tour details
// @Description Loads one tour with all dependent collections for the edit form.
// @Tags Tours
// @Produce json
// @Param id path string true "Tour id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.TourDetails}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tours/{id} [get]
func (h *TourHandler) Get(c *fiber.Ctx) error {
	details, err := h.tourUC.GetDetails(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, details, nil)
}

// Create godoc
// @Summary Create a tour
// @Description Creates a tour with its collections. The slug is derived from the title; weather is padded to the full twelve months.
// @Tags Tours
// @Accept json
// @Produce json
// @Param request body dto.TourRequest true "Tour payload"
// @Security BearerAuth
// @Success 201 {object} utils.SuccessResponse{data=domain.TourDetails}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/tours [post]
func (h *TourHandler) Create(c *fiber.Ctx) error {
	var req dto.TourRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	details, err := h.tourUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, details)
}

// Update godoc
// @Summary Update a tour
// @Description Updates the tour record and replaces its collections wholesale.
// @Tags Tours
// @Accept json
// @Produce json
// @Param id path string true "Tour id"
// @Param request body dto.TourRequest true "Tour payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.TourDetails}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tours/{id} [put]
func (h *TourHandler) Update(c *fiber.Ctx) error {
	var req dto.TourRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	details, err := h.tourUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, details, nil)
}

// Delete godoc
// @Summary Delete a tour
// @Description Removes the stored images first, then the tour and its collections.
// @Tags Tours
// @Produce json
// @Param id path string true "Tour id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/tours/{id} [delete]
func (h *TourHandler) Delete(c *fiber.Ctx) error {
	if err := h.tourUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// SetPopular godoc
// @Summary Toggle the popular flag
// @Description Enables or disables the popular flag; at most six tours can be popular at once.
// @Tags Tours
// @Accept json
// @Produce json
// @Param id path string true "Tour id"
// @Param request body dto.TourFlagRequest true "Flag value"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/tours/{id}/popular [put]
func (h *TourHandler) SetPopular(c *fiber.Ctx) error {
	return h.setFlag(c, h.tourUC.SetPopular)
}

// SetOpportunity godoc
// @Summary Toggle the opportunity flag
// @Tags Tours
// @Accept json
// @Produce json
// @Param id path string true "Tour id"
// @Param request body dto.TourFlagRequest true "Flag value"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/tours/{id}/opportunity [put]
func (h *TourHandler) SetOpportunity(c *fiber.Ctx) error {
	return h.setFlag(c, h.tourUC.SetOpportunity)
}

// SetDestinationStatus godoc
// @Summary Toggle the destination flag
// @Tags Tours
// @Accept json
// @Produce json
// @Param id path string true "Tour id"
// @Param request body dto.TourFlagRequest true "Flag value"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/tours/{id}/destination [put]
func (h *TourHandler) SetDestinationStatus(c *fiber.Ctx) error {
	return h.setFlag(c, h.tourUC.SetDestinationStatus)
}

// ListOpportunities godoc
// @Summary List opportunity tours
// @Tags Tours
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.TourSummary}
// @Router /api/v1/tours/opportunities [get]
func (h *TourHandler) ListOpportunities(c *fiber.Ctx) error {
	tours, err := h.tourUC.ListOpportunities(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, tours, &utils.Meta{Total: len(tours)})
}

func (h *TourHandler) setFlag(c *fiber.Ctx, set func(ctx context.Context, id string, value bool) error) error {
	var req dto.TourFlagRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := set(c.Context(), c.Params("id"), req.Value); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"value": req.Value}, nil)
}
