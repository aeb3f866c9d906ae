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

// ContentHandler serves the homepage content blocks: services, partners and stats.
type ContentHandler struct {
	contentUC *usecase.ContentUseCase
	logger    *zap.Logger
}

func NewContentHandler(contentUC *usecase.ContentUseCase, logger *zap.Logger) *ContentHandler {
	return &ContentHandler{
		contentUC: contentUC,
		logger:    logger,
	}
}

// ListServices godoc
// @Summary List services
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Service}
// @Router /api/v1/services [get]
func (h *ContentHandler) ListServices(c *fiber.Ctx) error {
	services, err := h.contentUC.ListServices(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, services, &utils.Meta{Total: len(services)})
}

// CreateService godoc
// @Summary Create a service
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.ServiceRequest true "Service payload"
// @Security BearerAuth
// @Success 201 {object} utils.SuccessResponse{data=domain.Service}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/services [post]
func (h *ContentHandler) CreateService(c *fiber.Ctx) error {
	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	service, err := h.contentUC.CreateService(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, service)
}

// UpdateService godoc
// @Summary Update a service
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Service id"
// @Param request body dto.ServiceRequest true "Service payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.Service}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/services/{id} [put]
func (h *ContentHandler) UpdateService(c *fiber.Ctx) error {
	var req dto.ServiceRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	service, err := h.contentUC.UpdateService(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, service, nil)
}

// DeleteService godoc
// @Summary Delete a service
// @Tags Content
// @Produce json
// @Param id path string true "Service id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/services/{id} [delete]
func (h *ContentHandler) DeleteService(c *fiber.Ctx) error {
	if err := h.contentUC.DeleteService(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ToggleService godoc
// @Summary Toggle a service's active flag
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Service id"
// @Param request body dto.ToggleRequest true "Active value"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/services/{id}/toggle [put]
func (h *ContentHandler) ToggleService(c *fiber.Ctx) error {
	return h.toggle(c, h.contentUC.SetServiceActive)
}

// ListPartners godoc
// @Summary List partners
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Partner}
// @Router /api/v1/partners [get]
func (h *ContentHandler) ListPartners(c *fiber.Ctx) error {
	partners, err := h.contentUC.ListPartners(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, partners, &utils.Meta{Total: len(partners)})
}

// CreatePartner godoc
// @Summary Create a partner
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.PartnerRequest true "Partner payload"
// @Security BearerAuth
// @Success 201 {object} utils.SuccessResponse{data=domain.Partner}
// @Router /api/v1/partners [post]
func (h *ContentHandler) CreatePartner(c *fiber.Ctx) error {
	var req dto.PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	partner, err := h.contentUC.CreatePartner(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, partner)
}

// UpdatePartner godoc
// @Summary Update a partner
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Partner id"
// @Param request body dto.PartnerRequest true "Partner payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.Partner}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/partners/{id} [put]
func (h *ContentHandler) UpdatePartner(c *fiber.Ctx) error {
	var req dto.PartnerRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	partner, err := h.contentUC.UpdatePartner(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, partner, nil)
}

// DeletePartner godoc
// @Summary Delete a partner
// @Tags Content
// @Produce json
// @Param id path string true "Partner id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/partners/{id} [delete]
func (h *ContentHandler) DeletePartner(c *fiber.Ctx) error {
	if err := h.contentUC.DeletePartner(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// TogglePartner godoc
// @Summary Toggle a partner's active flag
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Partner id"
// @Param request body dto.ToggleRequest true "Active value"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/partners/{id}/toggle [put]
func (h *ContentHandler) TogglePartner(c *fiber.Ctx) error {
	return h.toggle(c, h.contentUC.SetPartnerActive)
}

// ListStats godoc
// @Summary List stats
// @Tags Content
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Stat}
// @Router /api/v1/stats [get]
func (h *ContentHandler) ListStats(c *fiber.Ctx) error {
	stats, err := h.contentUC.ListStats(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stats, &utils.Meta{Total: len(stats)})
}

// CreateStat godoc
// @Summary Create a stat
// @Description Creates a stat card; at most three stats can be active at once.
// @Tags Content
// @Accept json
// @Produce json
// @Param request body dto.StatRequest true "Stat payload"
// @Security BearerAuth
// @Success 201 {object} utils.SuccessResponse{data=domain.Stat}
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/stats [post]
func (h *ContentHandler) CreateStat(c *fiber.Ctx) error {
	var req dto.StatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	stat, err := h.contentUC.CreateStat(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, stat)
}

// UpdateStat godoc
// @Summary Update a stat
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Stat id"
// @Param request body dto.StatRequest true "Stat payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.Stat}
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/stats/{id} [put]
func (h *ContentHandler) UpdateStat(c *fiber.Ctx) error {
	var req dto.StatRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	stat, err := h.contentUC.UpdateStat(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, stat, nil)
}

// DeleteStat godoc
// @Summary Delete a stat
// @Tags Content
// @Produce json
// @Param id path string true "Stat id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/stats/{id} [delete]
func (h *ContentHandler) DeleteStat(c *fiber.Ctx) error {
	if err := h.contentUC.DeleteStat(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ToggleStat godoc
// @Summary Toggle a stat's active flag
// @Description Activating a stat fails once three stats are already active.
// @Tags Content
// @Accept json
// @Produce json
// @Param id path string true "Stat id"
// @Param request body dto.ToggleRequest true "Active value"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /api/v1/stats/{id}/toggle [put]
func (h *ContentHandler) ToggleStat(c *fiber.Ctx) error {
	return h.toggle(c, h.contentUC.SetStatActive)
}

func (h *ContentHandler) toggle(c *fiber.Ctx, set func(ctx context.Context, id string, active bool) error) error {
	var req dto.ToggleRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	if err := set(c.Context(), c.Params("id"), req.IsActive); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"is_active": req.IsActive}, nil)
}
