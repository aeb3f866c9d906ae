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

type AgencyHandler struct {
	agencyUC *usecase.AgencyUseCase
	logger   *zap.Logger
}

func NewAgencyHandler(agencyUC *usecase.AgencyUseCase, logger *zap.Logger) *AgencyHandler {
	return &AgencyHandler{
		agencyUC: agencyUC,
		logger:   logger,
	}
}

// ListAgencies godoc
// @Summary List agency applications
// @Tags Agencies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Agency}
// @Router /api/v1/agencies [get]
func (h *AgencyHandler) ListAgencies(c *fiber.Ctx) error {
	agencies, err := h.agencyUC.ListAgencies(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, agencies, &utils.Meta{Total: len(agencies)})
}

// CreateAgency godoc
// @Summary Create an agency application
// @Tags Agencies
// @Accept json
// @Produce json
// @Param request body dto.AgencyRequest true "Agency payload"
// @Security BearerAuth
// @Success 201 {object} utils.SuccessResponse{data=domain.Agency}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/agencies [post]
func (h *AgencyHandler) CreateAgency(c *fiber.Ctx) error {
	var req dto.AgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	agency, err := h.agencyUC.CreateAgency(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, agency)
}

// UpdateAgency godoc
// @Summary Update an agency application
// @Tags Agencies
// @Accept json
// @Produce json
// @Param id path string true "Agency id"
// @Param request body dto.AgencyRequest true "Agency payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.Agency}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/agencies/{id} [put]
func (h *AgencyHandler) UpdateAgency(c *fiber.Ctx) error {
	var req dto.AgencyRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	agency, err := h.agencyUC.UpdateAgency(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, agency, nil)
}

// DeleteAgency godoc
// @Summary Delete an agency application
// @Tags Agencies
// @Produce json
// @Param id path string true "Agency id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/agencies/{id} [delete]
func (h *AgencyHandler) DeleteAgency(c *fiber.Ctx) error {
	if err := h.agencyUC.DeleteAgency(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// ListProfiles godoc
// @Summary List member profiles
// @Tags Agencies
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.Profile}
// @Router /api/v1/profiles [get]
func (h *AgencyHandler) ListProfiles(c *fiber.Ctx) error {
	profiles, err := h.agencyUC.ListProfiles(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, profiles, &utils.Meta{Total: len(profiles)})
}

// CreateProfile godoc
// @Summary Create a member profile
// @Tags Agencies
// @Accept json
// @Produce json
// @Param request body dto.ProfileRequest true "Profile payload"
// @Security BearerAuth
// @Success 201 {object} utils.SuccessResponse{data=domain.Profile}
// @Router /api/v1/profiles [post]
func (h *AgencyHandler) CreateProfile(c *fiber.Ctx) error {
	var req dto.ProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	profile, err := h.agencyUC.CreateProfile(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, profile)
}

// DeleteProfile godoc
// @Summary Delete a member profile
// @Tags Agencies
// @Produce json
// @Param id path string true "Profile id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/profiles/{id} [delete]
func (h *AgencyHandler) DeleteProfile(c *fiber.Ctx) error {
	if err := h.agencyUC.DeleteProfile(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
