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

// SettingsHandler serves the singleton site sections and map locations.
type SettingsHandler struct {
	settingsUC *usecase.SettingsUseCase
	logger     *zap.Logger
}

func NewSettingsHandler(settingsUC *usecase.SettingsUseCase, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{
		settingsUC: settingsUC,
		logger:     logger,
	}
}

// GetHero godoc
// @Summary Get hero settings
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.HeroSettings}
// @Router /api/v1/settings/hero [get]
func (h *SettingsHandler) GetHero(c *fiber.Ctx) error {
	hero, err := h.settingsUC.GetHero(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, hero, nil)
}

// SaveHero godoc
// @Summary Save hero settings
// @Description Upserts the single hero row; a replaced hero image is queued for cleanup.
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.HeroSettingsRequest true "Hero payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.HeroSettings}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/settings/hero [put]
func (h *SettingsHandler) SaveHero(c *fiber.Ctx) error {
	var req dto.HeroSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	hero, err := h.settingsUC.SaveHero(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, hero, nil)
}

// GetLogo godoc
// @Summary Get logo settings
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.LogoSettings}
// @Router /api/v1/settings/logo [get]
func (h *SettingsHandler) GetLogo(c *fiber.Ctx) error {
	logo, err := h.settingsUC.GetLogo(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, logo, nil)
}

type logoRequest struct {
	LogoPath string `json:"logo_path" validate:"required"`
}

// SaveLogo godoc
// @Summary Save logo settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body handler.logoRequest true "Logo path"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.LogoSettings}
// @Router /api/v1/settings/logo [put]
func (h *SettingsHandler) SaveLogo(c *fiber.Ctx) error {
	var req logoRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	logo, err := h.settingsUC.SaveLogo(c.Context(), req.LogoPath)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, logo, nil)
}

// GetMap godoc
// @Summary Get map settings
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.MapSettings}
// @Router /api/v1/settings/map [get]
func (h *SettingsHandler) GetMap(c *fiber.Ctx) error {
	m, err := h.settingsUC.GetMap(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, m, nil)
}

// SaveMap godoc
// @Summary Save map settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.MapSettingsRequest true "Map payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.MapSettings}
// @Router /api/v1/settings/map [put]
func (h *SettingsHandler) SaveMap(c *fiber.Ctx) error {
	var req dto.MapSettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	m, err := h.settingsUC.SaveMap(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, m, nil)
}

// ListMapLocations godoc
// @Summary List map location pins
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.MapLocation}
// @Router /api/v1/settings/map/locations [get]
func (h *SettingsHandler) ListMapLocations(c *fiber.Ctx) error {
	locations, err := h.settingsUC.ListMapLocations(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, locations, &utils.Meta{Total: len(locations)})
}

// CreateMapLocation godoc
// @Summary Create a map location pin
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.MapLocationRequest true "Location payload"
// @Security BearerAuth
// @Success 201 {object} utils.SuccessResponse{data=domain.MapLocation}
// @Router /api/v1/settings/map/locations [post]
func (h *SettingsHandler) CreateMapLocation(c *fiber.Ctx) error {
	var req dto.MapLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	loc, err := h.settingsUC.CreateMapLocation(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, loc)
}

// UpdateMapLocation godoc
// @Summary Update a map location pin
// @Tags Settings
// @Accept json
// @Produce json
// @Param id path string true "Location id"
// @Param request body dto.MapLocationRequest true "Location payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.MapLocation}
// @Router /api/v1/settings/map/locations/{id} [put]
func (h *SettingsHandler) UpdateMapLocation(c *fiber.Ctx) error {
	var req dto.MapLocationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	loc, err := h.settingsUC.UpdateMapLocation(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, loc, nil)
}

// DeleteMapLocation godoc
// @Summary Delete a map location pin
// @Tags Settings
// @Produce json
// @Param id path string true "Location id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Router /api/v1/settings/map/locations/{id} [delete]
func (h *SettingsHandler) DeleteMapLocation(c *fiber.Ctx) error {
	if err := h.settingsUC.DeleteMapLocation(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}

// GetFeatured godoc
// @Summary Get featured section settings
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.FeaturedSectionSettings}
// @Router /api/v1/settings/featured [get]
func (h *SettingsHandler) GetFeatured(c *fiber.Ctx) error {
	featured, err := h.settingsUC.GetFeatured(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, featured, nil)
}

// SaveFeatured godoc
// @Summary Save featured section settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.FeaturedSectionRequest true "Featured section payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.FeaturedSectionSettings}
// @Router /api/v1/settings/featured [put]
func (h *SettingsHandler) SaveFeatured(c *fiber.Ctx) error {
	var req dto.FeaturedSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	featured, err := h.settingsUC.SaveFeatured(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, featured, nil)
}

// GetOpportunity godoc
// @Summary Get opportunity page settings
// @Tags Settings
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.OpportunitySettings}
// @Router /api/v1/settings/opportunity [get]
func (h *SettingsHandler) GetOpportunity(c *fiber.Ctx) error {
	opp, err := h.settingsUC.GetOpportunity(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, opp, nil)
}

// SaveOpportunity godoc
// @Summary Save opportunity page settings
// @Tags Settings
// @Accept json
// @Produce json
// @Param request body dto.OpportunitySettingsRequest true "Opportunity payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.OpportunitySettings}
// @Router /api/v1/settings/opportunity [put]
func (h *SettingsHandler) SaveOpportunity(c *fiber.Ctx) error {
	var req dto.OpportunitySettingsRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	opp, err := h.settingsUC.SaveOpportunity(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, opp, nil)
}
