package handler

import (
	"io"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/travel-admin/internal/pkg/errors"
	"github.com/travel-admin/internal/pkg/utils"
	"github.com/travel-admin/internal/usecase"
)

type UploadHandler struct {
	assetUC *usecase.AssetUseCase
	logger  *zap.Logger
}

func NewUploadHandler(assetUC *usecase.AssetUseCase, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{
		assetUC: assetUC,
		logger:  logger,
	}
}

// Upload godoc
// @Summary Upload an image
// @Description Uploads a multipart file into the bucket/folder bound to the category. Pass replaces_path to queue the previously stored file for cleanup.
// @Tags Assets
// @Accept multipart/form-data
// @Produce json
// @Param category path string true "Upload category (hero, logo, map, services, partners, opportunity, tour-hero, tour-gallery, tour-map, region, tour-types, blog-post, blog-content, blog-author)"
// @Param file formData file true "Image file"
// @Param replaces_path formData string false "Previously stored path being replaced"
// @Security BearerAuth
// @Success 201 {object} utils.SuccessResponse{data=dto.UploadResult}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/uploads/{category} [post]
func (h *UploadHandler) Upload(c *fiber.Ctx) error {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}

	file, err := fileHeader.Open()
	if err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		h.logger.Error("Failed to read uploaded file", zap.Error(err))
		return utils.SendError(c, errors.ErrInternalServer)
	}

	result, err := h.assetUC.Upload(
		c.Context(),
		c.Params("category"),
		fileHeader.Filename,
		fileHeader.Header.Get(fiber.HeaderContentType),
		data,
		c.FormValue("replaces_path"),
	)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}
