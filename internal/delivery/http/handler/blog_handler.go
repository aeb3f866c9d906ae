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

type BlogHandler struct {
	blogUC *usecase.BlogUseCase
	logger *zap.Logger
}

func NewBlogHandler(blogUC *usecase.BlogUseCase, logger *zap.Logger) *BlogHandler {
	return &BlogHandler{
		blogUC: blogUC,
		logger: logger,
	}
}

// List godoc
// @Summary List blog posts
// @Tags Blog
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=[]domain.BlogPost}
// @Router /api/v1/blog/posts [get]
func (h *BlogHandler) List(c *fiber.Ctx) error {
	posts, err := h.blogUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, posts, &utils.Meta{Total: len(posts)})
}

// Get godoc
// @Summary Get a blog post
// @Tags Blog
// @Produce json
// @Param id path string true "Post id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.BlogPost}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/blog/posts/{id} [get]
func (h *BlogHandler) Get(c *fiber.Ctx) error {
	post, err := h.blogUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, post, nil)
}

// Create godoc
// @Summary Create a blog post
// @Description Creates a post; the slug combines the slugified title with a millisecond timestamp so repeated titles stay unique.
// @Tags Blog
// @Accept json
// @Produce json
// @Param request body dto.BlogPostRequest true "Post payload"
// @Security BearerAuth
// @Success 201 {object} utils.SuccessResponse{data=domain.BlogPost}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/blog/posts [post]
func (h *BlogHandler) Create(c *fiber.Ctx) error {
	var req dto.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	post, err := h.blogUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendCreated(c, post)
}

// Update godoc
// @Summary Update a blog post
// @Tags Blog
// @Accept json
// @Produce json
// @Param id path string true "Post id"
// @Param request body dto.BlogPostRequest true "Post payload"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse{data=domain.BlogPost}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/blog/posts/{id} [put]
func (h *BlogHandler) Update(c *fiber.Ctx) error {
	var req dto.BlogPostRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest)
	}
	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	post, err := h.blogUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, post, nil)
}

// Delete godoc
// @Summary Delete a blog post
// @Description Removes the post's stored images across the blog buckets, then the record.
// @Tags Blog
// @Produce json
// @Param id path string true "Post id"
// @Security BearerAuth
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/blog/posts/{id} [delete]
func (h *BlogHandler) Delete(c *fiber.Ctx) error {
	if err := h.blogUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendSuccess(c, fiber.Map{"deleted": true}, nil)
}
