package handlers

import (
	"errors"

	"money-manager/internal/dto"
	"money-manager/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type CategoryHandler struct {
	categoryService *service.CategoryService
	logger          *zap.Logger
}

func NewCategoryHandler(categoryService *service.CategoryService, logger *zap.Logger) *CategoryHandler {
	return &CategoryHandler{
		categoryService: categoryService,
		logger:          logger,
	}
}

// List godoc
// @Summary List categories
// @Description List the user's categories, optionally filtered by type (matches the exact type plus "both")
// @Tags categories
// @Produce json
// @Param type query string false "Category type: income, expense or both"
// @Security Bearer
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} map[string]string
// @Router /api/categories [get]
func (h *CategoryHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	categories, err := h.categoryService.List(c.Context(), userID, c.Query("type"))
	if err != nil {
		h.logger.Error("Failed to list categories", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching categories")
	}

	return ok(c, fiber.Map{"categories": categories})
}

// Create godoc
// @Summary Create a category
// @Tags categories
// @Accept json
// @Produce json
// @Param request body dto.CreateCategoryRequest true "Category"
// @Security Bearer
// @Success 201 {object} dto.CategoryResponse
// @Failure 400 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/categories [post]
func (h *CategoryHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr, ok := validationError(req.Validate()); ok {
		return failValidation(c, verr)
	}

	category, err := h.categoryService.Create(c.Context(), userID, &req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryExists) {
			return fail(c, fiber.StatusConflict, "Category with this name already exists")
		}
		h.logger.Error("Failed to create category", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error creating category")
	}

	return created(c, "Category created successfully", fiber.Map{"category": category})
}

// Update godoc
// @Summary Update a category
// @Tags categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param request body dto.UpdateCategoryRequest true "Fields to update"
// @Security Bearer
// @Success 200 {object} dto.CategoryResponse
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /api/categories/{id} [put]
func (h *CategoryHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	var req dto.UpdateCategoryRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr, ok := validationError(req.Validate()); ok {
		return failValidation(c, verr)
	}

	category, err := h.categoryService.Update(c.Context(), userID, id, &req)
	if err != nil {
		if isNotFound(err) {
			return fail(c, fiber.StatusNotFound, "Category not found")
		}
		if errors.Is(err, service.ErrCategoryExists) {
			return fail(c, fiber.StatusConflict, "Category with this name already exists")
		}
		h.logger.Error("Failed to update category", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error updating category")
	}

	return okMessage(c, "Category updated successfully", fiber.Map{"category": category})
}

// Delete godoc
// @Summary Delete a category
// @Description Delete a user-created category; default categories are protected
// @Tags categories
// @Produce json
// @Param id path string true "Category ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/categories/{id} [delete]
func (h *CategoryHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid category ID")
	}

	if err := h.categoryService.Delete(c.Context(), userID, id); err != nil {
		if isNotFound(err) {
			return fail(c, fiber.StatusNotFound, "Category not found")
		}
		if errors.Is(err, service.ErrDefaultCategory) {
			return fail(c, fiber.StatusForbidden, "Default categories cannot be deleted")
		}
		h.logger.Error("Failed to delete category", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error deleting category")
	}

	return okMessage(c, "Category deleted successfully", nil)
}
