package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"money-manager/internal/dto"
	"money-manager/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrCategoryExists  = errors.New("category already exists")
	ErrDefaultCategory = errors.New("default categories cannot be deleted")
)

type CategoryService struct {
	categoryRepo CategoryStore
	logger       *zap.Logger
}

func NewCategoryService(categoryRepo CategoryStore, logger *zap.Logger) *CategoryService {
	return &CategoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}
}

func (s *CategoryService) List(ctx context.Context, userID uuid.UUID, typeFilter string) ([]dto.CategoryResponse, error) {
	categories, err := s.categoryRepo.List(ctx, userID, typeFilter)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.CategoryResponse, 0, len(categories))
	for _, category := range categories {
		resp = append(resp, toCategoryResponse(category))
	}
	return resp, nil
}

func (s *CategoryService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateCategoryRequest) (*dto.CategoryResponse, error) {
	name := strings.TrimSpace(req.Name)

	existing, _ := s.categoryRepo.GetByName(ctx, userID, name)
	if existing != nil {
		return nil, ErrCategoryExists
	}

	now := time.Now()
	category := &models.Category{
		ID:        uuid.New(),
		UserID:    userID,
		Name:      name,
		Type:      models.CategoryTypeBoth,
		Icon:      "📁",
		Color:     "#6366f1",
		IsDefault: false,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if req.Type != "" {
		category.Type = models.CategoryType(req.Type)
	}
	if req.Icon != "" {
		category.Icon = req.Icon
	}
	if req.Color != "" {
		category.Color = req.Color
	}

	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, err
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

func (s *CategoryService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateCategoryRequest) (*dto.CategoryResponse, error) {
	category, err := s.categoryRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if name := strings.TrimSpace(req.Name); name != "" && name != category.Name {
		existing, _ := s.categoryRepo.GetByName(ctx, userID, name)
		if existing != nil {
			return nil, ErrCategoryExists
		}
		category.Name = name
	}
	if req.Type != "" {
		category.Type = models.CategoryType(req.Type)
	}
	if req.Icon != "" {
		category.Icon = req.Icon
	}
	if req.Color != "" {
		category.Color = req.Color
	}
	category.UpdatedAt = time.Now()

	if err := s.categoryRepo.Update(ctx, category); err != nil {
		return nil, err
	}

	resp := toCategoryResponse(category)
	return &resp, nil
}

// Delete removes a user-created category. Default categories are protected:
// the attempt is rejected, never silently ignored.
func (s *CategoryService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	category, err := s.categoryRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}

	if category.IsDefault {
		return ErrDefaultCategory
	}

	return s.categoryRepo.Delete(ctx, userID, id)
}

func toCategoryResponse(category *models.Category) dto.CategoryResponse {
	return dto.CategoryResponse{
		ID:        category.ID.String(),
		Name:      category.Name,
		Type:      string(category.Type),
		Icon:      category.Icon,
		Color:     category.Color,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt.Format(time.RFC3339),
		UpdatedAt: category.UpdatedAt.Format(time.RFC3339),
	}
}
