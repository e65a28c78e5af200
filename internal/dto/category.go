package dto

import (
	"regexp"
	"strings"

	"money-manager/internal/models"
)

var colorPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

type CreateCategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (r *CreateCategoryRequest) Validate() error {
	var v violations
	if strings.TrimSpace(r.Name) == "" {
		v.add("name", "Category name is required")
	}
	if r.Type != "" && !models.ValidCategoryType(r.Type) {
		v.add("type", "Type must be income, expense or both")
	}
	if r.Color != "" && !colorPattern.MatchString(r.Color) {
		v.add("color", "Invalid color format")
	}
	return v.err()
}

// UpdateCategoryRequest carries partial updates; empty fields are unchanged.
type UpdateCategoryRequest struct {
	Name  string `json:"name"`
	Type  string `json:"type"`
	Icon  string `json:"icon"`
	Color string `json:"color"`
}

func (r *UpdateCategoryRequest) Validate() error {
	var v violations
	if r.Type != "" && !models.ValidCategoryType(r.Type) {
		v.add("type", "Type must be income, expense or both")
	}
	if r.Color != "" && !colorPattern.MatchString(r.Color) {
		v.add("color", "Invalid color format")
	}
	return v.err()
}

type CategoryResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Type      string `json:"type"`
	Icon      string `json:"icon"`
	Color     string `json:"color"`
	IsDefault bool   `json:"isDefault"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}
