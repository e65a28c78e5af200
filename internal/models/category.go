package models

import (
	"time"

	"github.com/google/uuid"
)

type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
	CategoryTypeBoth    CategoryType = "both"
)

func ValidCategoryType(t string) bool {
	switch CategoryType(t) {
	case CategoryTypeIncome, CategoryTypeExpense, CategoryTypeBoth:
		return true
	}
	return false
}

type Category struct {
	ID        uuid.UUID    `db:"id"`
	UserID    uuid.UUID    `db:"user_id"`
	Name      string       `db:"name"`
	Type      CategoryType `db:"type"`
	Icon      string       `db:"icon"`
	Color     string       `db:"color"`
	IsDefault bool         `db:"is_default"`
	CreatedAt time.Time    `db:"created_at"`
	UpdatedAt time.Time    `db:"updated_at"`
}

// DefaultCategorySeed is one of the fixed categories every new user starts with.
type DefaultCategorySeed struct {
	Name  string
	Type  CategoryType
	Icon  string
	Color string
}

// DefaultCategories are created once at registration and can never be deleted.
var DefaultCategories = []DefaultCategorySeed{
	{Name: "Salary", Type: CategoryTypeIncome, Icon: "💰", Color: "#10b981"},
	{Name: "Freelance", Type: CategoryTypeIncome, Icon: "💼", Color: "#3b82f6"},
	{Name: "Investment", Type: CategoryTypeIncome, Icon: "📈", Color: "#8b5cf6"},
	{Name: "Food", Type: CategoryTypeExpense, Icon: "🍔", Color: "#ef4444"},
	{Name: "Fuel", Type: CategoryTypeExpense, Icon: "⛽", Color: "#f59e0b"},
	{Name: "Movie", Type: CategoryTypeExpense, Icon: "🎬", Color: "#ec4899"},
	{Name: "Medical", Type: CategoryTypeExpense, Icon: "🏥", Color: "#06b6d4"},
	{Name: "Loan", Type: CategoryTypeExpense, Icon: "🏦", Color: "#6366f1"},
	{Name: "Shopping", Type: CategoryTypeExpense, Icon: "🛍️", Color: "#a855f7"},
	{Name: "Transport", Type: CategoryTypeExpense, Icon: "🚗", Color: "#14b8a6"},
	{Name: "Bills", Type: CategoryTypeExpense, Icon: "📄", Color: "#f97316"},
	{Name: "Entertainment", Type: CategoryTypeExpense, Icon: "🎮", Color: "#84cc16"},
}
