package dto

import (
	"strings"

	"money-manager/internal/models"
)

const maxDescriptionLength = 200

type CreateTransactionRequest struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Division    string  `json:"division"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Account     string  `json:"account"`
}

func (r *CreateTransactionRequest) Validate() error {
	var v violations
	if !models.ValidTransactionType(r.Type) {
		v.add("type", "Type must be income or expense")
	}
	if r.Amount < 0.01 {
		v.add("amount", "Amount must be greater than 0")
	}
	if strings.TrimSpace(r.Category) == "" {
		v.add("category", "Category is required")
	}
	if !models.ValidDivision(r.Division) {
		v.add("division", "Division must be office or personal")
	}
	if strings.TrimSpace(r.Description) == "" {
		v.add("description", "Description is required")
	} else if len(r.Description) > maxDescriptionLength {
		v.add("description", "Description cannot exceed 200 characters")
	}
	if r.Date != "" {
		if _, err := ParseDate(r.Date); err != nil {
			v.add("date", "Invalid date format")
		}
	}
	return v.err()
}

// UpdateTransactionRequest carries partial updates; zero-valued fields are
// unchanged.
type UpdateTransactionRequest struct {
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Division    string  `json:"division"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Account     string  `json:"account"`
}

func (r *UpdateTransactionRequest) Validate() error {
	var v violations
	if r.Type != "" && !models.ValidTransactionType(r.Type) {
		v.add("type", "Type must be income or expense")
	}
	if r.Amount != 0 && r.Amount < 0.01 {
		v.add("amount", "Amount must be greater than 0")
	}
	if r.Division != "" && !models.ValidDivision(r.Division) {
		v.add("division", "Division must be office or personal")
	}
	if len(r.Description) > maxDescriptionLength {
		v.add("description", "Description cannot exceed 200 characters")
	}
	if r.Date != "" {
		if _, err := ParseDate(r.Date); err != nil {
			v.add("date", "Invalid date format")
		}
	}
	return v.err()
}

type TransactionResponse struct {
	ID          string  `json:"id"`
	Type        string  `json:"type"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Division    string  `json:"division"`
	Description string  `json:"description"`
	Date        string  `json:"date"`
	Account     string  `json:"account"`
	CreatedAt   string  `json:"createdAt"`
	UpdatedAt   string  `json:"updatedAt"`
}

type Pagination struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Pages int64 `json:"pages"`
}

type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	Pagination   Pagination            `json:"pagination"`
}

type CategorySummaryEntry struct {
	Category string  `json:"category"`
	Type     string  `json:"type"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

type CategorySummaryResponse struct {
	Summary []CategorySummaryEntry `json:"summary"`
}
