package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"money-manager/internal/dto"
	"money-manager/internal/models"
	"money-manager/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrEditWindowClosed is returned when a transaction is mutated after its
// 12-hour edit window: the record exists, the action is disallowed.
var ErrEditWindowClosed = errors.New("transaction can no longer be modified")

type TransactionService struct {
	txRepo TransactionStore
	logger *zap.Logger
}

func NewTransactionService(txRepo TransactionStore, logger *zap.Logger) *TransactionService {
	return &TransactionService{
		txRepo: txRepo,
		logger: logger,
	}
}

// ListParams narrows and paginates List.
type ListParams struct {
	Filter repository.TransactionFilter
	Page   int
	Limit  int
}

func (s *TransactionService) List(ctx context.Context, userID uuid.UUID, params ListParams) (*dto.TransactionListResponse, error) {
	if params.Page < 1 {
		params.Page = 1
	}
	if params.Limit < 1 {
		params.Limit = 50
	}
	offset := (params.Page - 1) * params.Limit

	transactions, err := s.txRepo.List(ctx, userID, params.Filter, params.Limit, offset)
	if err != nil {
		return nil, err
	}

	total, err := s.txRepo.Count(ctx, userID, params.Filter)
	if err != nil {
		return nil, err
	}

	resp := &dto.TransactionListResponse{
		Transactions: make([]dto.TransactionResponse, 0, len(transactions)),
		Pagination: dto.Pagination{
			Total: total,
			Page:  params.Page,
			Limit: params.Limit,
			Pages: (total + int64(params.Limit) - 1) / int64(params.Limit),
		},
	}
	for _, tx := range transactions {
		resp.Transactions = append(resp.Transactions, toTransactionResponse(tx))
	}
	return resp, nil
}

func (s *TransactionService) Get(ctx context.Context, userID, id uuid.UUID) (*dto.TransactionResponse, error) {
	tx, err := s.txRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}
	resp := toTransactionResponse(tx)
	return &resp, nil
}

func (s *TransactionService) Create(ctx context.Context, userID uuid.UUID, req *dto.CreateTransactionRequest) (*dto.TransactionResponse, error) {
	now := time.Now()

	date := now
	if req.Date != "" {
		parsed, err := dto.ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		date = parsed
	}

	account := strings.TrimSpace(req.Account)
	if account == "" {
		account = "default"
	}

	tx := &models.Transaction{
		ID:          uuid.New(),
		UserID:      userID,
		Type:        models.TransactionType(req.Type),
		Amount:      req.Amount,
		Category:    strings.TrimSpace(req.Category),
		Division:    models.Division(req.Division),
		Description: strings.TrimSpace(req.Description),
		Date:        date,
		Account:     account,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.txRepo.Create(ctx, tx); err != nil {
		return nil, err
	}

	resp := toTransactionResponse(tx)
	return &resp, nil
}

// Update applies the non-zero fields of req. The ownership and edit-window
// gates are re-evaluated here, at the moment of the write.
func (s *TransactionService) Update(ctx context.Context, userID, id uuid.UUID, req *dto.UpdateTransactionRequest) (*dto.TransactionResponse, error) {
	tx, err := s.txRepo.GetByID(ctx, userID, id)
	if err != nil {
		return nil, err
	}

	if !tx.CanEdit(time.Now()) {
		return nil, ErrEditWindowClosed
	}

	if req.Type != "" {
		tx.Type = models.TransactionType(req.Type)
	}
	if req.Amount != 0 {
		tx.Amount = req.Amount
	}
	if category := strings.TrimSpace(req.Category); category != "" {
		tx.Category = category
	}
	if req.Division != "" {
		tx.Division = models.Division(req.Division)
	}
	if description := strings.TrimSpace(req.Description); description != "" {
		tx.Description = description
	}
	if req.Date != "" {
		date, err := dto.ParseDate(req.Date)
		if err != nil {
			return nil, err
		}
		tx.Date = date
	}
	if account := strings.TrimSpace(req.Account); account != "" {
		tx.Account = account
	}
	tx.UpdatedAt = time.Now()

	if err := s.txRepo.Update(ctx, tx); err != nil {
		return nil, err
	}

	resp := toTransactionResponse(tx)
	return &resp, nil
}

// Delete is gated the same way as Update: owner only, inside the edit window.
func (s *TransactionService) Delete(ctx context.Context, userID, id uuid.UUID) error {
	tx, err := s.txRepo.GetByID(ctx, userID, id)
	if err != nil {
		return err
	}

	if !tx.CanEdit(time.Now()) {
		return ErrEditWindowClosed
	}

	return s.txRepo.Delete(ctx, userID, id)
}

// CategorySummary aggregates per (category, type), largest totals first,
// optionally narrowed by type and date range.
func (s *TransactionService) CategorySummary(ctx context.Context, userID uuid.UUID, typeFilter string, start, end *time.Time) (*dto.CategorySummaryResponse, error) {
	totals, err := s.txRepo.CategoryTotals(ctx, userID, typeFilter, start, end, 0)
	if err != nil {
		return nil, err
	}

	resp := &dto.CategorySummaryResponse{Summary: make([]dto.CategorySummaryEntry, 0, len(totals))}
	for _, t := range totals {
		resp.Summary = append(resp.Summary, dto.CategorySummaryEntry{
			Category: t.Category,
			Type:     string(t.Type),
			Total:    t.Total,
			Count:    t.Count,
		})
	}
	return resp, nil
}

func toTransactionResponse(tx *models.Transaction) dto.TransactionResponse {
	return dto.TransactionResponse{
		ID:          tx.ID.String(),
		Type:        string(tx.Type),
		Amount:      tx.Amount,
		Category:    tx.Category,
		Division:    string(tx.Division),
		Description: tx.Description,
		Date:        tx.Date.Format(time.RFC3339),
		Account:     tx.Account,
		CreatedAt:   tx.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   tx.UpdatedAt.Format(time.RFC3339),
	}
}
