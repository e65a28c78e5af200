package service

import (
	"context"
	"time"

	"money-manager/internal/models"
	"money-manager/internal/repository"

	"github.com/google/uuid"
)

// Store interfaces consumed by the services. The pgx-backed repositories
// satisfy them in production; the service tests substitute in-memory fakes.
// Every call takes the owning user's id explicitly so per-user isolation is
// enforced at the data-access boundary, never trusted from a payload.

type UserStore interface {
	Create(ctx context.Context, user *models.User) error
	GetByEmail(ctx context.Context, email string) (*models.User, error)
	GetByID(ctx context.Context, id uuid.UUID) (*models.User, error)
}

type CategoryStore interface {
	Create(ctx context.Context, category *models.Category) error
	CreateBatch(ctx context.Context, categories []*models.Category) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Category, error)
	GetByName(ctx context.Context, userID uuid.UUID, name string) (*models.Category, error)
	List(ctx context.Context, userID uuid.UUID, typeFilter string) ([]*models.Category, error)
	Update(ctx context.Context, category *models.Category) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	GetByID(ctx context.Context, userID, id uuid.UUID) (*models.Transaction, error)
	List(ctx context.Context, userID uuid.UUID, filter repository.TransactionFilter, limit, offset int) ([]*models.Transaction, error)
	Count(ctx context.Context, userID uuid.UUID, filter repository.TransactionFilter) (int64, error)
	Update(ctx context.Context, tx *models.Transaction) error
	Delete(ctx context.Context, userID, id uuid.UUID) error
	Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error)

	TotalsByType(ctx context.Context, userID uuid.UUID, start, end time.Time) ([]repository.TypeTotal, error)
	CategoryTotals(ctx context.Context, userID uuid.UUID, typeFilter string, start, end *time.Time, limit uint64) ([]repository.CategoryTotal, error)
	DivisionTotals(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]repository.DivisionTotal, error)
	Trends(ctx context.Context, userID uuid.UUID, start, end time.Time, pattern string) ([]repository.TrendPoint, error)
	AccountTotals(ctx context.Context, userID uuid.UUID) ([]repository.AccountTotal, error)
	TypeStats(ctx context.Context, userID uuid.UUID, start, end *time.Time) ([]repository.TypeStat, error)
}
