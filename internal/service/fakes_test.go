package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"money-manager/internal/models"
	"money-manager/internal/repository"

	"github.com/google/uuid"
)

// In-memory stores backing the service tests. Aggregations are computed the
// same way the SQL does: group, sum, order.

type fakeUserStore struct {
	users map[uuid.UUID]*models.User
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uuid.UUID]*models.User)}
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	u := *user
	s.users[user.ID] = &u
	return nil
}

func (s *fakeUserStore) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range s.users {
		if u.Email == email {
			copied := *u
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeUserStore) GetByID(_ context.Context, id uuid.UUID) (*models.User, error) {
	u, ok := s.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	copied := *u
	return &copied, nil
}

type fakeCategoryStore struct {
	categories map[uuid.UUID]*models.Category
}

func newFakeCategoryStore() *fakeCategoryStore {
	return &fakeCategoryStore{categories: make(map[uuid.UUID]*models.Category)}
}

func (s *fakeCategoryStore) Create(_ context.Context, category *models.Category) error {
	c := *category
	s.categories[category.ID] = &c
	return nil
}

func (s *fakeCategoryStore) CreateBatch(ctx context.Context, categories []*models.Category) error {
	for _, c := range categories {
		if err := s.Create(ctx, c); err != nil {
			return err
		}
	}
	return nil
}

func (s *fakeCategoryStore) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Category, error) {
	c, ok := s.categories[id]
	if !ok || c.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copied := *c
	return &copied, nil
}

func (s *fakeCategoryStore) GetByName(_ context.Context, userID uuid.UUID, name string) (*models.Category, error) {
	for _, c := range s.categories {
		if c.UserID == userID && c.Name == name {
			copied := *c
			return &copied, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (s *fakeCategoryStore) List(_ context.Context, userID uuid.UUID, typeFilter string) ([]*models.Category, error) {
	out := make([]*models.Category, 0)
	for _, c := range s.categories {
		if c.UserID != userID {
			continue
		}
		if typeFilter != "" && typeFilter != string(models.CategoryTypeBoth) {
			if string(c.Type) != typeFilter && c.Type != models.CategoryTypeBoth {
				continue
			}
		}
		copied := *c
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (s *fakeCategoryStore) Update(_ context.Context, category *models.Category) error {
	existing, ok := s.categories[category.ID]
	if !ok || existing.UserID != category.UserID {
		return repository.ErrNotFound
	}
	c := *category
	s.categories[category.ID] = &c
	return nil
}

func (s *fakeCategoryStore) Delete(_ context.Context, userID, id uuid.UUID) error {
	c, ok := s.categories[id]
	if !ok || c.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.categories, id)
	return nil
}

type fakeTransactionStore struct {
	transactions map[uuid.UUID]*models.Transaction
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{transactions: make(map[uuid.UUID]*models.Transaction)}
}

func (s *fakeTransactionStore) Create(_ context.Context, tx *models.Transaction) error {
	t := *tx
	s.transactions[tx.ID] = &t
	return nil
}

func (s *fakeTransactionStore) GetByID(_ context.Context, userID, id uuid.UUID) (*models.Transaction, error) {
	t, ok := s.transactions[id]
	if !ok || t.UserID != userID {
		return nil, repository.ErrNotFound
	}
	copied := *t
	return &copied, nil
}

func matchesFilter(t *models.Transaction, filter repository.TransactionFilter) bool {
	if filter.Type != "" && string(t.Type) != filter.Type {
		return false
	}
	if filter.Category != "" && t.Category != filter.Category {
		return false
	}
	if filter.Division != "" && string(t.Division) != filter.Division {
		return false
	}
	if filter.Account != "" && t.Account != filter.Account {
		return false
	}
	if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
		return false
	}
	if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
		return false
	}
	return true
}

func (s *fakeTransactionStore) matching(userID uuid.UUID, filter repository.TransactionFilter) []*models.Transaction {
	out := make([]*models.Transaction, 0)
	for _, t := range s.transactions {
		if t.UserID != userID || !matchesFilter(t, filter) {
			continue
		}
		copied := *t
		out = append(out, &copied)
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Date.Equal(out[j].Date) {
			return out[i].Date.After(out[j].Date)
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

func (s *fakeTransactionStore) List(_ context.Context, userID uuid.UUID, filter repository.TransactionFilter, limit, offset int) ([]*models.Transaction, error) {
	all := s.matching(userID, filter)
	if offset >= len(all) {
		return []*models.Transaction{}, nil
	}
	all = all[offset:]
	if limit < len(all) {
		all = all[:limit]
	}
	return all, nil
}

func (s *fakeTransactionStore) Count(_ context.Context, userID uuid.UUID, filter repository.TransactionFilter) (int64, error) {
	return int64(len(s.matching(userID, filter))), nil
}

func (s *fakeTransactionStore) Update(_ context.Context, tx *models.Transaction) error {
	existing, ok := s.transactions[tx.ID]
	if !ok || existing.UserID != tx.UserID {
		return repository.ErrNotFound
	}
	t := *tx
	s.transactions[tx.ID] = &t
	return nil
}

func (s *fakeTransactionStore) Delete(_ context.Context, userID, id uuid.UUID) error {
	t, ok := s.transactions[id]
	if !ok || t.UserID != userID {
		return repository.ErrNotFound
	}
	delete(s.transactions, id)
	return nil
}

func (s *fakeTransactionStore) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]*models.Transaction, error) {
	return s.List(ctx, userID, repository.TransactionFilter{}, limit, 0)
}

func (s *fakeTransactionStore) TotalsByType(_ context.Context, userID uuid.UUID, start, end time.Time) ([]repository.TypeTotal, error) {
	byType := make(map[models.TransactionType]*repository.TypeTotal)
	for _, t := range s.matching(userID, repository.TransactionFilter{StartDate: &start, EndDate: &end}) {
		total, ok := byType[t.Type]
		if !ok {
			total = &repository.TypeTotal{Type: t.Type}
			byType[t.Type] = total
		}
		total.Total += t.Amount
		total.Count++
	}
	out := make([]repository.TypeTotal, 0, len(byType))
	for _, total := range byType {
		out = append(out, *total)
	}
	return out, nil
}

func (s *fakeTransactionStore) CategoryTotals(_ context.Context, userID uuid.UUID, typeFilter string, start, end *time.Time, limit uint64) ([]repository.CategoryTotal, error) {
	type key struct {
		category string
		typ      models.TransactionType
	}
	byKey := make(map[key]*repository.CategoryTotal)
	filter := repository.TransactionFilter{Type: typeFilter, StartDate: start, EndDate: end}
	for _, t := range s.matching(userID, filter) {
		k := key{category: t.Category, typ: t.Type}
		total, ok := byKey[k]
		if !ok {
			total = &repository.CategoryTotal{Category: t.Category, Type: t.Type}
			byKey[k] = total
		}
		total.Total += t.Amount
		total.Count++
	}
	out := make([]repository.CategoryTotal, 0, len(byKey))
	for _, total := range byKey {
		out = append(out, *total)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Total > out[j].Total })
	if limit > 0 && uint64(len(out)) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeTransactionStore) DivisionTotals(_ context.Context, userID uuid.UUID, start, end *time.Time) ([]repository.DivisionTotal, error) {
	type key struct {
		division models.Division
		typ      models.TransactionType
	}
	byKey := make(map[key]*repository.DivisionTotal)
	for _, t := range s.matching(userID, repository.TransactionFilter{StartDate: start, EndDate: end}) {
		k := key{division: t.Division, typ: t.Type}
		total, ok := byKey[k]
		if !ok {
			total = &repository.DivisionTotal{Division: t.Division, Type: t.Type}
			byKey[k] = total
		}
		total.Total += t.Amount
		total.Count++
	}
	out := make([]repository.DivisionTotal, 0, len(byKey))
	for _, total := range byKey {
		out = append(out, *total)
	}
	return out, nil
}

// bucketLayout resolves a to_char pattern back to the Go layout through the
// Period helpers, so the bucket shapes stay defined in one place.
func bucketLayout(pattern string) string {
	for _, p := range []models.Period{models.PeriodYearly, models.PeriodMonthly} {
		if p.TrendBucketPattern() == pattern {
			return p.TrendBucketLayout()
		}
	}
	return models.PeriodMonthly.TrendBucketLayout()
}

func (s *fakeTransactionStore) Trends(_ context.Context, userID uuid.UUID, start, end time.Time, pattern string) ([]repository.TrendPoint, error) {
	type key struct {
		bucket string
		typ    models.TransactionType
	}
	byKey := make(map[key]*repository.TrendPoint)
	for _, t := range s.matching(userID, repository.TransactionFilter{StartDate: &start, EndDate: &end}) {
		k := key{bucket: t.Date.Format(bucketLayout(pattern)), typ: t.Type}
		point, ok := byKey[k]
		if !ok {
			point = &repository.TrendPoint{Bucket: k.bucket, Type: t.Type}
			byKey[k] = point
		}
		point.Total += t.Amount
		point.Count++
	}
	out := make([]repository.TrendPoint, 0, len(byKey))
	for _, point := range byKey {
		out = append(out, *point)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bucket != out[j].Bucket {
			return strings.Compare(out[i].Bucket, out[j].Bucket) < 0
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

func (s *fakeTransactionStore) AccountTotals(_ context.Context, userID uuid.UUID) ([]repository.AccountTotal, error) {
	type key struct {
		account string
		typ     models.TransactionType
	}
	byKey := make(map[key]*repository.AccountTotal)
	for _, t := range s.matching(userID, repository.TransactionFilter{}) {
		k := key{account: t.Account, typ: t.Type}
		total, ok := byKey[k]
		if !ok {
			total = &repository.AccountTotal{Account: t.Account, Type: t.Type}
			byKey[k] = total
		}
		total.Total += t.Amount
		total.Count++
	}
	out := make([]repository.AccountTotal, 0, len(byKey))
	for _, total := range byKey {
		out = append(out, *total)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Account != out[j].Account {
			return out[i].Account < out[j].Account
		}
		return out[i].Type < out[j].Type
	})
	return out, nil
}

func (s *fakeTransactionStore) TypeStats(_ context.Context, userID uuid.UUID, start, end *time.Time) ([]repository.TypeStat, error) {
	byType := make(map[models.TransactionType]*repository.TypeStat)
	for _, t := range s.matching(userID, repository.TransactionFilter{StartDate: start, EndDate: end}) {
		stat, ok := byType[t.Type]
		if !ok {
			stat = &repository.TypeStat{Type: t.Type, Max: t.Amount, Min: t.Amount}
			byType[t.Type] = stat
		}
		stat.Total += t.Amount
		stat.Count++
		if t.Amount > stat.Max {
			stat.Max = t.Amount
		}
		if t.Amount < stat.Min {
			stat.Min = t.Amount
		}
	}
	out := make([]repository.TypeStat, 0, len(byType))
	for _, stat := range byType {
		stat.Average = stat.Total / float64(stat.Count)
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out, nil
}
