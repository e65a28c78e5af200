package service

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"money-manager/internal/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func seedDashboardData(t *testing.T, store *fakeTransactionStore, userID uuid.UUID) {
	t.Helper()
	now := time.Now()
	rows := []struct {
		typ      models.TransactionType
		amount   float64
		category string
		division models.Division
		account  string
	}{
		{models.TransactionTypeIncome, 5000, "Salary", models.DivisionOffice, "checking"},
		{models.TransactionTypeExpense, 150, "Food", models.DivisionPersonal, "checking"},
		{models.TransactionTypeExpense, 60, "Fuel", models.DivisionOffice, "cash"},
	}
	for i, r := range rows {
		require.NoError(t, store.Create(context.Background(), &models.Transaction{
			ID:          uuid.New(),
			UserID:      userID,
			Type:        r.typ,
			Amount:      r.amount,
			Category:    r.category,
			Division:    r.division,
			Description: "seed",
			Date:        now.Add(-time.Duration(i) * time.Minute),
			Account:     r.account,
			CreatedAt:   now,
			UpdatedAt:   now,
		}))
	}
}

func TestDashboardServiceOverview(t *testing.T) {
	store := newFakeTransactionStore()
	svc := NewDashboardService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()
	seedDashboardData(t, store, userID)

	resp, err := svc.Overview(ctx, userID, models.PeriodDaily)
	require.NoError(t, err)

	assert.Equal(t, "daily", resp.Period)
	assert.True(t, resp.DateRange.StartDate.Before(resp.DateRange.EndDate))

	assert.Equal(t, 5000.0, resp.Summary.Income)
	assert.Equal(t, 210.0, resp.Summary.Expense)
	assert.Equal(t, 4790.0, resp.Summary.Balance)
	assert.Equal(t, int64(1), resp.Summary.IncomeCount)
	assert.Equal(t, int64(2), resp.Summary.ExpenseCount)

	require.Len(t, resp.CategoryBreakdown, 3)
	assert.Equal(t, "Salary", resp.CategoryBreakdown[0].Category, "largest total first")
	assert.Equal(t, "Food", resp.CategoryBreakdown[1].Category)
	assert.Equal(t, "Fuel", resp.CategoryBreakdown[2].Category)

	var personal, office float64
	for _, d := range resp.DivisionBreakdown {
		switch d.Division {
		case "personal":
			personal += d.Total
		case "office":
			office += d.Total
		}
	}
	assert.Equal(t, 150.0, personal)
	assert.Equal(t, 5060.0, office)
}

func TestDashboardServiceOverviewCategoryBreakdownCap(t *testing.T) {
	store := newFakeTransactionStore()
	svc := NewDashboardService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	now := time.Now()
	for i := 0; i < 14; i++ {
		require.NoError(t, store.Create(ctx, &models.Transaction{
			ID: uuid.New(), UserID: userID,
			Type: models.TransactionTypeExpense, Amount: float64(10 * (i + 1)),
			Category: fmt.Sprintf("Category %02d", i), Division: models.DivisionPersonal,
			Description: "seed", Date: now,
			Account: "default", CreatedAt: now, UpdatedAt: now,
		}))
	}

	resp, err := svc.Overview(ctx, userID, models.PeriodDaily)
	require.NoError(t, err)

	// The breakdown is capped at the ten largest categories, descending.
	require.Len(t, resp.CategoryBreakdown, 10)
	assert.Equal(t, 140.0, resp.CategoryBreakdown[0].Total)
	for i := 1; i < len(resp.CategoryBreakdown); i++ {
		assert.GreaterOrEqual(t,
			resp.CategoryBreakdown[i-1].Total, resp.CategoryBreakdown[i].Total)
	}
	assert.Equal(t, 50.0, resp.CategoryBreakdown[9].Total, "smallest four fall off")

	// The summary still covers every transaction, not just the listed ten.
	assert.Equal(t, int64(14), resp.Summary.ExpenseCount)
}

func TestDashboardServiceOverviewEmpty(t *testing.T) {
	store := newFakeTransactionStore()
	svc := NewDashboardService(store, zap.NewNop())

	resp, err := svc.Overview(context.Background(), uuid.New(), models.PeriodMonthly)
	require.NoError(t, err)

	// No transactions at all still reports explicit zeroes.
	assert.Equal(t, 0.0, resp.Summary.Income)
	assert.Equal(t, 0.0, resp.Summary.Expense)
	assert.Equal(t, 0.0, resp.Summary.Balance)
	assert.Equal(t, int64(0), resp.Summary.IncomeCount)
	assert.Equal(t, int64(0), resp.Summary.ExpenseCount)
	assert.Empty(t, resp.CategoryBreakdown)
	assert.Empty(t, resp.DivisionBreakdown)
}

func TestDashboardServiceTrends(t *testing.T) {
	store := newFakeTransactionStore()
	svc := NewDashboardService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	now := time.Now()
	for i, amount := range []float64{10, 20, 30} {
		require.NoError(t, store.Create(ctx, &models.Transaction{
			ID: uuid.New(), UserID: userID,
			Type: models.TransactionTypeExpense, Amount: amount,
			Category: "Food", Division: models.DivisionPersonal,
			Description: "seed", Date: now.Add(-time.Duration(i) * time.Minute),
			Account: "default", CreatedAt: now, UpdatedAt: now,
		}))
	}

	resp, err := svc.Trends(ctx, userID, models.PeriodDaily)
	require.NoError(t, err)
	assert.Equal(t, "daily", resp.Period)

	// All three fall into today's bucket; the entry carries the day's sum.
	require.NotEmpty(t, resp.Trends)
	var total float64
	for _, entry := range resp.Trends {
		assert.Equal(t, "expense", entry.Type)
		assert.Len(t, entry.Date, len("2006-01-02"))
		total += entry.Total
	}
	assert.Equal(t, 60.0, total)

	assert.True(t, sort.SliceIsSorted(resp.Trends, func(i, j int) bool {
		return resp.Trends[i].Date <= resp.Trends[j].Date
	}))
}

func TestDashboardServiceTrendsYearlyBuckets(t *testing.T) {
	store := newFakeTransactionStore()
	svc := NewDashboardService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()
	seedDashboardData(t, store, userID)

	resp, err := svc.Trends(ctx, userID, models.PeriodYearly)
	require.NoError(t, err)
	require.NotEmpty(t, resp.Trends)
	for _, entry := range resp.Trends {
		assert.Len(t, entry.Date, len("2006-01"), "yearly trends bucket by month")
	}
}

func TestDashboardServiceRecent(t *testing.T) {
	store := newFakeTransactionStore()
	svc := NewDashboardService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()

	now := time.Now()
	for i := 0; i < 15; i++ {
		require.NoError(t, store.Create(ctx, &models.Transaction{
			ID: uuid.New(), UserID: userID,
			Type: models.TransactionTypeExpense, Amount: 5,
			Category: "Food", Division: models.DivisionPersonal,
			Description: "seed", Date: now.Add(-time.Duration(i) * time.Hour),
			Account: "default", CreatedAt: now, UpdatedAt: now,
		}))
	}

	resp, err := svc.Recent(ctx, userID, 0)
	require.NoError(t, err)
	assert.Len(t, resp, 10, "limit defaults to 10")

	resp, err = svc.Recent(ctx, userID, 5)
	require.NoError(t, err)
	assert.Len(t, resp, 5)
}

func TestDashboardServiceAccounts(t *testing.T) {
	store := newFakeTransactionStore()
	svc := NewDashboardService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()
	seedDashboardData(t, store, userID)

	accounts, err := svc.Accounts(ctx, userID)
	require.NoError(t, err)
	require.Len(t, accounts, 2)

	byName := make(map[string]int)
	for i, a := range accounts {
		byName[a.Account] = i
	}

	checking := accounts[byName["checking"]]
	assert.Equal(t, 5000.0, checking.Income)
	assert.Equal(t, 150.0, checking.Expense)
	assert.Equal(t, 4850.0, checking.Balance)
	assert.Equal(t, int64(2), checking.TransactionCount)

	cash := accounts[byName["cash"]]
	assert.Equal(t, 0.0, cash.Income)
	assert.Equal(t, 60.0, cash.Expense)
	assert.Equal(t, -60.0, cash.Balance)
	assert.Equal(t, int64(1), cash.TransactionCount)
}

func TestDashboardServiceStatistics(t *testing.T) {
	store := newFakeTransactionStore()
	svc := NewDashboardService(store, zap.NewNop())
	ctx := context.Background()
	userID := uuid.New()
	seedDashboardData(t, store, userID)

	resp, err := svc.Statistics(ctx, userID, nil, nil)
	require.NoError(t, err)

	require.Len(t, resp.Overall, 2)
	byType := make(map[string]int)
	for i, st := range resp.Overall {
		byType[st.Type] = i
	}

	expense := resp.Overall[byType["expense"]]
	assert.Equal(t, 210.0, expense.Total)
	assert.Equal(t, int64(2), expense.Count)
	assert.Equal(t, 105.0, expense.Average)
	assert.Equal(t, 150.0, expense.Max)
	assert.Equal(t, 60.0, expense.Min)

	income := resp.Overall[byType["income"]]
	assert.Equal(t, 5000.0, income.Total)
	assert.Equal(t, int64(1), income.Count)
	assert.Equal(t, 5000.0, income.Average)

	assert.Len(t, resp.ByCategory, 3)
	assert.Len(t, resp.ByDivision, 3)

	t.Run("range excluding everything", func(t *testing.T) {
		past := time.Now().Add(-48 * time.Hour)
		pastEnd := past.Add(time.Hour)
		resp, err := svc.Statistics(ctx, userID, &past, &pastEnd)
		require.NoError(t, err)
		assert.Empty(t, resp.Overall)
		assert.Empty(t, resp.ByCategory)
		assert.Empty(t, resp.ByDivision)
	})
}
