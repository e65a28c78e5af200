package service

import (
	"context"
	"time"

	"money-manager/internal/dto"
	"money-manager/internal/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type DashboardService struct {
	txRepo TransactionStore
	logger *zap.Logger
}

func NewDashboardService(txRepo TransactionStore, logger *zap.Logger) *DashboardService {
	return &DashboardService{
		txRepo: txRepo,
		logger: logger,
	}
}

const categoryBreakdownLimit = 10

// Overview assembles the dashboard summary for the period containing now:
// totals by type, balance, and the category and division breakdowns.
func (s *DashboardService) Overview(ctx context.Context, userID uuid.UUID, period models.Period) (*dto.OverviewResponse, error) {
	start, end := period.Range(time.Now())

	totals, err := s.txRepo.TotalsByType(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}

	// Missing type groups report 0/0 rather than being absent.
	var summary dto.Summary
	for _, t := range totals {
		switch t.Type {
		case models.TransactionTypeIncome:
			summary.Income = t.Total
			summary.IncomeCount = t.Count
		case models.TransactionTypeExpense:
			summary.Expense = t.Total
			summary.ExpenseCount = t.Count
		}
	}
	summary.Balance = summary.Income - summary.Expense

	categoryTotals, err := s.txRepo.CategoryTotals(ctx, userID, "", &start, &end, categoryBreakdownLimit)
	if err != nil {
		return nil, err
	}
	categoryBreakdown := make([]dto.CategorySummaryEntry, 0, len(categoryTotals))
	for _, t := range categoryTotals {
		categoryBreakdown = append(categoryBreakdown, dto.CategorySummaryEntry{
			Category: t.Category,
			Type:     string(t.Type),
			Total:    t.Total,
			Count:    t.Count,
		})
	}

	divisionTotals, err := s.txRepo.DivisionTotals(ctx, userID, &start, &end)
	if err != nil {
		return nil, err
	}
	divisionBreakdown := make([]dto.DivisionSummaryEntry, 0, len(divisionTotals))
	for _, t := range divisionTotals {
		divisionBreakdown = append(divisionBreakdown, dto.DivisionSummaryEntry{
			Division: string(t.Division),
			Type:     string(t.Type),
			Total:    t.Total,
			Count:    t.Count,
		})
	}

	return &dto.OverviewResponse{
		Period:            string(period),
		DateRange:         dto.DateRange{StartDate: start, EndDate: end},
		Summary:           summary,
		CategoryBreakdown: categoryBreakdown,
		DivisionBreakdown: divisionBreakdown,
	}, nil
}

// Trends returns the per-bucket series for the period containing now: daily
// buckets, or monthly buckets when the period is yearly. Buckets with no
// transactions of a given type are omitted; the consumer defaults them to 0.
func (s *DashboardService) Trends(ctx context.Context, userID uuid.UUID, period models.Period) (*dto.TrendsResponse, error) {
	start, end := period.Range(time.Now())

	points, err := s.txRepo.Trends(ctx, userID, start, end, period.TrendBucketPattern())
	if err != nil {
		return nil, err
	}

	trends := make([]dto.TrendEntry, 0, len(points))
	for _, p := range points {
		trends = append(trends, dto.TrendEntry{
			Date:  p.Bucket,
			Type:  string(p.Type),
			Total: p.Total,
			Count: p.Count,
		})
	}

	return &dto.TrendsResponse{
		Period:    string(period),
		DateRange: dto.DateRange{StartDate: start, EndDate: end},
		Trends:    trends,
	}, nil
}

func (s *DashboardService) Recent(ctx context.Context, userID uuid.UUID, limit int) ([]dto.TransactionResponse, error) {
	if limit < 1 {
		limit = 10
	}

	transactions, err := s.txRepo.Recent(ctx, userID, limit)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.TransactionResponse, 0, len(transactions))
	for _, tx := range transactions {
		resp = append(resp, toTransactionResponse(tx))
	}
	return resp, nil
}

// Accounts summarizes every account the user has ever used, across all time.
func (s *DashboardService) Accounts(ctx context.Context, userID uuid.UUID) ([]dto.AccountSummary, error) {
	totals, err := s.txRepo.AccountTotals(ctx, userID)
	if err != nil {
		return nil, err
	}

	byAccount := make(map[string]*dto.AccountSummary)
	order := make([]string, 0)
	for _, t := range totals {
		summary, ok := byAccount[t.Account]
		if !ok {
			summary = &dto.AccountSummary{Account: t.Account}
			byAccount[t.Account] = summary
			order = append(order, t.Account)
		}
		switch t.Type {
		case models.TransactionTypeIncome:
			summary.Income = t.Total
		case models.TransactionTypeExpense:
			summary.Expense = t.Total
		}
		summary.TransactionCount += t.Count
	}

	accounts := make([]dto.AccountSummary, 0, len(order))
	for _, name := range order {
		summary := byAccount[name]
		summary.Balance = summary.Income - summary.Expense
		accounts = append(accounts, *summary)
	}
	return accounts, nil
}

// Statistics computes the faceted stats for an optional explicit date range;
// nil bounds cover all time.
func (s *DashboardService) Statistics(ctx context.Context, userID uuid.UUID, start, end *time.Time) (*dto.StatisticsResponse, error) {
	typeStats, err := s.txRepo.TypeStats(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	overall := make([]dto.TypeStat, 0, len(typeStats))
	for _, st := range typeStats {
		overall = append(overall, dto.TypeStat{
			Type:    string(st.Type),
			Total:   st.Total,
			Count:   st.Count,
			Average: st.Average,
			Max:     st.Max,
			Min:     st.Min,
		})
	}

	categoryTotals, err := s.txRepo.CategoryTotals(ctx, userID, "", start, end, 0)
	if err != nil {
		return nil, err
	}
	byCategory := make([]dto.CategorySummaryEntry, 0, len(categoryTotals))
	for _, t := range categoryTotals {
		byCategory = append(byCategory, dto.CategorySummaryEntry{
			Category: t.Category,
			Type:     string(t.Type),
			Total:    t.Total,
			Count:    t.Count,
		})
	}

	divisionTotals, err := s.txRepo.DivisionTotals(ctx, userID, start, end)
	if err != nil {
		return nil, err
	}
	byDivision := make([]dto.DivisionSummaryEntry, 0, len(divisionTotals))
	for _, t := range divisionTotals {
		byDivision = append(byDivision, dto.DivisionSummaryEntry{
			Division: string(t.Division),
			Type:     string(t.Type),
			Total:    t.Total,
			Count:    t.Count,
		})
	}

	return &dto.StatisticsResponse{
		Overall:    overall,
		ByCategory: byCategory,
		ByDivision: byDivision,
	}, nil
}
