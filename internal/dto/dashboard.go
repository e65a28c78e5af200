package dto

import "time"

type DateRange struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

type Summary struct {
	Income       float64 `json:"income"`
	Expense      float64 `json:"expense"`
	Balance      float64 `json:"balance"`
	IncomeCount  int64   `json:"incomeCount"`
	ExpenseCount int64   `json:"expenseCount"`
}

type DivisionSummaryEntry struct {
	Division string  `json:"division"`
	Type     string  `json:"type"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
}

type OverviewResponse struct {
	Period            string                 `json:"period"`
	DateRange         DateRange              `json:"dateRange"`
	Summary           Summary                `json:"summary"`
	CategoryBreakdown []CategorySummaryEntry `json:"categoryBreakdown"`
	DivisionBreakdown []DivisionSummaryEntry `json:"divisionBreakdown"`
}

type TrendEntry struct {
	Date  string  `json:"date"`
	Type  string  `json:"type"`
	Total float64 `json:"total"`
	Count int64   `json:"count"`
}

type TrendsResponse struct {
	Period    string       `json:"period"`
	DateRange DateRange    `json:"dateRange"`
	Trends    []TrendEntry `json:"trends"`
}

type AccountSummary struct {
	Account          string  `json:"account"`
	Income           float64 `json:"income"`
	Expense          float64 `json:"expense"`
	Balance          float64 `json:"balance"`
	TransactionCount int64   `json:"transactionCount"`
}

type TypeStat struct {
	Type    string  `json:"type"`
	Total   float64 `json:"total"`
	Count   int64   `json:"count"`
	Average float64 `json:"average"`
	Max     float64 `json:"max"`
	Min     float64 `json:"min"`
}

type StatisticsResponse struct {
	Overall    []TypeStat             `json:"overall"`
	ByCategory []CategorySummaryEntry `json:"byCategory"`
	ByDivision []DivisionSummaryEntry `json:"byDivision"`
}
