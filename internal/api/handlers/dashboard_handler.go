package handlers

import (
	"money-manager/internal/models"
	"money-manager/internal/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

type DashboardHandler struct {
	dashboardService *service.DashboardService
	logger           *zap.Logger
}

func NewDashboardHandler(dashboardService *service.DashboardService, logger *zap.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboardService: dashboardService,
		logger:           logger,
	}
}

// Overview godoc
// @Summary Dashboard overview
// @Description Totals by type, balance, and category/division breakdowns for the period
// @Tags dashboard
// @Produce json
// @Param period query string false "daily, weekly, monthly or yearly" default(monthly)
// @Security Bearer
// @Success 200 {object} dto.OverviewResponse
// @Failure 401 {object} map[string]string
// @Router /api/dashboard/overview [get]
func (h *DashboardHandler) Overview(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	period := models.Period(c.Query("period", string(models.PeriodMonthly)))

	resp, err := h.dashboardService.Overview(c.Context(), userID, period)
	if err != nil {
		h.logger.Error("Failed to build dashboard overview", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching dashboard data")
	}

	return ok(c, resp)
}

// Trends godoc
// @Summary Dashboard trends
// @Description Per-day (or per-month for yearly) income/expense series for the period
// @Tags dashboard
// @Produce json
// @Param period query string false "daily, weekly, monthly or yearly" default(monthly)
// @Security Bearer
// @Success 200 {object} dto.TrendsResponse
// @Failure 401 {object} map[string]string
// @Router /api/dashboard/trends [get]
func (h *DashboardHandler) Trends(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	period := models.Period(c.Query("period", string(models.PeriodMonthly)))

	resp, err := h.dashboardService.Trends(c.Context(), userID, period)
	if err != nil {
		h.logger.Error("Failed to build trends", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching trends data")
	}

	return ok(c, resp)
}

// Recent godoc
// @Summary Recent transactions
// @Tags dashboard
// @Produce json
// @Param limit query int false "Limit" default(10)
// @Security Bearer
// @Success 200 {array} dto.TransactionResponse
// @Failure 401 {object} map[string]string
// @Router /api/dashboard/recent [get]
func (h *DashboardHandler) Recent(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	transactions, err := h.dashboardService.Recent(c.Context(), userID, c.QueryInt("limit", 10))
	if err != nil {
		h.logger.Error("Failed to fetch recent transactions", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching recent transactions")
	}

	return ok(c, fiber.Map{"transactions": transactions})
}

// Accounts godoc
// @Summary Account summary
// @Description Per-account income, expense, balance and transaction count across all time
// @Tags dashboard
// @Produce json
// @Security Bearer
// @Success 200 {array} dto.AccountSummary
// @Failure 401 {object} map[string]string
// @Router /api/dashboard/accounts [get]
func (h *DashboardHandler) Accounts(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	accounts, err := h.dashboardService.Accounts(c.Context(), userID)
	if err != nil {
		h.logger.Error("Failed to fetch account summary", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching account summary")
	}

	return ok(c, fiber.Map{"accounts": accounts})
}

// Statistics godoc
// @Summary Full statistics
// @Description Per-type stats with averages and extrema, plus category and division facets
// @Tags dashboard
// @Produce json
// @Param startDate query string false "ISO date"
// @Param endDate query string false "ISO date, end-inclusive"
// @Security Bearer
// @Success 200 {object} dto.StatisticsResponse
// @Failure 401 {object} map[string]string
// @Router /api/dashboard/statistics [get]
func (h *DashboardHandler) Statistics(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid date format")
	}

	resp, err := h.dashboardService.Statistics(c.Context(), userID, start, end)
	if err != nil {
		h.logger.Error("Failed to fetch statistics", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching statistics")
	}

	return ok(c, resp)
}
