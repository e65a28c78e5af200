package handlers

import (
	"errors"

	"money-manager/internal/dto"
	"money-manager/internal/repository"
	"money-manager/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type TransactionHandler struct {
	txService *service.TransactionService
	logger    *zap.Logger
}

func NewTransactionHandler(txService *service.TransactionService, logger *zap.Logger) *TransactionHandler {
	return &TransactionHandler{
		txService: txService,
		logger:    logger,
	}
}

// List godoc
// @Summary List transactions
// @Description List the user's transactions with filters and pagination, newest first
// @Tags transactions
// @Produce json
// @Param type query string false "income or expense"
// @Param category query string false "Category name"
// @Param division query string false "office or personal"
// @Param account query string false "Account label"
// @Param startDate query string false "ISO date"
// @Param endDate query string false "ISO date, end-inclusive"
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(50)
// @Security Bearer
// @Success 200 {object} dto.TransactionListResponse
// @Failure 401 {object} map[string]string
// @Router /api/transactions [get]
func (h *TransactionHandler) List(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid date format")
	}

	params := service.ListParams{
		Filter: repository.TransactionFilter{
			Type:      c.Query("type"),
			Category:  c.Query("category"),
			Division:  c.Query("division"),
			Account:   c.Query("account"),
			StartDate: start,
			EndDate:   end,
		},
		Page:  c.QueryInt("page", 1),
		Limit: c.QueryInt("limit", 50),
	}

	resp, err := h.txService.List(c.Context(), userID, params)
	if err != nil {
		h.logger.Error("Failed to list transactions", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching transactions")
	}

	return ok(c, resp)
}

// Get godoc
// @Summary Get a transaction
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [get]
func (h *TransactionHandler) Get(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid transaction ID")
	}

	tx, err := h.txService.Get(c.Context(), userID, id)
	if err != nil {
		if isNotFound(err) {
			return fail(c, fiber.StatusNotFound, "Transaction not found")
		}
		h.logger.Error("Failed to fetch transaction", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching transaction")
	}

	return ok(c, fiber.Map{"transaction": tx})
}

// Create godoc
// @Summary Create a transaction
// @Tags transactions
// @Accept json
// @Produce json
// @Param request body dto.CreateTransactionRequest true "Transaction"
// @Security Bearer
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} map[string]string
// @Router /api/transactions [post]
func (h *TransactionHandler) Create(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	var req dto.CreateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr, ok := validationError(req.Validate()); ok {
		return failValidation(c, verr)
	}

	tx, err := h.txService.Create(c.Context(), userID, &req)
	if err != nil {
		h.logger.Error("Failed to create transaction", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error creating transaction")
	}

	return created(c, "Transaction created successfully", fiber.Map{"transaction": tx})
}

// Update godoc
// @Summary Update a transaction
// @Description Update a transaction while it is still inside its 12-hour edit window
// @Tags transactions
// @Accept json
// @Produce json
// @Param id path string true "Transaction ID"
// @Param request body dto.UpdateTransactionRequest true "Fields to update"
// @Security Bearer
// @Success 200 {object} dto.TransactionResponse
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [put]
func (h *TransactionHandler) Update(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid transaction ID")
	}

	var req dto.UpdateTransactionRequest
	if err := c.BodyParser(&req); err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if verr, ok := validationError(req.Validate()); ok {
		return failValidation(c, verr)
	}

	tx, err := h.txService.Update(c.Context(), userID, id, &req)
	if err != nil {
		if isNotFound(err) {
			return fail(c, fiber.StatusNotFound, "Transaction not found")
		}
		if errors.Is(err, service.ErrEditWindowClosed) {
			return fail(c, fiber.StatusForbidden, "Transaction cannot be edited after 12 hours")
		}
		h.logger.Error("Failed to update transaction", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error updating transaction")
	}

	return okMessage(c, "Transaction updated successfully", fiber.Map{"transaction": tx})
}

// Delete godoc
// @Summary Delete a transaction
// @Description Delete a transaction while it is still inside its 12-hour edit window
// @Tags transactions
// @Produce json
// @Param id path string true "Transaction ID"
// @Security Bearer
// @Success 200 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /api/transactions/{id} [delete]
func (h *TransactionHandler) Delete(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid transaction ID")
	}

	if err := h.txService.Delete(c.Context(), userID, id); err != nil {
		if isNotFound(err) {
			return fail(c, fiber.StatusNotFound, "Transaction not found")
		}
		if errors.Is(err, service.ErrEditWindowClosed) {
			return fail(c, fiber.StatusForbidden, "Transaction cannot be deleted after 12 hours")
		}
		h.logger.Error("Failed to delete transaction", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error deleting transaction")
	}

	return okMessage(c, "Transaction deleted successfully", nil)
}

// CategorySummary godoc
// @Summary Transaction totals by category
// @Description Sum and count per (category, type), largest totals first
// @Tags transactions
// @Produce json
// @Param type query string false "income or expense"
// @Param startDate query string false "ISO date"
// @Param endDate query string false "ISO date, end-inclusive"
// @Security Bearer
// @Success 200 {object} dto.CategorySummaryResponse
// @Failure 401 {object} map[string]string
// @Router /api/transactions/summary/by-category [get]
func (h *TransactionHandler) CategorySummary(c *fiber.Ctx) error {
	userID, err := getUserID(c)
	if err != nil {
		return fail(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	start, end, err := parseDateRange(c)
	if err != nil {
		return fail(c, fiber.StatusBadRequest, "Invalid date format")
	}

	resp, err := h.txService.CategorySummary(c.Context(), userID, c.Query("type"), start, end)
	if err != nil {
		h.logger.Error("Failed to fetch category summary", zap.Error(err))
		return fail(c, fiber.StatusInternalServerError, "Error fetching category summary")
	}

	return ok(c, resp)
}
