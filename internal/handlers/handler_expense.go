package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/SscSPs/insightbud/internal/middleware"
	"github.com/gin-gonic/gin"
)

// expenseHandler handles HTTP requests related to expenses and categories.
type expenseHandler struct {
	expenseService  portssvc.ExpenseSvcFacade
	categoryService portssvc.CategorySvc
}

func newExpenseHandler(es portssvc.ExpenseSvcFacade, cs portssvc.CategorySvc) *expenseHandler {
	return &expenseHandler{expenseService: es, categoryService: cs}
}

// registerExpenseRoutes registers routes related to expenses and categories.
func registerExpenseRoutes(rg *gin.RouterGroup, es portssvc.ExpenseSvcFacade, cs portssvc.CategorySvc) {
	h := newExpenseHandler(es, cs)

	expenses := rg.Group("/expenses")
	{
		expenses.POST("", h.createExpense)
		expenses.GET("", h.listExpenses)
		expenses.POST("/recurring", h.markRecurring)
		expenses.GET("/:expenseID", h.getExpense)
		expenses.PUT("/:expenseID", h.updateExpense)
		expenses.DELETE("/:expenseID", h.deleteExpense)
	}
	rg.GET("/categories", h.listCategories)
}

// createExpense godoc
// @Summary Log an expense
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expense body dto.CreateExpenseRequest true "Expense details"
// @Success 201 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create expense"
// @Security BearerAuth
// @Router /expenses [post]
func (h *expenseHandler) createExpense(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := h.expenseService.CreateExpense(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create expense")
		return
	}
	c.JSON(http.StatusCreated, dto.ToExpenseResponse(expense))
}

// listExpenses godoc
// @Summary List expenses
// @Description Lists expenses newest first using token-based pagination
// @Tags expenses
// @Produce  json
// @Param   limit query int false "Page size (1-100)" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListExpensesResponse
// @Failure 400 {object} map[string]string "Invalid query or pagination token"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list expenses"
// @Security BearerAuth
// @Router /expenses [get]
func (h *expenseHandler) listExpenses(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var params dto.ListExpensesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.expenseService.ListExpenses(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, err, "Failed to list expenses")
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getExpense godoc
// @Summary Get an expense
// @Tags expenses
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to retrieve expense"
// @Security BearerAuth
// @Router /expenses/{expenseID} [get]
func (h *expenseHandler) getExpense(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	expense, err := h.expenseService.GetExpense(c.Request.Context(), userID, c.Param("expenseID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// updateExpense godoc
// @Summary Update an expense
// @Description Updates only the provided fields
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   expenseID path string true "Expense ID"
// @Param   expense body dto.UpdateExpenseRequest true "Fields to update"
// @Success 200 {object} dto.ExpenseResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to update expense"
// @Security BearerAuth
// @Router /expenses/{expenseID} [put]
func (h *expenseHandler) updateExpense(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.UpdateExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	expense, err := h.expenseService.UpdateExpense(c.Request.Context(), userID, c.Param("expenseID"), req)
	if err != nil {
		respondError(c, err, "Failed to update expense")
		return
	}
	c.JSON(http.StatusOK, dto.ToExpenseResponse(expense))
}

// deleteExpense godoc
// @Summary Delete an expense
// @Tags expenses
// @Param   expenseID path string true "Expense ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Expense not found"
// @Failure 500 {object} map[string]string "Failed to delete expense"
// @Security BearerAuth
// @Router /expenses/{expenseID} [delete]
func (h *expenseHandler) deleteExpense(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.expenseService.DeleteExpense(c.Request.Context(), userID, c.Param("expenseID")); err != nil {
		respondError(c, err, "Failed to delete expense")
		return
	}
	c.Status(http.StatusNoContent)
}

// markRecurring godoc
// @Summary Mark expenses as recurring
// @Description Flags the given expenses, typically after accepting AI suggestions
// @Tags expenses
// @Accept  json
// @Produce  json
// @Param   request body dto.MarkRecurringRequest true "Expense IDs"
// @Success 200 {object} dto.MarkRecurringResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to mark expenses recurring"
// @Security BearerAuth
// @Router /expenses/recurring [post]
func (h *expenseHandler) markRecurring(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.MarkRecurringRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	updated, err := h.expenseService.MarkRecurring(c.Request.Context(), userID, req.ExpenseIDs)
	if err != nil {
		respondError(c, err, "Failed to mark expenses recurring")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Expenses marked recurring", slog.Int64("updated", updated))
	c.JSON(http.StatusOK, dto.MarkRecurringResponse{Updated: updated})
}

// listCategories godoc
// @Summary List categories
// @Description Lists the user's expense categories, creating the defaults on first use
// @Tags categories
// @Produce  json
// @Success 200 {array} dto.CategoryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list categories"
// @Security BearerAuth
// @Router /categories [get]
func (h *expenseHandler) listCategories(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	categories, err := h.categoryService.ListCategories(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list categories")
		return
	}
	c.JSON(http.StatusOK, dto.ToCategoryResponses(categories))
}
