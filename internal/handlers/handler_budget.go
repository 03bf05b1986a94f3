package handlers

import (
	"fmt"
	"net/http"

	"github.com/SscSPs/insightbud/internal/core/domain"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/SscSPs/insightbud/internal/utils"
	"github.com/gin-gonic/gin"
)

// budgetHandler handles HTTP requests related to the monthly budget.
type budgetHandler struct {
	budgetService portssvc.BudgetSvc
}

// registerBudgetRoutes registers routes related to the budget.
func registerBudgetRoutes(rg *gin.RouterGroup, bs portssvc.BudgetSvc) {
	h := &budgetHandler{budgetService: bs}

	budget := rg.Group("/budget")
	{
		budget.GET("", h.getBudget)
		budget.PUT("", h.setBudget)
		budget.GET("/status", h.budgetStatus)
	}
}

// getBudget godoc
// @Summary Get the monthly budget
// @Tags budget
// @Produce  json
// @Success 200 {object} dto.BudgetResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No budget set"
// @Failure 500 {object} map[string]string "Failed to retrieve budget"
// @Security BearerAuth
// @Router /budget [get]
func (h *budgetHandler) getBudget(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	budget, err := h.budgetService.GetBudget(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to retrieve budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// setBudget godoc
// @Summary Set the monthly budget
// @Description Creates the budget or updates its amount. The creation date is kept from the first call.
// @Tags budget
// @Accept  json
// @Produce  json
// @Param   budget body dto.SetBudgetRequest true "Budget amount"
// @Success 200 {object} dto.BudgetResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to set budget"
// @Security BearerAuth
// @Router /budget [put]
func (h *budgetHandler) setBudget(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.SetBudgetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	budget, err := h.budgetService.SetBudget(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, err, "Failed to set budget")
		return
	}
	c.JSON(http.StatusOK, dto.ToBudgetResponse(budget))
}

// budgetStatus godoc
// @Summary Current month budget status
// @Description Spend so far this month, what is left and the top spending category
// @Tags budget
// @Produce  json
// @Success 200 {object} dto.BudgetStatusResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute budget status"
// @Security BearerAuth
// @Router /budget/status [get]
func (h *budgetHandler) budgetStatus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	status, err := h.budgetService.BudgetStatus(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute budget status")
		return
	}
	c.JSON(http.StatusOK, toBudgetStatusResponse(status))
}

func toBudgetStatusResponse(s *domain.BudgetStatus) dto.BudgetStatusResponse {
	return dto.BudgetStatusResponse{
		Month:            s.Month.String(),
		BudgetAmount:     s.BudgetAmount,
		SpentThisMonth:   s.SpentThisMonth,
		Remaining:        s.Remaining,
		Summary:          budgetSummary(s),
		TopCategoryName:  s.TopCategoryName,
		TopCategoryTotal: s.TopCategoryTotal,
	}
}

// budgetSummary renders the status as one sentence, e.g. "Rs.4,500.00 of Rs.20,000.00 spent, Rs.15,500.00 left".
func budgetSummary(s *domain.BudgetStatus) string {
	if !s.BudgetAmount.IsPositive() {
		return fmt.Sprintf("%s spent this month. Set a budget to track what is left.", utils.FormatAmount(s.SpentThisMonth))
	}
	if s.Remaining.IsNegative() {
		return fmt.Sprintf("%s of %s spent, %s over budget",
			utils.FormatAmount(s.SpentThisMonth), utils.FormatAmount(s.BudgetAmount), utils.FormatAmount(s.Remaining.Neg()))
	}
	return fmt.Sprintf("%s of %s spent, %s left",
		utils.FormatAmount(s.SpentThisMonth), utils.FormatAmount(s.BudgetAmount), utils.FormatAmount(s.Remaining))
}
