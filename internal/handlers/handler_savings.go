package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/gin-gonic/gin"
)

// savingsHandler handles HTTP requests related to savings goals and contributions.
type savingsHandler struct {
	savingsService portssvc.SavingsSvcFacade
}

// registerSavingsRoutes registers routes related to savings goals.
func registerSavingsRoutes(rg *gin.RouterGroup, ss portssvc.SavingsSvcFacade) {
	h := &savingsHandler{savingsService: ss}

	goals := rg.Group("/goals")
	{
		goals.POST("", h.createGoal)
		goals.GET("", h.listGoals)
		goals.GET("/streak", h.streak)
		goals.GET("/drift", h.driftReport)
		goals.GET("/:goalID", h.getGoal)
		goals.PUT("/:goalID", h.updateGoal)
		goals.DELETE("/:goalID", h.deleteGoal)
		goals.POST("/:goalID/contributions", h.addContribution)
	}
	rg.GET("/contributions", h.listContributions)
}

// createGoal godoc
// @Summary Create a savings goal
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goal body dto.CreateGoalRequest true "Goal details"
// @Success 201 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create goal"
// @Security BearerAuth
// @Router /goals [post]
func (h *savingsHandler) createGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.CreateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	goal, err := h.savingsService.CreateGoal(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to create goal")
		return
	}
	c.JSON(http.StatusCreated, dto.ToGoalResponse(goal))
}

// listGoals godoc
// @Summary List savings goals
// @Description Goals split into active and accomplished
// @Tags goals
// @Produce  json
// @Success 200 {object} dto.ListGoalsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list goals"
// @Security BearerAuth
// @Router /goals [get]
func (h *savingsHandler) listGoals(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	goals, err := h.savingsService.ListGoals(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list goals")
		return
	}
	c.JSON(http.StatusOK, dto.ToListGoalsResponse(goals))
}

// getGoal godoc
// @Summary Get a savings goal
// @Tags goals
// @Produce  json
// @Param   goalID path string true "Goal ID"
// @Success 200 {object} dto.GoalResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to retrieve goal"
// @Security BearerAuth
// @Router /goals/{goalID} [get]
func (h *savingsHandler) getGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	goal, err := h.savingsService.GetGoal(c.Request.Context(), userID, c.Param("goalID"))
	if err != nil {
		respondError(c, err, "Failed to retrieve goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// updateGoal godoc
// @Summary Update a savings goal
// @Description Renames the goal or changes its target. The running total is not editable.
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goalID path string true "Goal ID"
// @Param   goal body dto.UpdateGoalRequest true "Fields to update"
// @Success 200 {object} dto.GoalResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to update goal"
// @Security BearerAuth
// @Router /goals/{goalID} [put]
func (h *savingsHandler) updateGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	goal, err := h.savingsService.UpdateGoal(c.Request.Context(), userID, c.Param("goalID"), req)
	if err != nil {
		respondError(c, err, "Failed to update goal")
		return
	}
	c.JSON(http.StatusOK, dto.ToGoalResponse(goal))
}

// deleteGoal godoc
// @Summary Delete a savings goal
// @Tags goals
// @Param   goalID path string true "Goal ID"
// @Success 204 "No Content"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to delete goal"
// @Security BearerAuth
// @Router /goals/{goalID} [delete]
func (h *savingsHandler) deleteGoal(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if err := h.savingsService.DeleteGoal(c.Request.Context(), userID, c.Param("goalID")); err != nil {
		respondError(c, err, "Failed to delete goal")
		return
	}
	c.Status(http.StatusNoContent)
}

// addContribution godoc
// @Summary Contribute to a goal
// @Description Records a manual contribution and increments the goal's running total
// @Tags goals
// @Accept  json
// @Produce  json
// @Param   goalID path string true "Goal ID"
// @Param   contribution body dto.AddContributionRequest true "Contribution amount"
// @Success 201 {object} dto.AddContributionResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 500 {object} map[string]string "Failed to add contribution"
// @Security BearerAuth
// @Router /goals/{goalID}/contributions [post]
func (h *savingsHandler) addContribution(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.AddContributionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.savingsService.AddContribution(c.Request.Context(), userID, c.Param("goalID"), req.Amount)
	if err != nil {
		respondError(c, err, "Failed to add contribution")
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// listContributions godoc
// @Summary List contributions
// @Description All contributions across goals, newest first
// @Tags goals
// @Produce  json
// @Success 200 {array} dto.ContributionResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list contributions"
// @Security BearerAuth
// @Router /contributions [get]
func (h *savingsHandler) listContributions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	contributions, err := h.savingsService.ListContributions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list contributions")
		return
	}
	c.JSON(http.StatusOK, dto.ToContributionResponses(contributions))
}

// streak godoc
// @Summary Savings streak
// @Description Consecutive months with contributions, ending at the current month, with a motivational message
// @Tags goals
// @Produce  json
// @Success 200 {object} domain.SavingsStreak
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute streak"
// @Security BearerAuth
// @Router /goals/streak [get]
func (h *savingsHandler) streak(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	streak, err := h.savingsService.Streak(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute streak")
		return
	}
	c.JSON(http.StatusOK, streak)
}

// driftReport godoc
// @Summary Goal drift report
// @Description Compares each goal's running total with the sum of its contributions
// @Tags goals
// @Produce  json
// @Success 200 {array} domain.GoalDrift
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute drift report"
// @Security BearerAuth
// @Router /goals/drift [get]
func (h *savingsHandler) driftReport(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	report, err := h.savingsService.DriftReport(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute drift report")
		return
	}
	c.JSON(http.StatusOK, report)
}
