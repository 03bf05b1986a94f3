package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/SscSPs/insightbud/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/ulule/limiter/v3"
)

// insightsHandler handles the AI-backed endpoints.
type insightsHandler struct {
	insightsService portssvc.InsightsSvc
}

// registerInsightsRoutes registers the AI routes. A nil limiter disables rate limiting.
func registerInsightsRoutes(rg *gin.RouterGroup, is portssvc.InsightsSvc, lim *limiter.Limiter) {
	h := &insightsHandler{insightsService: is}

	insights := rg.Group("/insights")
	if lim != nil {
		insights.Use(middleware.RateLimit(lim))
	}
	{
		insights.GET("/spending", h.spendingInsights)
		insights.GET("/recurring", h.recurringSuggestions)
		insights.POST("/chat", h.chat)
		insights.POST("/receipt", h.parseReceipt)
	}
}

// spendingInsights godoc
// @Summary Spending insights
// @Description AI analysis of the expense history. Returns a canned fallback with fallback=true when there is too little data or the model is unavailable.
// @Tags insights
// @Produce  json
// @Success 200 {object} domain.SpendingInsights
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to generate insights"
// @Security BearerAuth
// @Router /insights/spending [get]
func (h *insightsHandler) spendingInsights(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	insights, err := h.insightsService.SpendingInsights(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to generate insights")
		return
	}
	c.JSON(http.StatusOK, insights)
}

// recurringSuggestions godoc
// @Summary Recurring expense suggestions
// @Description Expense IDs the model thinks are recurring. Empty when unsure.
// @Tags insights
// @Produce  json
// @Success 200 {object} dto.RecurringSuggestionsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to suggest recurring expenses"
// @Security BearerAuth
// @Router /insights/recurring [get]
func (h *insightsHandler) recurringSuggestions(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	ids, err := h.insightsService.RecurringSuggestions(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to suggest recurring expenses")
		return
	}
	if ids == nil {
		ids = []string{}
	}
	c.JSON(http.StatusOK, dto.RecurringSuggestionsResponse{ExpenseIDs: ids})
}

// chat godoc
// @Summary Ask the finance assistant
// @Tags insights
// @Accept  json
// @Produce  json
// @Param   request body dto.ChatRequest true "Question and history"
// @Success 200 {object} dto.ChatResponse
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Failed to answer"
// @Security BearerAuth
// @Router /insights/chat [post]
func (h *insightsHandler) chat(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	answer, err := h.insightsService.Chat(c.Request.Context(), userID, req.Query, req.History)
	if err != nil {
		respondError(c, err, "Failed to answer")
		return
	}
	c.JSON(http.StatusOK, dto.ChatResponse{Answer: answer})
}

// parseReceipt godoc
// @Summary Parse a receipt photo
// @Description Extracts title, amount and date from a base64 image data URI
// @Tags insights
// @Accept  json
// @Produce  json
// @Param   request body dto.ParseReceiptRequest true "Receipt image"
// @Success 200 {object} domain.ParsedReceipt
// @Failure 400 {object} map[string]string "Invalid input format"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 503 {object} map[string]string "Receipt could not be parsed"
// @Security BearerAuth
// @Router /insights/receipt [post]
func (h *insightsHandler) parseReceipt(c *gin.Context) {
	if _, ok := requireUser(c); !ok {
		return
	}
	var req dto.ParseReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	receipt, err := h.insightsService.ParseReceipt(c.Request.Context(), req.PhotoDataURI)
	if err != nil {
		respondError(c, err, "Failed to parse receipt")
		return
	}
	c.JSON(http.StatusOK, receipt)
}
