package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/SscSPs/insightbud/internal/apperrors"
	"github.com/SscSPs/insightbud/internal/core/budgeting"
	"github.com/SscSPs/insightbud/internal/core/domain"
	portssvc "github.com/SscSPs/insightbud/internal/core/ports/services"
	"github.com/SscSPs/insightbud/internal/dto"
	"github.com/SscSPs/insightbud/internal/middleware"
	"github.com/gin-gonic/gin"
)

// surplusHeartbeat keeps idle surplus streams open through proxies.
const surplusHeartbeat = 25 * time.Second

// rolloverHandler handles HTTP requests related to budget rollover.
type rolloverHandler struct {
	rolloverService portssvc.RolloverSvcFacade
	heartbeat       time.Duration
}

// registerRolloverRoutes registers routes related to budget rollover.
func registerRolloverRoutes(rg *gin.RouterGroup, rs portssvc.RolloverSvcFacade) {
	h := &rolloverHandler{rolloverService: rs, heartbeat: surplusHeartbeat}

	rollover := rg.Group("/rollover")
	{
		rollover.GET("/surplus", h.surplus)
		rollover.GET("/surplus/stream", h.surplusStream)
		rollover.GET("/months", h.monthlyReport)
		rollover.GET("/history", h.listRollovers)
		rollover.POST("/transfers", h.transfer)
	}
}

func toSurplusResponses(months []budgeting.SurplusMonth) []dto.SurplusMonthResponse {
	res := make([]dto.SurplusMonthResponse, len(months))
	for i, m := range months {
		res[i] = dto.SurplusMonthResponse{Month: m.Month.String(), Surplus: m.Surplus}
	}
	return res
}

func toMonthSummaryResponses(report []domain.MonthReport) []dto.MonthSummaryResponse {
	res := make([]dto.MonthSummaryResponse, len(report))
	for i, m := range report {
		res[i] = dto.MonthSummaryResponse{
			Month:       m.Month.String(),
			TotalSpent:  m.TotalSpent,
			Surplus:     m.Surplus,
			Transferred: m.Transferred,
		}
	}
	return res
}

// surplus godoc
// @Summary Remaining surplus
// @Description Past months that still have untransferred surplus, newest first
// @Tags rollover
// @Produce  json
// @Success 200 {array} dto.SurplusMonthResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to compute surplus"
// @Security BearerAuth
// @Router /rollover/surplus [get]
func (h *rolloverHandler) surplus(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	months, err := h.rolloverService.Surplus(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to compute surplus")
		return
	}
	c.JSON(http.StatusOK, toSurplusResponses(months))
}

// surplusStream godoc
// @Summary Stream remaining surplus
// @Description Server-sent events. Sends "loading", then a "surplus" event with the list and another one after every ledger change. A "ping" event is sent while idle.
// @Tags rollover
// @Produce  text/event-stream
// @Success 200 {array} dto.SurplusMonthResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /rollover/surplus/stream [get]
func (h *rolloverHandler) surplusStream(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)
	updates := h.rolloverService.Watch(ctx, userID)

	c.Header("Cache-Control", "no-cache")
	c.Header("Connection", "keep-alive")
	c.Header("X-Accel-Buffering", "no")
	c.Status(http.StatusOK)

	c.SSEvent("loading", gin.H{"loading": true})
	c.Writer.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	loaded := false

	for {
		select {
		case <-ctx.Done():
			logger.Debug("Surplus stream closed by client")
			return
		case <-ticker.C:
			c.SSEvent("ping", gin.H{"time": time.Now().UTC()})
			c.Writer.Flush()
		case update, ok := <-updates:
			if !ok {
				logger.Debug("Surplus stream ended")
				return
			}
			switch {
			case update.Err == nil:
				loaded = true
				c.SSEvent("surplus", toSurplusResponses(update.Months))
			case !loaded && errors.Is(update.Err, apperrors.ErrDataUnavailable):
				logger.Warn("Surplus not available yet", slog.String("error", update.Err.Error()))
				c.SSEvent("loading", gin.H{"loading": true})
			default:
				logger.Error("Failed to recompute surplus", slog.String("error", update.Err.Error()))
				c.SSEvent("error", gin.H{"error": "Failed to compute surplus"})
			}
			c.Writer.Flush()
		}
	}
}

// monthlyReport godoc
// @Summary Monthly report
// @Description Every closed month in ascending order with spend, surplus and amount transferred
// @Tags rollover
// @Produce  json
// @Success 200 {array} dto.MonthSummaryResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to build monthly report"
// @Security BearerAuth
// @Router /rollover/months [get]
func (h *rolloverHandler) monthlyReport(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	report, err := h.rolloverService.MonthlyReport(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to build monthly report")
		return
	}
	c.JSON(http.StatusOK, toMonthSummaryResponses(report))
}

// listRollovers godoc
// @Summary Rollover history
// @Tags rollover
// @Produce  json
// @Success 200 {array} dto.RolloverResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to list rollovers"
// @Security BearerAuth
// @Router /rollover/history [get]
func (h *rolloverHandler) listRollovers(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	rollovers, err := h.rolloverService.ListRollovers(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err, "Failed to list rollovers")
		return
	}
	c.JSON(http.StatusOK, dto.ToRolloverResponses(rollovers))
}

// transfer godoc
// @Summary Transfer surplus to a goal
// @Description Moves as much of a past month's remaining surplus as the goal still needs.
// @Description With wait=false the response is sent before the ledger writes finish and status is "pending".
// @Tags rollover
// @Accept  json
// @Produce  json
// @Param   transfer body dto.TransferRequest true "Month and goal"
// @Success 200 {object} dto.TransferResponse
// @Failure 400 {object} map[string]string "Invalid input format or validation error"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Goal not found"
// @Failure 422 {object} map[string]string "No surplus left or goal already reached"
// @Failure 500 {object} map[string]string "Failed to transfer surplus"
// @Security BearerAuth
// @Router /rollover/transfers [post]
func (h *rolloverHandler) transfer(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	resp, err := h.rolloverService.Transfer(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "Failed to transfer surplus")
		return
	}
	c.JSON(http.StatusOK, resp)
}
