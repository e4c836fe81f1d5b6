package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/replenish-inc/replenish/internal/application/reminder/usecases"
	"github.com/replenish-inc/replenish/internal/shared/biztime"
	"github.com/replenish-inc/replenish/internal/shared/errors"
	"github.com/replenish-inc/replenish/internal/shared/logger"
	"github.com/replenish-inc/replenish/internal/shared/utils"
)

// ConfirmationHandler serves the public confirmation surface: the landing
// page view and the response endpoint the email links land on.
type ConfirmationHandler struct {
	getConfirmationUC     *usecases.GetConfirmationUseCase
	processConfirmationUC *usecases.ProcessConfirmationUseCase
	getStatisticsUC       *usecases.GetStatisticsUseCase
	logger                logger.Interface
}

func NewConfirmationHandler(
	getConfirmationUC *usecases.GetConfirmationUseCase,
	processConfirmationUC *usecases.ProcessConfirmationUseCase,
	getStatisticsUC *usecases.GetStatisticsUseCase,
) *ConfirmationHandler {
	return &ConfirmationHandler{
		getConfirmationUC:     getConfirmationUC,
		processConfirmationUC: processConfirmationUC,
		getStatisticsUC:       getStatisticsUC,
		logger:                logger.NewLogger(),
	}
}

// RespondRequest carries the customer's decision. PauseUntil is only
// meaningful when action is "pause".
type RespondRequest struct {
	Token      string     `json:"token" binding:"required"`
	Action     string     `json:"action" binding:"required"`
	PauseUntil *time.Time `json:"pause_until"`
}

// GetConfirmation renders the landing-page view for a token.
func (h *ConfirmationHandler) GetConfirmation(c *gin.Context) {
	token := c.Param("token")
	if token == "" {
		utils.ErrorResponseWithError(c, errors.NewValidationError("token is required"))
		return
	}

	view, err := h.getConfirmationUC.Execute(c.Request.Context(), token)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", view)
}

// Respond applies the customer's decision for a token.
func (h *ConfirmationHandler) Respond(c *gin.Context) {
	var req RespondRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for confirmation response", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.ProcessConfirmationCommand{
		Token:      req.Token,
		Action:     req.Action,
		PauseUntil: req.PauseUntil,
	}

	result, err := h.processConfirmationUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "response recorded", result)
}

// GetStatistics reports reminder workflow counters.
func (h *ConfirmationHandler) GetStatistics(c *gin.Context) {
	stats, err := h.getStatisticsUC.Execute(c.Request.Context(), biztime.NowUTC())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", stats)
}
