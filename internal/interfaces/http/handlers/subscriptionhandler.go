package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/replenish-inc/replenish/internal/application/subscription/usecases"
	"github.com/replenish-inc/replenish/internal/shared/errors"
	"github.com/replenish-inc/replenish/internal/shared/logger"
	"github.com/replenish-inc/replenish/internal/shared/utils"
)

type SubscriptionHandler struct {
	createSubscriptionUC *usecases.CreateSubscriptionUseCase
	getSubscriptionUC    *usecases.GetSubscriptionUseCase
	pauseSubscriptionUC  *usecases.PauseSubscriptionUseCase
	resumeSubscriptionUC *usecases.ResumeSubscriptionUseCase
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase
	logger               logger.Interface
}

func NewSubscriptionHandler(
	createSubscriptionUC *usecases.CreateSubscriptionUseCase,
	getSubscriptionUC *usecases.GetSubscriptionUseCase,
	pauseSubscriptionUC *usecases.PauseSubscriptionUseCase,
	resumeSubscriptionUC *usecases.ResumeSubscriptionUseCase,
	cancelSubscriptionUC *usecases.CancelSubscriptionUseCase,
) *SubscriptionHandler {
	return &SubscriptionHandler{
		createSubscriptionUC: createSubscriptionUC,
		getSubscriptionUC:    getSubscriptionUC,
		pauseSubscriptionUC:  pauseSubscriptionUC,
		resumeSubscriptionUC: resumeSubscriptionUC,
		cancelSubscriptionUC: cancelSubscriptionUC,
		logger:               logger.NewLogger(),
	}
}

type CreateSubscriptionRequest struct {
	CustomerID        uint       `json:"customer_id" binding:"required"`
	ProductID         uint       `json:"product_id" binding:"required"`
	PaymentMethodID   uint       `json:"payment_method_id" binding:"required"`
	ShippingAddressID uint       `json:"shipping_address_id" binding:"required"`
	Frequency         string     `json:"frequency" binding:"required,oneof=weekly biweekly monthly"`
	Quantity          int        `json:"quantity" binding:"required,gt=0"`
	DiscountPercent   float64    `json:"discount_percent" binding:"gte=0,lte=100"`
	StartDate         *time.Time `json:"start_date"`
}

type PauseSubscriptionRequest struct {
	PauseUntil time.Time `json:"pause_until" binding:"required"`
}

func (h *SubscriptionHandler) CreateSubscription(c *gin.Context) {
	var req CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create subscription", "error", err)
		utils.ErrorResponseWithError(c, errors.NewBadRequestError("invalid request body", err.Error()))
		return
	}

	cmd := usecases.CreateSubscriptionCommand{
		CustomerID:        req.CustomerID,
		ProductID:         req.ProductID,
		PaymentMethodID:   req.PaymentMethodID,
		ShippingAddressID: req.ShippingAddressID,
		Frequency:         req.Frequency,
		Quantity:          req.Quantity,
		DiscountPercent:   req.DiscountPercent,
	}
	if req.StartDate != nil {
		cmd.StartDate = *req.StartDate
	}

	result, err := h.createSubscriptionUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "subscription created")
}

func (h *SubscriptionHandler) GetSubscription(c *gin.Context) {
	sid := c.Param("sid")

	result, err := h.getSubscriptionUC.Execute(c.Request.Context(), sid)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

func (h *SubscriptionHandler) PauseSubscription(c *gin.Context) {
	sid := c.Param("sid")

	var req PauseSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for pause subscription", "error", err, "sid", sid)
		utils.ErrorResponseWithError(c, errors.NewValidationError("pause requires a pause-until date"))
		return
	}

	cmd := usecases.PauseSubscriptionCommand{
		SID:        sid,
		PauseUntil: req.PauseUntil,
	}

	if err := h.pauseSubscriptionUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription paused", nil)
}

func (h *SubscriptionHandler) ResumeSubscription(c *gin.Context) {
	sid := c.Param("sid")

	if err := h.resumeSubscriptionUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription resumed", nil)
}

func (h *SubscriptionHandler) CancelSubscription(c *gin.Context) {
	sid := c.Param("sid")

	if err := h.cancelSubscriptionUC.Execute(c.Request.Context(), sid); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "subscription cancelled", nil)
}
