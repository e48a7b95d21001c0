package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/cargoplus/collections_backend/internal/apperrors"
	portssvc "github.com/cargoplus/collections_backend/internal/core/ports/services"
	"github.com/cargoplus/collections_backend/internal/dto"
	"github.com/cargoplus/collections_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles HTTP requests related to collected payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

// newPaymentHandler creates a new paymentHandler.
func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{
		paymentService: paymentService,
	}
}

// registerPaymentRoutes wires the payment endpoints under a collector scope.
func registerPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := rg.Group("/collectors/:collectorID/payments")
	{
		payments.POST("", h.recordPayment)
		payments.GET("/unclosed", h.listUnclosedPayments)
	}
}

// recordPayment godoc
// @Summary Record a collected payment
// @Description Records a payment taken by a collector against an outstanding bill. Refused with 409 while a prior day's cash closure is outstanding.
// @Tags payments
// @Accept json
// @Produce json
// @Param collectorID path string true "Collector ID"
// @Param payment body dto.RecordPaymentRequest true "Payment"
// @Success 201 {object} dto.PaymentResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 409 {object} map[string]string "Closure pending"
// @Failure 502 {object} map[string]string "Bill ledger unavailable"
// @Router /collectors/{collectorID}/payments [post]
func (h *paymentHandler) recordPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	collectorID := c.Param("collectorID")

	var req dto.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for recordPayment", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payment, err := h.paymentService.RecordPayment(c.Request.Context(), collectorID, req, creatorUserID)
	if err != nil {
		var pendingErr *apperrors.ClosurePendingError
		switch {
		case errors.As(err, &pendingErr):
			logger.Warn("Payment refused by sequencing guard", slog.String("collector_id", collectorID))
			c.JSON(http.StatusConflict, gin.H{
				"error":               "A prior cash closure is pending",
				"requiredClosureDate": pendingErr.RequiredClosureDate.Format(dto.ClosureDateFormat),
			})
		case errors.Is(err, apperrors.ErrUpstreamUnavailable):
			logger.Error("Bill ledger unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Bill ledger is unavailable, try again later"})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Bill not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error recording payment", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to record payment", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record payment"})
		}
		return
	}

	logger.Info("Payment recorded via API", slog.String("payment_id", payment.PaymentID))
	c.JSON(http.StatusCreated, dto.ToPaymentResponse(payment))
}

// listUnclosedPayments godoc
// @Summary List a collector's unclosed payments
// @Description Returns the payments available for a new cash closure, ordered by payment date.
// @Tags payments
// @Produce json
// @Param collectorID path string true "Collector ID"
// @Success 200 {object} dto.ListPaymentsResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /collectors/{collectorID}/payments/unclosed [get]
func (h *paymentHandler) listUnclosedPayments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	collectorID := c.Param("collectorID")

	payments, err := h.paymentService.ListUnclosedPayments(c.Request.Context(), collectorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list unclosed payments", slog.String("error", err.Error()), slog.String("collector_id", collectorID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list unclosed payments"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListPaymentsResponse(payments))
}
