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

// billHandler exposes a read-only view of the bill ledger for collectors.
type billHandler struct {
	billLedgerService portssvc.BillLedgerSvcFacade
}

func newBillHandler(billLedgerService portssvc.BillLedgerSvcFacade) *billHandler {
	return &billHandler{
		billLedgerService: billLedgerService,
	}
}

func registerBillRoutes(rg *gin.RouterGroup, billLedgerService portssvc.BillLedgerSvcFacade) {
	h := newBillHandler(billLedgerService)

	bills := rg.Group("/collectors/:collectorID/bills")
	{
		bills.GET("/outstanding", h.listOutstandingBills)
	}
}

// listOutstandingBills godoc
// @Summary List outstanding bills for a collector
// @Description Proxies the bill ledger for the bills a collector can still take payments against.
// @Tags bills
// @Produce json
// @Param collectorID path string true "Collector ID"
// @Success 200 {object} dto.ListBillsResponse
// @Failure 502 {object} map[string]string "Bill ledger unavailable"
// @Router /collectors/{collectorID}/bills/outstanding [get]
func (h *billHandler) listOutstandingBills(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	collectorID := c.Param("collectorID")

	bills, err := h.billLedgerService.ListOutstandingBills(c.Request.Context(), collectorID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrUpstreamUnavailable):
			logger.Error("Bill ledger unavailable", slog.String("error", err.Error()))
			c.JSON(http.StatusBadGateway, gin.H{"error": "Bill ledger is unavailable, try again later"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to list outstanding bills", slog.String("error", err.Error()), slog.String("collector_id", collectorID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list outstanding bills"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToListBillsResponse(bills))
}
