package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/cargoplus/collections_backend/internal/apperrors"
	portssvc "github.com/cargoplus/collections_backend/internal/core/ports/services"
	"github.com/cargoplus/collections_backend/internal/dto"
	"github.com/cargoplus/collections_backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// closureHandler handles HTTP requests related to cash closures and the
// sequencing guard.
type closureHandler struct {
	closureService portssvc.ClosureSvcFacade
	guardService   portssvc.GuardSvcFacade
}

func newClosureHandler(closureService portssvc.ClosureSvcFacade, guardService portssvc.GuardSvcFacade) *closureHandler {
	return &closureHandler{
		closureService: closureService,
		guardService:   guardService,
	}
}

// registerClosureRoutes wires the closure and guard endpoints under a collector scope.
func registerClosureRoutes(rg *gin.RouterGroup, closureService portssvc.ClosureSvcFacade, guardService portssvc.GuardSvcFacade) {
	h := newClosureHandler(closureService, guardService)

	collector := rg.Group("/collectors/:collectorID")
	{
		collector.POST("/closures", h.createClosure)
		collector.GET("/closures", h.listClosures)
		collector.GET("/closures/:closureID", h.getClosure)
		collector.GET("/guard", h.getGuardStatus)
	}
}

// createClosure godoc
// @Summary Create a cash closure
// @Description Seals a set of unclosed payments into a cash closure for one working date. Totals are recomputed server-side; client-sent totals are ignored.
// @Tags closures
// @Accept json
// @Produce json
// @Param collectorID path string true "Collector ID"
// @Param closure body dto.CreateClosureRequest true "Closure"
// @Success 201 {object} dto.ClosureResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Failure 404 {object} map[string]string "Payment not found"
// @Failure 409 {object} map[string]string "Payment already closed"
// @Router /collectors/{collectorID}/closures [post]
func (h *closureHandler) createClosure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	collectorID := c.Param("collectorID")

	var req dto.CreateClosureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for createClosure", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	closure, err := h.closureService.CreateClosure(c.Request.Context(), collectorID, req, creatorUserID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrPaymentAlreadyClosed):
			logger.Warn("Closure rejected, payment already closed", slog.String("collector_id", collectorID))
			c.JSON(http.StatusConflict, gin.H{"error": "One or more payments already belong to a closure"})
		case errors.Is(err, apperrors.ErrMissingCashCount):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Cash was collected but no denomination count was submitted"})
		case errors.Is(err, apperrors.ErrUnknownDenomination), errors.Is(err, apperrors.ErrInvalidQuantity):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "One or more payments were not found"})
		case errors.Is(err, apperrors.ErrValidation):
			logger.Warn("Validation error creating closure", slog.String("error", err.Error()))
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create closure", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create closure"})
		}
		return
	}

	logger.Info("Cash closure created via API", slog.String("closure_id", closure.ClosureID))
	c.JSON(http.StatusCreated, dto.ToClosureResponse(closure))
}

// listClosures godoc
// @Summary List a collector's cash closures
// @Description Returns closures newest first, paginated with an opaque token.
// @Tags closures
// @Produce json
// @Param collectorID path string true "Collector ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Pagination token from a previous page"
// @Success 200 {object} dto.ListClosuresResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /collectors/{collectorID}/closures [get]
func (h *closureHandler) listClosures(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	collectorID := c.Param("collectorID")

	limit := 0
	if limitStr := c.Query("limit"); limitStr != "" {
		parsed, err := strconv.Atoi(limitStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit parameter"})
			return
		}
		limit = parsed
	}

	closures, nextToken, err := h.closureService.ListClosures(c.Request.Context(), collectorID, limit, c.Query("nextToken"))
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to list closures", slog.String("error", err.Error()), slog.String("collector_id", collectorID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list closures"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListClosuresResponse(closures, nextToken))
}

// getClosure godoc
// @Summary Get a cash closure
// @Description Returns a single closure with its recomputed totals and sealed payment IDs.
// @Tags closures
// @Produce json
// @Param collectorID path string true "Collector ID"
// @Param closureID path string true "Closure ID"
// @Success 200 {object} dto.ClosureResponse
// @Failure 404 {object} map[string]string "Closure not found"
// @Router /collectors/{collectorID}/closures/{closureID} [get]
func (h *closureHandler) getClosure(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	collectorID := c.Param("collectorID")
	closureID := c.Param("closureID")

	closure, err := h.closureService.GetClosureByID(c.Request.Context(), collectorID, closureID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Closure not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to get closure", slog.String("error", err.Error()), slog.String("closure_id", closureID))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to get closure"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToClosureResponse(closure))
}

// getGuardStatus godoc
// @Summary Check the sequencing guard
// @Description Reports whether the collector may record new payments, and if not, the working date whose closure must be created first.
// @Tags closures
// @Produce json
// @Param collectorID path string true "Collector ID"
// @Success 200 {object} dto.GuardStatusResponse
// @Failure 400 {object} map[string]string "Invalid request"
// @Router /collectors/{collectorID}/guard [get]
func (h *closureHandler) getGuardStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	collectorID := c.Param("collectorID")

	status, err := h.guardService.CheckGuard(c.Request.Context(), collectorID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to check guard", slog.String("error", err.Error()), slog.String("collector_id", collectorID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check guard status"})
		return
	}

	c.JSON(http.StatusOK, dto.ToGuardStatusResponse(status))
}
