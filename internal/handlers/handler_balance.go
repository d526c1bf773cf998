package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

type balanceHandler struct {
	balanceService portssvc.BalanceSvc
}

func registerBalanceRoutes(household *gin.RouterGroup, balanceService portssvc.BalanceSvc) {
	h := &balanceHandler{balanceService: balanceService}
	household.GET("/balances", h.getBalances)
}

// getBalances godoc
// @Summary Balance cards
// @Description Totals per transaction type in the primary currency and in USD, plus the net balance
// @Tags balances
// @Produce  json
// @Param household_id path string true "Household ID"
// @Success 200 {object} dto.BalanceResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /households/{household_id}/balances [get]
func (h *balanceHandler) getBalances(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	summary, err := h.balanceService.GetBalanceSummary(c.Request.Context(), c.Param("household_id"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to compute balances")
		return
	}
	c.JSON(http.StatusOK, dto.ToBalanceResponse(summary))
}
