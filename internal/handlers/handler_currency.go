package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
)

// currencyHandler handles HTTP requests related to currencies.
type currencyHandler struct {
	currencyService portssvc.CurrencySvcFacade
}

// newCurrencyHandler creates a new currencyHandler.
func newCurrencyHandler(cs portssvc.CurrencySvcFacade) *currencyHandler {
	return &currencyHandler{
		currencyService: cs,
	}
}

// registerCurrencyRoutes registers the reference currency list.
func registerCurrencyRoutes(rg *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)
	rg.GET("/currencies", h.listCurrencies)
}

// registerHouseholdCurrencyRoutes registers the currencies enabled for one household.
func registerHouseholdCurrencyRoutes(household *gin.RouterGroup, currencyService portssvc.CurrencySvcFacade) {
	h := newCurrencyHandler(currencyService)

	currencies := household.Group("/currencies")
	{
		currencies.GET("", h.listHouseholdCurrencies)
		currencies.POST("", h.addHouseholdCurrency)
		currencies.PUT("/:currency_id/primary", h.setPrimaryCurrency)
	}
}

// listCurrencies godoc
// @Summary List currencies
// @Description Retrieves all active currencies
// @Tags currencies
// @Produce  json
// @Success 200 {array} dto.CurrencyResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /currencies [get]
func (h *currencyHandler) listCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	currencies, err := h.currencyService.ListCurrencies(c.Request.Context())
	if err != nil {
		respondWithError(c, logger, err, "Failed to list currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListCurrencyResponse(currencies))
}

// listHouseholdCurrencies godoc
// @Summary List household currencies
// @Description Retrieves the currencies enabled for a household in display order
// @Tags currencies
// @Produce  json
// @Param household_id path string true "Household ID"
// @Success 200 {array} dto.HouseholdCurrencyResponse
// @Failure 404 {object} ErrorResponse "Household not found or not a member"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /households/{household_id}/currencies [get]
func (h *currencyHandler) listHouseholdCurrencies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	householdID := c.Param("household_id")

	hcs, err := h.currencyService.ListHouseholdCurrencies(c.Request.Context(), householdID, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list household currencies")
		return
	}
	c.JSON(http.StatusOK, dto.ToListHouseholdCurrencyResponse(hcs))
}

// addHouseholdCurrency godoc
// @Summary Enable a currency for a household
// @Description Adds an active currency to the household. Making it primary requires the owner role.
// @Tags currencies
// @Accept  json
// @Produce  json
// @Param household_id path string true "Household ID"
// @Param   currency body dto.AddHouseholdCurrencyRequest true "Currency to enable"
// @Success 201 {object} dto.HouseholdCurrencyResponse
// @Failure 400 {object} ErrorResponse
// @Failure 403 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Currency already enabled"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /households/{household_id}/currencies [post]
func (h *currencyHandler) addHouseholdCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.AddHouseholdCurrencyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddHouseholdCurrency", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	householdID := c.Param("household_id")

	hc, err := h.currencyService.AddHouseholdCurrency(c.Request.Context(), householdID, req, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to add household currency")
		return
	}
	c.JSON(http.StatusCreated, dto.ToHouseholdCurrencyResponse(hc))
}

// setPrimaryCurrency godoc
// @Summary Set the primary currency
// @Description Makes an enabled currency the household's primary currency. Owner only.
// @Tags currencies
// @Param household_id path string true "Household ID"
// @Param currency_id path string true "Currency code"
// @Success 204
// @Failure 403 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse "Currency not enabled"
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /households/{household_id}/currencies/{currency_id}/primary [put]
func (h *currencyHandler) setPrimaryCurrency(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	householdID := c.Param("household_id")
	code := strings.ToUpper(c.Param("currency_id"))

	if err := h.currencyService.SetPrimaryCurrency(c.Request.Context(), householdID, code, userID); err != nil {
		respondWithError(c, logger, err, "Failed to set primary currency")
		return
	}
	c.Status(http.StatusNoContent)
}
