package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/household_ledger/internal/core/ports/services"
	"github.com/SscSPs/household_ledger/internal/dto"
	"github.com/SscSPs/household_ledger/internal/middleware"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// exchangeRateHandler handles HTTP requests related to exchange rates.
type exchangeRateHandler struct {
	exchangeRateService portssvc.ExchangeRateSvcFacade
}

// newExchangeRateHandler creates a new exchangeRateHandler.
func newExchangeRateHandler(ers portssvc.ExchangeRateSvcFacade) *exchangeRateHandler {
	return &exchangeRateHandler{
		exchangeRateService: ers,
	}
}

// registerExchangeRateRoutes registers the rate history and conversion routes of a household.
func registerExchangeRateRoutes(household *gin.RouterGroup, exchangeRateService portssvc.ExchangeRateSvcFacade) {
	h := newExchangeRateHandler(exchangeRateService)

	exchangeRates := household.Group("/exchange-rates")
	{
		exchangeRates.GET("", h.listExchangeRates)
		exchangeRates.POST("", h.createExchangeRate)
		exchangeRates.GET("/convert", h.convertAmount)
	}
}

// createExchangeRate godoc
// @Summary Create a new exchange rate
// @Description Appends a quote to the household's rate history. Older quotes are kept.
// @Tags exchange rates
// @Accept  json
// @Produce  json
// @Param household_id path string true "Household ID"
// @Param   rate body dto.CreateExchangeRateRequest true "Exchange Rate details"
// @Success 201 {object} dto.ExchangeRateResponse
// @Failure 400 {object} ErrorResponse "Invalid input format or validation error"
// @Failure 404 {object} ErrorResponse "Household not found or not a member"
// @Failure 409 {object} ErrorResponse "Identical quote already exists"
// @Failure 500 {object} ErrorResponse "Failed to create exchange rate"
// @Security BearerAuth
// @Router /households/{household_id}/exchange-rates [post]
func (h *exchangeRateHandler) createExchangeRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateExchangeRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateExchangeRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := requireUserID(c, logger)
	if !ok {
		return
	}
	householdID := c.Param("household_id")

	logger = logger.With(slog.String("household_id", householdID))
	logger.Info("Received request to create exchange rate",
		slog.String("from", req.FromCurrencyCode),
		slog.String("to", req.ToCurrencyCode),
		slog.String("rate", req.Rate.String()),
		slog.String("rate_type", string(req.RateType)),
	)

	createdRate, err := h.exchangeRateService.CreateExchangeRate(c.Request.Context(), householdID, req, creatorUserID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to create exchange rate")
		return
	}

	c.JSON(http.StatusCreated, dto.ToExchangeRateResponse(createdRate))
}

// listExchangeRates godoc
// @Summary List exchange rates
// @Description Lists the household's active rates, newest first
// @Tags exchange rates
// @Produce  json
// @Param household_id path string true "Household ID"
// @Success 200 {object} dto.ListExchangeRatesResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Security BearerAuth
// @Router /households/{household_id}/exchange-rates [get]
func (h *exchangeRateHandler) listExchangeRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	rates, err := h.exchangeRateService.ListExchangeRates(c.Request.Context(), c.Param("household_id"), userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to list exchange rates")
		return
	}
	c.JSON(http.StatusOK, dto.ToListExchangeRatesResponse(rates))
}

// convertAmount godoc
// @Summary Convert an amount
// @Description Converts with the latest rate of the given type. Pairs without any quote convert one to one and report source "fallback".
// @Tags exchange rates
// @Produce  json
// @Param household_id path string true "Household ID"
// @Param amount query string true "Amount to convert"
// @Param from query string true "Source currency code"
// @Param to query string true "Target currency code"
// @Param rateType query string false "Rate type, defaults to manual"
// @Success 200 {object} dto.ConvertResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /households/{household_id}/exchange-rates/convert [get]
func (h *exchangeRateHandler) convertAmount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ConvertParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	amount, err := decimal.NewFromString(params.Amount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount must be a decimal number"})
		return
	}
	userID, ok := requireUserID(c, logger)
	if !ok {
		return
	}

	conv, err := h.exchangeRateService.ConvertAmount(c.Request.Context(), c.Param("household_id"), amount, params.From, params.To, params.RateType, userID)
	if err != nil {
		respondWithError(c, logger, err, "Failed to convert amount")
		return
	}

	c.JSON(http.StatusOK, dto.ConvertResponse{
		Amount:    conv.Amount,
		From:      conv.From,
		To:        conv.To,
		RateType:  conv.Quote.RateType,
		Rate:      conv.Quote.Rate,
		Source:    string(conv.Quote.Source),
		Converted: conv.Converted,
		Formatted: conv.Formatted,
	})
}
