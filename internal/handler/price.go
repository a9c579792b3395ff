package handler

import (
	"net/http"

	"tokendeck/internal/provider"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// Prices godoc
// @Summary      Get current prices for the tracked majors
// @Description  CoinGecko simple-price passthrough for bitcoin, ethereum, solana
// @Tags         prices
// @Produce      json
// @Success      200  {object}  service.PricesPayload
// @Router       /api/prices [get]
func (h *Handler) Prices(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.prices")
	defer span.End()

	payload, err := h.market.Prices(ctx)
	if err != nil {
		upstreamFail(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// Chart godoc
// @Summary      Get a one-day price series for a major coin
// @Tags         prices
// @Produce      json
// @Param        coin  query  string  true  "Coin id (bitcoin, ethereum, solana)"
// @Success      200  {object}  service.ChartPayload
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/chart [get]
func (h *Handler) Chart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.chart")
	defer span.End()

	coin := c.Query("coin")
	if !provider.ChartCoinAllowed(coin) {
		badRequest(c, "invalid coin: must be one of bitcoin, ethereum, solana")
		return
	}
	span.SetAttributes(attribute.String("coin", coin))

	payload, err := h.market.Chart(ctx, coin)
	if err != nil {
		upstreamFail(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
