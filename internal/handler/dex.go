package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// Dex godoc
// @Summary      Look up a DEX pair by symbol or contract address
// @Tags         dex
// @Produce      json
// @Param        q  query  string  true  "Token symbol or contract address"
// @Success      200  {object}  service.PairPayload
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/dex [get]
func (h *Handler) Dex(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.dex")
	defer span.End()

	q := c.Query("q")
	if q == "" {
		badRequest(c, "missing q")
		return
	}
	span.SetAttributes(attribute.String("query", q))

	payload, err := h.market.Pair(ctx, q)
	if err != nil {
		upstreamFail(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// TokenChart godoc
// @Summary      Get the normalized close-price series for a DEX pair
// @Description  Resolves the pair on Dexscreener, maps the chain to a GeckoTerminal network, and fetches hourly candles
// @Tags         dex
// @Produce      json
// @Param        q  query  string  true  "Token symbol or contract address"
// @Success      200  {object}  service.TokenChartPayload
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/token_chart [get]
func (h *Handler) TokenChart(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.token-chart")
	defer span.End()

	q := c.Query("q")
	if q == "" {
		badRequest(c, "missing q")
		return
	}
	span.SetAttributes(attribute.String("query", q))

	payload, err := h.market.TokenChart(ctx, q)
	if err != nil {
		upstreamFail(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
