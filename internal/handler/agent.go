package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// AgentAnalyze godoc
// @Summary      Get a trade/risk verdict for a DEX pair
// @Description  Uses the hosted model when configured, otherwise a deterministic liquidity/volume heuristic; the response reports which mode produced the verdict
// @Tags         agent
// @Produce      json
// @Param        q  query  string  true  "Token symbol or contract address"
// @Success      200  {object}  service.AgentPayload
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/agent/analyze [get]
func (h *Handler) AgentAnalyze(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.agent-analyze")
	defer span.End()

	q := c.Query("q")
	if q == "" {
		badRequest(c, "missing q")
		return
	}
	span.SetAttributes(attribute.String("query", q))

	payload, err := h.market.Analyze(ctx, q)
	if err != nil {
		upstreamFail(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
