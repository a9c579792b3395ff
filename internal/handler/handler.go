package handler

import (
	"net/http"

	"tokendeck/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer trace.Tracer
	market *service.MarketService
	solana *service.SolanaService
}

func New(tracer trace.Tracer, market *service.MarketService, solana *service.SolanaService) *Handler {
	return &Handler{
		tracer: tracer,
		market: market,
		solana: solana,
	}
}

func (h *Handler) RegisterRoutes(r *gin.Engine) {
	r.GET("/api/health", h.Health)
	r.GET("/api/sol/balance", h.SolBalance)
	r.GET("/api/sol/tx", h.SolTransactions)
	r.GET("/api/prices", h.Prices)
	r.GET("/api/chart", h.Chart)
	r.POST("/api/simulate", h.Simulate)
	r.GET("/api/dex", h.Dex)
	r.GET("/api/token_chart", h.TokenChart)
	r.GET("/api/agent/analyze", h.AgentAnalyze)
}

// badRequest renders an input-validation failure.
func badRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"ok": false, "error": msg})
}

// upstreamFail renders an upstream or not-found failure. These are served
// with HTTP 200 so the UI can show inline error states instead of a browser
// error page; `ok:false` carries the signal.
func upstreamFail(c *gin.Context, err error) {
	c.JSON(http.StatusOK, gin.H{"ok": false, "error": err.Error()})
}
