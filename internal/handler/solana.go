package handler

import (
	"net/http"

	"tokendeck/internal/provider"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// SolBalance godoc
// @Summary      Get SOL balance for a wallet
// @Tags         solana
// @Produce      json
// @Param        pubkey  query  string  true  "Base58 wallet public key"
// @Success      200  {object}  service.BalancePayload
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/sol/balance [get]
func (h *Handler) SolBalance(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.sol-balance")
	defer span.End()

	pubkey := c.Query("pubkey")
	if pubkey == "" {
		badRequest(c, "missing pubkey")
		return
	}
	if !provider.ValidPubkey(pubkey) {
		badRequest(c, "invalid pubkey")
		return
	}
	span.SetAttributes(attribute.String("pubkey", pubkey))

	payload, err := h.solana.Balance(ctx, pubkey)
	if err != nil {
		upstreamFail(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}

// SolTransactions godoc
// @Summary      Get recent transaction signatures for a wallet
// @Tags         solana
// @Produce      json
// @Param        pubkey  query  string  true  "Base58 wallet public key"
// @Success      200  {object}  service.TxPayload
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/sol/tx [get]
func (h *Handler) SolTransactions(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.sol-transactions")
	defer span.End()

	pubkey := c.Query("pubkey")
	if pubkey == "" {
		badRequest(c, "missing pubkey")
		return
	}
	if !provider.ValidPubkey(pubkey) {
		badRequest(c, "invalid pubkey")
		return
	}
	span.SetAttributes(attribute.String("pubkey", pubkey))

	payload, err := h.solana.Signatures(ctx, pubkey)
	if err != nil {
		upstreamFail(c, err)
		return
	}
	c.JSON(http.StatusOK, payload)
}
