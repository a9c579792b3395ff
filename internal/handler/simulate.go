package handler

import (
	"net/http"

	"tokendeck/internal/amm"
	"tokendeck/internal/domain"

	"github.com/gin-gonic/gin"
)

// Simulate godoc
// @Summary      Simulate a constant-product swap
// @Tags         amm
// @Accept       json
// @Produce      json
// @Param        input  body  domain.SwapInput  true  "Pool reserves, input amount, and fee in basis points"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]interface{}
// @Router       /api/simulate [post]
func (h *Handler) Simulate(c *gin.Context) {
	_, span := h.tracer.Start(c.Request.Context(), "handler.simulate")
	defer span.End()

	var input domain.SwapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		badRequest(c, "invalid body: "+err.Error())
		return
	}

	result, err := amm.Simulate(input)
	if err != nil {
		badRequest(c, err.Error())
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"ok":     true,
		"input":  input,
		"result": result,
	})
}
