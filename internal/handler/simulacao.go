package handler

import (
	"net/http"

	"estoquefacil/internal/service"

	"github.com/gin-gonic/gin"
)

type SimulacaoHandler struct {
	svc service.SimulacaoService
}

func NewSimulacaoHandler(svc service.SimulacaoService) *SimulacaoHandler {
	return &SimulacaoHandler{svc: svc}
}

// Comparativo compares the last 7 days of concluded sales against the 7
// days before that.
func (h *SimulacaoHandler) Comparativo(c *gin.Context) {
	resp, err := h.svc.Comparativo(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
