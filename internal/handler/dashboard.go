package handler

import (
	"net/http"

	"estoquefacil/internal/service"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	svc service.DashboardService
}

func NewDashboardHandler(svc service.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Resumo godoc
// @Summary      Indicadores do dia: vendas, top itens e estoque crítico
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.ResumoResponse
// @Security     BearerAuth
// @Router       /v1/dashboard/resumo [get]
func (h *DashboardHandler) Resumo(c *gin.Context) {
	resp, err := h.svc.Resumo(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
