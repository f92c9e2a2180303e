package handler

import (
	"context"
	"errors"
	"net/http"

	"estoquefacil/internal/apierror"
	"estoquefacil/internal/dto"
	"estoquefacil/internal/repository"
	"estoquefacil/internal/service"

	"github.com/gin-gonic/gin"
)

type CozinhaHandler struct {
	svc service.CozinhaService
}

func NewCozinhaHandler(svc service.CozinhaService) *CozinhaHandler {
	return &CozinhaHandler{svc: svc}
}

// ListarPendentes godoc
// @Summary      Pedidos aguardando preparo, mais antigos primeiro
// @Tags         cozinha
// @Produce      json
// @Success      200  {object}  dto.PedidoListResponse
// @Security     BearerAuth
// @Router       /v1/cozinha/pedidos [get]
func (h *CozinhaHandler) ListarPendentes(c *gin.Context) {
	resp, err := h.svc.ListarPendentes(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CozinhaHandler) Concluir(c *gin.Context) {
	h.transicionar(c, h.svc.Concluir)
}

func (h *CozinhaHandler) Cancelar(c *gin.Context) {
	h.transicionar(c, h.svc.Cancelar)
}

func (h *CozinhaHandler) transicionar(c *gin.Context, fn func(ctx context.Context, id string) (*dto.PedidoResponse, error)) {
	resp, err := fn(c.Request.Context(), c.Param("id"))
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrPedidoNaoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New("Pedido não encontrado"))
		case errors.Is(err, service.ErrPedidoTerminal):
			c.JSON(http.StatusConflict, apierror.New("Pedido já concluído ou cancelado"))
		default:
			c.Error(err)
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}
