package handler

import (
	"errors"
	"fmt"
	"net/http"

	"estoquefacil/internal/apierror"
	"estoquefacil/internal/dto"
	"estoquefacil/internal/infra"
	"estoquefacil/internal/middleware"
	"estoquefacil/internal/repository"
	"estoquefacil/internal/service"

	"github.com/gin-gonic/gin"
)

type PedidoHandler struct {
	svc         service.PedidoService
	storagePath string
}

func NewPedidoHandler(svc service.PedidoService, storagePath string) *PedidoHandler {
	return &PedidoHandler{svc: svc, storagePath: storagePath}
}

// ─── Carrinho ────────────────────────────────────────────────────────────────

// AdicionarItem godoc
// @Summary      Adicionar produto ao carrinho
// @Tags         pedidos
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdicionarItemRequest  true  "Produto"
// @Success      200  {object}  dto.CarrinhoResponse
// @Failure      404  {object}  apierror.APIError
// @Security     BearerAuth
// @Router       /v1/pedidos/carrinho/itens [post]
func (h *PedidoHandler) AdicionarItem(c *gin.Context) {
	var req dto.AdicionarItemRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	resp, err := h.svc.AdicionarItem(c.Request.Context(), claims.UserID, req.ProdutoID)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProdutoNaoEncontrado):
			c.JSON(http.StatusNotFound, apierror.New("Produto não encontrado"))
		case errors.Is(err, service.ErrProdutoInativo):
			c.JSON(http.StatusUnprocessableEntity, apierror.New("Produto indisponível"))
		default:
			c.Error(err)
		}
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PedidoHandler) RemoverItem(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp := h.svc.RemoverItem(c.Request.Context(), claims.UserID, c.Param("produtoId"))
	c.JSON(http.StatusOK, resp)
}

func (h *PedidoHandler) AtualizarQuantidade(c *gin.Context) {
	var req dto.AtualizarQuantidadeRequest
	if !bindAndValidate(c, &req) {
		return
	}

	claims := middleware.GetClaims(c)
	resp := h.svc.AtualizarQuantidade(c.Request.Context(), claims.UserID, c.Param("produtoId"), req.Quantidade)
	c.JSON(http.StatusOK, resp)
}

func (h *PedidoHandler) VerCarrinho(c *gin.Context) {
	claims := middleware.GetClaims(c)
	c.JSON(http.StatusOK, h.svc.VerCarrinho(c.Request.Context(), claims.UserID))
}

// ─── Pedidos ─────────────────────────────────────────────────────────────────

// Enviar godoc
// @Summary      Enviar o carrinho como pedido para a cozinha
// @Tags         pedidos
// @Produce      json
// @Success      201  {object}  dto.PedidoResponse
// @Failure      400  {object}  apierror.APIError
// @Security     BearerAuth
// @Router       /v1/pedidos [post]
func (h *PedidoHandler) Enviar(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Enviar(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrCarrinhoVazio) {
			c.JSON(http.StatusBadRequest, apierror.New("Adicione itens antes de enviar"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *PedidoHandler) Listar(c *gin.Context) {
	var filter dto.PedidoFilter
	if !bindQueryAndValidate(c, &filter) {
		return
	}

	resp, err := h.svc.Listar(c.Request.Context(), filter)
	if err != nil {
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Recibo serves the PDF receipt for a submitted order. The file is generated
// on demand when the async worker has not produced it yet.
func (h *PedidoHandler) Recibo(c *gin.Context) {
	pedido, err := h.svc.BuscarPorID(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, repository.ErrPedidoNaoEncontrado) {
			c.JSON(http.StatusNotFound, apierror.New("Pedido não encontrado"))
			return
		}
		c.Error(err)
		return
	}

	path, err := infra.GenerateReciboPDF(pedido, h.storagePath)
	if err != nil {
		c.Error(err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=recibo_%06d.pdf", pedido.Numero))
	c.File(path)
}
