package handler

import (
	"net/http"

	"estoquefacil/internal/dto"
	"estoquefacil/internal/repository"

	"github.com/gin-gonic/gin"
)

type CatalogoHandler struct {
	repo repository.CatalogoRepository
}

func NewCatalogoHandler(repo repository.CatalogoRepository) *CatalogoHandler {
	return &CatalogoHandler{repo: repo}
}

// Listar godoc
// @Summary      Produtos vendáveis do cardápio
// @Tags         catalogo
// @Produce      json
// @Success      200  {array}  dto.ProdutoResponse
// @Security     BearerAuth
// @Router       /v1/catalogo [get]
func (h *CatalogoHandler) Listar(c *gin.Context) {
	produtos, err := h.repo.List(c.Request.Context())
	if err != nil {
		c.Error(err)
		return
	}

	resp := make([]dto.ProdutoResponse, 0, len(produtos))
	for _, p := range produtos {
		if !p.Ativo {
			continue
		}
		resp = append(resp, dto.ProdutoResponse{
			ID:            p.ID,
			Nome:          p.Nome,
			Preco:         p.Preco,
			EstoqueAtual:  p.EstoqueAtual,
			EstoqueMinimo: p.EstoqueMinimo,
		})
	}
	c.JSON(http.StatusOK, resp)
}
