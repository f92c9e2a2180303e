package handler

import (
	"errors"
	"net/http"

	"estoquefacil/internal/apierror"
	"estoquefacil/internal/dto"
	"estoquefacil/internal/repository"
	"estoquefacil/internal/service"

	"github.com/gin-gonic/gin"
)

type CadastroHandler struct {
	svc service.CadastroService
}

func NewCadastroHandler(svc service.CadastroService) *CadastroHandler {
	return &CadastroHandler{svc: svc}
}

// Listar godoc
// @Summary      Listar cadastros de um tipo
// @Tags         cadastros
// @Produce      json
// @Param        tipo  path  string  true  "ingredientes | produtos | fornecedores"
// @Success      200  {array}  dto.CadastroResponse
// @Failure      404  {object}  apierror.APIError
// @Security     BearerAuth
// @Router       /v1/cadastros/{tipo} [get]
func (h *CadastroHandler) Listar(c *gin.Context) {
	resp, err := h.svc.Listar(c.Request.Context(), c.Param("tipo"))
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *CadastroHandler) Criar(c *gin.Context) {
	var req dto.CriarCadastroRequest
	if !bindAndValidate(c, &req) {
		return
	}

	resp, err := h.svc.Criar(c.Request.Context(), c.Param("tipo"), req)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CadastroHandler) Excluir(c *gin.Context) {
	if err := h.svc.Excluir(c.Request.Context(), c.Param("tipo"), c.Param("id")); err != nil {
		h.writeError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *CadastroHandler) writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrTipoInvalido):
		c.JSON(http.StatusNotFound, apierror.New("Tipo de cadastro desconhecido"))
	case errors.Is(err, service.ErrNomeObrigatorio):
		c.JSON(http.StatusUnprocessableEntity, apierror.New("Informe o nome."))
	case errors.Is(err, repository.ErrCadastroNaoEncontrado):
		c.JSON(http.StatusNotFound, apierror.New("Registro não encontrado"))
	default:
		c.Error(err)
	}
}
