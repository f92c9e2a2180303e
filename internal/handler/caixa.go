package handler

import (
	"errors"
	"net/http"

	"estoquefacil/internal/apierror"
	"estoquefacil/internal/middleware"
	"estoquefacil/internal/service"

	"github.com/gin-gonic/gin"
)

type CaixaHandler struct {
	svc service.CaixaService
}

func NewCaixaHandler(svc service.CaixaService) *CaixaHandler {
	return &CaixaHandler{svc: svc}
}

// Abrir godoc
// @Summary      Abrir o caixa
// @Tags         caixa
// @Produce      json
// @Success      201  {object}  dto.SessaoCaixaResponse
// @Failure      409  {object}  apierror.APIError
// @Security     BearerAuth
// @Router       /v1/caixa/abrir [post]
func (h *CaixaHandler) Abrir(c *gin.Context) {
	claims := middleware.GetClaims(c)
	resp, err := h.svc.Abrir(c.Request.Context(), claims.UserID)
	if err != nil {
		if errors.Is(err, service.ErrCaixaJaAberto) {
			c.JSON(http.StatusConflict, apierror.New("Caixa já está aberto"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

func (h *CaixaHandler) Fechar(c *gin.Context) {
	resp, err := h.svc.Fechar(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrCaixaFechado) {
			c.JSON(http.StatusConflict, apierror.New("Nenhum caixa aberto"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// Atual reports the open session; 404 when the caixa is closed.
func (h *CaixaHandler) Atual(c *gin.Context) {
	resp, err := h.svc.Atual(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrCaixaFechado) {
			c.JSON(http.StatusNotFound, apierror.New("Caixa fechado"))
			return
		}
		c.Error(err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
