// Package router wires middleware and handlers into the Gin engine.
package router

import (
	"time"

	"estoquefacil/internal/config"
	"estoquefacil/internal/handler"
	"estoquefacil/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth      *handler.AuthHandler
	Pedidos   *handler.PedidoHandler
	Cozinha   *handler.CozinhaHandler
	Cadastros *handler.CadastroHandler
	Caixa     *handler.CaixaHandler
	Catalogo  *handler.CatalogoHandler
	Dashboard *handler.DashboardHandler
	Simulacao *handler.SimulacaoHandler
	Health    *handler.HealthHandler
}

func Setup(cfg *config.Config, h *Handlers) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(300, time.Minute))

	r.GET("/health", h.Health.Check)

	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	v1 := r.Group("/v1")

	auth := v1.Group("/auth")
	{
		auth.POST("/login", middleware.LoginRateLimiter(), h.Auth.Login)
		auth.POST("/refresh", h.Auth.Refresh)
	}

	protected := v1.Group("")
	protected.Use(middleware.JWTAuth(cfg.JWTSecret))
	{
		pedidos := protected.Group("/pedidos")
		{
			pedidos.GET("/carrinho", h.Pedidos.VerCarrinho)
			pedidos.POST("/carrinho/itens", h.Pedidos.AdicionarItem)
			pedidos.PATCH("/carrinho/itens/:produtoId", h.Pedidos.AtualizarQuantidade)
			pedidos.DELETE("/carrinho/itens/:produtoId", h.Pedidos.RemoverItem)

			pedidos.POST("", h.Pedidos.Enviar)
			pedidos.GET("", h.Pedidos.Listar)
			pedidos.GET("/:id/recibo", h.Pedidos.Recibo)
		}

		cozinha := protected.Group("/cozinha")
		{
			cozinha.GET("/pedidos", h.Cozinha.ListarPendentes)
			cozinha.POST("/pedidos/:id/concluir", h.Cozinha.Concluir)
			cozinha.POST("/pedidos/:id/cancelar", h.Cozinha.Cancelar)
		}

		cadastros := protected.Group("/cadastros")
		{
			cadastros.GET("/:tipo", h.Cadastros.Listar)
			cadastros.POST("/:tipo", h.Cadastros.Criar)
			cadastros.DELETE("/:tipo/:id", h.Cadastros.Excluir)
		}

		caixa := protected.Group("/caixa")
		{
			caixa.POST("/abrir", h.Caixa.Abrir)
			caixa.POST("/fechar", h.Caixa.Fechar)
			caixa.GET("/atual", h.Caixa.Atual)
		}

		protected.GET("/catalogo", h.Catalogo.Listar)
		protected.GET("/dashboard/resumo", h.Dashboard.Resumo)
		protected.GET("/simulacao/comparativo", h.Simulacao.Comparativo)
	}

	return r
}
