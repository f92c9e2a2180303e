// @title        EstoqueFácil API
// @version      1.0
// @description  Pedidos, cozinha, caixa e estoque para restaurantes.
// @BasePath     /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"estoquefacil/internal/config"
	"estoquefacil/internal/handler"
	"estoquefacil/internal/infra"
	"estoquefacil/internal/repository"
	"estoquefacil/internal/router"
	"estoquefacil/internal/service"
	"estoquefacil/internal/store"
	"estoquefacil/internal/worker"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load configuration")
	}

	if cfg.Env == "development" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		kv  store.KV
		rdb *redis.Client
	)
	switch cfg.StoreDriver {
	case "redis":
		rdb, err = infra.NewRedis(cfg.RedisURL)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to connect to redis")
		}
		kv = store.NewRedis(rdb)
	default:
		kv = store.NewMemory()
	}

	if err := infra.SeedDemo(ctx, kv); err != nil {
		log.Fatal().Err(err).Msg("failed to seed demo data")
	}

	pedidoRepo := repository.NewPedidoRepository(kv)
	catalogoRepo := repository.NewCatalogoRepository(kv)
	cadastroRepo := repository.NewCadastroRepository(kv)
	caixaRepo := repository.NewCaixaRepository(kv)
	usuarioRepo := repository.NewUsuarioRepository(kv)

	// The async receipt pipeline needs the Redis queue; with the in-memory
	// driver receipts are generated on demand by the download endpoint.
	var dispatcher *worker.Dispatcher
	if rdb != nil {
		dispatcher = worker.NewDispatcher(rdb)
		handlers := &worker.Handlers{
			Recibo: worker.NewReciboWorker(pedidoRepo, cfg.PDFStoragePath),
		}
		worker.StartPool(ctx, rdb, handlers, cfg.WorkerPoolSize)
	}

	carrinhos := service.NewCarrinhos()
	pedidoSvc := service.NewPedidoService(pedidoRepo, catalogoRepo, carrinhos, dispatcher)

	h := &router.Handlers{
		Auth:      handler.NewAuthHandler(service.NewAuthService(usuarioRepo, cfg)),
		Pedidos:   handler.NewPedidoHandler(pedidoSvc, cfg.PDFStoragePath),
		Cozinha:   handler.NewCozinhaHandler(service.NewCozinhaService(pedidoRepo)),
		Cadastros: handler.NewCadastroHandler(service.NewCadastroService(cadastroRepo)),
		Caixa:     handler.NewCaixaHandler(service.NewCaixaService(caixaRepo)),
		Catalogo:  handler.NewCatalogoHandler(catalogoRepo),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(pedidoRepo, catalogoRepo)),
		Simulacao: handler.NewSimulacaoHandler(service.NewSimulacaoService(pedidoRepo)),
		Health:    handler.NewHealthHandler(kv, rdb),
	}

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: router.Setup(cfg, h),
	}

	go func() {
		log.Info().
			Int("port", cfg.Port).
			Str("env", cfg.Env).
			Str("store", cfg.StoreDriver).
			Msg("server started")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("forced shutdown")
	}

	if rdb != nil {
		if err := rdb.Close(); err != nil {
			log.Error().Err(err).Msg("error closing redis")
		}
	}
	log.Info().Msg("bye")
}
