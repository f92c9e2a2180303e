package service

import (
	"context"
	"sort"
	"time"

	"estoquefacil/internal/dto"
	"estoquefacil/internal/model"
	"estoquefacil/internal/repository"

	"github.com/shopspring/decimal"
)

// DashboardService aggregates real figures for the dashboard page: sales of
// the day, top items and critical stock. The frontend mocked all three.
type DashboardService interface {
	Resumo(ctx context.Context) (*dto.ResumoResponse, error)
}

type dashboardService struct {
	pedidos  repository.PedidoRepository
	catalogo repository.CatalogoRepository
	now      func() time.Time
}

func NewDashboardService(pedidos repository.PedidoRepository, catalogo repository.CatalogoRepository) DashboardService {
	return &dashboardService{pedidos: pedidos, catalogo: catalogo, now: time.Now}
}

const topItensLimit = 3

func (s *dashboardService) Resumo(ctx context.Context) (*dto.ResumoResponse, error) {
	pedidos, err := s.pedidos.List(ctx)
	if err != nil {
		return nil, err
	}

	hoje := s.now().UTC().Truncate(24 * time.Hour)
	vendasHoje := decimal.Zero
	quantidades := make(map[string]int)

	for _, p := range pedidos {
		if p.Status != model.StatusConcluido {
			continue
		}
		if !p.CreatedAt.UTC().Truncate(24 * time.Hour).Equal(hoje) {
			continue
		}
		vendasHoje = vendasHoje.Add(p.Total)
		for _, it := range p.Items {
			quantidades[it.Nome] += it.Quantidade
		}
	}

	top := make([]dto.TopItemResponse, 0, len(quantidades))
	for nome, qtd := range quantidades {
		top = append(top, dto.TopItemResponse{Nome: nome, Quantidade: qtd})
	}
	sort.Slice(top, func(i, j int) bool {
		if top[i].Quantidade != top[j].Quantidade {
			return top[i].Quantidade > top[j].Quantidade
		}
		return top[i].Nome < top[j].Nome
	})
	if len(top) > topItensLimit {
		top = top[:topItensLimit]
	}

	produtos, err := s.catalogo.List(ctx)
	if err != nil {
		return nil, err
	}
	critico := make([]dto.EstoqueCriticoResponse, 0)
	for _, p := range produtos {
		if p.Ativo && p.EstoqueAtual <= p.EstoqueMinimo {
			critico = append(critico, dto.EstoqueCriticoResponse{
				Nome:          p.Nome,
				EstoqueAtual:  p.EstoqueAtual,
				EstoqueMinimo: p.EstoqueMinimo,
			})
		}
	}

	return &dto.ResumoResponse{
		VendasHoje:     vendasHoje,
		TopItens:       top,
		EstoqueCritico: critico,
	}, nil
}
