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

// SimulacaoService compares the current 7-day window against the previous
// one, computed from persisted orders instead of the page's fixed constants.
type SimulacaoService interface {
	Comparativo(ctx context.Context) (*dto.ComparativoResponse, error)
}

type simulacaoService struct {
	pedidos repository.PedidoRepository
	now     func() time.Time
}

func NewSimulacaoService(pedidos repository.PedidoRepository) SimulacaoService {
	return &simulacaoService{pedidos: pedidos, now: time.Now}
}

const janelaSimulacao = 7 * 24 * time.Hour

func (s *simulacaoService) Comparativo(ctx context.Context) (*dto.ComparativoResponse, error) {
	pedidos, err := s.pedidos.List(ctx)
	if err != nil {
		return nil, err
	}

	fim := s.now().UTC()
	corte := fim.Add(-janelaSimulacao)
	inicio := fim.Add(-2 * janelaSimulacao)

	atual := resumirPeriodo(pedidos, corte, fim)
	anterior := resumirPeriodo(pedidos, inicio, corte)

	diff := atual.Total.Sub(anterior.Total)
	pct := decimal.Zero
	if !anterior.Total.IsZero() {
		pct = diff.Div(anterior.Total).Mul(decimal.NewFromInt(100)).Round(1)
	}

	return &dto.ComparativoResponse{
		Atual:    atual,
		Anterior: anterior,
		Variacao: dto.VariacaoResponse{Monto: diff, Pct: pct},
	}, nil
}

// resumirPeriodo folds concluded orders inside [inicio, fim) into a total and
// the best-selling item by quantity.
func resumirPeriodo(pedidos []model.Pedido, inicio, fim time.Time) dto.PeriodoResumo {
	total := decimal.Zero
	quantidades := make(map[string]int)

	for _, p := range pedidos {
		if p.Status != model.StatusConcluido {
			continue
		}
		t := p.CreatedAt.UTC()
		if t.Before(inicio) || !t.Before(fim) {
			continue
		}
		total = total.Add(p.Total)
		for _, it := range p.Items {
			quantidades[it.Nome] += it.Quantidade
		}
	}

	nomes := make([]string, 0, len(quantidades))
	for nome := range quantidades {
		nomes = append(nomes, nome)
	}
	sort.Slice(nomes, func(i, j int) bool {
		if quantidades[nomes[i]] != quantidades[nomes[j]] {
			return quantidades[nomes[i]] > quantidades[nomes[j]]
		}
		return nomes[i] < nomes[j]
	})

	maisVendido := ""
	if len(nomes) > 0 {
		maisVendido = nomes[0]
	}
	return dto.PeriodoResumo{Total: total, MaisVendido: maisVendido}
}
