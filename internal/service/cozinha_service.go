package service

import (
	"context"
	"errors"
	"sort"
	"time"

	"estoquefacil/internal/dto"
	"estoquefacil/internal/model"
	"estoquefacil/internal/repository"
)

var ErrPedidoTerminal = errors.New("pedido já concluído ou cancelado")

// CozinhaService is the kitchen display: pending orders plus the two terminal
// transitions. Transitions go through the repository's CAS update, so a
// concurrent transition on the same collection retries against a fresh read
// instead of overwriting it.
type CozinhaService interface {
	ListarPendentes(ctx context.Context) (*dto.PedidoListResponse, error)
	Concluir(ctx context.Context, pedidoID string) (*dto.PedidoResponse, error)
	Cancelar(ctx context.Context, pedidoID string) (*dto.PedidoResponse, error)
}

type cozinhaService struct {
	repo repository.PedidoRepository
}

func NewCozinhaService(repo repository.PedidoRepository) CozinhaService {
	return &cozinhaService{repo: repo}
}

func (s *cozinhaService) ListarPendentes(ctx context.Context) (*dto.PedidoListResponse, error) {
	pedidos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	pendentes := make([]model.Pedido, 0, len(pedidos))
	for _, p := range pedidos {
		if p.Status == model.StatusNovo {
			pendentes = append(pendentes, p)
		}
	}
	// Oldest first — the kitchen works the queue in arrival order.
	sort.SliceStable(pendentes, func(i, j int) bool {
		return pendentes[i].CreatedAt.Before(pendentes[j].CreatedAt)
	})

	data := make([]dto.PedidoResponse, 0, len(pendentes))
	for i := range pendentes {
		data = append(data, *pedidoResponse(&pendentes[i]))
	}
	return &dto.PedidoListResponse{Data: data, Total: len(data)}, nil
}

func (s *cozinhaService) Concluir(ctx context.Context, pedidoID string) (*dto.PedidoResponse, error) {
	return s.transicionar(ctx, pedidoID, model.StatusConcluido)
}

func (s *cozinhaService) Cancelar(ctx context.Context, pedidoID string) (*dto.PedidoResponse, error) {
	return s.transicionar(ctx, pedidoID, model.StatusCancelado)
}

func (s *cozinhaService) transicionar(ctx context.Context, pedidoID, status string) (*dto.PedidoResponse, error) {
	updated, err := s.repo.Update(ctx, pedidoID, func(p *model.Pedido) error {
		if p.Terminal() {
			return ErrPedidoTerminal
		}
		p.Status = status
		p.UpdatedAt = time.Now().UTC()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return pedidoResponse(updated), nil
}
