package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"estoquefacil/internal/model"
	"estoquefacil/internal/store"
)

var ErrPedidoNaoEncontrado = errors.New("pedido não encontrado")

// PedidoRepository is the data access contract for the persisted order
// collection. Services depend on this interface, not on the store layout.
type PedidoRepository interface {
	List(ctx context.Context) ([]model.Pedido, error)
	FindByID(ctx context.Context, id string) (*model.Pedido, error)
	Append(ctx context.Context, p *model.Pedido) error
	// Update locates the order by id in a fresh read, applies fn in place and
	// writes the whole collection back under CAS. fn errors abort the write.
	Update(ctx context.Context, id string, fn func(p *model.Pedido) error) (*model.Pedido, error)
	// NextNumero issues the next monotonic order number.
	NextNumero(ctx context.Context) (int, error)
}

type pedidoRepo struct{ kv store.KV }

func NewPedidoRepository(kv store.KV) PedidoRepository { return &pedidoRepo{kv: kv} }

func (r *pedidoRepo) List(ctx context.Context) ([]model.Pedido, error) {
	raw, _, err := r.kv.Get(ctx, keyPedidos)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var pedidos []model.Pedido
	if err := json.Unmarshal(raw, &pedidos); err != nil {
		return nil, err
	}
	return pedidos, nil
}

func (r *pedidoRepo) FindByID(ctx context.Context, id string) (*model.Pedido, error) {
	pedidos, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range pedidos {
		if pedidos[i].ID == id {
			return &pedidos[i], nil
		}
	}
	return nil, ErrPedidoNaoEncontrado
}

func (r *pedidoRepo) Append(ctx context.Context, p *model.Pedido) error {
	return mutate(ctx, r.kv, keyPedidos, func(current []byte) ([]byte, error) {
		var pedidos []model.Pedido
		if current != nil {
			if err := json.Unmarshal(current, &pedidos); err != nil {
				return nil, err
			}
		}
		pedidos = append(pedidos, *p)
		return json.Marshal(pedidos)
	})
}

func (r *pedidoRepo) Update(ctx context.Context, id string, fn func(p *model.Pedido) error) (*model.Pedido, error) {
	var updated *model.Pedido
	err := mutate(ctx, r.kv, keyPedidos, func(current []byte) ([]byte, error) {
		if current == nil {
			return nil, ErrPedidoNaoEncontrado
		}
		var pedidos []model.Pedido
		if err := json.Unmarshal(current, &pedidos); err != nil {
			return nil, err
		}
		idx := -1
		for i := range pedidos {
			if pedidos[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, ErrPedidoNaoEncontrado
		}
		if err := fn(&pedidos[idx]); err != nil {
			return nil, err
		}
		copied := pedidos[idx]
		updated = &copied
		return json.Marshal(pedidos)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (r *pedidoRepo) NextNumero(ctx context.Context) (int, error) {
	var numero int
	err := mutate(ctx, r.kv, keyPedidosSeq, func(current []byte) ([]byte, error) {
		seq := 0
		if current != nil {
			n, err := strconv.Atoi(string(current))
			if err != nil {
				return nil, err
			}
			seq = n
		}
		numero = seq + 1
		return []byte(strconv.Itoa(numero)), nil
	})
	if err != nil {
		return 0, err
	}
	return numero, nil
}
