package repository

import (
	"context"
	"encoding/json"
	"errors"

	"estoquefacil/internal/model"
	"estoquefacil/internal/store"
)

var ErrProdutoNaoEncontrado = errors.New("produto não encontrado")

// CatalogoRepository holds the sellable product catalog.
type CatalogoRepository interface {
	List(ctx context.Context) ([]model.Produto, error)
	FindByID(ctx context.Context, id string) (*model.Produto, error)
	// ReplaceAll overwrites the whole catalog — seed/bootstrap path.
	ReplaceAll(ctx context.Context, produtos []model.Produto) error
	// BaixarEstoque decrements estoque_atual for each produto_id/quantidade
	// pair in one collection write. Stock may go negative, matching the
	// sell-first-reconcile-later posture of the rest of the system.
	BaixarEstoque(ctx context.Context, baixas map[string]int) error
}

type catalogoRepo struct{ kv store.KV }

func NewCatalogoRepository(kv store.KV) CatalogoRepository { return &catalogoRepo{kv: kv} }

func (r *catalogoRepo) List(ctx context.Context) ([]model.Produto, error) {
	raw, _, err := r.kv.Get(ctx, keyCatalogo)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var produtos []model.Produto
	if err := json.Unmarshal(raw, &produtos); err != nil {
		return nil, err
	}
	return produtos, nil
}

func (r *catalogoRepo) FindByID(ctx context.Context, id string) (*model.Produto, error) {
	produtos, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range produtos {
		if produtos[i].ID == id {
			return &produtos[i], nil
		}
	}
	return nil, ErrProdutoNaoEncontrado
}

func (r *catalogoRepo) ReplaceAll(ctx context.Context, produtos []model.Produto) error {
	raw, err := json.Marshal(produtos)
	if err != nil {
		return err
	}
	return r.kv.Put(ctx, keyCatalogo, raw)
}

func (r *catalogoRepo) BaixarEstoque(ctx context.Context, baixas map[string]int) error {
	return mutate(ctx, r.kv, keyCatalogo, func(current []byte) ([]byte, error) {
		if current == nil {
			return nil, ErrProdutoNaoEncontrado
		}
		var produtos []model.Produto
		if err := json.Unmarshal(current, &produtos); err != nil {
			return nil, err
		}
		for i := range produtos {
			if qtd, ok := baixas[produtos[i].ID]; ok {
				produtos[i].EstoqueAtual -= qtd
			}
		}
		return json.Marshal(produtos)
	})
}
