package repository

import (
	"context"
	"encoding/json"
	"errors"

	"estoquefacil/internal/model"
	"estoquefacil/internal/store"
)

var ErrCadastroNaoEncontrado = errors.New("cadastro não encontrado")

// CadastroRepository backs the three generic registries (ingredientes,
// produtos, fornecedores). One collection per tipo; entries are identified by
// their generated ID, never by position.
type CadastroRepository interface {
	List(ctx context.Context, tipo string) ([]model.Cadastro, error)
	Append(ctx context.Context, tipo string, c *model.Cadastro) error
	Delete(ctx context.Context, tipo, id string) error
}

type cadastroRepo struct{ kv store.KV }

func NewCadastroRepository(kv store.KV) CadastroRepository { return &cadastroRepo{kv: kv} }

func (r *cadastroRepo) List(ctx context.Context, tipo string) ([]model.Cadastro, error) {
	raw, _, err := r.kv.Get(ctx, keyCadastro(tipo))
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var entries []model.Cadastro
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (r *cadastroRepo) Append(ctx context.Context, tipo string, c *model.Cadastro) error {
	return mutate(ctx, r.kv, keyCadastro(tipo), func(current []byte) ([]byte, error) {
		var entries []model.Cadastro
		if current != nil {
			if err := json.Unmarshal(current, &entries); err != nil {
				return nil, err
			}
		}
		entries = append(entries, *c)
		return json.Marshal(entries)
	})
}

func (r *cadastroRepo) Delete(ctx context.Context, tipo, id string) error {
	return mutate(ctx, r.kv, keyCadastro(tipo), func(current []byte) ([]byte, error) {
		if current == nil {
			return nil, ErrCadastroNaoEncontrado
		}
		var entries []model.Cadastro
		if err := json.Unmarshal(current, &entries); err != nil {
			return nil, err
		}
		kept := entries[:0]
		found := false
		for _, e := range entries {
			if e.ID == id {
				found = true
				continue
			}
			kept = append(kept, e)
		}
		if !found {
			return nil, ErrCadastroNaoEncontrado
		}
		return json.Marshal(kept)
	})
}
