package repository

import (
	"context"
	"encoding/json"
	"errors"

	"estoquefacil/internal/model"
	"estoquefacil/internal/store"
)

var (
	ErrSessaoNaoEncontrada = errors.New("sessão de caixa não encontrada")
	ErrSessaoAberta        = errors.New("já existe uma sessão de caixa aberta")
)

// CaixaRepository persists cash register sessions. Sessions are append-only;
// closing mutates the matching record in place.
type CaixaRepository interface {
	List(ctx context.Context) ([]model.SessaoCaixa, error)
	FindAberta(ctx context.Context) (*model.SessaoCaixa, error)
	// AppendAberta appends s only when the collection holds no open session.
	// The check runs inside the CAS write, so two concurrent opens cannot
	// both land — the loser fails with ErrSessaoAberta.
	AppendAberta(ctx context.Context, s *model.SessaoCaixa) error
	Update(ctx context.Context, id string, fn func(s *model.SessaoCaixa) error) (*model.SessaoCaixa, error)
}

type caixaRepo struct{ kv store.KV }

func NewCaixaRepository(kv store.KV) CaixaRepository { return &caixaRepo{kv: kv} }

func (r *caixaRepo) List(ctx context.Context) ([]model.SessaoCaixa, error) {
	raw, _, err := r.kv.Get(ctx, keyCaixa)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var sessoes []model.SessaoCaixa
	if err := json.Unmarshal(raw, &sessoes); err != nil {
		return nil, err
	}
	return sessoes, nil
}

func (r *caixaRepo) FindAberta(ctx context.Context) (*model.SessaoCaixa, error) {
	sessoes, err := r.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range sessoes {
		if sessoes[i].Estado == model.CaixaAberta {
			return &sessoes[i], nil
		}
	}
	return nil, ErrSessaoNaoEncontrada
}

func (r *caixaRepo) AppendAberta(ctx context.Context, s *model.SessaoCaixa) error {
	return mutate(ctx, r.kv, keyCaixa, func(current []byte) ([]byte, error) {
		var sessoes []model.SessaoCaixa
		if current != nil {
			if err := json.Unmarshal(current, &sessoes); err != nil {
				return nil, err
			}
		}
		for i := range sessoes {
			if sessoes[i].Estado == model.CaixaAberta {
				return nil, ErrSessaoAberta
			}
		}
		sessoes = append(sessoes, *s)
		return json.Marshal(sessoes)
	})
}

func (r *caixaRepo) Update(ctx context.Context, id string, fn func(s *model.SessaoCaixa) error) (*model.SessaoCaixa, error) {
	var updated *model.SessaoCaixa
	err := mutate(ctx, r.kv, keyCaixa, func(current []byte) ([]byte, error) {
		if current == nil {
			return nil, ErrSessaoNaoEncontrada
		}
		var sessoes []model.SessaoCaixa
		if err := json.Unmarshal(current, &sessoes); err != nil {
			return nil, err
		}
		idx := -1
		for i := range sessoes {
			if sessoes[i].ID == id {
				idx = i
				break
			}
		}
		if idx < 0 {
			return nil, ErrSessaoNaoEncontrada
		}
		if err := fn(&sessoes[idx]); err != nil {
			return nil, err
		}
		copied := sessoes[idx]
		updated = &copied
		return json.Marshal(sessoes)
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
