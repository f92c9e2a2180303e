package repository

import (
	"context"
	"encoding/json"
	"errors"
	"strings"

	"estoquefacil/internal/model"
	"estoquefacil/internal/store"
)

var ErrUsuarioNaoEncontrado = errors.New("usuário não encontrado")

// UsuarioRepository persists operator accounts.
type UsuarioRepository interface {
	FindByEmail(ctx context.Context, email string) (*model.Usuario, error)
	FindByID(ctx context.Context, id string) (*model.Usuario, error)
	// Upsert inserts or replaces by email (case-insensitive). Seed path.
	Upsert(ctx context.Context, u *model.Usuario) error
}

type usuarioRepo struct{ kv store.KV }

func NewUsuarioRepository(kv store.KV) UsuarioRepository { return &usuarioRepo{kv: kv} }

func (r *usuarioRepo) list(ctx context.Context) ([]model.Usuario, error) {
	raw, _, err := r.kv.Get(ctx, keyUsuarios)
	if errors.Is(err, store.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var usuarios []model.Usuario
	if err := json.Unmarshal(raw, &usuarios); err != nil {
		return nil, err
	}
	return usuarios, nil
}

func (r *usuarioRepo) FindByEmail(ctx context.Context, email string) (*model.Usuario, error) {
	usuarios, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range usuarios {
		if strings.EqualFold(usuarios[i].Email, email) {
			return &usuarios[i], nil
		}
	}
	return nil, ErrUsuarioNaoEncontrado
}

func (r *usuarioRepo) FindByID(ctx context.Context, id string) (*model.Usuario, error) {
	usuarios, err := r.list(ctx)
	if err != nil {
		return nil, err
	}
	for i := range usuarios {
		if usuarios[i].ID == id {
			return &usuarios[i], nil
		}
	}
	return nil, ErrUsuarioNaoEncontrado
}

func (r *usuarioRepo) Upsert(ctx context.Context, u *model.Usuario) error {
	return mutate(ctx, r.kv, keyUsuarios, func(current []byte) ([]byte, error) {
		var usuarios []model.Usuario
		if current != nil {
			if err := json.Unmarshal(current, &usuarios); err != nil {
				return nil, err
			}
		}
		replaced := false
		for i := range usuarios {
			if strings.EqualFold(usuarios[i].Email, u.Email) {
				usuarios[i] = *u
				replaced = true
				break
			}
		}
		if !replaced {
			usuarios = append(usuarios, *u)
		}
		return json.Marshal(usuarios)
	})
}
