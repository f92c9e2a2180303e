package infra

import (
	"context"
	"time"

	"estoquefacil/internal/model"
	"estoquefacil/internal/repository"
	"estoquefacil/internal/store"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

// SeedDemo loads the demo operator account and the three-item menu into the
// store. Existing data is preserved: the admin is upserted by e-mail and the
// catalog is only written when empty.
func SeedDemo(ctx context.Context, kv store.KV) error {
	usuarios := repository.NewUsuarioRepository(kv)
	catalogo := repository.NewCatalogoRepository(kv)

	hash, err := bcrypt.GenerateFromPassword([]byte("1234"), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	admin := &model.Usuario{
		ID:           uuid.NewString(),
		Email:        "admin@estoquefacil.com",
		Nome:         "Administrador",
		PasswordHash: string(hash),
		Ativo:        true,
		CreatedAt:    time.Now().UTC(),
	}
	if existing, err := usuarios.FindByEmail(ctx, admin.Email); err == nil {
		admin.ID = existing.ID
		admin.CreatedAt = existing.CreatedAt
	}
	if err := usuarios.Upsert(ctx, admin); err != nil {
		return err
	}

	produtos, err := catalogo.List(ctx)
	if err != nil {
		return err
	}
	if len(produtos) == 0 {
		if err := catalogo.ReplaceAll(ctx, demoCardapio()); err != nil {
			return err
		}
	}

	log.Info().Str("admin", admin.Email).Msg("demo data seeded")
	return nil
}

func demoCardapio() []model.Produto {
	return []model.Produto{
		{
			ID:            uuid.NewString(),
			Nome:          "Hambúrguer",
			Preco:         decimal.NewFromFloat(18.0),
			EstoqueAtual:  40,
			EstoqueMinimo: 10,
			Ativo:         true,
		},
		{
			ID:            uuid.NewString(),
			Nome:          "Batata Frita",
			Preco:         decimal.NewFromFloat(12.0),
			EstoqueAtual:  60,
			EstoqueMinimo: 15,
			Ativo:         true,
		},
		{
			ID:            uuid.NewString(),
			Nome:          "Pizza Fatia",
			Preco:         decimal.NewFromFloat(10.0),
			EstoqueAtual:  30,
			EstoqueMinimo: 8,
			Ativo:         true,
		},
	}
}
