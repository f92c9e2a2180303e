package service

import (
	"context"
	"testing"
	"time"

	"estoquefacil/internal/model"
	"estoquefacil/internal/repository"
	"estoquefacil/internal/store"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedPedido(t *testing.T, repo repository.PedidoRepository, id, status string, createdAt time.Time) {
	t.Helper()
	err := repo.Append(context.Background(), &model.Pedido{
		ID:     id,
		Numero: 1,
		Items: []model.ItemPedido{
			{ProdutoID: "p1", Nome: "Hambúrguer", PrecoUnitario: decimal.NewFromFloat(18.0), Quantidade: 1, Subtotal: decimal.NewFromFloat(18.0)},
		},
		Total:     decimal.NewFromFloat(18.0),
		Status:    status,
		UsuarioID: "u1",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
	require.NoError(t, err)
}

func TestListarPendentesOrdenaMaisAntigosPrimeiro(t *testing.T) {
	kv := store.NewMemory()
	repo := repository.NewPedidoRepository(kv)
	svc := NewCozinhaService(repo)
	base := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	seedPedido(t, repo, "ped-b", model.StatusNovo, base.Add(10*time.Minute))
	seedPedido(t, repo, "ped-a", model.StatusNovo, base)
	seedPedido(t, repo, "ped-feito", model.StatusConcluido, base.Add(-time.Hour))

	resp, err := svc.ListarPendentes(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, resp.Total)
	assert.Equal(t, "ped-a", resp.Data[0].ID)
	assert.Equal(t, "ped-b", resp.Data[1].ID)
}

func TestConcluirPedido(t *testing.T) {
	kv := store.NewMemory()
	repo := repository.NewPedidoRepository(kv)
	svc := NewCozinhaService(repo)
	seedPedido(t, repo, "ped-1", model.StatusNovo, time.Now().UTC())

	resp, err := svc.Concluir(context.Background(), "ped-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusConcluido, resp.Status)

	persistido, err := repo.FindByID(context.Background(), "ped-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusConcluido, persistido.Status)
}

func TestCancelarPedido(t *testing.T) {
	kv := store.NewMemory()
	repo := repository.NewPedidoRepository(kv)
	svc := NewCozinhaService(repo)
	seedPedido(t, repo, "ped-1", model.StatusNovo, time.Now().UTC())

	resp, err := svc.Cancelar(context.Background(), "ped-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusCancelado, resp.Status)
}

func TestTransicaoDePedidoTerminalFalha(t *testing.T) {
	kv := store.NewMemory()
	repo := repository.NewPedidoRepository(kv)
	svc := NewCozinhaService(repo)
	seedPedido(t, repo, "ped-1", model.StatusConcluido, time.Now().UTC())

	_, err := svc.Cancelar(context.Background(), "ped-1")
	assert.ErrorIs(t, err, ErrPedidoTerminal)

	_, err = svc.Concluir(context.Background(), "ped-1")
	assert.ErrorIs(t, err, ErrPedidoTerminal)

	// The stored status must be untouched.
	persistido, err := repo.FindByID(context.Background(), "ped-1")
	require.NoError(t, err)
	assert.Equal(t, model.StatusConcluido, persistido.Status)
}

func TestTransicaoDePedidoInexistente(t *testing.T) {
	kv := store.NewMemory()
	svc := NewCozinhaService(repository.NewPedidoRepository(kv))

	_, err := svc.Concluir(context.Background(), "ped-x")
	assert.ErrorIs(t, err, repository.ErrPedidoNaoEncontrado)
}
