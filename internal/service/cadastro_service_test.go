package service

import (
	"context"
	"testing"

	"estoquefacil/internal/dto"
	"estoquefacil/internal/model"
	"estoquefacil/internal/repository"
	"estoquefacil/internal/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCadastroService() CadastroService {
	return NewCadastroService(repository.NewCadastroRepository(store.NewMemory()))
}

func TestCriarCadastroTrimEValidacao(t *testing.T) {
	svc := newCadastroService()
	ctx := context.Background()

	resp, err := svc.Criar(ctx, model.CadastroIngredientes, dto.CriarCadastroRequest{Nome: "  Tomate  ", Detalhe: "kg"})
	require.NoError(t, err)
	assert.Equal(t, "Tomate", resp.Nome)
	assert.NotEmpty(t, resp.ID)

	_, err = svc.Criar(ctx, model.CadastroIngredientes, dto.CriarCadastroRequest{Nome: "   "})
	assert.ErrorIs(t, err, ErrNomeObrigatorio)
}

func TestCadastroTipoInvalido(t *testing.T) {
	svc := newCadastroService()
	ctx := context.Background()

	_, err := svc.Listar(ctx, "clientes")
	assert.ErrorIs(t, err, ErrTipoInvalido)

	_, err = svc.Criar(ctx, "clientes", dto.CriarCadastroRequest{Nome: "X"})
	assert.ErrorIs(t, err, ErrTipoInvalido)

	assert.ErrorIs(t, svc.Excluir(ctx, "clientes", "id"), ErrTipoInvalido)
}

func TestCadastrosSaoIsoladosPorTipo(t *testing.T) {
	svc := newCadastroService()
	ctx := context.Background()

	_, err := svc.Criar(ctx, model.CadastroIngredientes, dto.CriarCadastroRequest{Nome: "Queijo"})
	require.NoError(t, err)
	_, err = svc.Criar(ctx, model.CadastroFornecedores, dto.CriarCadastroRequest{Nome: "Laticínios Sul"})
	require.NoError(t, err)

	ingredientes, err := svc.Listar(ctx, model.CadastroIngredientes)
	require.NoError(t, err)
	require.Len(t, ingredientes, 1)
	assert.Equal(t, "Queijo", ingredientes[0].Nome)

	fornecedores, err := svc.Listar(ctx, model.CadastroFornecedores)
	require.NoError(t, err)
	require.Len(t, fornecedores, 1)
	assert.Equal(t, "Laticínios Sul", fornecedores[0].Nome)
}

func TestExcluirCadastro(t *testing.T) {
	svc := newCadastroService()
	ctx := context.Background()

	a, err := svc.Criar(ctx, model.CadastroProdutos, dto.CriarCadastroRequest{Nome: "Combo 1"})
	require.NoError(t, err)
	b, err := svc.Criar(ctx, model.CadastroProdutos, dto.CriarCadastroRequest{Nome: "Combo 2"})
	require.NoError(t, err)

	require.NoError(t, svc.Excluir(ctx, model.CadastroProdutos, a.ID))

	restantes, err := svc.Listar(ctx, model.CadastroProdutos)
	require.NoError(t, err)
	require.Len(t, restantes, 1)
	assert.Equal(t, b.ID, restantes[0].ID)

	assert.ErrorIs(t, svc.Excluir(ctx, model.CadastroProdutos, a.ID), repository.ErrCadastroNaoEncontrado)
}
