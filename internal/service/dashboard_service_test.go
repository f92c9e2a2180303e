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

func appendPedido(t *testing.T, repo repository.PedidoRepository, status string, createdAt time.Time, items ...model.ItemPedido) {
	t.Helper()
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.Subtotal)
	}
	err := repo.Append(context.Background(), &model.Pedido{
		ID:        "ped-" + createdAt.Format("150405.000") + status,
		Items:     items,
		Total:     total,
		Status:    status,
		UsuarioID: "u1",
		CreatedAt: createdAt,
		UpdatedAt: createdAt,
	})
	require.NoError(t, err)
}

func item(nome string, qtd int, preco float64) model.ItemPedido {
	p := decimal.NewFromFloat(preco)
	return model.ItemPedido{
		ProdutoID:     "p-" + nome,
		Nome:          nome,
		PrecoUnitario: p,
		Quantidade:    qtd,
		Subtotal:      p.Mul(decimal.NewFromInt(int64(qtd))),
	}
}

func TestResumoAgregaSomenteConcluidosDeHoje(t *testing.T) {
	kv := store.NewMemory()
	pedidos := repository.NewPedidoRepository(kv)
	catalogo := seedCatalogo(t, kv)

	agora := time.Date(2026, 8, 28, 14, 0, 0, 0, time.UTC)

	appendPedido(t, pedidos, model.StatusConcluido, agora.Add(-2*time.Hour),
		item("Hambúrguer", 2, 18.0), item("Batata Frita", 1, 12.0))
	appendPedido(t, pedidos, model.StatusConcluido, agora.Add(-1*time.Hour),
		item("Batata Frita", 3, 12.0))
	// Ignored: still pending, cancelled, and yesterday's sale.
	appendPedido(t, pedidos, model.StatusNovo, agora, item("Hambúrguer", 5, 18.0))
	appendPedido(t, pedidos, model.StatusCancelado, agora, item("Hambúrguer", 5, 18.0))
	appendPedido(t, pedidos, model.StatusConcluido, agora.Add(-26*time.Hour), item("Hambúrguer", 9, 18.0))

	svc := NewDashboardService(pedidos, catalogo).(*dashboardService)
	svc.now = func() time.Time { return agora }

	resumo, err := svc.Resumo(context.Background())
	require.NoError(t, err)

	// 2*18 + 1*12 + 3*12 = 84
	assert.Equal(t, "84", resumo.VendasHoje.String())

	require.Len(t, resumo.TopItens, 2)
	assert.Equal(t, "Batata Frita", resumo.TopItens[0].Nome)
	assert.Equal(t, 4, resumo.TopItens[0].Quantidade)
	assert.Equal(t, "Hambúrguer", resumo.TopItens[1].Nome)
	assert.Equal(t, 2, resumo.TopItens[1].Quantidade)
}

func TestResumoEstoqueCritico(t *testing.T) {
	kv := store.NewMemory()
	pedidos := repository.NewPedidoRepository(kv)
	catalogo := repository.NewCatalogoRepository(kv)

	require.NoError(t, catalogo.ReplaceAll(context.Background(), []model.Produto{
		{ID: "p1", Nome: "Queijo", Preco: decimal.NewFromFloat(5), EstoqueAtual: 2, EstoqueMinimo: 10, Ativo: true},
		{ID: "p2", Nome: "Pão", Preco: decimal.NewFromFloat(2), EstoqueAtual: 10, EstoqueMinimo: 10, Ativo: true},
		{ID: "p3", Nome: "Carne", Preco: decimal.NewFromFloat(9), EstoqueAtual: 50, EstoqueMinimo: 10, Ativo: true},
		{ID: "p4", Nome: "Sazonal", Preco: decimal.NewFromFloat(1), EstoqueAtual: 0, EstoqueMinimo: 5, Ativo: false},
	}))

	svc := NewDashboardService(pedidos, catalogo)
	resumo, err := svc.Resumo(context.Background())
	require.NoError(t, err)

	nomes := make([]string, 0, len(resumo.EstoqueCritico))
	for _, e := range resumo.EstoqueCritico {
		nomes = append(nomes, e.Nome)
	}
	// At or below minimum counts; inactive products never alert.
	assert.ElementsMatch(t, []string{"Queijo", "Pão"}, nomes)
}

func TestComparativoSemanal(t *testing.T) {
	kv := store.NewMemory()
	pedidos := repository.NewPedidoRepository(kv)

	agora := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	// Current window: 100. Previous window: 80. Outside both: ignored.
	appendPedido(t, pedidos, model.StatusConcluido, agora.Add(-24*time.Hour), item("Hambúrguer", 5, 20.0))
	appendPedido(t, pedidos, model.StatusConcluido, agora.Add(-9*24*time.Hour), item("Batata Frita", 8, 10.0))
	appendPedido(t, pedidos, model.StatusConcluido, agora.Add(-20*24*time.Hour), item("Hambúrguer", 9, 20.0))
	appendPedido(t, pedidos, model.StatusNovo, agora.Add(-24*time.Hour), item("Hambúrguer", 9, 20.0))

	svc := NewSimulacaoService(pedidos).(*simulacaoService)
	svc.now = func() time.Time { return agora }

	resp, err := svc.Comparativo(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "100", resp.Atual.Total.String())
	assert.Equal(t, "Hambúrguer", resp.Atual.MaisVendido)
	assert.Equal(t, "80", resp.Anterior.Total.String())
	assert.Equal(t, "Batata Frita", resp.Anterior.MaisVendido)
	assert.Equal(t, "20", resp.Variacao.Monto.String())
	assert.Equal(t, "25", resp.Variacao.Pct.String())
}

func TestComparativoSemVendasAnteriores(t *testing.T) {
	kv := store.NewMemory()
	pedidos := repository.NewPedidoRepository(kv)

	agora := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)
	appendPedido(t, pedidos, model.StatusConcluido, agora.Add(-time.Hour), item("Hambúrguer", 1, 18.0))

	svc := NewSimulacaoService(pedidos).(*simulacaoService)
	svc.now = func() time.Time { return agora }

	resp, err := svc.Comparativo(context.Background())
	require.NoError(t, err)
	assert.True(t, resp.Anterior.Total.IsZero())
	assert.True(t, resp.Variacao.Pct.IsZero())
}
