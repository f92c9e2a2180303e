package router

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"estoquefacil/internal/config"
	"estoquefacil/internal/handler"
	"estoquefacil/internal/infra"
	"estoquefacil/internal/repository"
	"estoquefacil/internal/service"
	"estoquefacil/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		Env:                "test",
		JWTSecret:          "test-secret",
		JWTExpirationHours: 1,
		JWTRefreshHours:    2,
		PDFStoragePath:     t.TempDir(),
	}

	kv := store.NewMemory()
	require.NoError(t, infra.SeedDemo(context.Background(), kv))

	pedidoRepo := repository.NewPedidoRepository(kv)
	catalogoRepo := repository.NewCatalogoRepository(kv)
	pedidoSvc := service.NewPedidoService(pedidoRepo, catalogoRepo, service.NewCarrinhos(), nil)

	h := &Handlers{
		Auth:      handler.NewAuthHandler(service.NewAuthService(repository.NewUsuarioRepository(kv), cfg)),
		Pedidos:   handler.NewPedidoHandler(pedidoSvc, cfg.PDFStoragePath),
		Cozinha:   handler.NewCozinhaHandler(service.NewCozinhaService(pedidoRepo)),
		Cadastros: handler.NewCadastroHandler(service.NewCadastroService(repository.NewCadastroRepository(kv))),
		Caixa:     handler.NewCaixaHandler(service.NewCaixaService(repository.NewCaixaRepository(kv))),
		Catalogo:  handler.NewCatalogoHandler(catalogoRepo),
		Dashboard: handler.NewDashboardHandler(service.NewDashboardService(pedidoRepo, catalogoRepo)),
		Simulacao: handler.NewSimulacaoHandler(service.NewSimulacaoService(pedidoRepo)),
		Health:    handler.NewHealthHandler(kv, nil),
	}
	return Setup(cfg, h)
}

func do(t *testing.T, r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func login(t *testing.T, r *gin.Engine) string {
	t.Helper()
	w := do(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "admin@estoquefacil.com",
		"password": "1234",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp struct {
		AccessToken string `json:"access_token"`
	}
	decode(t, w, &resp)
	require.NotEmpty(t, resp.AccessToken)
	return resp.AccessToken
}

func TestHealth(t *testing.T) {
	r := newTestServer(t)
	w := do(t, r, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	var body map[string]interface{}
	decode(t, w, &body)
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, "up", body["store"])
	// No queue on the in-memory driver, so no DLQ figure either.
	assert.NotContains(t, body, "dlq_recibo")
}

func TestProtectedRoutesRequireToken(t *testing.T) {
	r := newTestServer(t)

	for _, path := range []string{"/v1/catalogo", "/v1/pedidos", "/v1/dashboard/resumo"} {
		w := do(t, r, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}

	w := do(t, r, http.MethodGet, "/v1/catalogo", "token-falso", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestLoginComSenhaErrada(t *testing.T) {
	r := newTestServer(t)
	w := do(t, r, http.MethodPost, "/v1/auth/login", "", gin.H{
		"email":    "admin@estoquefacil.com",
		"password": "errada",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestFluxoCompletoDePedido(t *testing.T) {
	r := newTestServer(t)
	token := login(t, r)

	// Menu comes from the seeded catalog.
	w := do(t, r, http.MethodGet, "/v1/catalogo", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var catalogo []struct {
		ID   string `json:"id"`
		Nome string `json:"nome"`
	}
	decode(t, w, &catalogo)
	require.Len(t, catalogo, 3)

	// Two of the first product in the cart.
	produtoID := catalogo[0].ID
	for i := 0; i < 2; i++ {
		w = do(t, r, http.MethodPost, "/v1/pedidos/carrinho/itens", token, gin.H{"produto_id": produtoID})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	}

	var cart struct {
		Items []struct {
			Quantidade int `json:"quantidade"`
		} `json:"items"`
	}
	decode(t, w, &cart)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantidade)

	// Submit to the kitchen.
	w = do(t, r, http.MethodPost, "/v1/pedidos", token, nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	var pedido struct {
		ID     string `json:"id"`
		Numero int    `json:"numero"`
		Status string `json:"status"`
	}
	decode(t, w, &pedido)
	assert.Equal(t, 1, pedido.Numero)
	assert.Equal(t, "novo", pedido.Status)

	// Cart is empty now, a second submit is rejected.
	w = do(t, r, http.MethodPost, "/v1/pedidos", token, nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// The kitchen sees it and concludes it.
	w = do(t, r, http.MethodGet, "/v1/cozinha/pedidos", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var fila struct {
		Total int `json:"total"`
	}
	decode(t, w, &fila)
	assert.Equal(t, 1, fila.Total)

	w = do(t, r, http.MethodPost, "/v1/cozinha/pedidos/"+pedido.ID+"/concluir", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// Terminal orders reject further transitions.
	w = do(t, r, http.MethodPost, "/v1/cozinha/pedidos/"+pedido.ID+"/cancelar", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	// The sale shows up on the dashboard.
	w = do(t, r, http.MethodGet, "/v1/dashboard/resumo", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var resumo struct {
		VendasHoje json.Number `json:"vendas_hoje"`
	}
	decode(t, w, &resumo)
	assert.Equal(t, "36", resumo.VendasHoje.String())

	// Receipt downloads as PDF.
	w = do(t, r, http.MethodGet, "/v1/pedidos/"+pedido.ID+"/recibo", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.HasPrefix(w.Body.Bytes(), []byte("%PDF")))
}

func TestCicloDeCaixa(t *testing.T) {
	r := newTestServer(t)
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/v1/caixa/atual", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodPost, "/v1/caixa/abrir", token, nil)
	require.Equal(t, http.StatusCreated, w.Code)

	w = do(t, r, http.MethodPost, "/v1/caixa/abrir", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)

	w = do(t, r, http.MethodGet, "/v1/caixa/atual", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/v1/caixa/fechar", token, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = do(t, r, http.MethodPost, "/v1/caixa/fechar", token, nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCadastrosCRUD(t *testing.T) {
	r := newTestServer(t)
	token := login(t, r)

	w := do(t, r, http.MethodPost, "/v1/cadastros/ingredientes", token, gin.H{"nome": "Tomate", "detalhe": "kg"})
	require.Equal(t, http.StatusCreated, w.Code)
	var criado struct {
		ID string `json:"id"`
	}
	decode(t, w, &criado)

	w = do(t, r, http.MethodPost, "/v1/cadastros/ingredientes", token, gin.H{"nome": "  "})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodGet, "/v1/cadastros/clientes", token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = do(t, r, http.MethodDelete, "/v1/cadastros/ingredientes/"+criado.ID, token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(t, r, http.MethodGet, "/v1/cadastros/ingredientes", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	var lista []json.RawMessage
	decode(t, w, &lista)
	assert.Empty(t, lista)
}

func TestFiltroDeStatusInvalido(t *testing.T) {
	r := newTestServer(t)
	token := login(t, r)

	w := do(t, r, http.MethodGet, "/v1/pedidos?status=entregue", token, nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)

	w = do(t, r, http.MethodPost, "/v1/pedidos/carrinho/itens", token, gin.H{})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}
