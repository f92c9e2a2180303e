package dto

import "github.com/shopspring/decimal"

// ─── Carrinho ────────────────────────────────────────────────────────────────

type AdicionarItemRequest struct {
	ProdutoID string `json:"produto_id" validate:"required"`
}

// AtualizarQuantidadeRequest carries the raw quantity input. It is parsed
// server-side; unparseable or non-positive values coerce to 1, matching the
// order page's input behavior.
type AtualizarQuantidadeRequest struct {
	Quantidade string `json:"quantidade" validate:"required"`
}

type ItemCarrinhoResponse struct {
	ProdutoID     string          `json:"produto_id"`
	Nome          string          `json:"nome"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Quantidade    int             `json:"quantidade"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

type CarrinhoResponse struct {
	Items []ItemCarrinhoResponse `json:"items"`
	Total decimal.Decimal        `json:"total"`
}

// ─── Pedidos ─────────────────────────────────────────────────────────────────

// PedidoFilter is bound from the query string of GET /v1/pedidos.
type PedidoFilter struct {
	Status string `form:"status" validate:"omitempty,oneof=novo concluido cancelado"`
}

type PedidoResponse struct {
	ID        string                 `json:"id"`
	Numero    int                    `json:"numero"`
	Items     []ItemCarrinhoResponse `json:"items"`
	Total     decimal.Decimal        `json:"total"`
	Status    string                 `json:"status"`
	CreatedAt string                 `json:"created_at"`
}

type PedidoListResponse struct {
	Data  []PedidoResponse `json:"data"`
	Total int              `json:"total"`
}
