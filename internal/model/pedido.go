package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Pedido status values. Concluido and cancelado are terminal — once an order
// leaves "novo" it never comes back.
const (
	StatusNovo      = "novo"
	StatusConcluido = "concluido"
	StatusCancelado = "cancelado"
)

// ItemPedido is a snapshot of one cart line at submission time. It copies the
// product name and price so later catalog edits never rewrite order history.
type ItemPedido struct {
	ProdutoID     string          `json:"produto_id"`
	Nome          string          `json:"nome"`
	PrecoUnitario decimal.Decimal `json:"preco_unitario"`
	Quantidade    int             `json:"quantidade"`
	Subtotal      decimal.Decimal `json:"subtotal"`
}

// Pedido is a submitted order. Immutable except for Status.
// Invariant: Total equals the sum of item subtotals at submission time.
type Pedido struct {
	ID        string          `json:"id"`
	Numero    int             `json:"numero"`
	Items     []ItemPedido    `json:"items"`
	Total     decimal.Decimal `json:"total"`
	Status    string          `json:"status"`
	UsuarioID string          `json:"usuario_id"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// Terminal reports whether the order reached a final status.
func (p *Pedido) Terminal() bool {
	return p.Status == StatusConcluido || p.Status == StatusCancelado
}
