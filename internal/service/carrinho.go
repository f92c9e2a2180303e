package service

import (
	"strconv"
	"sync"

	"estoquefacil/internal/model"

	"github.com/shopspring/decimal"
)

// Carrinho is the in-memory order draft one attendant builds before
// submission. It never touches the store — submission snapshots it into a
// Pedido and clears it.
type Carrinho struct {
	mu    sync.Mutex
	items []model.ItemPedido
}

// AddItem increments the quantity when the product is already in the cart,
// otherwise appends a new line with quantity 1.
func (c *Carrinho) AddItem(produtoID, nome string, preco decimal.Decimal) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProdutoID == produtoID {
			c.items[i].Quantidade++
			return
		}
	}
	c.items = append(c.items, model.ItemPedido{
		ProdutoID:     produtoID,
		Nome:          nome,
		PrecoUnitario: preco,
		Quantidade:    1,
	})
}

// RemoveItem drops every line with that product id. No-op if absent.
func (c *Carrinho) RemoveItem(produtoID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	kept := c.items[:0]
	for _, it := range c.items {
		if it.ProdutoID != produtoID {
			kept = append(kept, it)
		}
	}
	c.items = kept
}

// SetQuantidade parses raw as an integer and clamps to a minimum of 1 —
// unparseable or non-positive input becomes 1. Unknown ids are a no-op.
func (c *Carrinho) SetQuantidade(produtoID, raw string) {
	qtd, err := strconv.Atoi(raw)
	if err != nil || qtd < 1 {
		qtd = 1
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.items {
		if c.items[i].ProdutoID == produtoID {
			c.items[i].Quantidade = qtd
			return
		}
	}
}

// Total folds preço × quantidade over the cart. Zero for an empty cart.
func (c *Carrinho) Total() decimal.Decimal {
	c.mu.Lock()
	defer c.mu.Unlock()
	return totalDe(c.items)
}

// Items returns a snapshot with per-line subtotals filled in.
func (c *Carrinho) Items() []model.ItemPedido {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]model.ItemPedido, len(c.items))
	for i, it := range c.items {
		it.Subtotal = it.PrecoUnitario.Mul(decimal.NewFromInt(int64(it.Quantidade)))
		out[i] = it
	}
	return out
}

// Clear empties the cart.
func (c *Carrinho) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = nil
}

func (c *Carrinho) empty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items) == 0
}

func decimalFromInt(n int) decimal.Decimal {
	return decimal.NewFromInt(int64(n))
}

func totalDe(items []model.ItemPedido) decimal.Decimal {
	total := decimal.Zero
	for _, it := range items {
		total = total.Add(it.PrecoUnitario.Mul(decimal.NewFromInt(int64(it.Quantidade))))
	}
	return total
}

// Carrinhos holds one cart per authenticated user. This replaces the
// original's single page-global cart so two attendants never share a draft.
type Carrinhos struct {
	mu    sync.Mutex
	carts map[string]*Carrinho
}

func NewCarrinhos() *Carrinhos {
	return &Carrinhos{carts: make(map[string]*Carrinho)}
}

// Para returns the cart for usuarioID, creating it on first use.
func (r *Carrinhos) Para(usuarioID string) *Carrinho {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, ok := r.carts[usuarioID]
	if !ok {
		c = &Carrinho{}
		r.carts[usuarioID] = c
	}
	return c
}
