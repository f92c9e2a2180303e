package model

import "github.com/shopspring/decimal"

// Produto is a sellable catalog entry shown on the order-taking page.
// EstoqueAtual/EstoqueMinimo feed the dashboard's critical-stock list.
type Produto struct {
	ID            string          `json:"id"`
	Nome          string          `json:"nome"`
	Preco         decimal.Decimal `json:"preco"`
	EstoqueAtual  int             `json:"estoque_atual"`
	EstoqueMinimo int             `json:"estoque_minimo"`
	Ativo         bool            `json:"ativo"`
}
