package dto

import "github.com/shopspring/decimal"

type TopItemResponse struct {
	Nome       string `json:"nome"`
	Quantidade int    `json:"quantidade"`
}

type EstoqueCriticoResponse struct {
	Nome          string `json:"nome"`
	EstoqueAtual  int    `json:"estoque_atual"`
	EstoqueMinimo int    `json:"estoque_minimo"`
}

type ResumoResponse struct {
	VendasHoje     decimal.Decimal          `json:"vendas_hoje"`
	TopItens       []TopItemResponse        `json:"top_itens"`
	EstoqueCritico []EstoqueCriticoResponse `json:"estoque_critico"`
}
