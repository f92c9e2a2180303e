package dto

import "github.com/shopspring/decimal"

type PeriodoResumo struct {
	Total       decimal.Decimal `json:"total"`
	MaisVendido string          `json:"mais_vendido"`
}

type VariacaoResponse struct {
	Monto decimal.Decimal `json:"monto"`
	Pct   decimal.Decimal `json:"pct"`
}

// ComparativoResponse compares the current 7-day window against the previous
// one, replacing the simulation page's hard-coded mock figures.
type ComparativoResponse struct {
	Atual    PeriodoResumo    `json:"atual"`
	Anterior PeriodoResumo    `json:"anterior"`
	Variacao VariacaoResponse `json:"variacao"`
}
