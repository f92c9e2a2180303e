package model

import "time"

// Cash session states.
const (
	CaixaAberta  = "aberta"
	CaixaFechada = "fechada"
)

// SessaoCaixa tracks the open/close lifecycle of the cash register.
// At most one session is open at a time.
type SessaoCaixa struct {
	ID        string     `json:"id"`
	UsuarioID string     `json:"usuario_id"`
	Estado    string     `json:"estado"`
	OpenedAt  time.Time  `json:"opened_at"`
	ClosedAt  *time.Time `json:"closed_at,omitempty"`
}
