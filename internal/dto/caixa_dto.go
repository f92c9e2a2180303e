package dto

type SessaoCaixaResponse struct {
	ID        string  `json:"id"`
	UsuarioID string  `json:"usuario_id"`
	Estado    string  `json:"estado"`
	OpenedAt  string  `json:"opened_at"`
	ClosedAt  *string `json:"closed_at,omitempty"`
}
