package model

import "time"

// Registry kinds. Each kind maps to its own store key.
const (
	CadastroIngredientes = "ingredientes"
	CadastroProdutos     = "produtos"
	CadastroFornecedores = "fornecedores"
)

// TipoCadastroValido reports whether tipo names a known registry.
func TipoCadastroValido(tipo string) bool {
	switch tipo {
	case CadastroIngredientes, CadastroProdutos, CadastroFornecedores:
		return true
	}
	return false
}

// Cadastro is a generic registry entry (ingredient, product or supplier).
// ID is a generated uuid — deletion is by ID, never by list position.
type Cadastro struct {
	ID        string    `json:"id"`
	Nome      string    `json:"nome"`
	Detalhe   string    `json:"detalhe"`
	CreatedAt time.Time `json:"created_at"`
}
