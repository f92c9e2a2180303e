package dto

// CriarCadastroRequest — nome is validated in the service after trimming, the
// same rule the registry forms applied ("Informe o nome.").
type CriarCadastroRequest struct {
	Nome    string `json:"nome"`
	Detalhe string `json:"detalhe"`
}

type CadastroResponse struct {
	ID        string `json:"id"`
	Nome      string `json:"nome"`
	Detalhe   string `json:"detalhe"`
	CreatedAt string `json:"created_at"`
}
