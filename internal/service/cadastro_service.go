package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"estoquefacil/internal/dto"
	"estoquefacil/internal/model"
	"estoquefacil/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrNomeObrigatorio = errors.New("informe o nome")
	ErrTipoInvalido    = errors.New("tipo de cadastro desconhecido")
)

// CadastroService is the one generic create/list/delete shared by the three
// registries — the frontend duplicated this logic per page.
type CadastroService interface {
	Listar(ctx context.Context, tipo string) ([]dto.CadastroResponse, error)
	Criar(ctx context.Context, tipo string, req dto.CriarCadastroRequest) (*dto.CadastroResponse, error)
	Excluir(ctx context.Context, tipo, id string) error
}

type cadastroService struct {
	repo repository.CadastroRepository
}

func NewCadastroService(repo repository.CadastroRepository) CadastroService {
	return &cadastroService{repo: repo}
}

func (s *cadastroService) Listar(ctx context.Context, tipo string) ([]dto.CadastroResponse, error) {
	if !model.TipoCadastroValido(tipo) {
		return nil, ErrTipoInvalido
	}
	entries, err := s.repo.List(ctx, tipo)
	if err != nil {
		return nil, err
	}
	resp := make([]dto.CadastroResponse, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, cadastroResponse(e))
	}
	return resp, nil
}

func (s *cadastroService) Criar(ctx context.Context, tipo string, req dto.CriarCadastroRequest) (*dto.CadastroResponse, error) {
	if !model.TipoCadastroValido(tipo) {
		return nil, ErrTipoInvalido
	}
	nome := strings.TrimSpace(req.Nome)
	if nome == "" {
		return nil, ErrNomeObrigatorio
	}
	entry := &model.Cadastro{
		ID:        uuid.NewString(),
		Nome:      nome,
		Detalhe:   strings.TrimSpace(req.Detalhe),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Append(ctx, tipo, entry); err != nil {
		return nil, err
	}
	resp := cadastroResponse(*entry)
	return &resp, nil
}

func (s *cadastroService) Excluir(ctx context.Context, tipo, id string) error {
	if !model.TipoCadastroValido(tipo) {
		return ErrTipoInvalido
	}
	return s.repo.Delete(ctx, tipo, id)
}

func cadastroResponse(e model.Cadastro) dto.CadastroResponse {
	return dto.CadastroResponse{
		ID:        e.ID,
		Nome:      e.Nome,
		Detalhe:   e.Detalhe,
		CreatedAt: e.CreatedAt.Format(time.RFC3339),
	}
}
