package service

import (
	"context"
	"errors"
	"time"

	"estoquefacil/internal/dto"
	"estoquefacil/internal/model"
	"estoquefacil/internal/repository"

	"github.com/google/uuid"
)

var (
	ErrCaixaJaAberto = errors.New("já existe um caixa aberto")
	ErrCaixaFechado  = errors.New("caixa fechado")
)

// CaixaService tracks the cash register open/close lifecycle.
type CaixaService interface {
	Abrir(ctx context.Context, usuarioID string) (*dto.SessaoCaixaResponse, error)
	Fechar(ctx context.Context) (*dto.SessaoCaixaResponse, error)
	Atual(ctx context.Context) (*dto.SessaoCaixaResponse, error)
}

type caixaService struct {
	repo repository.CaixaRepository
}

func NewCaixaService(repo repository.CaixaRepository) CaixaService {
	return &caixaService{repo: repo}
}

func (s *caixaService) Abrir(ctx context.Context, usuarioID string) (*dto.SessaoCaixaResponse, error) {
	sessao := &model.SessaoCaixa{
		ID:        uuid.NewString(),
		UsuarioID: usuarioID,
		Estado:    model.CaixaAberta,
		OpenedAt:  time.Now().UTC(),
	}
	// The single-open guard lives inside the repository's CAS write, so a
	// concurrent open races on the version and exactly one append lands.
	if err := s.repo.AppendAberta(ctx, sessao); err != nil {
		if errors.Is(err, repository.ErrSessaoAberta) {
			return nil, ErrCaixaJaAberto
		}
		return nil, err
	}
	return sessaoResponse(sessao), nil
}

func (s *caixaService) Fechar(ctx context.Context) (*dto.SessaoCaixaResponse, error) {
	aberta, err := s.repo.FindAberta(ctx)
	if errors.Is(err, repository.ErrSessaoNaoEncontrada) {
		return nil, ErrCaixaFechado
	}
	if err != nil {
		return nil, err
	}
	fechada, err := s.repo.Update(ctx, aberta.ID, func(sess *model.SessaoCaixa) error {
		if sess.Estado != model.CaixaAberta {
			return ErrCaixaFechado
		}
		now := time.Now().UTC()
		sess.Estado = model.CaixaFechada
		sess.ClosedAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return sessaoResponse(fechada), nil
}

func (s *caixaService) Atual(ctx context.Context) (*dto.SessaoCaixaResponse, error) {
	aberta, err := s.repo.FindAberta(ctx)
	if errors.Is(err, repository.ErrSessaoNaoEncontrada) {
		return nil, ErrCaixaFechado
	}
	if err != nil {
		return nil, err
	}
	return sessaoResponse(aberta), nil
}

func sessaoResponse(s *model.SessaoCaixa) *dto.SessaoCaixaResponse {
	resp := &dto.SessaoCaixaResponse{
		ID:        s.ID,
		UsuarioID: s.UsuarioID,
		Estado:    s.Estado,
		OpenedAt:  s.OpenedAt.Format(time.RFC3339),
	}
	if s.ClosedAt != nil {
		t := s.ClosedAt.Format(time.RFC3339)
		resp.ClosedAt = &t
	}
	return resp
}
