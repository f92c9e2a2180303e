package service

import (
	"context"
	"errors"
	"time"

	"estoquefacil/internal/dto"
	"estoquefacil/internal/model"
	"estoquefacil/internal/repository"
	"estoquefacil/internal/worker"

	"github.com/google/uuid"
)

var (
	ErrCarrinhoVazio  = errors.New("adicione itens ao pedido")
	ErrProdutoInativo = errors.New("produto inativo não pode ser vendido")
)

// PedidoService covers the order workflow: cart manipulation plus the single
// write path into the persisted order collection.
type PedidoService interface {
	AdicionarItem(ctx context.Context, usuarioID, produtoID string) (*dto.CarrinhoResponse, error)
	RemoverItem(ctx context.Context, usuarioID, produtoID string) *dto.CarrinhoResponse
	AtualizarQuantidade(ctx context.Context, usuarioID, produtoID, raw string) *dto.CarrinhoResponse
	VerCarrinho(ctx context.Context, usuarioID string) *dto.CarrinhoResponse
	// Enviar submits the cart: appends one Pedido with status "novo" whose
	// total equals the cart total at submission time, then clears the cart.
	Enviar(ctx context.Context, usuarioID string) (*dto.PedidoResponse, error)
	Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error)
	BuscarPorID(ctx context.Context, id string) (*model.Pedido, error)
}

type pedidoService struct {
	repo       repository.PedidoRepository
	catalogo   repository.CatalogoRepository
	carrinhos  *Carrinhos
	dispatcher *worker.Dispatcher
}

func NewPedidoService(
	repo repository.PedidoRepository,
	catalogo repository.CatalogoRepository,
	carrinhos *Carrinhos,
	dispatcher *worker.Dispatcher,
) PedidoService {
	return &pedidoService{
		repo:       repo,
		catalogo:   catalogo,
		carrinhos:  carrinhos,
		dispatcher: dispatcher,
	}
}

// AdicionarItem resolves the product in the catalog — the price is never
// taken from the client.
func (s *pedidoService) AdicionarItem(ctx context.Context, usuarioID, produtoID string) (*dto.CarrinhoResponse, error) {
	p, err := s.catalogo.FindByID(ctx, produtoID)
	if err != nil {
		return nil, err
	}
	if !p.Ativo {
		return nil, ErrProdutoInativo
	}
	cart := s.carrinhos.Para(usuarioID)
	cart.AddItem(p.ID, p.Nome, p.Preco)
	return carrinhoResponse(cart), nil
}

func (s *pedidoService) RemoverItem(_ context.Context, usuarioID, produtoID string) *dto.CarrinhoResponse {
	cart := s.carrinhos.Para(usuarioID)
	cart.RemoveItem(produtoID)
	return carrinhoResponse(cart)
}

func (s *pedidoService) AtualizarQuantidade(_ context.Context, usuarioID, produtoID, raw string) *dto.CarrinhoResponse {
	cart := s.carrinhos.Para(usuarioID)
	cart.SetQuantidade(produtoID, raw)
	return carrinhoResponse(cart)
}

func (s *pedidoService) VerCarrinho(_ context.Context, usuarioID string) *dto.CarrinhoResponse {
	return carrinhoResponse(s.carrinhos.Para(usuarioID))
}

func (s *pedidoService) Enviar(ctx context.Context, usuarioID string) (*dto.PedidoResponse, error) {
	cart := s.carrinhos.Para(usuarioID)
	if cart.empty() {
		return nil, ErrCarrinhoVazio
	}

	items := cart.Items()
	numero, err := s.repo.NextNumero(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	pedido := &model.Pedido{
		ID:        uuid.NewString(),
		Numero:    numero,
		Items:     items,
		Total:     totalDe(items),
		Status:    model.StatusNovo,
		UsuarioID: usuarioID,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.repo.Append(ctx, pedido); err != nil {
		return nil, err
	}

	// Stock reconciliation is best-effort: the sale already happened at the
	// counter, so a failed decrement must not fail the order.
	baixas := make(map[string]int, len(items))
	for _, it := range items {
		baixas[it.ProdutoID] += it.Quantidade
	}
	_ = s.catalogo.BaixarEstoque(ctx, baixas)

	cart.Clear()

	// Async receipt pre-generation (fire & forget)
	if s.dispatcher != nil {
		_ = s.dispatcher.EnqueueRecibo(ctx, worker.ReciboJobPayload{PedidoID: pedido.ID})
	}

	return pedidoResponse(pedido), nil
}

func (s *pedidoService) Listar(ctx context.Context, filter dto.PedidoFilter) (*dto.PedidoListResponse, error) {
	pedidos, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	data := make([]dto.PedidoResponse, 0, len(pedidos))
	for i := range pedidos {
		if filter.Status != "" && pedidos[i].Status != filter.Status {
			continue
		}
		data = append(data, *pedidoResponse(&pedidos[i]))
	}
	return &dto.PedidoListResponse{Data: data, Total: len(data)}, nil
}

func (s *pedidoService) BuscarPorID(ctx context.Context, id string) (*model.Pedido, error) {
	return s.repo.FindByID(ctx, id)
}

// ─── Mapping helpers ─────────────────────────────────────────────────────────

func carrinhoResponse(cart *Carrinho) *dto.CarrinhoResponse {
	items := cart.Items()
	resp := &dto.CarrinhoResponse{
		Items: make([]dto.ItemCarrinhoResponse, 0, len(items)),
		Total: totalDe(items),
	}
	for _, it := range items {
		resp.Items = append(resp.Items, itemResponse(it))
	}
	return resp
}

func itemResponse(it model.ItemPedido) dto.ItemCarrinhoResponse {
	return dto.ItemCarrinhoResponse{
		ProdutoID:     it.ProdutoID,
		Nome:          it.Nome,
		PrecoUnitario: it.PrecoUnitario,
		Quantidade:    it.Quantidade,
		Subtotal:      it.PrecoUnitario.Mul(decimalFromInt(it.Quantidade)),
	}
}

func pedidoResponse(p *model.Pedido) *dto.PedidoResponse {
	items := make([]dto.ItemCarrinhoResponse, 0, len(p.Items))
	for _, it := range p.Items {
		items = append(items, itemResponse(it))
	}
	return &dto.PedidoResponse{
		ID:        p.ID,
		Numero:    p.Numero,
		Items:     items,
		Total:     p.Total,
		Status:    p.Status,
		CreatedAt: p.CreatedAt.Format(time.RFC3339),
	}
}
