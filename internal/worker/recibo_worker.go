package worker

// recibo_worker.go
// Pre-generates the PDF receipt for a submitted order so the download
// endpoint serves a cached file. Retries with backoff before giving up to
// the DLQ.

import (
	"context"
	"encoding/json"
	"time"

	"estoquefacil/internal/infra"
	"estoquefacil/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const reciboMaxAttempts = 3

// ReciboWorker processes receipt jobs from QueueRecibo.
type ReciboWorker struct {
	pedidos     repository.PedidoRepository
	storagePath string
}

func NewReciboWorker(pedidos repository.PedidoRepository, storagePath string) *ReciboWorker {
	return &ReciboWorker{pedidos: pedidos, storagePath: storagePath}
}

// Process handles a single receipt job:
//  1. Parse ReciboJobPayload from the job envelope
//  2. Fetch the Pedido from the store
//  3. Render the PDF with backoff (max 3 attempts)
//  4. On exhaustion, park the job in the DLQ
func (w *ReciboWorker) Process(ctx context.Context, rdb *redis.Client, raw json.RawMessage) {
	var payload ReciboJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("recibo_worker: invalid payload")
		return
	}

	pedido, err := w.pedidos.FindByID(ctx, payload.PedidoID)
	if err != nil {
		log.Error().Err(err).Str("pedido_id", payload.PedidoID).Msg("recibo_worker: pedido not found")
		SendToDLQ(ctx, rdb, QueueRecibo, "recibo", raw, err.Error(), 0)
		return
	}

	var lastErr error
	for attempt := 1; attempt <= reciboMaxAttempts; attempt++ {
		path, err := infra.GenerateReciboPDF(pedido, w.storagePath)
		if err == nil {
			log.Info().
				Str("pedido_id", pedido.ID).
				Int("numero", pedido.Numero).
				Str("path", path).
				Msg("recibo_worker: receipt generated")
			return
		}
		lastErr = err
		log.Warn().Err(err).Int("attempt", attempt).Str("pedido_id", pedido.ID).Msg("recibo_worker: generation failed")

		select {
		case <-ctx.Done():
			return
		case <-time.After(time.Duration(attempt) * time.Second):
		}
	}

	SendToDLQ(ctx, rdb, QueueRecibo, "recibo", raw, lastErr.Error(), reciboMaxAttempts)
}
