package repository

import (
	"context"
	"errors"
	"fmt"

	"estoquefacil/internal/store"
)

// Store keys — one JSON-encoded collection per key, mirroring the ef_* layout
// the frontend persisted locally before this backend existed.
const (
	keyPedidos    = "ef:pedidos"
	keyPedidosSeq = "ef:pedidos:seq"
	keyCatalogo   = "ef:catalogo"
	keyCaixa      = "ef:caixa:sessoes"
	keyUsuarios   = "ef:usuarios"
)

func keyCadastro(tipo string) string { return "ef:cadastros:" + tipo }

// casMaxRetries bounds the read-modify-write loop. Contention here is human
// scale (a handful of terminals), so losing five races in a row means
// something is wrong — surface the conflict instead of spinning.
const casMaxRetries = 5

// mutate runs fn over the current raw value of key and writes the result back
// with CompareAndSwap, retrying on conflict. fn receives nil when the key is
// absent.
func mutate(ctx context.Context, kv store.KV, key string, fn func(current []byte) ([]byte, error)) error {
	for attempt := 0; attempt < casMaxRetries; attempt++ {
		current, version, err := kv.Get(ctx, key)
		if errors.Is(err, store.ErrNotFound) {
			current, version = nil, 0
		} else if err != nil {
			return err
		}

		next, err := fn(current)
		if err != nil {
			return err
		}

		err = kv.CompareAndSwap(ctx, key, next, version)
		if err == nil {
			return nil
		}
		if !errors.Is(err, store.ErrConflict) {
			return err
		}
	}
	return fmt.Errorf("chave %s: %w", key, store.ErrConflict)
}
