package memory

import (
	"context"

	"github.com/staffhub/staffhub-backend-go/internal/pkg/database"
)

type txKey struct{}

type transactor struct {
	store *Store
}

func NewTransactor(store *Store) database.Transactor {
	return &transactor{store: store}
}

// WithinTransaction restores the store to its prior state when fn fails or
// panics. A nested call joins the outer transaction.
func (t *transactor) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(bool); ok {
		return fn(ctx)
	}

	t.store.txMu.Lock()
	defer t.store.txMu.Unlock()

	snap := t.store.snapshot()
	defer func() {
		if p := recover(); p != nil {
			t.store.restore(snap)
			panic(p)
		}
		if err != nil {
			t.store.restore(snap)
		}
	}()

	return fn(context.WithValue(ctx, txKey{}, true))
}

// lockWrites holds txMu for a write made outside a transaction, so it lands
// either before a snapshot is taken or after the transaction ends. Writes
// inside a transaction already run under txMu.
func (s *Store) lockWrites(ctx context.Context) func() {
	if _, ok := ctx.Value(txKey{}).(bool); ok {
		return func() {}
	}
	s.txMu.Lock()
	return s.txMu.Unlock
}
