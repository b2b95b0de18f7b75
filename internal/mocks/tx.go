package mocks

import (
	"context"

	"github.com/phrazzld/quill-api/internal/store"
)

// PassthroughTxRunner returns a store.TxRunner that invokes the function
// directly with a nil transaction. It pairs with the mock stores, whose
// WithTx returns the store itself.
func PassthroughTxRunner() store.TxRunner {
	return func(ctx context.Context, fn store.TxFn) error {
		return fn(ctx, nil)
	}
}
