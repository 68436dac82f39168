// Package store defines the persistence port for transaction records.
package store

import (
	"context"

	"expensetracker/internal/core"
)

// FetchLimit caps how many records a single unfiltered read returns.
const FetchLimit = 1000

// TransactionStore is the outbound port to the document store.
type TransactionStore interface {
	// Insert persists a new transaction record.
	Insert(ctx context.Context, t core.Transaction) error

	// FindAll returns up to FetchLimit records in storage order.
	FindAll(ctx context.Context) ([]core.Transaction, error)

	// DeleteByID removes the record with the given id and reports how many
	// records were removed (0 when the id does not exist).
	DeleteByID(ctx context.Context, id string) (int64, error)
}
