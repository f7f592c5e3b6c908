// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/finance-tracker/ledger/internal/domain/entity"
)

// LedgerReader reads the whole record set in one consistent snapshot.
type LedgerReader interface {
	// LoadSnapshot returns every transaction, debt and investment as seen by a single read transaction.
	LoadSnapshot(ctx context.Context) (*entity.LedgerSnapshot, error)
}
