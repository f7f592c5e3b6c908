// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"

	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// ledgerReader implements the adapter.LedgerReader interface.
type ledgerReader struct {
	db *gorm.DB
}

// NewLedgerReader creates a new ledger reader instance.
func NewLedgerReader(db *gorm.DB) adapter.LedgerReader {
	return &ledgerReader{
		db: db,
	}
}

// LoadSnapshot reads all three tables inside one read transaction.
func (r *ledgerReader) LoadSnapshot(ctx context.Context) (*entity.LedgerSnapshot, error) {
	var (
		transactionModels []model.TransactionModel
		debtModels        []model.DebtModel
		investmentModels  []model.InvestmentModel
	)

	err := readSnapshot(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Find(&transactionModels).Error; err != nil {
			return err
		}
		if err := tx.Find(&debtModels).Error; err != nil {
			return err
		}
		return tx.Find(&investmentModels).Error
	})
	if err != nil {
		return nil, err
	}

	snapshot := &entity.LedgerSnapshot{
		Transactions: model.TransactionsToEntities(transactionModels),
		Debts:        make([]*entity.Debt, len(debtModels)),
		Investments:  make([]*entity.Investment, len(investmentModels)),
	}
	for i := range debtModels {
		snapshot.Debts[i] = debtModels[i].ToEntity()
	}
	for i := range investmentModels {
		snapshot.Investments[i] = investmentModels[i].ToEntity()
	}
	return snapshot, nil
}
