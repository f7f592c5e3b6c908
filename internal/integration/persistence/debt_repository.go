// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
	"github.com/finance-tracker/ledger/internal/integration/persistence/model"
)

// debtRepository implements the adapter.DebtRepository interface.
type debtRepository struct {
	db *gorm.DB
}

// NewDebtRepository creates a new debt repository instance.
func NewDebtRepository(db *gorm.DB) adapter.DebtRepository {
	return &debtRepository{
		db: db,
	}
}

// Create creates a new debt in the database.
func (r *debtRepository) Create(ctx context.Context, debt *entity.Debt) error {
	debtModel := model.DebtFromEntity(debt)
	result := r.db.WithContext(ctx).Create(debtModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves a debt by its ID.
func (r *debtRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Debt, error) {
	var debtModel model.DebtModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&debtModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrDebtNotFound
		}
		return nil, result.Error
	}
	return debtModel.ToEntity(), nil
}

// FindAllWithPayments retrieves every debt, oldest first, with its payments.
// Debts and payments are read in the same transaction so progress figures
// never mix two states of the store.
func (r *debtRepository) FindAllWithPayments(ctx context.Context) ([]*entity.DebtWithPayments, error) {
	var (
		debtModels    []model.DebtModel
		paymentModels []model.TransactionModel
	)

	err := readSnapshot(ctx, r.db, func(tx *gorm.DB) error {
		if err := tx.Order("created_at ASC").Find(&debtModels).Error; err != nil {
			return err
		}
		if len(debtModels) == 0 {
			return nil
		}

		ids := make([]uuid.UUID, len(debtModels))
		for i := range debtModels {
			ids[i] = debtModels[i].ID
		}
		return tx.
			Where("type = ?", string(entity.TransactionTypeDebtPayment)).
			Where("debt_id IN ?", ids).
			Find(&paymentModels).Error
	})
	if err != nil {
		return nil, err
	}

	byDebt := make(map[uuid.UUID][]*entity.Transaction, len(debtModels))
	for _, payment := range model.TransactionsToEntities(paymentModels) {
		byDebt[*payment.DebtID] = append(byDebt[*payment.DebtID], payment)
	}

	debts := make([]*entity.DebtWithPayments, len(debtModels))
	for i := range debtModels {
		debt := debtModels[i].ToEntity()
		debts[i] = &entity.DebtWithPayments{
			Debt:     debt,
			Payments: byDebt[debt.ID],
		}
	}
	return debts, nil
}

// Delete removes a debt from the database. Payment transactions keep their reference.
func (r *debtRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.DebtModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
