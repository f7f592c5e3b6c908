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

// investmentRepository implements the adapter.InvestmentRepository interface.
type investmentRepository struct {
	db *gorm.DB
}

// NewInvestmentRepository creates a new investment repository instance.
func NewInvestmentRepository(db *gorm.DB) adapter.InvestmentRepository {
	return &investmentRepository{
		db: db,
	}
}

// Create creates a new investment in the database.
func (r *investmentRepository) Create(ctx context.Context, investment *entity.Investment) error {
	investmentModel := model.InvestmentFromEntity(investment)
	result := r.db.WithContext(ctx).Create(investmentModel)
	if result.Error != nil {
		return result.Error
	}
	return nil
}

// FindByID retrieves an investment by its ID.
func (r *investmentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Investment, error) {
	var investmentModel model.InvestmentModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&investmentModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrInvestmentNotFound
		}
		return nil, result.Error
	}
	return investmentModel.ToEntity(), nil
}

// FindAll retrieves every investment, oldest first.
func (r *investmentRepository) FindAll(ctx context.Context) ([]*entity.Investment, error) {
	var investmentModels []model.InvestmentModel
	result := r.db.WithContext(ctx).
		Order("last_updated ASC, id ASC").
		Find(&investmentModels)
	if result.Error != nil {
		return nil, result.Error
	}

	investments := make([]*entity.Investment, len(investmentModels))
	for i := range investmentModels {
		investments[i] = investmentModels[i].ToEntity()
	}
	return investments, nil
}

// Update updates an existing investment in the database.
func (r *investmentRepository) Update(ctx context.Context, investment *entity.Investment) error {
	investmentModel := model.InvestmentFromEntity(investment)
	result := r.db.WithContext(ctx).
		Model(&model.InvestmentModel{}).
		Where("id = ?", investment.ID).
		Updates(map[string]any{
			"name":            investmentModel.Name,
			"invested_amount": investmentModel.InvestedAmount,
			"current_value":   investmentModel.CurrentValue,
			"last_updated":    investmentModel.LastUpdated,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrInvestmentNotFound
	}
	return nil
}

// Delete removes an investment from the database.
func (r *investmentRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.InvestmentModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	return nil
}
