// Package adaptertest provides in-memory adapter implementations for use case tests.
package adaptertest

import (
	"context"
	"sort"
	"sync"

	"github.com/google/uuid"

	"github.com/finance-tracker/ledger/internal/application/adapter"
	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// Store is an in-memory ledger implementing every repository adapter.
// Setting Err makes every call fail with it.
type Store struct {
	mu           sync.Mutex
	transactions []*entity.Transaction
	debts        []*entity.Debt
	investments  []*entity.Investment

	Err error
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{}
}

// Transactions returns the TransactionRepository view of the store.
func (s *Store) Transactions() adapter.TransactionRepository { return transactionRepo{s} }

// Debts returns the DebtRepository view of the store.
func (s *Store) Debts() adapter.DebtRepository { return debtRepo{s} }

// Investments returns the InvestmentRepository view of the store.
func (s *Store) Investments() adapter.InvestmentRepository { return investmentRepo{s} }

// Ledger returns the LedgerReader view of the store.
func (s *Store) Ledger() adapter.LedgerReader { return ledgerReader{s} }

type transactionRepo struct{ s *Store }

func (r transactionRepo) Create(_ context.Context, transaction *entity.Transaction) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	copied := *transaction
	r.s.transactions = append(r.s.transactions, &copied)
	return nil
}

func (r transactionRepo) FindByFilter(_ context.Context, filter adapter.TransactionFilter) ([]*entity.Transaction, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	var result []*entity.Transaction
	for _, t := range r.s.transactions {
		if filter.StartDate != nil && t.Date.Before(*filter.StartDate) {
			continue
		}
		if filter.EndDate != nil && t.Date.After(*filter.EndDate) {
			continue
		}
		if filter.Type != nil && t.Type != *filter.Type {
			continue
		}
		copied := *t
		result = append(result, &copied)
	}

	sort.SliceStable(result, func(i, j int) bool {
		if !result[i].Date.Equal(result[j].Date) {
			return result[i].Date.After(result[j].Date)
		}
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	if filter.Limit > 0 && len(result) > filter.Limit {
		result = result[:filter.Limit]
	}
	return result, nil
}

func (r transactionRepo) Count(_ context.Context) (int64, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return 0, r.s.Err
	}
	return int64(len(r.s.transactions)), nil
}

func (r transactionRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, t := range r.s.transactions {
		if t.ID == id {
			r.s.transactions = append(r.s.transactions[:i], r.s.transactions[i+1:]...)
			break
		}
	}
	return nil
}

type debtRepo struct{ s *Store }

func (r debtRepo) Create(_ context.Context, debt *entity.Debt) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	copied := *debt
	r.s.debts = append(r.s.debts, &copied)
	return nil
}

func (r debtRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Debt, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, d := range r.s.debts {
		if d.ID == id {
			copied := *d
			return &copied, nil
		}
	}
	return nil, domainerror.ErrDebtNotFound
}

func (r debtRepo) FindAllWithPayments(_ context.Context) ([]*entity.DebtWithPayments, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	result := make([]*entity.DebtWithPayments, 0, len(r.s.debts))
	for _, d := range r.s.debts {
		debt := *d
		item := &entity.DebtWithPayments{Debt: &debt}
		for _, t := range r.s.transactions {
			if t.IsPaymentFor(d.ID) {
				copied := *t
				item.Payments = append(item.Payments, &copied)
			}
		}
		result = append(result, item)
	}
	return result, nil
}

func (r debtRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, d := range r.s.debts {
		if d.ID == id {
			r.s.debts = append(r.s.debts[:i], r.s.debts[i+1:]...)
			break
		}
	}
	return nil
}

type investmentRepo struct{ s *Store }

func (r investmentRepo) Create(_ context.Context, investment *entity.Investment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	copied := *investment
	r.s.investments = append(r.s.investments, &copied)
	return nil
}

func (r investmentRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Investment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	for _, inv := range r.s.investments {
		if inv.ID == id {
			copied := *inv
			return &copied, nil
		}
	}
	return nil, domainerror.ErrInvestmentNotFound
}

func (r investmentRepo) FindAll(_ context.Context) ([]*entity.Investment, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}
	result := make([]*entity.Investment, len(r.s.investments))
	for i, inv := range r.s.investments {
		copied := *inv
		result[i] = &copied
	}
	return result, nil
}

func (r investmentRepo) Update(_ context.Context, investment *entity.Investment) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, inv := range r.s.investments {
		if inv.ID == investment.ID {
			copied := *investment
			r.s.investments[i] = &copied
			return nil
		}
	}
	return domainerror.ErrInvestmentNotFound
}

func (r investmentRepo) Delete(_ context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return r.s.Err
	}
	for i, inv := range r.s.investments {
		if inv.ID == id {
			r.s.investments = append(r.s.investments[:i], r.s.investments[i+1:]...)
			break
		}
	}
	return nil
}

type ledgerReader struct{ s *Store }

func (r ledgerReader) LoadSnapshot(_ context.Context) (*entity.LedgerSnapshot, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	if r.s.Err != nil {
		return nil, r.s.Err
	}

	snapshot := &entity.LedgerSnapshot{}
	for _, t := range r.s.transactions {
		copied := *t
		snapshot.Transactions = append(snapshot.Transactions, &copied)
	}
	for _, d := range r.s.debts {
		copied := *d
		snapshot.Debts = append(snapshot.Debts, &copied)
	}
	for _, inv := range r.s.investments {
		copied := *inv
		snapshot.Investments = append(snapshot.Investments, &copied)
	}
	return snapshot, nil
}
