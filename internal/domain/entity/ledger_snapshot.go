// Package entity defines the core business entities for the domain layer.
package entity

// LedgerSnapshot is a consistent read of every record in the store.
type LedgerSnapshot struct {
	Transactions []*Transaction
	Debts        []*Debt
	Investments  []*Investment
}
