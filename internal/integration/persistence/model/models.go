// Package model defines database models for persistence layer.
package model

// All returns every model that makes up the schema, in migration order.
func All() []any {
	return []any{
		&DebtModel{},
		&TransactionModel{},
		&InvestmentModel{},
	}
}
