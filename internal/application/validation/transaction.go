package validation

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/finance-tracker/ledger/internal/domain/entity"
	domainerror "github.com/finance-tracker/ledger/internal/domain/error"
)

// RawTransaction is an unvalidated transaction creation request.
// A nil field was not supplied by the client.
type RawTransaction struct {
	Type     *string
	Category *string
	Amount   *string
	Date     *string
	Notes    *string
	DebtID   *string
}

// Transaction validates raw and returns a transaction ready for storage.
// Rules are checked in field order and the first violation is returned.
func Transaction(raw RawTransaction) (*entity.Transaction, error) {
	txnType, err := transactionType(raw.Type)
	if err != nil {
		return nil, err
	}

	category, err := requiredText("category", raw.Category, MaxCategoryLength)
	if err != nil {
		return nil, err
	}

	amount, err := money("amount", raw.Amount, decimal.Zero, true)
	if err != nil {
		return nil, err
	}

	date := time.Now().UTC()
	if present(raw.Date) {
		date, _, err = parseDate("date", *raw.Date)
		if err != nil {
			return nil, err
		}
	}

	notes, err := optionalNotes(raw.Notes)
	if err != nil {
		return nil, err
	}

	debtID, err := debtReference(txnType, raw.DebtID)
	if err != nil {
		return nil, err
	}

	return entity.NewTransaction(date, txnType, category, amount, notes, debtID), nil
}

// ParseTransactionType validates a transaction type given under field.
func ParseTransactionType(field, raw string) (entity.TransactionType, error) {
	txnType := entity.TransactionType(strings.TrimSpace(raw))
	if !txnType.IsValid() {
		return "", domainerror.NewValidationError(
			domainerror.ErrCodeInvalidType,
			field,
			fmt.Sprintf("%s must be one of 'income', 'expense' or 'debt_payment'", field),
			domainerror.ErrInvalidTransactionType,
		)
	}
	return txnType, nil
}

func transactionType(raw *string) (entity.TransactionType, error) {
	if !present(raw) {
		return "", domainerror.NewValidationError(
			domainerror.ErrCodeMissingField,
			"type",
			"type is required",
			domainerror.ErrMissingField,
		)
	}
	return ParseTransactionType("type", *raw)
}

func optionalNotes(raw *string) (*string, error) {
	if !present(raw) {
		return nil, nil
	}
	notes := strings.TrimSpace(*raw)
	if utf8.RuneCountInString(notes) > MaxNotesLength {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeFieldTooLong,
			"notes",
			fmt.Sprintf("notes must not exceed %d characters", MaxNotesLength),
			domainerror.ErrFieldTooLong,
		)
	}
	return &notes, nil
}

// debtReference enforces that a debt reference is present exactly when the
// transaction is a debt payment.
func debtReference(txnType entity.TransactionType, raw *string) (*uuid.UUID, error) {
	if txnType != entity.TransactionTypeDebtPayment {
		if present(raw) {
			return nil, domainerror.NewValidationError(
				domainerror.ErrCodeUnexpectedReference,
				"debtId",
				"debtId is only allowed for debt_payment transactions",
				domainerror.ErrUnexpectedReference,
			)
		}
		return nil, nil
	}

	if !present(raw) {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeMissingField,
			"debtId",
			"debtId is required for debt_payment transactions",
			domainerror.ErrMissingField,
		)
	}

	id, err := uuid.Parse(strings.TrimSpace(*raw))
	if err != nil {
		return nil, domainerror.NewValidationError(
			domainerror.ErrCodeInvalidReference,
			"debtId",
			"debtId must be a valid identifier",
			domainerror.ErrInvalidReference,
		)
	}
	return &id, nil
}
