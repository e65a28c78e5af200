package models

import (
	"time"

	"github.com/google/uuid"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

func ValidTransactionType(t string) bool {
	return TransactionType(t) == TransactionTypeIncome || TransactionType(t) == TransactionTypeExpense
}

type Division string

const (
	DivisionOffice   Division = "office"
	DivisionPersonal Division = "personal"
)

func ValidDivision(d string) bool {
	return Division(d) == DivisionOffice || Division(d) == DivisionPersonal
}

// EditWindow is how long after creation a transaction stays mutable.
const EditWindow = 12 * time.Hour

type Transaction struct {
	ID          uuid.UUID       `db:"id"`
	UserID      uuid.UUID       `db:"user_id"`
	Type        TransactionType `db:"type"`
	Amount      float64         `db:"amount"`
	Category    string          `db:"category"`
	Division    Division        `db:"division"`
	Description string          `db:"description"`
	Date        time.Time       `db:"date"`
	Account     string          `db:"account"`
	CreatedAt   time.Time       `db:"created_at"`
	UpdatedAt   time.Time       `db:"updated_at"`
}

// CanEdit reports whether the transaction is still inside its edit window at
// the given instant. The comparison is strict: exactly EditWindow elapsed
// means frozen.
func (t *Transaction) CanEdit(now time.Time) bool {
	return now.Sub(t.CreatedAt) < EditWindow
}
