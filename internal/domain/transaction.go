package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TypeDeposit    TransactionType = "Deposit"
	TypeWithdrawal TransactionType = "Withdrawal"
)

// TimeLayout is the second-precision timestamp format written to the ledger.
const TimeLayout = "2006-01-02 15:04:05"

// Transaction is one immutable ledger entry. The account number is carried
// by the ledger row, not the entry itself; an Account's History holds only
// its own entries.
type Transaction struct {
	Type   TransactionType `json:"type"`
	Amount decimal.Decimal `json:"amount"`
	Date   string          `json:"date"`
}

type TransactionRepository interface {
	Append(accountNumber string, txn Transaction) error
	LoadForAccount(accountNumber string) ([]Transaction, error)
}

// CurrentTimestamp returns the local wall-clock time in ledger format.
func CurrentTimestamp() string {
	return time.Now().Format(TimeLayout)
}
