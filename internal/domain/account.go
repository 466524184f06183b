package domain

import (
	"github.com/shopspring/decimal"

	"bankbook/internal/errors"
)

// Account is the in-memory aggregate of one stored record plus its loaded
// transaction history. It exists only between a successful login (or
// creation) and logout; every login rebuilds it from the stores.
type Account struct {
	Number    string          `json:"account_number"`
	OwnerName string          `json:"owner_name"`
	Balance   decimal.Decimal `json:"balance"`
	PINHash   uint64          `json:"-"`
	History   []Transaction   `json:"-"`
}

// Authenticate hashes the entered PIN and compares it to the stored hash.
// Hash equality stands in for PIN equality; the hash is not cryptographic.
func (a *Account) Authenticate(enteredPIN string) bool {
	return a.PINHash == HashPIN(enteredPIN)
}

// Deposit unconditionally adds amount to the balance and appends a Deposit
// entry to the history. The caller is responsible for rejecting non-positive
// amounts and for persisting the entry and the updated record.
func (a *Account) Deposit(amount decimal.Decimal) Transaction {
	a.Balance = a.Balance.Add(amount)
	txn := Transaction{Type: TypeDeposit, Amount: amount, Date: CurrentTimestamp()}
	a.History = append(a.History, txn)
	return txn
}

// Withdraw subtracts amount from the balance and appends a Withdrawal entry.
// An amount greater than the balance fails with ErrInsufficientFunds and
// mutates nothing.
func (a *Account) Withdraw(amount decimal.Decimal) (Transaction, error) {
	if amount.GreaterThan(a.Balance) {
		return Transaction{}, errors.ErrInsufficientFunds
	}
	a.Balance = a.Balance.Sub(amount)
	txn := Transaction{Type: TypeWithdrawal, Amount: amount, Date: CurrentTimestamp()}
	a.History = append(a.History, txn)
	return txn, nil
}

type AccountRepository interface {
	Append(account *Account) error
	FindByNumber(number string) (*Account, error)
	Update(account *Account) error
}

// NumberAllocator issues unique, monotonically increasing account numbers.
// Next may return a valid number together with a non-nil error when the
// counter could not be persisted; the caller decides whether to proceed.
type NumberAllocator interface {
	Next() (string, error)
}
