package service

import (
	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"bankbook/internal/domain"
	"bankbook/internal/errors"
	"bankbook/internal/repository"
)

type TransactionService struct {
	store  *repository.Store
	logger *log.Logger
}

func NewTransactionService(store *repository.Store, logger *log.Logger) *TransactionService {
	return &TransactionService{
		store:  store,
		logger: logger,
	}
}

// Deposit applies a positive amount to the account, appends the ledger
// entry, and rewrites the account record. A failed ledger append is logged
// and swallowed: the deposit stands. A failed record rewrite is returned,
// leaving a ledger entry whose balance was never persisted. The two writes
// share no atomicity boundary.
func (s *TransactionService) Deposit(account *domain.Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.ErrInvalidAmount
	}

	txn := account.Deposit(amount)

	if err := s.store.Transactions().Append(account.Number, txn); err != nil {
		s.logger.Error("failed to record deposit in ledger", "account_number", account.Number,
			"amount", amount.StringFixed(2), "error", err)
	}
	if err := s.store.Accounts().Update(account); err != nil {
		return err
	}

	s.logger.Info("deposit applied", "account_number", account.Number, "amount", amount.StringFixed(2))
	return nil
}

// Withdraw applies a positive amount not exceeding the balance. An amount
// over the balance fails with ErrInsufficientFunds, mutating and persisting
// nothing: an expected business outcome, not an exceptional one.
func (s *TransactionService) Withdraw(account *domain.Account, amount decimal.Decimal) error {
	if !amount.IsPositive() {
		return errors.ErrInvalidAmount
	}

	txn, err := account.Withdraw(amount)
	if err != nil {
		return err
	}

	if err := s.store.Transactions().Append(account.Number, txn); err != nil {
		s.logger.Error("failed to record withdrawal in ledger", "account_number", account.Number,
			"amount", amount.StringFixed(2), "error", err)
	}
	if err := s.store.Accounts().Update(account); err != nil {
		return err
	}

	s.logger.Info("withdrawal applied", "account_number", account.Number, "amount", amount.StringFixed(2))
	return nil
}

// History returns the session's in-memory transaction list in load/append
// order. An empty history is a normal state.
func (s *TransactionService) History(account *domain.Account) []domain.Transaction {
	return account.History
}
