package repository

import (
	"strconv"

	"bankbook/internal/domain"
	"bankbook/internal/errors"
)

// In-memory doubles of the three repository interfaces. They mirror the
// observable semantics of the file-backed stores (first-match scans,
// silent no-op update of a missing record, counter seeded at 1000) so the
// services can be unit-tested without touching the filesystem.

type memoryAccountRepository struct {
	records []domain.Account
}

func NewMemoryAccountRepository() domain.AccountRepository {
	return &memoryAccountRepository{}
}

func (r *memoryAccountRepository) Append(account *domain.Account) error {
	stored := *account
	stored.History = nil
	r.records = append(r.records, stored)
	return nil
}

func (r *memoryAccountRepository) FindByNumber(number string) (*domain.Account, error) {
	for i := range r.records {
		if r.records[i].Number == number {
			found := r.records[i]
			return &found, nil
		}
	}
	return nil, errors.ErrAccountNotFound
}

func (r *memoryAccountRepository) Update(account *domain.Account) error {
	for i := range r.records {
		if r.records[i].Number == account.Number {
			stored := *account
			stored.History = nil
			r.records[i] = stored
			return nil
		}
	}
	// Missing record is not an error; the file store rewrites unchanged.
	return nil
}

type ledgerEntry struct {
	accountNumber string
	txn           domain.Transaction
}

type memoryTransactionRepository struct {
	entries []ledgerEntry
}

func NewMemoryTransactionRepository() domain.TransactionRepository {
	return &memoryTransactionRepository{}
}

func (r *memoryTransactionRepository) Append(accountNumber string, txn domain.Transaction) error {
	r.entries = append(r.entries, ledgerEntry{accountNumber: accountNumber, txn: txn})
	return nil
}

func (r *memoryTransactionRepository) LoadForAccount(accountNumber string) ([]domain.Transaction, error) {
	var txns []domain.Transaction
	for _, entry := range r.entries {
		if entry.accountNumber == accountNumber {
			txns = append(txns, entry.txn)
		}
	}
	return txns, nil
}

type memoryNumberAllocator struct {
	last int
}

func NewMemoryNumberAllocator() domain.NumberAllocator {
	return &memoryNumberAllocator{last: counterSeed}
}

func (a *memoryNumberAllocator) Next() (string, error) {
	a.last++
	return strconv.Itoa(a.last), nil
}
