package repository

import (
	"github.com/charmbracelet/log"

	"bankbook/internal/config"
	"bankbook/internal/domain"
)

// Store bundles the three repositories behind one handle. There is
// deliberately no cross-repository transaction boundary: a ledger append
// and the matching record rewrite are two independent writes, and a crash
// between them can leave the files inconsistent.
type Store struct {
	accounts     domain.AccountRepository
	transactions domain.TransactionRepository
	sequence     domain.NumberAllocator
}

// NewFileStore wires the flat-file repositories for the configured paths.
func NewFileStore(cfg *config.Config, logger *log.Logger) *Store {
	return &Store{
		accounts:     NewFileAccountRepository(cfg.AccountsFile, logger),
		transactions: NewFileTransactionRepository(cfg.TransactionsFile, logger),
		sequence:     NewFileNumberAllocator(cfg.SequenceFile, logger),
	}
}

// NewMemoryStore wires the in-memory doubles, for tests.
func NewMemoryStore() *Store {
	return &Store{
		accounts:     NewMemoryAccountRepository(),
		transactions: NewMemoryTransactionRepository(),
		sequence:     NewMemoryNumberAllocator(),
	}
}

func (s *Store) Accounts() domain.AccountRepository {
	return s.accounts
}

func (s *Store) Transactions() domain.TransactionRepository {
	return s.transactions
}

func (s *Store) Sequence() domain.NumberAllocator {
	return s.sequence
}
