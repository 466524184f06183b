package repository

import (
	"bufio"
	"os"

	"github.com/charmbracelet/log"

	"bankbook/internal/domain"
	"bankbook/internal/errors"
)

type fileTransactionRepository struct {
	path   string
	logger *log.Logger
}

func NewFileTransactionRepository(path string, logger *log.Logger) domain.TransactionRepository {
	return &fileTransactionRepository{
		path:   path,
		logger: logger,
	}
}

// Append adds one ledger line. The ledger is append-only; entries are never
// updated or deleted.
func (r *fileTransactionRepository) Append(accountNumber string, txn domain.Transaction) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.logger.Error("failed to open transaction ledger for append", "path", r.path, "error", err)
		return errors.NewAppError(errors.StorageError, "failed to open transaction ledger").WithDetails(err.Error())
	}
	defer f.Close()

	if _, err := f.WriteString(encodeTransactionLine(accountNumber, txn) + "\n"); err != nil {
		r.logger.Error("failed to append transaction", "account_number", accountNumber, "error", err)
		return errors.NewAppError(errors.StorageError, "failed to append transaction").WithDetails(err.Error())
	}
	return nil
}

// LoadForAccount scans the whole shared ledger and keeps the rows belonging
// to the requested account, in file order. File order is chronological
// because the ledger is append-only. An absent ledger file is an empty
// history, not an error.
func (r *fileTransactionRepository) LoadForAccount(accountNumber string) ([]domain.Transaction, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		r.logger.Error("failed to open transaction ledger", "path", r.path, "error", err)
		return nil, errors.NewAppError(errors.StorageError, "failed to open transaction ledger").WithDetails(err.Error())
	}
	defer f.Close()

	var txns []domain.Transaction
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		number, txn := decodeTransactionLine(line, r.logger)
		if number != accountNumber {
			continue
		}
		txns = append(txns, txn)
	}
	if err := scanner.Err(); err != nil {
		r.logger.Error("failed to read transaction ledger", "path", r.path, "error", err)
		return nil, errors.NewAppError(errors.StorageError, "failed to read transaction ledger").WithDetails(err.Error())
	}
	return txns, nil
}
