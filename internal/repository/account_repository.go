package repository

import (
	"bufio"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"bankbook/internal/domain"
	"bankbook/internal/errors"
)

type fileAccountRepository struct {
	path   string
	logger *log.Logger
}

func NewFileAccountRepository(path string, logger *log.Logger) domain.AccountRepository {
	return &fileAccountRepository{
		path:   path,
		logger: logger,
	}
}

// Append writes one record line. Creation only; uniqueness of the account
// number is the allocator's responsibility, not checked here.
func (r *fileAccountRepository) Append(account *domain.Account) error {
	f, err := os.OpenFile(r.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.logger.Error("failed to open account store for append", "path", r.path, "error", err)
		return errors.NewAppError(errors.StorageError, "failed to open account store").WithDetails(err.Error())
	}
	defer f.Close()

	if _, err := f.WriteString(encodeAccountLine(account) + "\n"); err != nil {
		r.logger.Error("failed to append account record", "account_number", account.Number, "error", err)
		return errors.NewAppError(errors.StorageError, "failed to append account record").WithDetails(err.Error())
	}
	return nil
}

// FindByNumber scans the store line by line and returns the first record
// whose leading field matches. History is not loaded here; the ledger owns it.
func (r *fileAccountRepository) FindByNumber(number string) (*domain.Account, error) {
	f, err := os.Open(r.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.ErrAccountNotFound
		}
		r.logger.Error("failed to open account store", "path", r.path, "error", err)
		return nil, errors.NewAppError(errors.StorageError, "failed to open account store").WithDetails(err.Error())
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		if fields := splitFields(line, 1); fields[0] != number {
			continue
		}
		return decodeAccountLine(line, r.logger), nil
	}
	if err := scanner.Err(); err != nil {
		r.logger.Error("failed to read account store", "path", r.path, "error", err)
		return nil, errors.NewAppError(errors.StorageError, "failed to read account store").WithDetails(err.Error())
	}
	return nil, errors.ErrAccountNotFound
}

// Update rewrites the whole store: every line is read into memory, the
// single line whose leading field matches the account number is replaced,
// and the file is truncated and rewritten. All other lines, blank lines
// included, are preserved verbatim. There is no locking; a crash mid-rewrite
// can truncate the store. Accepted for the single-process model.
func (r *fileAccountRepository) Update(account *domain.Account) error {
	f, err := os.Open(r.path)
	if err != nil {
		r.logger.Error("failed to open account store for update", "path", r.path, "error", err)
		return errors.ErrAccountUpdate.WithDetails(err.Error())
	}

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Text()
		if line != "" && strings.SplitN(line, fieldDelimiter, 2)[0] == account.Number {
			lines = append(lines, encodeAccountLine(account))
			continue
		}
		lines = append(lines, line)
	}
	scanErr := scanner.Err()
	f.Close()
	if scanErr != nil {
		r.logger.Error("failed to read account store for update", "path", r.path, "error", scanErr)
		return errors.ErrAccountUpdate.WithDetails(scanErr.Error())
	}

	out, err := os.OpenFile(r.path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		r.logger.Error("failed to open account store for rewrite", "path", r.path, "error", err)
		return errors.ErrAccountUpdate.WithDetails(err.Error())
	}
	defer out.Close()

	w := bufio.NewWriter(out)
	for _, line := range lines {
		if _, err := w.WriteString(line + "\n"); err != nil {
			r.logger.Error("failed to rewrite account store", "path", r.path, "error", err)
			return errors.ErrAccountUpdate.WithDetails(err.Error())
		}
	}
	if err := w.Flush(); err != nil {
		r.logger.Error("failed to flush account store rewrite", "path", r.path, "error", err)
		return errors.ErrAccountUpdate.WithDetails(err.Error())
	}
	return nil
}
