package repository

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"

	"bankbook/internal/domain"
)

// The stores share one delimited line format with no quoting or escaping.
// An embedded delimiter in a field corrupts the row boundary; that is part
// of the on-disk contract and is not papered over here.
const fieldDelimiter = ","

func encodeAccountLine(a *domain.Account) string {
	return strings.Join([]string{
		a.Number,
		a.OwnerName,
		a.Balance.StringFixed(2),
		strconv.FormatUint(a.PINHash, 10),
	}, fieldDelimiter)
}

func encodeTransactionLine(accountNumber string, txn domain.Transaction) string {
	return strings.Join([]string{
		accountNumber,
		string(txn.Type),
		txn.Amount.StringFixed(2),
		txn.Date,
	}, fieldDelimiter)
}

// splitFields splits a stored line and pads to n fields so short rows decode
// as empty fields, which the numeric decoders then coerce to zero.
func splitFields(line string, n int) []string {
	fields := strings.Split(line, fieldDelimiter)
	for len(fields) < n {
		fields = append(fields, "")
	}
	return fields
}

// decodeAmount coerces a malformed stored amount to zero instead of failing
// the load. Legacy behavior; every fallback is logged so corruption stays
// observable.
func decodeAmount(raw string, logger *log.Logger) decimal.Decimal {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		logger.Warn("malformed amount field, falling back to zero", "raw", raw)
		return decimal.Zero
	}
	return amount
}

// decodePINHash coerces a malformed stored hash to zero, same policy as
// decodeAmount. A zeroed hash only ever fails authentication.
func decodePINHash(raw string, logger *log.Logger) uint64 {
	hash, err := strconv.ParseUint(strings.TrimSpace(raw), 10, 64)
	if err != nil {
		logger.Warn("malformed PIN hash field, falling back to zero", "raw", raw)
		return 0
	}
	return hash
}

func decodeAccountLine(line string, logger *log.Logger) *domain.Account {
	fields := splitFields(line, 4)
	return &domain.Account{
		Number:    fields[0],
		OwnerName: fields[1],
		Balance:   decodeAmount(fields[2], logger),
		PINHash:   decodePINHash(fields[3], logger),
	}
}

func decodeTransactionLine(line string, logger *log.Logger) (accountNumber string, txn domain.Transaction) {
	fields := splitFields(line, 4)
	return fields[0], domain.Transaction{
		Type:   domain.TransactionType(fields[1]),
		Amount: decodeAmount(fields[2], logger),
		Date:   fields[3],
	}
}
