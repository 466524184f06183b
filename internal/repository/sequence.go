package repository

import (
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"

	"bankbook/internal/domain"
	"bankbook/internal/errors"
)

// counterSeed is the value assumed when the counter file is absent or
// unreadable; the first issued account number is therefore 1001.
const counterSeed = 1000

type fileNumberAllocator struct {
	path   string
	logger *log.Logger
}

func NewFileNumberAllocator(path string, logger *log.Logger) domain.NumberAllocator {
	return &fileNumberAllocator{
		path:   path,
		logger: logger,
	}
}

// Next reads the last issued number, increments it, and persists the new
// value by overwriting the counter file. When persisting fails the computed
// number is still returned alongside the error: the caller may proceed, at
// the cost of the counter repeating after a restart. Single-writer only.
func (a *fileNumberAllocator) Next() (string, error) {
	last := counterSeed
	if data, err := os.ReadFile(a.path); err == nil {
		if v, convErr := strconv.Atoi(strings.TrimSpace(string(data))); convErr == nil {
			last = v
		} else {
			a.logger.Warn("counter file is not numeric, reseeding", "path", a.path, "raw", string(data))
		}
	}

	number := strconv.Itoa(last + 1)
	if err := os.WriteFile(a.path, []byte(number), 0o644); err != nil {
		a.logger.Error("failed to persist account number counter", "path", a.path, "error", err)
		return number, errors.NewAppError(errors.StorageError, "failed to persist account number counter").WithDetails(err.Error())
	}
	return number, nil
}
