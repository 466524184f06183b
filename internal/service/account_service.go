package service

import (
	stderrors "errors"

	"github.com/charmbracelet/log"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"

	"bankbook/internal/domain"
	"bankbook/internal/errors"
	"bankbook/internal/repository"
)

type AccountService struct {
	store    *repository.Store
	logger   *log.Logger
	validate *validator.Validate
}

func NewAccountService(store *repository.Store, logger *log.Logger) *AccountService {
	return &AccountService{
		store:    store,
		logger:   logger,
		validate: validator.New(),
	}
}

type CreateAccountInput struct {
	OwnerName      string `validate:"required"`
	PIN            string `validate:"required,len=4,number"`
	InitialDeposit decimal.Decimal `validate:"-"`
}

// ValidateOwnerName rejects an empty owner name. Exposed separately so the
// session controller can fail each prompt as it is answered.
func (s *AccountService) ValidateOwnerName(name string) error {
	if err := s.validate.Var(name, "required"); err != nil {
		return errors.ErrEmptyOwnerName
	}
	return nil
}

// ValidatePIN requires exactly four decimal digits.
func (s *AccountService) ValidatePIN(pin string) error {
	if err := s.validate.Var(pin, "required,len=4,number"); err != nil {
		return errors.ErrInvalidPIN
	}
	return nil
}

// Create allocates the next account number, stores the record, and records
// the initial deposit as the account's first ledger entry. The initial
// deposit may be zero; it still produces exactly one Deposit entry.
func (s *AccountService) Create(input CreateAccountInput) (*domain.Account, error) {
	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if stderrors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			switch fieldErrs[0].Field() {
			case "OwnerName":
				return nil, errors.ErrEmptyOwnerName
			case "PIN":
				return nil, errors.ErrInvalidPIN
			}
		}
		return nil, errors.NewAppError(errors.InvalidInput, "invalid account input")
	}
	if input.InitialDeposit.IsNegative() {
		return nil, errors.ErrNegativeDeposit
	}

	number, err := s.store.Sequence().Next()
	if err != nil {
		// The number is issued regardless. A counter that silently failed to
		// persist can repeat this number after a restart; see the allocator.
		s.logger.Error("issuing account number despite counter persist failure",
			"account_number", number, "error", err)
	}

	account := &domain.Account{
		Number:    number,
		OwnerName: input.OwnerName,
		Balance:   decimal.Zero,
		PINHash:   domain.HashPIN(input.PIN),
	}
	txn := account.Deposit(input.InitialDeposit)

	if err := s.store.Accounts().Append(account); err != nil {
		return nil, err
	}
	if err := s.store.Transactions().Append(account.Number, txn); err != nil {
		// Best-effort: the account exists and its balance is stored; only the
		// ledger entry for the initial deposit is missing.
		s.logger.Error("failed to record initial deposit", "account_number", account.Number, "error", err)
	}

	s.logger.Info("account created", "account_number", account.Number, "owner", account.OwnerName)
	return account, nil
}

// Login authenticates an account number and PIN and rebuilds the entity
// from durable state. An unknown number and a wrong PIN both surface as
// ErrLoginFailed; callers must not be able to tell them apart.
func (s *AccountService) Login(number, pin string) (*domain.Account, error) {
	if number == "" {
		return nil, errors.ErrEmptyAccountNumber
	}

	account, err := s.store.Accounts().FindByNumber(number)
	if err != nil {
		return nil, errors.ErrLoginFailed
	}
	if !account.Authenticate(pin) {
		return nil, errors.ErrLoginFailed
	}

	history, err := s.store.Transactions().LoadForAccount(number)
	if err != nil {
		// Degraded login: balance and identity come from the record store;
		// history stays empty for the session.
		s.logger.Error("failed to load transaction history", "account_number", number, "error", err)
	}
	account.History = history

	s.logger.Info("login successful", "account_number", number)
	return account, nil
}
