package service

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"bankbook/internal/domain"
	"bankbook/internal/errors"
	"bankbook/internal/repository"
)

func newAccountService(t *testing.T) (*AccountService, *repository.Store) {
	t.Helper()
	store := repository.NewMemoryStore()
	return NewAccountService(store, log.New(io.Discard)), store
}

func createInput(deposit string) CreateAccountInput {
	return CreateAccountInput{
		OwnerName:      "Alice",
		PIN:            "1234",
		InitialDeposit: decimal.RequireFromString(deposit),
	}
}

func TestAccountServiceCreate(t *testing.T) {
	t.Run("assigns sequential numbers starting at 1001", func(t *testing.T) {
		svc, _ := newAccountService(t)

		first, err := svc.Create(createInput("100.00"))
		require.NoError(t, err)
		assert.Equal(t, "1001", first.Number)

		second, err := svc.Create(createInput("0.00"))
		require.NoError(t, err)
		assert.Equal(t, "1002", second.Number)
	})

	t.Run("stores the record and the initial deposit entry", func(t *testing.T) {
		svc, store := newAccountService(t)

		account, err := svc.Create(createInput("100.00"))
		require.NoError(t, err)
		assert.Equal(t, "100.00", account.Balance.StringFixed(2))
		require.Len(t, account.History, 1)
		assert.Equal(t, domain.TypeDeposit, account.History[0].Type)

		stored, err := store.Accounts().FindByNumber(account.Number)
		require.NoError(t, err)
		assert.Equal(t, "100.00", stored.Balance.StringFixed(2))
		assert.Equal(t, domain.HashPIN("1234"), stored.PINHash)

		txns, err := store.Transactions().LoadForAccount(account.Number)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.Equal(t, "100.00", txns[0].Amount.StringFixed(2))
	})

	t.Run("zero initial deposit still records one entry", func(t *testing.T) {
		svc, store := newAccountService(t)

		account, err := svc.Create(createInput("0.00"))
		require.NoError(t, err)

		txns, err := store.Transactions().LoadForAccount(account.Number)
		require.NoError(t, err)
		require.Len(t, txns, 1)
		assert.True(t, txns[0].Amount.IsZero())
	})

	t.Run("rejects empty owner name", func(t *testing.T) {
		svc, _ := newAccountService(t)
		input := createInput("10.00")
		input.OwnerName = ""

		_, err := svc.Create(input)
		assert.ErrorIs(t, err, errors.ErrEmptyOwnerName)
	})

	t.Run("rejects malformed PINs", func(t *testing.T) {
		svc, _ := newAccountService(t)

		for _, pin := range []string{"", "123", "12345", "12a4", "12.4", "-123"} {
			input := createInput("10.00")
			input.PIN = pin

			_, err := svc.Create(input)
			assert.ErrorIs(t, err, errors.ErrInvalidPIN, "pin %q", pin)
		}
	})

	t.Run("rejects negative initial deposit", func(t *testing.T) {
		svc, _ := newAccountService(t)

		_, err := svc.Create(createInput("-0.01"))
		assert.ErrorIs(t, err, errors.ErrNegativeDeposit)
	})
}

func TestAccountServiceValidators(t *testing.T) {
	svc, _ := newAccountService(t)

	assert.NoError(t, svc.ValidateOwnerName("Alice"))
	assert.ErrorIs(t, svc.ValidateOwnerName(""), errors.ErrEmptyOwnerName)

	assert.NoError(t, svc.ValidatePIN("0042"))
	assert.ErrorIs(t, svc.ValidatePIN("42"), errors.ErrInvalidPIN)
	assert.ErrorIs(t, svc.ValidatePIN("abcd"), errors.ErrInvalidPIN)
}

func TestAccountServiceLogin(t *testing.T) {
	t.Run("rebuilds the entity from durable state", func(t *testing.T) {
		svc, store := newAccountService(t)
		created, err := svc.Create(createInput("100.00"))
		require.NoError(t, err)
		require.NoError(t, store.Transactions().Append(created.Number, domain.Transaction{
			Type:   domain.TypeWithdrawal,
			Amount: decimal.RequireFromString("25.00"),
			Date:   "2026-09-01 11:00:00",
		}))

		account, err := svc.Login(created.Number, "1234")
		require.NoError(t, err)
		assert.Equal(t, "Alice", account.OwnerName)
		assert.Equal(t, "100.00", account.Balance.StringFixed(2))
		require.Len(t, account.History, 2)
		assert.Equal(t, domain.TypeDeposit, account.History[0].Type)
		assert.Equal(t, domain.TypeWithdrawal, account.History[1].Type)
	})

	t.Run("wrong PIN and unknown account are indistinguishable", func(t *testing.T) {
		svc, _ := newAccountService(t)
		created, err := svc.Create(createInput("100.00"))
		require.NoError(t, err)

		_, wrongPIN := svc.Login(created.Number, "9999")
		_, unknown := svc.Login("4040", "1234")

		assert.ErrorIs(t, wrongPIN, errors.ErrLoginFailed)
		assert.ErrorIs(t, unknown, errors.ErrLoginFailed)
		assert.Equal(t, wrongPIN.Error(), unknown.Error())
	})

	t.Run("empty account number", func(t *testing.T) {
		svc, _ := newAccountService(t)

		_, err := svc.Login("", "1234")
		assert.ErrorIs(t, err, errors.ErrEmptyAccountNumber)
	})
}
