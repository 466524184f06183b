package cli

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"

	"bankbook/internal/domain"
	"bankbook/internal/repository"
	"bankbook/internal/service"
)

// runScript feeds a scripted dialogue to a fresh session over an in-memory
// store and returns everything printed to the interactive output stream.
func runScript(t *testing.T, store *repository.Store, script string) string {
	t.Helper()
	logger := log.New(io.Discard)
	accounts := service.NewAccountService(store, logger)
	transactions := service.NewTransactionService(store, logger)

	var out bytes.Buffer
	New(accounts, transactions, strings.NewReader(script), &out).Run()
	return out.String()
}

func TestSessionCreateAccount(t *testing.T) {
	out := runScript(t, repository.NewMemoryStore(),
		"1\nAlice\n1234\n100.00\n3\n")

	assert.Contains(t, out, "Account created successfully!")
	assert.Contains(t, out, "Your Account Number: 1001")
	assert.Contains(t, out, "Exiting Banking System. Goodbye!")
}

func TestSessionCreateAccountRejections(t *testing.T) {
	t.Run("empty name stops before the PIN prompt", func(t *testing.T) {
		out := runScript(t, repository.NewMemoryStore(), "1\n\n3\n")

		assert.Contains(t, out, "Name cannot be empty. Account creation failed.")
		assert.NotContains(t, out, "Set a 4-digit PIN:")
	})

	t.Run("bad PIN", func(t *testing.T) {
		out := runScript(t, repository.NewMemoryStore(), "1\nAlice\n12x4\n3\n")

		assert.Contains(t, out, "Invalid PIN format. Account creation failed.")
	})

	t.Run("negative initial deposit", func(t *testing.T) {
		out := runScript(t, repository.NewMemoryStore(), "1\nAlice\n1234\n-5.00\n3\n")

		assert.Contains(t, out, "Initial deposit cannot be negative. Account creation failed.")
	})
}

func TestSessionLoginAndAccountMenu(t *testing.T) {
	store := repository.NewMemoryStore()
	runScript(t, store, "1\nAlice\n1234\n100.00\n3\n")

	out := runScript(t, store,
		"2\n1001\n1234\n3\n1\n50.00\n2\n30.00\n3\n4\n5\n3\n")

	assert.Contains(t, out, "Login successful. Welcome, Alice!")
	assert.Contains(t, out, "Current Balance: $100.00")
	assert.Contains(t, out, "Deposited $50.00 successfully.")
	assert.Contains(t, out, "Withdrew $30.00 successfully.")
	assert.Contains(t, out, "Current Balance: $120.00")
	assert.Contains(t, out, "===== Transaction History =====")
	assert.Contains(t, out, "Deposit: $100.00")
	assert.Contains(t, out, "Deposit: $50.00")
	assert.Contains(t, out, "Withdrawal: $30.00")
	assert.Contains(t, out, "Logged out successfully.")
}

func TestSessionLoginFailures(t *testing.T) {
	store := repository.NewMemoryStore()
	runScript(t, store, "1\nAlice\n1234\n100.00\n3\n")

	t.Run("wrong PIN gets the generic message", func(t *testing.T) {
		out := runScript(t, store, "2\n1001\n9999\n3\n")

		assert.Contains(t, out, "Account not found or incorrect PIN.")
		assert.NotContains(t, out, "Welcome")
	})

	t.Run("unknown account gets the same message", func(t *testing.T) {
		out := runScript(t, store, "2\n4040\n1234\n3\n")

		assert.Contains(t, out, "Account not found or incorrect PIN.")
	})

	t.Run("empty account number", func(t *testing.T) {
		out := runScript(t, store, "2\n\n3\n")

		assert.Contains(t, out, "Account number cannot be empty.")
	})
}

func TestSessionInsufficientFunds(t *testing.T) {
	store := repository.NewMemoryStore()
	runScript(t, store, "1\nAlice\n1234\n100.00\n3\n")

	out := runScript(t, store, "2\n1001\n1234\n2\n150.00\n3\n5\n3\n")

	assert.Contains(t, out, "Insufficient funds. Withdrawal failed.")
	assert.Contains(t, out, "Current Balance: $100.00")
	assert.NotContains(t, out, "Withdrew")
}

func TestSessionInvalidInput(t *testing.T) {
	t.Run("invalid menu choice loops back", func(t *testing.T) {
		out := runScript(t, repository.NewMemoryStore(), "9\nnope\n3\n")

		assert.Equal(t, 2, strings.Count(out, "Invalid choice. Please try again."))
		assert.Contains(t, out, "Exiting Banking System. Goodbye!")
	})

	t.Run("non-positive deposit amount", func(t *testing.T) {
		store := repository.NewMemoryStore()
		runScript(t, store, "1\nAlice\n1234\n100.00\n3\n")

		out := runScript(t, store, "2\n1001\n1234\n1\n-5\n1\nabc\n5\n3\n")

		assert.Equal(t, 2, strings.Count(out, "Invalid amount. Please enter a positive value."))
		assert.NotContains(t, out, "Deposited")
	})

	t.Run("empty history reports no transactions", func(t *testing.T) {
		store := repository.NewMemoryStore()
		// seed a record directly so the ledger stays empty
		err := store.Accounts().Append(&domain.Account{
			Number:    "1001",
			OwnerName: "Alice",
			PINHash:   domain.HashPIN("1234"),
		})
		assert.NoError(t, err)

		out := runScript(t, store, "2\n1001\n1234\n4\n5\n3\n")
		assert.Contains(t, out, "No transactions found.")
	})
}

func TestSessionEndsCleanlyOnEOF(t *testing.T) {
	out := runScript(t, repository.NewMemoryStore(), "")

	assert.Contains(t, out, "===== Simple Banking System =====")
	assert.NotContains(t, out, "Invalid choice")
}
