// Package cli is the interactive session controller: a text menu loop that
// reads choices and values from standard input and dispatches to the
// services. It owns every user-facing message; the services only return
// errors. Invalid input always loops back to a menu, never aborts the
// process.
package cli

import (
	"bufio"
	stderrors "errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"bankbook/internal/domain"
	"bankbook/internal/errors"
	"bankbook/internal/service"
)

type Session struct {
	accounts     *service.AccountService
	transactions *service.TransactionService
	in           *bufio.Reader
	out          io.Writer
}

func New(accounts *service.AccountService, transactions *service.TransactionService, in io.Reader, out io.Writer) *Session {
	return &Session{
		accounts:     accounts,
		transactions: transactions,
		in:           bufio.NewReader(in),
		out:          out,
	}
}

// Run drives the top-level menu until the user selects Exit or input ends.
func (s *Session) Run() {
	for {
		s.printf("\n===== Simple Banking System =====\n")
		s.printf("1. Create Account\n")
		s.printf("2. Login to Account\n")
		s.printf("3. Exit\n")
		s.printf("Enter your choice (1-3): ")

		choice, ok := s.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			s.createAccount()
		case 2:
			if account := s.login(); account != nil {
				s.accountMenu(account)
			}
		case 3:
			s.printf("Exiting Banking System. Goodbye!\n")
			return
		default:
			s.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (s *Session) createAccount() {
	s.printf("Enter your full name: ")
	name, ok := s.readLine()
	if !ok {
		return
	}
	if s.accounts.ValidateOwnerName(name) != nil {
		s.printf("Name cannot be empty. Account creation failed.\n")
		return
	}

	s.printf("Set a 4-digit PIN: ")
	pin, ok := s.readLine()
	if !ok {
		return
	}
	if s.accounts.ValidatePIN(pin) != nil {
		s.printf("Invalid PIN format. Account creation failed.\n")
		return
	}

	s.printf("Enter initial deposit amount: $")
	raw, ok := s.readLine()
	if !ok {
		return
	}
	deposit, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		s.printf("Invalid amount. Account creation failed.\n")
		return
	}

	account, err := s.accounts.Create(service.CreateAccountInput{
		OwnerName:      name,
		PIN:            pin,
		InitialDeposit: deposit,
	})
	switch {
	case err == nil:
		s.printf("Account created successfully!\n")
		s.printf("Your Account Number: %s\n", account.Number)
	case stderrors.Is(err, errors.ErrNegativeDeposit):
		s.printf("Initial deposit cannot be negative. Account creation failed.\n")
	default:
		s.printf("Error creating account.\n")
	}
}

func (s *Session) login() *domain.Account {
	s.printf("Enter your Account Number: ")
	number, ok := s.readLine()
	if !ok {
		return nil
	}
	if number == "" {
		s.printf("Account number cannot be empty.\n")
		return nil
	}

	s.printf("Enter your PIN: ")
	pin, ok := s.readLine()
	if !ok {
		return nil
	}

	account, err := s.accounts.Login(number, pin)
	if err != nil {
		// Unknown account and wrong PIN share one message on purpose.
		s.printf("Account not found or incorrect PIN.\n")
		return nil
	}
	s.printf("Login successful. Welcome, %s!\n", account.OwnerName)
	return account
}

func (s *Session) accountMenu(account *domain.Account) {
	for {
		s.printf("\n===== Account Menu =====\n")
		s.printf("1. Deposit Funds\n")
		s.printf("2. Withdraw Funds\n")
		s.printf("3. Check Balance\n")
		s.printf("4. View Transaction History\n")
		s.printf("5. Logout\n")
		s.printf("Enter your choice (1-5): ")

		choice, ok := s.readChoice()
		if !ok {
			return
		}
		switch choice {
		case 1:
			s.deposit(account)
		case 2:
			s.withdraw(account)
		case 3:
			s.printf("Current Balance: $%s\n", account.Balance.StringFixed(2))
		case 4:
			s.viewTransactions(account)
		case 5:
			s.printf("Logged out successfully.\n")
			return
		default:
			s.printf("Invalid choice. Please try again.\n")
		}
	}
}

func (s *Session) deposit(account *domain.Account) {
	amount, ok := s.readAmount("Enter amount to deposit: $")
	if !ok {
		return
	}
	err := s.transactions.Deposit(account, amount)
	if err != nil && !stderrors.Is(err, errors.ErrAccountUpdate) {
		s.printf("Invalid amount. Please enter a positive value.\n")
		return
	}
	// The deposit itself never fails for a valid amount; the record rewrite
	// might, after the balance changed and the ledger entry was written.
	s.printf("Deposited $%s successfully.\n", amount.StringFixed(2))
	if err != nil {
		s.printf("Error updating account data.\n")
	}
}

func (s *Session) withdraw(account *domain.Account) {
	amount, ok := s.readAmount("Enter amount to withdraw: $")
	if !ok {
		return
	}
	err := s.transactions.Withdraw(account, amount)
	switch {
	case err == nil:
		s.printf("Withdrew $%s successfully.\n", amount.StringFixed(2))
	case stderrors.Is(err, errors.ErrInsufficientFunds):
		s.printf("Insufficient funds. Withdrawal failed.\n")
	case stderrors.Is(err, errors.ErrAccountUpdate):
		s.printf("Withdrew $%s successfully.\n", amount.StringFixed(2))
		s.printf("Error updating account data.\n")
	default:
		s.printf("Invalid amount. Please enter a positive value.\n")
	}
}

func (s *Session) viewTransactions(account *domain.Account) {
	history := s.transactions.History(account)
	if len(history) == 0 {
		s.printf("No transactions found.\n")
		return
	}
	s.printf("\n===== Transaction History =====\n")
	for _, txn := range history {
		s.printf("%s - %s: $%s\n", txn.Date, txn.Type, txn.Amount.StringFixed(2))
	}
}

// readAmount prompts for a decimal amount and rejects anything that is not
// strictly positive before the services are involved.
func (s *Session) readAmount(prompt string) (decimal.Decimal, bool) {
	s.printf(prompt)
	raw, ok := s.readLine()
	if !ok {
		return decimal.Zero, false
	}
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil || !amount.IsPositive() {
		s.printf("Invalid amount. Please enter a positive value.\n")
		return decimal.Zero, false
	}
	return amount, true
}

func (s *Session) readChoice() (int, bool) {
	line, ok := s.readLine()
	if !ok {
		return 0, false
	}
	choice, err := strconv.Atoi(strings.TrimSpace(line))
	if err != nil {
		return -1, true
	}
	return choice, true
}

// readLine returns ok=false only when input is exhausted, which ends the
// session cleanly.
func (s *Session) readLine() (string, bool) {
	line, err := s.in.ReadString('\n')
	if err != nil && line == "" {
		return "", false
	}
	return strings.TrimRight(line, "\r\n"), true
}

func (s *Session) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format, args...)
}
