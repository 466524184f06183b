package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/joho/godotenv"

	"bankbook/internal/cli"
	"bankbook/internal/config"
	"bankbook/internal/repository"
	"bankbook/internal/service"
)

func main() {
	// All diagnostics go to stderr; stdout belongs to the menu dialogue.
	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "bankbook"})

	if err := godotenv.Load(); err != nil {
		logger.Debug("no .env file loaded", "error", err)
	}

	cfg := config.Load()
	store := repository.NewFileStore(cfg, logger)

	accounts := service.NewAccountService(store, logger)
	transactions := service.NewTransactionService(store, logger)

	session := cli.New(accounts, transactions, os.Stdin, os.Stdout)
	session.Run()
}
