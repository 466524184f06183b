package config

import (
	"os"
	"path/filepath"
)

// Config holds the locations of the three data files. Defaults match the
// historical layout: accounts.txt, transactions.txt and account_number.txt
// in the process working directory.
type Config struct {
	DataDir          string
	AccountsFile     string
	TransactionsFile string
	SequenceFile     string
}

func Load() *Config {
	dataDir := getEnv("BANKBOOK_DATA_DIR", ".")
	return &Config{
		DataDir:          dataDir,
		AccountsFile:     filepath.Join(dataDir, getEnv("BANKBOOK_ACCOUNTS_FILE", "accounts.txt")),
		TransactionsFile: filepath.Join(dataDir, getEnv("BANKBOOK_TRANSACTIONS_FILE", "transactions.txt")),
		SequenceFile:     filepath.Join(dataDir, getEnv("BANKBOOK_SEQUENCE_FILE", "account_number.txt")),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
