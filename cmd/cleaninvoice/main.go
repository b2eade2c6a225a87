package main

import (
	"context"
	"fmt"
	"os"

	"github.com/jvaldeza/cleaninvoice/internal/config"
	"github.com/jvaldeza/cleaninvoice/internal/database"
	"github.com/jvaldeza/cleaninvoice/internal/logger"
	"github.com/jvaldeza/cleaninvoice/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load("", "", "")
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger.Setup(cfg.LogLevel)

	db, err := database.NewStore(cfg)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer db.Close()

	invoiceService := service.NewInvoiceService(db, cfg)

	rootCmd := newRootCmd(invoiceService)
	return rootCmd.ExecuteContext(context.Background())
}
