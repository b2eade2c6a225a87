package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	_ "github.com/mattn/go-sqlite3"
	"github.com/rs/zerolog/log"
	_ "github.com/tursodatabase/libsql-client-go/libsql"

	"github.com/jvaldeza/cleaninvoice/internal/config"
	"github.com/jvaldeza/cleaninvoice/internal/models"
)

// Record keys. These match the keys the app has always stored under, so data
// written by earlier versions keeps loading.
const (
	keyEmployee   = "employee_data"
	keyCompany    = "company_data"
	keyInvoices   = "saved_invoices"
	keySelections = "cleaning_selections"
	keyDraft      = "current_invoice"
)

var recordKeys = []string{keyEmployee, keyCompany, keyInvoices, keySelections, keyDraft}

type SQLiteStore struct {
	conn *sql.DB
}

func NewStore(cfg *config.Config) (*SQLiteStore, error) {
	conn, err := sql.Open(cfg.DatabaseDriver, cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &SQLiteStore{conn: conn}
	if err := s.migrate(context.Background()); err != nil {
		conn.Close()
		return nil, err
	}

	return s, nil
}

func (s *SQLiteStore) migrate(ctx context.Context) error {
	_, err := s.conn.ExecContext(ctx, `
		CREATE TABLE IF NOT EXISTS records (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`)
	if err != nil {
		return fmt.Errorf("failed to create records table: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

// getRecord loads a JSON record into dest. A missing record leaves dest at
// its default. A record that no longer parses is treated the same way rather
// than failing the whole load.
func (s *SQLiteStore) getRecord(ctx context.Context, key string, dest any) error {
	var value string
	err := s.conn.QueryRowContext(ctx, `SELECT value FROM records WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read record %s: %w", key, err)
	}

	if err := json.Unmarshal([]byte(value), dest); err != nil {
		log.Warn().Str("key", key).Err(err).Msg("stored record is malformed, using default")
	}
	return nil
}

func (s *SQLiteStore) setRecord(ctx context.Context, key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode record %s: %w", key, err)
	}

	_, err = s.conn.ExecContext(ctx, `
		INSERT INTO records (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, string(data))
	if err != nil {
		return fmt.Errorf("failed to write record %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) GetEmployee(ctx context.Context) (models.Employee, error) {
	var employee models.Employee
	err := s.getRecord(ctx, keyEmployee, &employee)
	return employee, err
}

func (s *SQLiteStore) SetEmployee(ctx context.Context, employee models.Employee) error {
	return s.setRecord(ctx, keyEmployee, employee)
}

func (s *SQLiteStore) GetCompany(ctx context.Context) (models.Company, error) {
	var company models.Company
	err := s.getRecord(ctx, keyCompany, &company)
	return company, err
}

func (s *SQLiteStore) SetCompany(ctx context.Context, company models.Company) error {
	return s.setRecord(ctx, keyCompany, company)
}

func (s *SQLiteStore) GetInvoices(ctx context.Context) ([]models.Invoice, error) {
	invoices := []models.Invoice{}
	err := s.getRecord(ctx, keyInvoices, &invoices)
	return invoices, err
}

func (s *SQLiteStore) SetInvoices(ctx context.Context, invoices []models.Invoice) error {
	return s.setRecord(ctx, keyInvoices, invoices)
}

func (s *SQLiteStore) GetSelections(ctx context.Context) (models.CleaningSelections, error) {
	// Night cleaning on, kitchen off is the documented default.
	selections := models.CleaningSelections{Kitchen: false, Night: true}
	err := s.getRecord(ctx, keySelections, &selections)
	return selections, err
}

func (s *SQLiteStore) SetSelections(ctx context.Context, selections models.CleaningSelections) error {
	return s.setRecord(ctx, keySelections, selections)
}

func (s *SQLiteStore) GetDraft(ctx context.Context) (models.InvoiceDraft, error) {
	var d models.InvoiceDraft
	err := s.getRecord(ctx, keyDraft, &d)
	return d, err
}

func (s *SQLiteStore) SetDraft(ctx context.Context, d models.InvoiceDraft) error {
	return s.setRecord(ctx, keyDraft, d)
}

// Wipe removes every stored record. Deletion is best-effort per key; a key
// that fails to delete does not stop the remaining keys from being removed.
func (s *SQLiteStore) Wipe(ctx context.Context) error {
	var errs []error
	for _, key := range recordKeys {
		if _, err := s.conn.ExecContext(ctx, `DELETE FROM records WHERE key = ?`, key); err != nil {
			errs = append(errs, fmt.Errorf("failed to clear record %s: %w", key, err))
		}
	}
	return errors.Join(errs...)
}
