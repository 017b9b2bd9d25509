package store

import (
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/diewo77/factures/internal/billing"
	"github.com/diewo77/factures/internal/models"
	"github.com/diewo77/factures/internal/validation"
)

// Store owns the Invoices and Sales tables. No other component touches
// the database directly.
type Store struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

// Open connects to the SQLite database at path and runs migrations.
func Open(path string, log *zap.Logger) (*Store, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}
	s := New(db, log)
	if err := s.Migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

// New wraps an existing connection. Callers are expected to run
// Migrate before using the store.
func New(db *gorm.DB, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{db: db, log: log, now: time.Now}
}

// Migrate idempotently brings the schema up to the current column set.
// Tables are created when absent; databases created by an older schema
// version gain the missing columns additively. Columns are never
// dropped or renamed.
func (s *Store) Migrate() error {
	m := s.db.Migrator()
	for _, model := range []any{&models.Invoice{}, &models.Sale{}} {
		if m.HasTable(model) {
			continue
		}
		if err := m.CreateTable(model); err != nil {
			return fmt.Errorf("create table %T: %w", model, err)
		}
	}
	// Additive upgrades for databases that predate a column. The tax
	// columns arrived after the initial invoice layout, the product
	// column after the initial sales layout.
	upgrades := []struct {
		model any
		field string
	}{
		{&models.Invoice{}, "TVA"},
		{&models.Invoice{}, "CSS"},
		{&models.Invoice{}, "TotalTTC"},
		{&models.Sale{}, "Product"},
	}
	for _, u := range upgrades {
		if m.HasColumn(u.model, u.field) {
			continue
		}
		if err := m.AddColumn(u.model, u.field); err != nil {
			return fmt.Errorf("add column %s to %T: %w", u.field, u.model, err)
		}
		s.log.Info("schema upgraded", zap.String("column", u.field))
	}
	return nil
}

// Save persists one invoice plus one sale row per line item as a single
// transaction and returns the new invoice id. Input is re-validated
// here as a last line of defense even though the shell validates first;
// a rejected save performs zero writes.
func (s *Store) Save(kind models.InvoiceKind, clientName string, items []models.LineItem) (uint, error) {
	v := make(validation.Violations)
	validation.Required("client_name", clientName, v)
	validation.NotEmptySlice("line_items", items, v)
	if !kind.Valid() {
		v["kind"] = "unknown"
	}
	if !v.Empty() {
		return 0, v
	}

	blob, err := models.EncodeLineItems(items)
	if err != nil {
		return 0, &PersistenceError{Op: "serialize line items", Err: err}
	}
	totals := billing.ComputeTotals(items)
	invoice := models.Invoice{
		Kind:          kind,
		ClientName:    clientName,
		LineItemsBlob: blob,
		TotalHT:       totals.HT,
		TVA:           totals.TVA,
		CSS:           totals.CSS,
		TotalTTC:      totals.TTC,
	}

	now := s.now()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	sales := make([]models.Sale, 0, len(items))
	for _, item := range items {
		sales = append(sales, models.Sale{Date: date, Product: item.Name, Amount: item.Amount})
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&invoice).Error; err != nil {
			return err
		}
		return tx.Create(&sales).Error
	})
	if err != nil {
		return 0, &PersistenceError{Op: "save invoice", Err: err}
	}
	s.log.Info("invoice saved",
		zap.Uint("id", invoice.ID),
		zap.String("kind", string(kind)),
		zap.Int("line_items", len(items)))
	return invoice.ID, nil
}

// FetchAll returns every invoice in ascending id order. Monetary fields
// missing from rows written by the pre-tax schema are coalesced to 0 in
// the query for display; the stored values are left untouched.
func (s *Store) FetchAll() ([]models.InvoiceSummary, error) {
	var summaries []models.InvoiceSummary
	err := s.db.Model(&models.Invoice{}).
		Select("id, kind, client_name, " +
			"COALESCE(total_ht, 0) AS total_ht, COALESCE(tva, 0) AS tva, " +
			"COALESCE(css, 0) AS css, COALESCE(total_ttc, 0) AS total_ttc").
		Order("id ASC").
		Scan(&summaries).Error
	if err != nil {
		return nil, &PersistenceError{Op: "list invoices", Err: err}
	}
	return summaries, nil
}

// FetchByID returns the full invoice record along with its decoded line
// items. A malformed blob does not fail the lookup: the anomaly is
// logged and only the readable entries (possibly none) are returned.
func (s *Store) FetchByID(id uint) (*models.Invoice, []models.LineItem, error) {
	var invoice models.Invoice
	if err := s.db.First(&invoice, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil, fmt.Errorf("invoice %d: %w", id, ErrNotFound)
		}
		return nil, nil, &PersistenceError{Op: "fetch invoice", Err: err}
	}
	items, err := models.DecodeLineItems(invoice.LineItemsBlob)
	if err != nil {
		s.log.Warn("malformed line items on stored invoice",
			zap.Uint("id", id), zap.Error(err))
	}
	return &invoice, items, nil
}

// FetchSales returns all sale records in chronological order for the
// reporting views.
func (s *Store) FetchSales() ([]models.Sale, error) {
	var sales []models.Sale
	if err := s.db.Order("date ASC, id ASC").Find(&sales).Error; err != nil {
		return nil, &PersistenceError{Op: "list sales", Err: err}
	}
	return sales, nil
}
