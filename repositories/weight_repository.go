package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/userctx"
)

// WeightRepository interface defines weight entry database operations
type WeightRepository interface {
	GetByMonth(ctx context.Context, month models.MonthRange) ([]models.WeightEntry, error)
	GetRecent(ctx context.Context, limit int) ([]models.WeightEntry, error)
	Months(ctx context.Context) ([]models.MonthRange, error)
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)
	Create(ctx context.Context, entry *models.WeightEntry) error
}

type weightRepository struct {
	db *sql.DB
}

// NewWeightRepository creates a new weight repository
func NewWeightRepository(db *sql.DB) WeightRepository {
	return &weightRepository{db: db}
}

// GetByMonth retrieves the entries of one month in chronological order
func (r *weightRepository) GetByMonth(ctx context.Context, month models.MonthRange) ([]models.WeightEntry, error) {
	query := `
		SELECT id, date, weight_kg, created_by
		FROM weight_entries
		WHERE date >= ? AND date < ?
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query weight entries: %w", err)
	}
	defer rows.Close()

	return scanWeightEntries(rows)
}

// GetRecent retrieves the latest entries, newest first
func (r *weightRepository) GetRecent(ctx context.Context, limit int) ([]models.WeightEntry, error) {
	query := `
		SELECT id, date, weight_kg, created_by
		FROM weight_entries
		ORDER BY date DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent weight entries: %w", err)
	}
	defer rows.Close()

	return scanWeightEntries(rows)
}

// Months lists the months that have at least one entry, newest first
func (r *weightRepository) Months(ctx context.Context) ([]models.MonthRange, error) {
	return queryMonths(ctx, r.db, "weight_entries")
}

// ExistsForDate reports whether an entry exists for the given day
func (r *weightRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM weight_entries WHERE date = ?", dayOf(date)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check weight entry: %w", err)
	}
	return count > 0, nil
}

// Create inserts a new entry
func (r *weightRepository) Create(ctx context.Context, entry *models.WeightEntry) error {
	query := `
		INSERT INTO weight_entries (date, weight_kg, created_by)
		VALUES (?, ?, ?)
	`

	entry.Date = dayOf(entry.Date)
	entry.CreatedBy = userctx.GetUsername(ctx)

	result, err := r.db.ExecContext(ctx, query, entry.Date, entry.WeightKg, entry.CreatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateDate
		}
		return fmt.Errorf("failed to create weight entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = int(id)
	return nil
}

func scanWeightEntries(rows *sql.Rows) ([]models.WeightEntry, error) {
	var entries []models.WeightEntry
	for rows.Next() {
		var entry models.WeightEntry
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.WeightKg, &entry.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan weight entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating weight entries: %w", err)
	}

	return entries, nil
}
