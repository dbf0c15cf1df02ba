package repositories

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/userctx"
)

// CalorieRepository interface defines calorie entry database operations
type CalorieRepository interface {
	GetByMonth(ctx context.Context, month models.MonthRange) ([]models.CalorieEntry, error)
	GetRecent(ctx context.Context, limit int) ([]models.CalorieEntry, error)
	Months(ctx context.Context) ([]models.MonthRange, error)
	ExistsForDate(ctx context.Context, date time.Time) (bool, error)
	Create(ctx context.Context, entry *models.CalorieEntry) error
}

type calorieRepository struct {
	db *sql.DB
}

// NewCalorieRepository creates a new calorie repository
func NewCalorieRepository(db *sql.DB) CalorieRepository {
	return &calorieRepository{db: db}
}

func (r *calorieRepository) GetByMonth(ctx context.Context, month models.MonthRange) ([]models.CalorieEntry, error) {
	query := `
		SELECT id, date, calories, created_by
		FROM calorie_entries
		WHERE date >= ? AND date < ?
		ORDER BY date ASC
	`

	rows, err := r.db.QueryContext(ctx, query, month.Start, month.End)
	if err != nil {
		return nil, fmt.Errorf("failed to query calorie entries: %w", err)
	}
	defer rows.Close()

	return scanCalorieEntries(rows)
}

func (r *calorieRepository) GetRecent(ctx context.Context, limit int) ([]models.CalorieEntry, error) {
	query := `
		SELECT id, date, calories, created_by
		FROM calorie_entries
		ORDER BY date DESC
		LIMIT ?
	`

	rows, err := r.db.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query recent calorie entries: %w", err)
	}
	defer rows.Close()

	return scanCalorieEntries(rows)
}

func (r *calorieRepository) Months(ctx context.Context) ([]models.MonthRange, error) {
	return queryMonths(ctx, r.db, "calorie_entries")
}

func (r *calorieRepository) ExistsForDate(ctx context.Context, date time.Time) (bool, error) {
	var count int
	err := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM calorie_entries WHERE date = ?", dayOf(date)).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("failed to check calorie entry: %w", err)
	}
	return count > 0, nil
}

func (r *calorieRepository) Create(ctx context.Context, entry *models.CalorieEntry) error {
	query := `
		INSERT INTO calorie_entries (date, calories, created_by)
		VALUES (?, ?, ?)
	`

	entry.Date = dayOf(entry.Date)
	entry.CreatedBy = userctx.GetUsername(ctx)

	result, err := r.db.ExecContext(ctx, query, entry.Date, entry.Calories, entry.CreatedBy)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateDate
		}
		return fmt.Errorf("failed to create calorie entry: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get inserted ID: %w", err)
	}

	entry.ID = int(id)
	return nil
}

func scanCalorieEntries(rows *sql.Rows) ([]models.CalorieEntry, error) {
	var entries []models.CalorieEntry
	for rows.Next() {
		var entry models.CalorieEntry
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Calories, &entry.CreatedBy); err != nil {
			return nil, fmt.Errorf("failed to scan calorie entry: %w", err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating calorie entries: %w", err)
	}

	return entries, nil
}
