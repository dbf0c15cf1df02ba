package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/mattn/go-sqlite3"

	"github.com/blogem/tracker/models"
)

// ErrDuplicateDate is returned when an entry already exists for a day
var ErrDuplicateDate = errors.New("data already exists")

// Repositories struct holds all repository interfaces
type Repositories struct {
	Weight   WeightRepository
	Calories CalorieRepository
	Audit    AuditRepository
}

// NewRepositories creates and initializes all repositories
func NewRepositories(db *sql.DB) *Repositories {
	return &Repositories{
		Weight:   NewWeightRepository(db),
		Calories: NewCalorieRepository(db),
		Audit:    NewAuditRepository(db),
	}
}

// dayOf truncates t to midnight UTC of its calendar day
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func isUniqueViolation(err error) bool {
	var sqliteErr sqlite3.Error
	return errors.As(err, &sqliteErr) && sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
}

// queryMonths lists the distinct months present in table, newest first
func queryMonths(ctx context.Context, db *sql.DB, table string) ([]models.MonthRange, error) {
	// table is one of our own constants, never user input
	query := fmt.Sprintf(`SELECT DISTINCT substr(date, 1, 7) AS month FROM %s ORDER BY month DESC`, table)

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query months of %s: %w", table, err)
	}
	defer rows.Close()

	var months []models.MonthRange
	for rows.Next() {
		var slug string
		if err := rows.Scan(&slug); err != nil {
			return nil, fmt.Errorf("failed to scan month: %w", err)
		}
		t, err := time.Parse("2006-01", slug)
		if err != nil {
			return nil, fmt.Errorf("unexpected month %q in %s: %w", slug, table, err)
		}
		months = append(months, models.MonthOf(t))
	}

	return months, rows.Err()
}
