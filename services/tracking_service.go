package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/repositories"
)

// recentEntries is the number of entries shown on the dashboard
const recentEntries = 7

// ErrUnknownMonth is returned for month path segments that do not parse
var ErrUnknownMonth = errors.New("unknown month")

// TrackingService interface defines weight and calorie business logic
type TrackingService interface {
	GetHomeSummary(ctx context.Context) (*models.HomeSummary, error)
	GetWeightPage(ctx context.Context, month string) (*models.WeightPage, error)
	GetCaloriePage(ctx context.Context, month string) (*models.CaloriePage, error)
	AddWeight(ctx context.Context, form *models.WeightForm) (*models.WeightEntry, error)
	AddCalories(ctx context.Context, form *models.CalorieForm) (*models.CalorieEntry, error)
}

type trackingService struct {
	weightRepo  repositories.WeightRepository
	calorieRepo repositories.CalorieRepository
	now         func() time.Time
}

// NewTrackingService creates a new tracking service
func NewTrackingService(weightRepo repositories.WeightRepository, calorieRepo repositories.CalorieRepository) TrackingService {
	return &trackingService{
		weightRepo:  weightRepo,
		calorieRepo: calorieRepo,
		now:         time.Now,
	}
}

// GetHomeSummary collects the latest entries of both series
func (s *trackingService) GetHomeSummary(ctx context.Context) (*models.HomeSummary, error) {
	weights, err := s.weightRepo.GetRecent(ctx, recentEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent weights: %w", err)
	}
	calories, err := s.calorieRepo.GetRecent(ctx, recentEntries)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent calories: %w", err)
	}
	weightMonths, err := s.weightRepo.Months(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get weight months: %w", err)
	}
	calorieMonths, err := s.calorieRepo.Months(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get calorie months: %w", err)
	}

	summary := &models.HomeSummary{
		RecentWeights:  weights,
		RecentCalories: calories,
		WeightMonths:   weightMonths,
		CalorieMonths:  calorieMonths,
	}
	if len(weights) > 0 {
		latest := weights[0]
		summary.LatestWeight = &latest
		summary.WeightTrend = weights[0].WeightKg - weights[len(weights)-1].WeightKg
	}
	return summary, nil
}

// GetWeightPage returns one month of weight entries; an empty month selects
// the current one
func (s *trackingService) GetWeightPage(ctx context.Context, month string) (*models.WeightPage, error) {
	selected, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	entries, err := s.weightRepo.GetByMonth(ctx, selected)
	if err != nil {
		return nil, fmt.Errorf("failed to get weight entries: %w", err)
	}
	months, err := s.weightRepo.Months(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get weight months: %w", err)
	}

	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = e.WeightKg
	}

	return &models.WeightPage{
		Month:   selected,
		Entries: entries,
		Summary: models.Summarize(values),
		Months:  months,
	}, nil
}

// GetCaloriePage returns one month of calorie entries
func (s *trackingService) GetCaloriePage(ctx context.Context, month string) (*models.CaloriePage, error) {
	selected, err := s.resolveMonth(month)
	if err != nil {
		return nil, err
	}

	entries, err := s.calorieRepo.GetByMonth(ctx, selected)
	if err != nil {
		return nil, fmt.Errorf("failed to get calorie entries: %w", err)
	}
	months, err := s.calorieRepo.Months(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get calorie months: %w", err)
	}

	values := make([]float64, len(entries))
	for i, e := range entries {
		values[i] = float64(e.Calories)
	}

	return &models.CaloriePage{
		Month:   selected,
		Entries: entries,
		Summary: models.Summarize(values),
		Months:  months,
	}, nil
}

// AddWeight stores a weigh-in; a second entry for the same day is refused
func (s *trackingService) AddWeight(ctx context.Context, form *models.WeightForm) (*models.WeightEntry, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, ", "))
	}
	entry := form.Parsed()

	exists, err := s.weightRepo.ExistsForDate(ctx, entry.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repositories.ErrDuplicateDate
	}

	if err := s.weightRepo.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// AddCalories stores the calorie intake of a day
func (s *trackingService) AddCalories(ctx context.Context, form *models.CalorieForm) (*models.CalorieEntry, error) {
	if errs := form.Validate(); len(errs) > 0 {
		return nil, fmt.Errorf("validation failed: %s", strings.Join(errs, ", "))
	}
	entry := form.Parsed()

	exists, err := s.calorieRepo.ExistsForDate(ctx, entry.Date)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, repositories.ErrDuplicateDate
	}

	if err := s.calorieRepo.Create(ctx, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (s *trackingService) resolveMonth(month string) (models.MonthRange, error) {
	if strings.TrimSpace(month) == "" {
		return models.MonthOf(s.now()), nil
	}
	selected, ok := models.ParseMonth(month, s.now())
	if !ok {
		return models.MonthRange{}, fmt.Errorf("%w: %q", ErrUnknownMonth, month)
	}
	return selected, nil
}
