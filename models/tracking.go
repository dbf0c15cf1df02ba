package models

import (
	"strconv"
	"strings"
	"time"
)

// WeightEntry is one daily weigh-in
type WeightEntry struct {
	ID        int       `json:"id" db:"id"`
	Date      time.Time `json:"date" db:"date"`
	WeightKg  float64   `json:"weight_kg" db:"weight_kg"`
	CreatedBy string    `json:"created_by,omitempty" db:"created_by"`
}

// CalorieEntry is the calorie intake of one day
type CalorieEntry struct {
	ID        int       `json:"id" db:"id"`
	Date      time.Time `json:"date" db:"date"`
	Calories  int       `json:"calories" db:"calories"`
	CreatedBy string    `json:"created_by,omitempty" db:"created_by"`
}

// WeightForm represents the admin weight form
type WeightForm struct {
	Date   string `json:"date"`
	Weight string `json:"weight"`
}

// CalorieForm represents the admin calorie form
type CalorieForm struct {
	Date     string `json:"date"`
	Calories string `json:"calories"`
}

// Validate validates the weight form data
func (f *WeightForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Date) == "" {
		errors = append(errors, "Date is required")
	} else if _, err := ParseDate(f.Date); err != nil {
		errors = append(errors, "Date must be in YYYY-MM-DD format")
	}

	if strings.TrimSpace(f.Weight) == "" {
		errors = append(errors, "Weight is required")
	} else if w, err := strconv.ParseFloat(strings.TrimSpace(f.Weight), 64); err != nil {
		errors = append(errors, "Weight must be a number")
	} else if w <= 0 {
		errors = append(errors, "Must be positive")
	}

	return errors
}

// Parsed returns the form as an entry; call Validate first
func (f *WeightForm) Parsed() WeightEntry {
	date, _ := ParseDate(f.Date)
	w, _ := strconv.ParseFloat(strings.TrimSpace(f.Weight), 64)
	return WeightEntry{Date: date, WeightKg: w}
}

// Validate validates the calorie form data
func (f *CalorieForm) Validate() []string {
	var errors []string

	if strings.TrimSpace(f.Date) == "" {
		errors = append(errors, "Date is required")
	} else if _, err := ParseDate(f.Date); err != nil {
		errors = append(errors, "Date must be in YYYY-MM-DD format")
	}

	if strings.TrimSpace(f.Calories) == "" {
		errors = append(errors, "Calories are required")
	} else if c, err := strconv.Atoi(strings.TrimSpace(f.Calories)); err != nil {
		errors = append(errors, "Calories must be a whole number")
	} else if c < 0 {
		errors = append(errors, "Must be positive")
	}

	return errors
}

// Parsed returns the form as an entry; call Validate first
func (f *CalorieForm) Parsed() CalorieEntry {
	date, _ := ParseDate(f.Date)
	c, _ := strconv.Atoi(strings.TrimSpace(f.Calories))
	return CalorieEntry{Date: date, Calories: c}
}

// SeriesSummary aggregates one month of tracked values
type SeriesSummary struct {
	Count   int     `json:"count"`
	Min     float64 `json:"min"`
	Max     float64 `json:"max"`
	Average float64 `json:"average"`
	First   float64 `json:"first"`
	Last    float64 `json:"last"`
}

// Change is the difference between the last and the first value
func (s SeriesSummary) Change() float64 {
	return s.Last - s.First
}

// Summarize computes a summary over values given in chronological order
func Summarize(values []float64) SeriesSummary {
	if len(values) == 0 {
		return SeriesSummary{}
	}
	s := SeriesSummary{
		Count: len(values),
		Min:   values[0],
		Max:   values[0],
		First: values[0],
		Last:  values[len(values)-1],
	}
	var total float64
	for _, v := range values {
		if v < s.Min {
			s.Min = v
		}
		if v > s.Max {
			s.Max = v
		}
		total += v
	}
	s.Average = total / float64(len(values))
	return s
}

// WeightPage is everything the weight page renders for one month
type WeightPage struct {
	Month   MonthRange
	Entries []WeightEntry
	Summary SeriesSummary
	Months  []MonthRange
}

// CaloriePage is everything the calories page renders for one month
type CaloriePage struct {
	Month   MonthRange
	Entries []CalorieEntry
	Summary SeriesSummary
	Months  []MonthRange
}

// HomeSummary is the dashboard overview
type HomeSummary struct {
	LatestWeight   *WeightEntry
	RecentWeights  []WeightEntry  // newest first
	RecentCalories []CalorieEntry // newest first
	WeightTrend    float64        // latest minus oldest of RecentWeights
	WeightMonths   []MonthRange
	CalorieMonths  []MonthRange
}
