package models

import (
	"strings"
	"time"
)

// FlashMessage represents a flash message for user feedback
type FlashMessage struct {
	Type    string `json:"type"` // "success", "error", "warning", "info"
	Message string `json:"message"`
}

// PageData represents common data passed to templates
type PageData struct {
	Title        string        `json:"title"`
	CurrentPage  string        `json:"current_page"`
	Username     string        `json:"username,omitempty"`
	IsAdmin      bool          `json:"is_admin"`
	FlashMessage *FlashMessage `json:"flash_message,omitempty"`
	Data         interface{}   `json:"data,omitempty"`
}

// MonthRange represents the half-open interval [Start, End) of one calendar month
type MonthRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Label returns the month as e.g. "July 2025"
func (m MonthRange) Label() string {
	return m.Start.Format("January 2006")
}

// Slug returns the month as used in URLs, e.g. "2025-07"
func (m MonthRange) Slug() string {
	return m.Start.Format("2006-01")
}

// MonthOf returns the month containing t
func MonthOf(t time.Time) MonthRange {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return MonthRange{Start: start, End: start.AddDate(0, 1, 0)}
}

// ParseMonth accepts "2025-07", "july-2025" or a bare month name ("july"),
// which resolves against the year of now.
func ParseMonth(s string, now time.Time) (MonthRange, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return MonthRange{}, false
	}

	if t, err := time.Parse("2006-01", s); err == nil {
		return MonthOf(t), true
	}

	name, year := s, now.Year()
	if idx := strings.LastIndex(s, "-"); idx > 0 {
		t, err := time.Parse("2006", s[idx+1:])
		if err != nil {
			return MonthRange{}, false
		}
		name, year = s[:idx], t.Year()
	}

	for m := time.January; m <= time.December; m++ {
		if strings.ToLower(m.String()) == name {
			return MonthOf(time.Date(year, m, 1, 0, 0, 0, 0, time.UTC)), true
		}
	}
	return MonthRange{}, false
}

// FormatDate formats a time as YYYY-MM-DD
func FormatDate(t time.Time) string {
	return t.Format("2006-01-02")
}

// ParseDate parses a YYYY-MM-DD string into a time.Time
func ParseDate(dateStr string) (time.Time, error) {
	return time.Parse("2006-01-02", strings.TrimSpace(dateStr))
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors represents multiple validation errors
type ValidationErrors []ValidationError

// HasErrors returns true if there are validation errors
func (ve ValidationErrors) HasErrors() bool {
	return len(ve) > 0
}

// GetMessages returns all error messages as a slice of strings
func (ve ValidationErrors) GetMessages() []string {
	messages := make([]string, len(ve))
	for i, err := range ve {
		messages[i] = err.Message
	}
	return messages
}

// Error joins all messages so the set can travel as an error value
func (ve ValidationErrors) Error() string {
	return strings.Join(ve.GetMessages(), ", ")
}
