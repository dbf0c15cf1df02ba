package models

import (
	"encoding/json"
	"testing"
	"time"
)

// Test WeightForm validation
func TestWeightFormValidation(t *testing.T) {
	validForm := WeightForm{Date: "2025-07-14", Weight: "82.4"}
	if errors := validForm.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	entry := validForm.Parsed()
	if entry.WeightKg != 82.4 || FormatDate(entry.Date) != "2025-07-14" {
		t.Errorf("Unexpected parsed entry: %+v", entry)
	}

	invalidForm := WeightForm{Date: "14-07-2025", Weight: "-1"}
	if errors := invalidForm.Validate(); len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors)
	}

	emptyForm := WeightForm{}
	if errors := emptyForm.Validate(); len(errors) != 2 {
		t.Errorf("Expected 2 errors for empty form, got: %v", errors)
	}
}

// Test CalorieForm validation
func TestCalorieFormValidation(t *testing.T) {
	validForm := CalorieForm{Date: "2025-08-01", Calories: "2150"}
	if errors := validForm.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}
	if validForm.Parsed().Calories != 2150 {
		t.Errorf("Expected 2150 calories, got %d", validForm.Parsed().Calories)
	}

	invalidForm := CalorieForm{Date: "2025-08-01", Calories: "21.5"}
	if errors := invalidForm.Validate(); len(errors) != 1 {
		t.Errorf("Expected 1 error for fractional calories, got: %v", errors)
	}
}

// Test UserForm validation
func TestUserFormValidation(t *testing.T) {
	validForm := UserForm{Username: "alice", Password: "correct horse", Confirm: "correct horse"}
	if errors := validForm.Validate(); len(errors) != 0 {
		t.Errorf("Expected no errors for valid form, got: %v", errors)
	}

	invalidForm := UserForm{Username: "a:b", Password: "x", Confirm: "y"}
	if errors := invalidForm.Validate(); len(errors) != 2 {
		t.Errorf("Expected 2 errors for invalid form, got: %v", errors)
	}
}

// Test month parsing
func TestParseMonth(t *testing.T) {
	now := time.Date(2025, 8, 20, 0, 0, 0, 0, time.UTC)

	cases := map[string]string{
		"2025-07":   "2025-07",
		"July":      "2025-07",
		"august":    "2025-08",
		"june-2024": "2024-06",
	}
	for input, want := range cases {
		month, ok := ParseMonth(input, now)
		if !ok {
			t.Errorf("Expected %q to parse", input)
			continue
		}
		if month.Slug() != want {
			t.Errorf("ParseMonth(%q) = %s, want %s", input, month.Slug(), want)
		}
	}

	for _, input := range []string{"", "smarch", "july-20x5", "2025-13"} {
		if _, ok := ParseMonth(input, now); ok {
			t.Errorf("Expected %q not to parse", input)
		}
	}

	month, _ := ParseMonth("2025-07", now)
	if month.Label() != "July 2025" {
		t.Errorf("Expected label July 2025, got %s", month.Label())
	}
	if !month.End.Equal(time.Date(2025, 8, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("Expected month end 2025-08-01, got %s", month.End)
	}
}

// Test series summary
func TestSummarize(t *testing.T) {
	s := Summarize([]float64{84, 83.5, 85, 82})
	if s.Count != 4 || s.Min != 82 || s.Max != 85 {
		t.Errorf("Unexpected summary: %+v", s)
	}
	if s.Change() != -2 {
		t.Errorf("Expected change -2, got %v", s.Change())
	}
	if s.Average != 83.625 {
		t.Errorf("Expected average 83.625, got %v", s.Average)
	}

	if empty := Summarize(nil); empty.Count != 0 {
		t.Errorf("Expected empty summary, got %+v", empty)
	}
}

// Test the request record wire format
func TestRequestRecordJSON(t *testing.T) {
	record := RequestRecord{
		Timestamp: "2025-07-14 @ 09:30",
		IPAddress: "10.0.0.5",
		GeoData:   LocalGeoData(),
		Route:     "home",
		Method:    "GET",
		Referrer:  DirectReferrer,
	}

	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("Failed to marshal record: %v", err)
	}

	var raw map[string]interface{}
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Failed to unmarshal record: %v", err)
	}
	for _, key := range []string{"timestamp", "ip_address", "geo_data", "device_info", "route", "method", "referrer"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("Expected key %q in %s", key, data)
		}
	}
	geo := raw["geo_data"].(map[string]interface{})
	if geo["country_code"] != "LN" {
		t.Errorf("Expected country_code LN, got %v", geo["country_code"])
	}
}

// Test sentinels
func TestGeoSentinels(t *testing.T) {
	if !UnknownGeoData().IsUnknown() || UnknownGeoData().IsLocal() {
		t.Error("UnknownGeoData sentinel misidentified")
	}
	if !LocalGeoData().IsLocal() || LocalGeoData().IsUnknown() {
		t.Error("LocalGeoData sentinel misidentified")
	}
	if LocalGeoData().Country != "Local Network" {
		t.Errorf("Unexpected local country %q", LocalGeoData().Country)
	}
}
