package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/services"
)

type seriesRow struct {
	Date  time.Time
	Value string
}

// seriesData is the view shared by the weight and calories pages
type seriesData struct {
	Month   models.MonthRange
	Months  []models.MonthRange
	Summary models.SeriesSummary
	Rows    []seriesRow
	Unit    string
}

// TrackingController renders the weight and calorie pages
type TrackingController struct {
	base
	tracking services.TrackingService
}

func newTrackingController(b base, tracking services.TrackingService) *TrackingController {
	return &TrackingController{base: b, tracking: tracking}
}

// Weight handles GET /weight and GET /weight/{month}
func (c *TrackingController) Weight(w http.ResponseWriter, r *http.Request) {
	page, err := c.tracking.GetWeightPage(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		c.fail(w, r, err)
		return
	}

	rows := make([]seriesRow, len(page.Entries))
	for i, e := range page.Entries {
		rows[i] = seriesRow{Date: e.Date, Value: strconv.FormatFloat(e.WeightKg, 'f', 1, 64)}
	}

	_ = renderTemplate(w, "series.html", c.page(r, "Weight", "weight", seriesData{
		Month:   page.Month,
		Months:  page.Months,
		Summary: page.Summary,
		Rows:    rows,
		Unit:    "kg",
	}))
}

// Calories handles GET /calories and GET /calories/{month}
func (c *TrackingController) Calories(w http.ResponseWriter, r *http.Request) {
	page, err := c.tracking.GetCaloriePage(r.Context(), chi.URLParam(r, "month"))
	if err != nil {
		c.fail(w, r, err)
		return
	}

	rows := make([]seriesRow, len(page.Entries))
	for i, e := range page.Entries {
		rows[i] = seriesRow{Date: e.Date, Value: strconv.Itoa(e.Calories)}
	}

	_ = renderTemplate(w, "series.html", c.page(r, "Calories", "calories", seriesData{
		Month:   page.Month,
		Months:  page.Months,
		Summary: page.Summary,
		Rows:    rows,
		Unit:    "kcal",
	}))
}

func (c *TrackingController) fail(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, services.ErrUnknownMonth) {
		http.NotFound(w, r)
		return
	}
	c.logger.Errorw("Failed to load entries", "path", r.URL.Path, "error", err)
	http.Error(w, "Failed to load entries", http.StatusInternalServerError)
}
