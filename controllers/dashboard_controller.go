package controllers

import (
	"net/http"

	"github.com/blogem/tracker/services"
)

// DashboardController handles dashboard-related requests
type DashboardController struct {
	base
	tracking services.TrackingService
}

func newDashboardController(b base, tracking services.TrackingService) *DashboardController {
	return &DashboardController{base: b, tracking: tracking}
}

// Home handles GET /home
func (c *DashboardController) Home(w http.ResponseWriter, r *http.Request) {
	summary, err := c.tracking.GetHomeSummary(r.Context())
	if err != nil {
		c.logger.Errorw("Failed to load dashboard data", "error", err)
		http.Error(w, "Failed to load dashboard data", http.StatusInternalServerError)
		return
	}

	_ = renderTemplate(w, "home.html", c.page(r, "Home", "home", summary))
}
