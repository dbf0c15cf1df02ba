package controllers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/repositories"
	"github.com/blogem/tracker/services"
)

const (
	requestPageLimit = 100
	auditPageLimit   = 20
)

type requestsData struct {
	Records []models.RequestRecord
	Status  models.StorageStatus
	Audit   []models.AuditLogEntry
}

type addDataData struct {
	Today string
}

type usersData struct {
	Form *models.UserForm
}

// AdminController serves the admin panel
type AdminController struct {
	base
	services *services.Services
	requests RequestLog
	audit    repositories.AuditRepository
}

func newAdminController(b base, srvs *services.Services, requests RequestLog, audit repositories.AuditRepository) *AdminController {
	return &AdminController{base: b, services: srvs, requests: requests, audit: audit}
}

// Requests handles GET /admin/requests
func (c *AdminController) Requests(w http.ResponseWriter, r *http.Request) {
	audit, err := c.audit.GetRecent(r.Context(), auditPageLimit)
	if err != nil {
		// the request log is still worth showing
		c.logger.Errorw("Failed to load audit log", "error", err)
	}

	_ = renderTemplate(w, "admin_requests.html", c.page(r, "Requests", "requests", requestsData{
		Records: c.requests.GetRequestData(r.Context(), requestPageLimit),
		Status:  c.requests.GetStorageStatus(r.Context()),
		Audit:   audit,
	}))
}

// RequestsJSON handles GET /admin/requests.json
func (c *AdminController) RequestsJSON(w http.ResponseWriter, r *http.Request) {
	records := c.requests.GetRequestData(r.Context(), requestPageLimit)
	if records == nil {
		records = []models.RequestRecord{}
	}
	c.writeJSON(w, records)
}

// Status handles GET /admin/status
func (c *AdminController) Status(w http.ResponseWriter, r *http.Request) {
	c.writeJSON(w, c.requests.GetStorageStatus(r.Context()))
}

// AddData handles GET /admin/weight
func (c *AdminController) AddData(w http.ResponseWriter, r *http.Request) {
	_ = renderTemplate(w, "admin_weight.html", c.page(r, "Add data", "admin_weight", addDataData{
		Today: models.FormatDate(time.Now()),
	}))
}

// CreateWeight handles POST /admin/weight
func (c *AdminController) CreateWeight(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := &models.WeightForm{
		Date:   r.FormValue("date"),
		Weight: r.FormValue("weight"),
	}
	entry, err := c.services.Tracking.AddWeight(r.Context(), form)
	if err != nil {
		c.flashError(r, "Weight", form.Validate(), err)
	} else {
		setFlash(r, "success", fmt.Sprintf("Saved %.1f kg on %s", entry.WeightKg, models.FormatDate(entry.Date)))
	}
	http.Redirect(w, r, "/admin/weight", http.StatusSeeOther)
}

// CreateCalories handles POST /admin/calories
func (c *AdminController) CreateCalories(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := &models.CalorieForm{
		Date:     r.FormValue("date"),
		Calories: r.FormValue("calories"),
	}
	entry, err := c.services.Tracking.AddCalories(r.Context(), form)
	if err != nil {
		c.flashError(r, "Calorie", form.Validate(), err)
	} else {
		setFlash(r, "success", fmt.Sprintf("Saved %d kcal on %s", entry.Calories, models.FormatDate(entry.Date)))
	}
	http.Redirect(w, r, "/admin/weight", http.StatusSeeOther)
}

// Users handles GET /admin/users
func (c *AdminController) Users(w http.ResponseWriter, r *http.Request) {
	_ = renderTemplate(w, "admin_users.html", c.page(r, "Users", "users", usersData{Form: &models.UserForm{}}))
}

// CreateUser handles POST /admin/users
func (c *AdminController) CreateUser(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := &models.UserForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
		Confirm:  r.FormValue("confirm"),
	}

	err := c.services.Auth.CreateUser(r.Context(), form)
	if err == nil {
		setFlash(r, "success", fmt.Sprintf("User %s added", form.Username))
		http.Redirect(w, r, "/admin/users", http.StatusSeeOther)
		return
	}

	status, message := http.StatusBadRequest, ""
	switch {
	case errors.Is(err, services.ErrWeakPassword):
		message = "Password is too weak"
	case errors.Is(err, services.ErrUserExists):
		status, message = http.StatusConflict, fmt.Sprintf("User %s already exists", form.Username)
	default:
		if errs := form.Validate(); len(errs) > 0 {
			message = strings.Join(errs, ", ")
		} else {
			c.logger.Errorw("Failed to create user", "username", form.Username, "error", err)
			status, message = http.StatusInternalServerError, "Failed to add user"
		}
	}

	setFlash(r, "error", message)
	form.Password, form.Confirm = "", ""
	_ = renderTemplateWithStatus(w, status, "admin_users.html", c.page(r, "Users", "users", usersData{Form: form}))
}

// flashError turns a failed insert into a message for the admin
func (c *AdminController) flashError(r *http.Request, kind string, validation []string, err error) {
	switch {
	case len(validation) > 0:
		setFlash(r, "error", strings.Join(validation, ", "))
	case errors.Is(err, repositories.ErrDuplicateDate):
		setFlash(r, "error", kind+" data already exists")
	default:
		c.logger.Errorw("Failed to save entry", "kind", kind, "error", err)
		setFlash(r, "error", "Failed to save "+strings.ToLower(kind)+" data")
	}
}

func (c *AdminController) writeJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		c.logger.Errorw("Failed to encode response", "error", err)
	}
}
