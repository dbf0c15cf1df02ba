package controllers

import (
	"context"
	"html/template"
	"net/http"

	"gitea.com/go-chi/session"
	"go.uber.org/zap"

	"github.com/blogem/tracker/authenticator"
	"github.com/blogem/tracker/config"
	"github.com/blogem/tracker/middleware"
	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/repositories"
	"github.com/blogem/tracker/services"
	"github.com/blogem/tracker/templates"
)

// Session keys for the one-shot flash message
const (
	sessionFlashTypeKey    = "flash_type"
	sessionFlashMessageKey = "flash_message"
)

var templateFuncs = template.FuncMap{
	"formatDate": models.FormatDate,
}

// renderTemplate creates a template set and renders it with the provided data
func renderTemplate(w http.ResponseWriter, page string, data *models.PageData) error {
	return renderTemplateWithStatus(w, http.StatusOK, page, data)
}

// renderTemplateWithStatus creates a template set and renders it with the provided data and status code
func renderTemplateWithStatus(w http.ResponseWriter, statusCode int, page string, data *models.PageData) error {
	tmpl, err := template.New("layout.html").Funcs(templateFuncs).ParseFS(templates.FS(), "layout.html", page)
	if err != nil {
		http.Error(w, "Failed to parse template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if statusCode != http.StatusOK {
		w.WriteHeader(statusCode)
	}

	if err := tmpl.ExecuteTemplate(w, "layout.html", data); err != nil {
		http.Error(w, "Failed to render template: "+err.Error(), http.StatusInternalServerError)
		return err
	}

	return nil
}

// setFlash stores a message shown on the next rendered page
func setFlash(r *http.Request, kind, message string) {
	sess := session.GetSession(r)
	_ = sess.Set(sessionFlashTypeKey, kind)
	_ = sess.Set(sessionFlashMessageKey, message)
}

// popFlash returns and clears the pending flash message
func popFlash(r *http.Request) *models.FlashMessage {
	sess := session.GetSession(r)
	if sess == nil {
		return nil
	}
	message, _ := sess.Get(sessionFlashMessageKey).(string)
	if message == "" {
		return nil
	}
	kind, _ := sess.Get(sessionFlashTypeKey).(string)
	_ = sess.Delete(sessionFlashTypeKey)
	_ = sess.Delete(sessionFlashMessageKey)
	return &models.FlashMessage{Type: kind, Message: message}
}

// RequestLog is the read side of the request monitor
type RequestLog interface {
	GetRequestData(ctx context.Context, limit int) []models.RequestRecord
	GetStorageStatus(ctx context.Context) models.StorageStatus
}

// base carries what every controller needs to build PageData
type base struct {
	auth   config.AuthConfig
	logger *zap.SugaredLogger
}

func (b base) page(r *http.Request, title, current string, data interface{}) *models.PageData {
	username := middleware.SessionUsername(r)
	return &models.PageData{
		Title:        title,
		CurrentPage:  current,
		Username:     username,
		IsAdmin:      username != "" && b.auth.IsAdmin(username),
		FlashMessage: popFlash(r),
		Data:         data,
	}
}

// Controllers holds all controller instances
type Controllers struct {
	Auth      *AuthController
	Dashboard *DashboardController
	Tracking  *TrackingController
	Admin     *AdminController
}

// NewControllers creates and initializes all controller instances. provider
// may be nil, which disables single sign-on.
func NewControllers(srvs *services.Services, requests RequestLog, audit repositories.AuditRepository, provider authenticator.Provider, auth config.AuthConfig, logger *zap.SugaredLogger) *Controllers {
	b := base{auth: auth, logger: logger}
	return &Controllers{
		Auth:      newAuthController(b, srvs.Auth, provider),
		Dashboard: newDashboardController(b, srvs.Tracking),
		Tracking:  newTrackingController(b, srvs.Tracking),
		Admin:     newAdminController(b, srvs, requests, audit),
	}
}
