package controllers

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"gitea.com/go-chi/session"

	"github.com/blogem/tracker/authenticator"
	"github.com/blogem/tracker/middleware"
	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/services"
)

const sessionStateKey = "oauth_state"

type landingData struct {
	Form       *models.LoginForm
	SSOEnabled bool
}

// AuthController handles login, logout and single sign-on
type AuthController struct {
	base
	auth     services.AuthService
	provider authenticator.Provider
}

func newAuthController(b base, auth services.AuthService, provider authenticator.Provider) *AuthController {
	return &AuthController{base: b, auth: auth, provider: provider}
}

// Landing handles GET /
func (c *AuthController) Landing(w http.ResponseWriter, r *http.Request) {
	if middleware.SessionUsername(r) != "" {
		http.Redirect(w, r, "/home", http.StatusSeeOther)
		return
	}
	c.renderLanding(w, r, http.StatusOK, &models.LoginForm{})
}

// Login handles POST /
func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	form := &models.LoginForm{
		Username: strings.TrimSpace(r.FormValue("username")),
		Password: r.FormValue("password"),
		Remember: r.FormValue("remember") != "",
	}

	username, err := c.auth.Authenticate(r.Context(), form)
	if err != nil {
		status, message := http.StatusUnauthorized, "Invalid username or password"
		if errs := form.Validate(); len(errs) > 0 {
			status, message = http.StatusBadRequest, strings.Join(errs, ", ")
		} else if !errors.Is(err, services.ErrInvalidCredentials) {
			c.logger.Errorw("Login failed", "username", form.Username, "error", err)
			status, message = http.StatusInternalServerError, "Login is unavailable, try again later"
		}
		setFlash(r, "error", message)
		c.renderLanding(w, r, status, form)
		return
	}

	c.startSession(w, r, username)
}

// Logout handles GET /logout
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := session.GetSession(r).Flush(); err != nil {
		c.logger.Warnw("Failed to clear session", "error", err)
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// SSOLogin handles GET /login/sso
func (c *AuthController) SSOLogin(w http.ResponseWriter, r *http.Request) {
	if c.provider == nil {
		http.NotFound(w, r)
		return
	}

	state, err := generateRandomState()
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	// Save the state in the session to validate in callback
	_ = session.GetSession(r).Set(sessionStateKey, state)
	http.Redirect(w, r, c.provider.GetAuthURL(state), http.StatusTemporaryRedirect)
}

// Callback handles the redirect back from the identity provider
func (c *AuthController) Callback(w http.ResponseWriter, r *http.Request) {
	if c.provider == nil {
		http.NotFound(w, r)
		return
	}
	sess := session.GetSession(r)

	storedState, _ := sess.Get(sessionStateKey).(string)
	if storedState == "" {
		http.Error(w, "State not found in session", http.StatusBadRequest)
		return
	}
	if r.URL.Query().Get("state") != storedState {
		http.Error(w, "Invalid state parameter", http.StatusBadRequest)
		return
	}
	_ = sess.Delete(sessionStateKey)

	token, err := c.provider.ExchangeCode(r.Context(), r.URL.Query().Get("code"))
	if err != nil {
		c.logger.Warnw("Failed to exchange authorization code", "error", err)
		http.Error(w, "Failed to exchange authorization code", http.StatusUnauthorized)
		return
	}

	claims, err := c.provider.GetClaims(r.Context(), token)
	if err != nil {
		c.logger.Warnw("Failed to verify ID token", "error", err)
		http.Error(w, "Failed to verify ID token", http.StatusUnauthorized)
		return
	}

	username := claims.Username()
	if username == "" {
		http.Error(w, "Identity provider returned no usable username", http.StatusUnauthorized)
		return
	}

	c.startSession(w, r, username)
}

// startSession logs username in and sends it where it was going
func (c *AuthController) startSession(w http.ResponseWriter, r *http.Request, username string) {
	sess := session.GetSession(r)
	_ = sess.Set(middleware.SessionUsernameKey, username)

	target := "/home"
	if redirect, _ := sess.Get(middleware.SessionRedirectAfterKey).(string); isLocalPath(redirect) {
		target = redirect
	}
	_ = sess.Delete(middleware.SessionRedirectAfterKey)

	c.logger.Infow("User logged in", "username", username)
	http.Redirect(w, r, target, http.StatusSeeOther)
}

func (c *AuthController) renderLanding(w http.ResponseWriter, r *http.Request, status int, form *models.LoginForm) {
	data := c.page(r, "Login", "landing", landingData{Form: form, SSOEnabled: c.provider != nil})
	_ = renderTemplateWithStatus(w, status, "landing.html", data)
}

// isLocalPath rejects open redirects to other hosts
func isLocalPath(p string) bool {
	return strings.HasPrefix(p, "/") && !strings.HasPrefix(p, "//") && !strings.HasPrefix(p, "/\\")
}

// generateRandomState generates a random state value for CSRF protection
func generateRandomState() (string, error) {
	b := make([]byte, 32)
	_, err := rand.Read(b)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
