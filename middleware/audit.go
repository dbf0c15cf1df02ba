package middleware

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/blogem/tracker/models"
	"github.com/blogem/tracker/repositories"
	"github.com/blogem/tracker/requestctx"
	"github.com/blogem/tracker/userctx"
)

// redactedFields never reach the audit log
var redactedFields = map[string]bool{"password": true, "confirm": true}

// AuditLogger middleware logs all POST/PUT/DELETE requests
func AuditLogger(auditRepo repositories.AuditRepository, logger *zap.SugaredLogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method == http.MethodPost || r.Method == http.MethodPut || r.Method == http.MethodDelete {
				entry := &models.AuditLogEntry{
					Timestamp: time.Now().UTC(),
					Username:  userctx.GetUsername(r.Context()),
					Method:    r.Method,
					Path:      r.URL.Path,
					UserAgent: r.UserAgent(),
					IPAddress: requestctx.ClientIP(r),
					FormData:  captureFormData(r),
				}

				// Log asynchronously to avoid blocking request
				go func() {
					ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
					defer cancel()
					if err := auditRepo.Create(ctx, entry); err != nil {
						logger.Errorw("Failed to create audit log", "path", entry.Path, "error", err)
					}
				}()
			}

			next.ServeHTTP(w, r)
		})
	}
}

// captureFormData captures form data as JSON string
func captureFormData(r *http.Request) string {
	if err := r.ParseForm(); err != nil {
		return ""
	}

	formMap := make(map[string]interface{})
	for key, values := range r.PostForm {
		switch {
		case redactedFields[key]:
			formMap[key] = "[redacted]"
		case len(values) == 1:
			formMap[key] = values[0]
		default:
			formMap[key] = values
		}
	}

	jsonData, err := json.Marshal(formMap)
	if err != nil {
		return ""
	}

	return string(jsonData)
}
