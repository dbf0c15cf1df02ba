package models

import "time"

// AuditLogEntry represents a single admin mutation
type AuditLogEntry struct {
	ID        int64
	Timestamp time.Time
	Username  string
	Method    string
	Path      string
	FormData  string
	UserAgent string
	IPAddress string
}
