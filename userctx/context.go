package userctx

import "context"

// Context key type
type contextKey string

const usernameKey contextKey = "username"

// SetUsername adds the logged-in username to the request context
func SetUsername(ctx context.Context, username string) context.Context {
	return context.WithValue(ctx, usernameKey, username)
}

// GetUsername retrieves the username from the request context
func GetUsername(ctx context.Context) string {
	username, ok := ctx.Value(usernameKey).(string)
	if !ok || username == "" {
		return "anonymous"
	}
	return username
}
