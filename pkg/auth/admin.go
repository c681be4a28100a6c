package auth

import "context"

const adminEmailKey contextKey = "admin_email"

// WithAdminEmail stores the verified admin's email in the context. Set only
// by the admin gate after a fresh role check.
func WithAdminEmail(ctx context.Context, email string) context.Context {
	return context.WithValue(ctx, adminEmailKey, email)
}

// AdminEmailFromContext returns the verified admin's email, or "" when the
// request did not pass the admin gate.
func AdminEmailFromContext(ctx context.Context) string {
	v, _ := ctx.Value(adminEmailKey).(string)
	return v
}
