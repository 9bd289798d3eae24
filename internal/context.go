package internal

import (
	"context"
	"time"
)

type ctxKey string

const contextPrincipalKey ctxKey = "principal"

// Principal is the authenticated identity carried through request contexts.
// It mirrors the registry's user record without importing the user package,
// so transport middleware and feature handlers can share it freely.
type Principal struct {
	UserID     string
	Name       string
	Role       string
	Department string
}

func PrincipalFromContext(ctx context.Context) (*Principal, bool) {
	if ctx == nil {
		return nil, false
	}
	p, ok := ctx.Value(contextPrincipalKey).(*Principal)
	return p, ok && p != nil
}

func ContextWithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, contextPrincipalKey, p)
}

// WithTimeout returns a context with timeout, defaulting to 5 seconds if duration is zero or negative.
func WithTimeout(ctx context.Context, duration time.Duration) (context.Context, context.CancelFunc) {
	if duration <= 0 {
		duration = 5 * time.Second
	}
	return context.WithTimeout(ctx, duration)
}
