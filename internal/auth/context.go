// Package auth carries the caller's identity through a request context.
package auth

import "context"

type ctxKey string

const identityKey ctxKey = "bookshelf.identity"

// Identity is the set of claims decoded from a verified bearer token.
type Identity struct {
	UserID   string
	Username string
	Email    string
}

// WithIdentity stores the authenticated identity in ctx.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// IdentityFromContext returns the identity stored in ctx, if any.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(identityKey).(Identity)
	if !ok || id.UserID == "" {
		return Identity{}, false
	}
	return id, true
}
