package internal

import (
	"context"
)

// Identity is the caller identity the tenant guard injects after validating a
// session token. OrgID scopes every downstream query.
type Identity struct {
	UserID int64
	OrgID  int64
}

type ctxKey string

const identityKey ctxKey = "identity"

func ContextWithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

func IdentityFromContext(ctx context.Context) (Identity, bool) {
	if ctx == nil {
		return Identity{}, false
	}
	id, ok := ctx.Value(identityKey).(Identity)
	return id, ok
}
