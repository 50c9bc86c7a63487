package security

import (
	"context"

	"carrental-backend/internal/domain"
)

// Principal is the authenticated caller, resolved once at the transport
// boundary and carried explicitly in the request context. There is no
// package-level current-user state.
type Principal struct {
	UserID int64
	Role   domain.UserType
}

// IsAdmin reports whether the principal holds the privileged role.
func (p Principal) IsAdmin() bool {
	return p.Role == domain.UserTypeAdmin
}

type principalKey struct{}

// ContextWithPrincipal returns a child context carrying the principal.
func ContextWithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFromContext extracts the principal placed by the auth
// middleware. It fails with ErrUnauthorized when the context carries none.
func PrincipalFromContext(ctx context.Context) (Principal, error) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	if !ok {
		return Principal{}, domain.ErrUnauthorized
	}
	return p, nil
}
