package domain

import "context"

// AuthUsecase is the demo login flow: any known email yields a session
// token with no password check. Caller identity on data-engine operations
// stays trusted as supplied; the session only fills "current user"
// defaults at the HTTP layer.
type AuthUsecase interface {
	Login(ctx context.Context, email string) (*User, string, error)
}
