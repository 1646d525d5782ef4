package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/klwxsrx/simctl/internal/session/domain"
)

var (
	ErrUnauthenticated  = errors.New("not logged in")
	ErrPermissionDenied = errors.New("permission denied")
)

type (
	SessionReader interface {
		State() State
	}

	// Guard protects role-restricted commands, callers without a matching session are sent to the login entry point.
	Guard struct {
		sessions  SessionReader
		navigator Navigator
	}
)

func NewGuard(sessions SessionReader, navigator Navigator) *Guard {
	return &Guard{
		sessions:  sessions,
		navigator: navigator,
	}
}

// Require returns the current identity if it holds one of roles, any
// authenticated identity passes when roles is empty.
func (g *Guard) Require(ctx context.Context, roles ...domain.Role) (domain.Identity, error) {
	state := g.sessions.State()
	if state.Status != StatusAuthenticated || state.Identity == nil {
		g.navigator.Redirect(ctx, LoginPath)
		return domain.Identity{}, ErrUnauthenticated
	}

	if len(roles) > 0 && !slices.Contains(roles, state.Identity.Role) {
		g.navigator.Redirect(ctx, LoginPath)
		return domain.Identity{}, fmt.Errorf("%w: %s role required", ErrPermissionDenied, joinRoles(roles))
	}

	return *state.Identity, nil
}

func joinRoles(roles []domain.Role) string {
	names := make([]string, 0, len(roles))
	for _, role := range roles {
		names = append(names, string(role))
	}
	return strings.Join(names, " or ")
}
