package http

import (
	"net/http"

	"github.com/go-chi/jwtauth/v5"
	"github.com/talentbase/hrms-backend-go/internal/domain/user"
)

// identity is the authenticated caller as carried in the access token claims.
type identity struct {
	UserID   string
	Username string
	Role     user.Role
}

// callerIdentity reads the verified token claims. It only fails when the
// route was wired without the auth middleware, so callers treat a false
// return as an unauthorized request.
func callerIdentity(r *http.Request) (identity, bool) {
	_, claims, err := jwtauth.FromContext(r.Context())
	if err != nil {
		return identity{}, false
	}

	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return identity{}, false
	}

	roleStr, ok := claims["role"].(string)
	if !ok {
		return identity{}, false
	}

	username, _ := claims["username"].(string)

	return identity{
		UserID:   userID,
		Username: username,
		Role:     user.Role(roleStr),
	}, true
}
