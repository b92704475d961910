package service

import "github.com/simfut/league-api/internal/core/domain"

// RequireAnyRole is the authorization guard called at the top of every
// protected catalog operation. It is a pure precondition check over the
// request's explicit AuthContext: domain.ErrUnauthenticated for an anonymous
// caller, domain.ErrForbidden for an authenticated caller whose role is not
// in the allowed set, nil otherwise.
func RequireAnyRole(auth domain.AuthContext, allowed ...domain.Role) error {
	if !auth.Authenticated {
		return domain.ErrUnauthenticated
	}
	for _, role := range allowed {
		if auth.Role == role {
			return nil
		}
	}
	return domain.ErrForbidden
}
