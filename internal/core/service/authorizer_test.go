package service

import (
	"errors"
	"testing"

	"github.com/simfut/league-api/internal/core/domain"
)

func TestRequireAnyRole(t *testing.T) {
	cases := []struct {
		name    string
		auth    domain.AuthContext
		allowed []domain.Role
		want    error
	}{
		{
			name:    "anonymous is unauthenticated",
			auth:    domain.Anonymous(),
			allowed: []domain.Role{domain.RoleUser, domain.RoleAdmin},
			want:    domain.ErrUnauthenticated,
		},
		{
			name:    "user allowed on read set",
			auth:    domain.Authenticated("alice", domain.RoleUser),
			allowed: []domain.Role{domain.RoleUser, domain.RoleAdmin},
			want:    nil,
		},
		{
			name:    "user forbidden on admin-only set",
			auth:    domain.Authenticated("alice", domain.RoleUser),
			allowed: []domain.Role{domain.RoleAdmin},
			want:    domain.ErrForbidden,
		},
		{
			name:    "admin allowed on admin-only set",
			auth:    domain.Authenticated("root", domain.RoleAdmin),
			allowed: []domain.Role{domain.RoleAdmin},
			want:    nil,
		},
		{
			name:    "empty allowed set forbids everyone",
			auth:    domain.Authenticated("root", domain.RoleAdmin),
			allowed: nil,
			want:    domain.ErrForbidden,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := RequireAnyRole(tc.auth, tc.allowed...)
			if !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}
