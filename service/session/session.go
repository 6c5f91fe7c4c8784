// Package session holds the admin's authenticated state: the backend bearer
// token and the user record it belongs to, carried together in one signed
// cookie so there is no observable partial-write state.
package session

import (
	"github.com/algobasket/hissabbook-admin/model"
)

type Session struct {
	Token string
	User  model.User
}

// HasRole checks the role list first, then the singular role field; the
// backend populates one or the other depending on account vintage.
func (s *Session) HasRole(name string) bool {
	if s == nil {
		return false
	}
	for _, r := range s.User.Roles {
		if r == name {
			return true
		}
	}
	return s.User.Role == name
}

// PrimaryRole returns the singular role, falling back to the first of the
// role list, or "" when neither is set.
func (s *Session) PrimaryRole() string {
	if s == nil {
		return ""
	}
	if s.User.Role != "" {
		return s.User.Role
	}
	if len(s.User.Roles) > 0 {
		return s.User.Roles[0]
	}
	return ""
}

func (s *Session) IsAdmin() bool { return s.HasRole("admin") }
