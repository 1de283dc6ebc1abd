package model

import "slices"

const RoleAdmin = "admin"

// Principal is the identity reconstructed from a verified access token.
type Principal struct {
	Subject  string   `json:"user_id"`
	Username string   `json:"username,omitempty"`
	Roles    []string `json:"roles"`
}

// NewPrincipal builds a principal with a de-duplicated role set.
func NewPrincipal(subject, username string, roles ...string) Principal {
	unique := make([]string, 0, len(roles))
	for _, role := range roles {
		if role == "" || slices.Contains(unique, role) {
			continue
		}
		unique = append(unique, role)
	}
	return Principal{
		Subject:  subject,
		Username: username,
		Roles:    unique,
	}
}

func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

func (p Principal) HasAnyRole(roles ...string) bool {
	for _, role := range roles {
		if p.HasRole(role) {
			return true
		}
	}
	return false
}
