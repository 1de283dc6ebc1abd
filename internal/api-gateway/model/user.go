package model

import "time"

// User is a gateway account as stored by the user directory. Password holds a bcrypt hash.
type User struct {
	ID        string `gorm:"default:(-)"`
	Username  string
	Email     string
	Password  string
	FullName  string
	IsActive  bool
	Roles     []Role `gorm:"many2many:user_roles;"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (u User) RoleNames() []string {
	names := make([]string, 0, len(u.Roles))
	seen := make(map[string]struct{}, len(u.Roles))
	for _, role := range u.Roles {
		if _, ok := seen[role.Name]; ok {
			continue
		}
		seen[role.Name] = struct{}{}
		names = append(names, role.Name)
	}
	return names
}

func (u User) Principal() Principal {
	return NewPrincipal(u.ID, u.Username, u.RoleNames()...)
}
