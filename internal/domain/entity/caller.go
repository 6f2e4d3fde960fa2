package entity

// Caller is the authenticated identity passed explicitly into every usecase.
type Caller struct {
	ID       int
	Username string
	Roles    RoleSet
}

// HasRole reports whether the caller carries the given role.
func HasRole(c *Caller, tag RoleTag) bool {
	return c != nil && c.Roles.Has(tag)
}

// IsAdmin reports whether the caller is an administrator.
func (c *Caller) IsAdmin() bool {
	return HasRole(c, RoleAdmin)
}
