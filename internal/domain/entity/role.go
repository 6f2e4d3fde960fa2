package entity

import (
	"sort"
	"strings"
)

// Role is admin-managed reference data. Users hold many roles through user_roles.
type Role struct {
	ID   int    `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:varchar(100);uniqueIndex;not null" json:"name"`
}

func (Role) TableName() string {
	return "roles"
}

// RoleTag is the normalized name of a role.
type RoleTag string

const (
	RolePatient RoleTag = "patient"
	RoleDentist RoleTag = "dentist"
	RoleAdmin   RoleTag = "admin"
)

// NormalizeRole lowercases a stored role name and strips a legacy ROLE_ prefix.
func NormalizeRole(name string) RoleTag {
	name = strings.ToLower(strings.TrimSpace(name))
	return RoleTag(strings.TrimPrefix(name, "role_"))
}

// RoleSet is the set of roles a user carries.
type RoleSet map[RoleTag]struct{}

func NewRoleSet(tags ...RoleTag) RoleSet {
	set := make(RoleSet, len(tags))
	for _, tag := range tags {
		set[tag] = struct{}{}
	}
	return set
}

// RoleSetFromNames builds a RoleSet from stored role names.
func RoleSetFromNames(names []string) RoleSet {
	set := make(RoleSet, len(names))
	for _, name := range names {
		if tag := NormalizeRole(name); tag != "" {
			set[tag] = struct{}{}
		}
	}
	return set
}

func (s RoleSet) Has(tag RoleTag) bool {
	_, ok := s[tag]
	return ok
}

// HasAny reports whether at least one of tags is in the set.
func (s RoleSet) HasAny(tags ...RoleTag) bool {
	for _, tag := range tags {
		if s.Has(tag) {
			return true
		}
	}
	return false
}

// Names returns role names in a stable order: admin, dentist, patient, then the rest sorted.
func (s RoleSet) Names() []string {
	names := make([]string, 0, len(s))
	for _, tag := range []RoleTag{RoleAdmin, RoleDentist, RolePatient} {
		if s.Has(tag) {
			names = append(names, string(tag))
		}
	}
	var rest []string
	for tag := range s {
		if tag != RoleAdmin && tag != RoleDentist && tag != RolePatient {
			rest = append(rest, string(tag))
		}
	}
	sort.Strings(rest)
	return append(names, rest...)
}

// Primary returns the highest ranked role, used when a single role label is needed.
func (s RoleSet) Primary() string {
	names := s.Names()
	if len(names) == 0 {
		return "none"
	}
	return names[0]
}
