package models

import "strings"

// Role identifies what a principal may do.
type Role string

// Known roles.
const (
	RoleAdmin   Role = "admin"
	RoleTeacher Role = "teacher"
	RoleStudent Role = "student"
)

// roleRank orders roles: a role satisfies every requirement at or below its rank.
var roleRank = map[Role]int{
	RoleStudent: 1,
	RoleTeacher: 2,
	RoleAdmin:   3,
}

// ParseRole normalises the input and reports whether it names a known role.
func ParseRole(value string) (Role, bool) {
	role := Role(strings.ToLower(strings.TrimSpace(value)))
	_, ok := roleRank[role]
	return role, ok
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleRank[r]
	return ok
}

// AtLeast reports whether r ranks at or above min. Unknown roles never qualify.
func (r Role) AtLeast(min Role) bool {
	rank, ok := roleRank[r]
	if !ok {
		return false
	}
	required, ok := roleRank[min]
	if !ok {
		return false
	}
	return rank >= required
}

func (r Role) String() string {
	return string(r)
}
