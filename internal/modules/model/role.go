package model

import (
	"fmt"
	"strings"
)

// Role is the closed set of user roles. It is parsed once at the boundary
// (token issue/verify and user create/update); stored values may carry stray
// whitespace, which ParseRole tolerates.
type Role string

const (
	RoleAdmin      Role = "admin"
	RoleTeamLeader Role = "team_leader"
	RoleTeamMember Role = "team_member"
)

func ParseRole(s string) (Role, error) {
	switch r := Role(strings.TrimSpace(s)); r {
	case RoleAdmin, RoleTeamLeader, RoleTeamMember:
		return r, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}
