package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrMissingRoleField    = errors.New("missing role field")
	ErrRoleFieldNotAllowed = errors.New("role field not allowed")
)

// Role discriminates the three kinds of person. The zero value is invalid.
type Role int

const (
	RoleVolunteer Role = iota + 1
	RoleTeamMember
	RoleOrgMember
)

// String returns the keyword used on the command line and in storage.
func (r Role) String() string {
	switch r {
	case RoleVolunteer:
		return "volunteer"
	case RoleTeamMember:
		return "member"
	case RoleOrgMember:
		return "orgmember"
	default:
		return fmt.Sprintf("Role(%d)", int(r))
	}
}

// Title is the display label of the role.
func (r Role) Title() string {
	switch r {
	case RoleVolunteer:
		return "Volunteer"
	case RoleTeamMember:
		return "Team member"
	case RoleOrgMember:
		return "Organisation member"
	default:
		return r.String()
	}
}

// ParseRole accepts the keywords returned by Role.String.
func ParseRole(s string) (Role, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "volunteer":
		return RoleVolunteer, nil
	case "member":
		return RoleTeamMember, nil
	case "orgmember":
		return RoleOrgMember, nil
	default:
		return 0, fmt.Errorf("unknown role %q", s)
	}
}

// checkRoleFields verifies that exactly the payload of role is present.
func checkRoleFields(role Role, committee *Committee, organisation *Organisation) error {
	switch role {
	case RoleVolunteer:
		if committee != nil {
			return fmt.Errorf("%w: only team members have a committee", ErrRoleFieldNotAllowed)
		}
		if organisation != nil {
			return fmt.Errorf("%w: only organisation members have an organisation", ErrRoleFieldNotAllowed)
		}
	case RoleTeamMember:
		if organisation != nil {
			return fmt.Errorf("%w: only organisation members have an organisation", ErrRoleFieldNotAllowed)
		}
		if committee == nil {
			return fmt.Errorf("%w: team members need a committee", ErrMissingRoleField)
		}
	case RoleOrgMember:
		if committee != nil {
			return fmt.Errorf("%w: only team members have a committee", ErrRoleFieldNotAllowed)
		}
		if organisation == nil {
			return fmt.Errorf("%w: organisation members need an organisation", ErrMissingRoleField)
		}
	default:
		return fmt.Errorf("unknown role %d", int(role))
	}
	return nil
}
