package model

import (
	"database/sql/driver"
	"fmt"
	"strings"
)

// Role is the closed set of permission levels a person can hold.
type Role int

const (
	RoleDev Role = iota + 1
	RoleAdmin
	RoleSupervisor
	RoleUser
	RoleGuest
)

var _roleTitles = map[Role]string{
	RoleDev:        "dev",
	RoleAdmin:      "admin",
	RoleSupervisor: "supervisor",
	RoleUser:       "user",
	RoleGuest:      "guest",
}

func Roles() []Role {
	return []Role{RoleDev, RoleAdmin, RoleSupervisor, RoleUser, RoleGuest}
}

func (r Role) Valid() bool {
	_, ok := _roleTitles[r]
	return ok
}

func (r Role) String() string {
	if title, ok := _roleTitles[r]; ok {
		return title
	}
	return fmt.Sprintf("role(%d)", int(r))
}

func ParseRole(s string) (Role, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for role, title := range _roleTitles {
		if title == s {
			return role, nil
		}
	}
	return 0, NewDetailedError("role", ErrValidation, "unknown role "+s)
}

func (r Role) MarshalText() ([]byte, error) {
	if !r.Valid() {
		return nil, NewDetailedError("role", ErrValidation, r.String())
	}
	return []byte(r.String()), nil
}

func (r *Role) UnmarshalText(text []byte) error {
	role, err := ParseRole(string(text))
	if err != nil {
		return err
	}
	*r = role
	return nil
}

func (r Role) Value() (driver.Value, error) {
	return int64(r), nil
}

func (r *Role) Scan(src any) error {
	switch v := src.(type) {
	case int64:
		*r = Role(v)
	case int32:
		*r = Role(v)
	case int:
		*r = Role(v)
	default:
		return fmt.Errorf("role: unsupported scan type %T", src)
	}
	if !r.Valid() {
		return NewDetailedError("role", ErrValidation, r.String())
	}
	return nil
}

// Permission is one entry of the role catalogue.
type Permission struct {
	Level int    `json:"permissionLevel" yaml:"permissionLevel"`
	Title string `json:"title" yaml:"title"`
}

func Permissions() []Permission {
	roles := Roles()
	perms := make([]Permission, 0, len(roles))
	for _, role := range roles {
		perms = append(perms, Permission{Level: int(role), Title: role.String()})
	}
	return perms
}
