package auth

import "strings"

// Identity is the authenticated caller attached to every request by the
// boundary layer. The core trusts these fields completely; producing them
// (token validation today, an API gateway authorizer in other deployments)
// is not the core's concern.
type Identity struct {
	UserID string
	Email  string
	Roles  RoleSet
}

// RoleSet is the set of role tags carried by an identity's group claim
type RoleSet map[string]struct{}

// ParseRoleSet splits a comma-delimited group claim into a role set.
// An empty or all-whitespace claim yields the empty set, never {""}.
func ParseRoleSet(claim string) RoleSet {
	set := make(RoleSet)
	for _, tag := range strings.Split(claim, ",") {
		tag = strings.TrimSpace(tag)
		if tag == "" {
			continue
		}
		set[tag] = struct{}{}
	}
	return set
}

// Has reports whether the set contains the given role tag
func (s RoleSet) Has(role string) bool {
	_, ok := s[role]
	return ok
}

// Tags returns the set's role tags in unspecified order
func (s RoleSet) Tags() []string {
	tags := make([]string, 0, len(s))
	for tag := range s {
		tags = append(tags, tag)
	}
	return tags
}
