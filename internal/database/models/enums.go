package models

// PlaygroupStatus defines the lifecycle states of a playgroup
type PlaygroupStatus string

const (
	PlaygroupStatusActive   PlaygroupStatus = "ACTIVE"
	PlaygroupStatusInactive PlaygroupStatus = "INACTIVE"
)

// MembershipRole defines the roles a golfer can hold within a playgroup
type MembershipRole string

const (
	MembershipRoleLeader MembershipRole = "LEADER"
	MembershipRoleMember MembershipRole = "MEMBER"
)

// TeeTimeStatus defines the lifecycle states of a tee time
type TeeTimeStatus string

const (
	TeeTimeStatusScheduled TeeTimeStatus = "SCHEDULED"
	TeeTimeStatusCancelled TeeTimeStatus = "CANCELLED"
	TeeTimeStatusCompleted TeeTimeStatus = "COMPLETED"
)

// IsValid checks if the PlaygroupStatus is valid
func (s PlaygroupStatus) IsValid() bool {
	switch s {
	case PlaygroupStatusActive, PlaygroupStatusInactive:
		return true
	}
	return false
}

// IsValid checks if the MembershipRole is valid
func (r MembershipRole) IsValid() bool {
	switch r {
	case MembershipRoleLeader, MembershipRoleMember:
		return true
	}
	return false
}

// IsValid checks if the TeeTimeStatus is valid
func (s TeeTimeStatus) IsValid() bool {
	switch s {
	case TeeTimeStatusScheduled, TeeTimeStatusCancelled, TeeTimeStatusCompleted:
		return true
	}
	return false
}
