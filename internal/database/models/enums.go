package models

// TeamRole represents the role of a user within a team
type TeamRole string

const (
	TeamRoleLeader TeamRole = "LEADER"
	TeamRoleMember TeamRole = "MEMBER"
)

// HackathonStatus represents the lifecycle stage of a hackathon
type HackathonStatus string

const (
	HackathonStatusUpcoming HackathonStatus = "UPCOMING"
	HackathonStatusOngoing  HackathonStatus = "ONGOING"
	HackathonStatusFinished HackathonStatus = "FINISHED"
)

// IsValid checks if the TeamRole is valid
func (r TeamRole) IsValid() bool {
	switch r {
	case TeamRoleLeader, TeamRoleMember:
		return true
	}
	return false
}

// IsValid checks if the HackathonStatus is valid
func (s HackathonStatus) IsValid() bool {
	switch s {
	case HackathonStatusUpcoming, HackathonStatusOngoing, HackathonStatusFinished:
		return true
	}
	return false
}
