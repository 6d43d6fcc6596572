package domain

// StaffRole enumerates internal operator roles.
type StaffRole string

const (
	StaffRoleMaintenance StaffRole = "MAINTENANCE"
	StaffRoleTeamLead    StaffRole = "TEAM_LEAD"
	StaffRoleAdmin       StaffRole = "ADMIN"
)
