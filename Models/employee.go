package Models

const (
	RoleEmployee = "Employee"
	RoleTeamLead = "Team Lead"
	RoleManager  = "Manager"
)

type Employee struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

const (
	AttendanceAbsent  = "Absent"
	AttendanceOnLeave = "On Leave"
	AttendanceHalfDay = "Half Day"
	AttendancePresent = "Present"
)

// AttendanceStatus derives an employee's attendance label from the report they
// submitted for a given day, or "Absent" when none exists.
func AttendanceStatus(report *Report) string {
	if report == nil {
		return AttendanceAbsent
	}
	if report.IsOnLeave {
		return AttendanceOnLeave
	}
	if report.IsHalfDay {
		return AttendanceHalfDay
	}
	return AttendancePresent
}
