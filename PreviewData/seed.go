package PreviewData

import (
	"log"
	"time"

	"Pulse/Apis"
	"Pulse/Models"
	"Pulse/Store"
)

// Demo fixtures for running the service without a populated roster. Kept out
// of the stores themselves; loading is an explicit boot-time step.

func Employees() []Models.Employee {
	return []Models.Employee{
		{ID: "1", Name: "John Doe", Role: Models.RoleTeamLead},
		{ID: "2", Name: "Jane Smith", Role: Models.RoleEmployee},
		{ID: "3", Name: "Mike Johnson", Role: Models.RoleEmployee},
		{ID: "4", Name: "Sarah Williams", Role: Models.RoleManager},
		{ID: "5", Name: "Alex Brown", Role: Models.RoleEmployee},
	}
}

func demoTasks(now time.Time) []Models.Task {
	return []Models.Task{
		{ID: "t1", Description: "Complete project documentation", Status: Models.StatusCompleted, CompletionPercentage: 100, CreatedAt: now},
		{ID: "t2", Description: "Attend team meeting", Status: Models.StatusCompleted, CompletionPercentage: 100, CreatedAt: now},
		{ID: "t3", Description: "Review pull requests", Status: Models.StatusInProgress, CompletionPercentage: 70, CreatedAt: now},
		{ID: "t4", Description: "Fix bug in login flow", Status: Models.StatusInProgress, CompletionPercentage: 50, CreatedAt: now},
		{ID: "t5", Description: "Prepare presentation slides", Status: Models.StatusPending, CompletionPercentage: 0, CreatedAt: now},
	}
}

// Reports builds today's demo reports: two regular days, one half day and one
// leave day across the roster.
func Reports(day time.Time) []Models.Report {
	tasks := demoTasks(day)
	return []Models.Report{
		{ID: "r1", UserID: "1", Date: day, CreatedAt: day, Tasks: []Models.Task{tasks[0], tasks[1]}},
		{ID: "r2", UserID: "2", Date: day, CreatedAt: day, IsHalfDay: true, Tasks: []Models.Task{tasks[2]}},
		{ID: "r3", UserID: "3", Date: day, CreatedAt: day, IsOnLeave: true, Tasks: []Models.Task{}},
		{ID: "r4", UserID: "4", Date: day, CreatedAt: day, Tasks: []Models.Task{tasks[3], tasks[4]}},
	}
}

// Load seeds the roster, today's reports and the assigned-task catalog.
func Load(store *Store.ReportStore, roster *Store.EmployeeRoster) {
	for _, employee := range Employees() {
		roster.Add(employee)
	}
	for _, report := range Reports(time.Now()) {
		store.Add(report)
	}
	Apis.SetAssignedTasks("1", []Apis.AssignedTask{
		{ID: "a1", Title: "Quarterly roadmap review", Progress: 30},
		{ID: "a2", Title: "Onboarding guide refresh", Progress: 60},
	})
	Apis.SetAssignedTasks("2", []Apis.AssignedTask{
		{ID: "a3", Title: "API error audit", Progress: 10},
	})
	log.Println("Loaded demo roster and reports")
}
