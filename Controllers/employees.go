package Controllers

import (
	"time"

	"Pulse/Models"
	"Pulse/Store"

	"github.com/gofiber/fiber/v2"
)

// EmployeeController serves the roster and attendance views
type EmployeeController struct {
	Roster *Store.EmployeeRoster
	Store  *Store.ReportStore
}

// NewEmployeeController creates a new EmployeeController
func NewEmployeeController(roster *Store.EmployeeRoster, store *Store.ReportStore) *EmployeeController {
	return &EmployeeController{Roster: roster, Store: store}
}

// GetEmployees returns the roster
func (c *EmployeeController) GetEmployees(ctx *fiber.Ctx) error {
	return ctx.JSON(c.Roster.All())
}

// GetAttendance returns every employee with their attendance status for one
// day. Defaults to today when no date is given.
func (c *EmployeeController) GetAttendance(ctx *fiber.Ctx) error {
	date := time.Now()
	if raw := ctx.Query("date"); raw != "" {
		parsed, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
		}
		date = parsed
	}

	type row struct {
		Employee Models.Employee `json:"employee"`
		Status   string          `json:"status"`
	}
	rows := make([]row, 0)
	for _, employee := range c.Roster.All() {
		var report *Models.Report
		if found, ok := c.Store.GetByDate(employee.ID, date); ok {
			report = &found
		}
		rows = append(rows, row{Employee: employee, Status: Models.AttendanceStatus(report)})
	}
	return ctx.JSON(fiber.Map{"date": date.Format("2006-01-02"), "attendance": rows})
}

// StatusPage renders the server-side snapshot of today's roster status.
func (c *EmployeeController) StatusPage(ctx *fiber.Ctx) error {
	today := time.Now()
	type row struct {
		Name   string
		Role   string
		Status string
		Tasks  int
	}
	rows := make([]row, 0)
	for _, employee := range c.Roster.All() {
		var report *Models.Report
		tasks := 0
		if found, ok := c.Store.GetByDate(employee.ID, today); ok {
			report = &found
			tasks = len(found.Tasks)
		}
		rows = append(rows, row{
			Name:   employee.Name,
			Role:   employee.Role,
			Status: Models.AttendanceStatus(report),
			Tasks:  tasks,
		})
	}
	return ctx.Render("index", fiber.Map{
		"Date":  today.Format("January 2, 2006"),
		"Rows":  rows,
		"Total": c.Store.Count(),
	})
}
