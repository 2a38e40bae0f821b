package Controllers

import (
	"fmt"
	"log"
	"sort"
	"time"

	"Pulse/Models"
	"Pulse/Store"

	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
)

// ExportController produces the monthly report sheet download
type ExportController struct {
	Store  *Store.ReportStore
	Roster *Store.EmployeeRoster
}

// NewExportController creates a new ExportController
func NewExportController(store *Store.ReportStore, roster *Store.EmployeeRoster) *ExportController {
	return &ExportController{Store: store, Roster: roster}
}

// ExportMonth streams an xlsx with one row per task (leave rows included) for
// a user's month of reports.
func (c *ExportController) ExportMonth(ctx *fiber.Ctx) error {
	userID := ctx.Query("user_id")
	year := ctx.QueryInt("year")
	month := ctx.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year or month"})
	}

	reports := c.Store.Month(userID, year, time.Month(month))
	sort.Slice(reports, func(i, j int) bool {
		return reports[i].Date.Before(reports[j].Date)
	})

	employeeName := userID
	if employee, ok := c.Roster.Find(userID); ok {
		employeeName = employee.Name
	}

	file := excelize.NewFile()
	defer file.Close()

	sheet := "Reports"
	file.SetSheetName("Sheet1", sheet)
	headers := []string{"Date", "Employee", "Day Status", "Task", "Project", "Completion %", "Task Status", "Comment"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		file.SetCellValue(sheet, cell, header)
	}

	rowIdx := 2
	writeRow := func(values []interface{}) {
		for i, value := range values {
			cell, _ := excelize.CoordinatesToCellName(i+1, rowIdx)
			file.SetCellValue(sheet, cell, value)
		}
		rowIdx++
	}

	for _, report := range reports {
		day := report.Date.Format("2006-01-02")
		if report.IsOnLeave {
			writeRow([]interface{}{day, employeeName, string(Models.DayOnLeave), "", "", "", "", ""})
			continue
		}
		status := string(report.Status())
		for _, task := range report.Tasks {
			writeRow([]interface{}{
				day, employeeName, status,
				task.Description, task.Project,
				task.CompletionPercentage, string(task.Status), task.Comment,
			})
		}
	}

	buffer, err := file.WriteToBuffer()
	if err != nil {
		log.Println(err)
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to generate report sheet"})
	}

	filename := fmt.Sprintf("reports_%s_%04d_%02d.xlsx", userID, year, month)
	ctx.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return ctx.Send(buffer.Bytes())
}
