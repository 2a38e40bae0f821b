package Controllers

import (
	"errors"
	"time"

	"Pulse/ManipulateData"
	"Pulse/Models"
	"Pulse/Notifications"
	"Pulse/Store"

	"github.com/gofiber/fiber/v2"
)

// ReportController handles report submission, lookup and the calendar feeds
type ReportController struct {
	Store *Store.ReportStore
	Feed  *Notifications.Feed
}

// NewReportController creates a new ReportController
func NewReportController(store *Store.ReportStore, feed *Notifications.Feed) *ReportController {
	return &ReportController{Store: store, Feed: feed}
}

// SubmitReport validates a submission form and upserts it by (user, day).
// Resubmitting for a day that already has a report replaces it.
func (c *ReportController) SubmitReport(ctx *fiber.Ctx) error {
	var form ManipulateData.ReportForm
	if err := ctx.BodyParser(&form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ManipulateData.ValidateReport(form); err != nil {
		c.Feed.Error(err.Error())
		var verr *ManipulateData.ValidationError
		if errors.As(err, &verr) {
			return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{
				"error":  verr.Message,
				"fields": verr.Fields,
			})
		}
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	var existing *Models.Report
	if prior, ok := c.Store.GetByDate(form.UserID, form.Date); ok {
		existing = &prior
	}
	report := ManipulateData.BuildReport(form, existing, time.Now())

	created := c.Store.Add(report)
	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return ctx.Status(status).JSON(fiber.Map{"report": report, "created": created})
}

// UpdateReport edits a report addressed by ID, the path used when a calendar
// click already resolved a specific report. Unknown IDs leave the store
// unchanged.
func (c *ReportController) UpdateReport(ctx *fiber.Ctx) error {
	id := ctx.Params("id")

	var form ManipulateData.ReportForm
	if err := ctx.BodyParser(&form); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	if err := ManipulateData.ValidateReport(form); err != nil {
		c.Feed.Error(err.Error())
		return ctx.Status(fiber.StatusUnprocessableEntity).JSON(fiber.Map{"error": err.Error()})
	}

	existing, ok := c.Store.Get(id)
	if !ok {
		// Idempotent no-op policy: absent targets are not an error.
		return ctx.JSON(fiber.Map{"updated": false})
	}
	report := ManipulateData.BuildReport(form, &existing, time.Now())
	report.ID = id

	c.Store.Update(report)
	return ctx.JSON(fiber.Map{"report": report, "updated": true})
}

// DeleteReport removes a report by ID; deleting an unknown ID is a no-op.
func (c *ReportController) DeleteReport(ctx *fiber.Ctx) error {
	c.Store.Delete(ctx.Params("id"))
	return ctx.JSON(fiber.Map{"message": "Report deleted successfully"})
}

// GetReports returns every stored report with a count for the dashboard stats.
func (c *ReportController) GetReports(ctx *fiber.Ctx) error {
	reports := c.Store.All()
	return ctx.JSON(fiber.Map{"reports": reports, "count": len(reports)})
}

// GetReportByDate resolves a user's report for one calendar day. The date
// query accepts YYYY-MM-DD; a day without a report answers with a null report
// rather than a 404 so the form can hydrate either way.
func (c *ReportController) GetReportByDate(ctx *fiber.Ctx) error {
	userID := ctx.Query("user_id")
	date, err := time.Parse("2006-01-02", ctx.Query("date"))
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid date, expected YYYY-MM-DD"})
	}

	report, ok := c.Store.GetByDate(userID, date)
	if !ok {
		return ctx.JSON(fiber.Map{"report": nil})
	}

	// Hand the editor back the authoring shapes so the task selector can
	// re-highlight originally chosen catalog tasks.
	forms := make([]ManipulateData.TaskForm, 0, len(report.Tasks))
	for _, task := range report.Tasks {
		forms = append(forms, ManipulateData.ToForm(task))
	}
	return ctx.JSON(fiber.Map{"report": report, "task_forms": forms})
}

// GetMonthStatuses returns a day -> status map for painting the calendar grid.
func (c *ReportController) GetMonthStatuses(ctx *fiber.Ctx) error {
	userID := ctx.Query("user_id")
	year := ctx.QueryInt("year")
	month := ctx.QueryInt("month")
	if year == 0 || month < 1 || month > 12 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid year or month"})
	}

	statuses := map[string]Models.DayStatus{}
	for _, report := range c.Store.Month(userID, year, time.Month(month)) {
		statuses[report.Date.Format("2006-01-02")] = report.Status()
	}
	return ctx.JSON(fiber.Map{"statuses": statuses})
}

// GetTodayReports lists every report submitted for today across users,
// joined with roster names for the management table.
func (c *ReportController) GetTodayReports(roster *Store.EmployeeRoster) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		type row struct {
			Employee Models.Employee `json:"employee"`
			Report   Models.Report   `json:"report"`
		}
		rows := []row{}
		for _, report := range c.Store.ReportsOn(time.Now()) {
			employee, _ := roster.Find(report.UserID)
			rows = append(rows, row{Employee: employee, Report: report})
		}
		return ctx.JSON(fiber.Map{"reports": rows})
	}
}
