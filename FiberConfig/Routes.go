package FiberConfig

import (
	"fmt"
	"log"
	"os"

	"Pulse/Apis"
	"Pulse/Controllers"
	"Pulse/Notifications"
	"Pulse/Store"
	"Pulse/middleware"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/template/html"
)

func SetupRoutes(app *fiber.App, store *Store.ReportStore, roster *Store.EmployeeRoster, feed *Notifications.Feed) {
	// Initialize handlers
	reportController := Controllers.NewReportController(store, feed)
	employeeController := Controllers.NewEmployeeController(roster, store)
	exportController := Controllers.NewExportController(store, roster)

	// API group
	api := app.Group("/api")

	// Report routes - keep the query-based routes BEFORE the ID routes to
	// avoid conflicts
	reports := api.Group("/reports")
	reports.Get("/", reportController.GetReports)
	reports.Get("/date", reportController.GetReportByDate)
	reports.Get("/month", reportController.GetMonthStatuses)
	reports.Get("/today", reportController.GetTodayReports(roster))
	reports.Get("/export", exportController.ExportMonth)
	reports.Post("/", reportController.SubmitReport)
	reports.Put("/:id", reportController.UpdateReport)
	reports.Delete("/:id", reportController.DeleteReport)

	// Employee routes
	employees := api.Group("/employees")
	employees.Get("/", employeeController.GetEmployees)
	employees.Get("/attendance", employeeController.GetAttendance)

	// External task catalog, consumed read-only by the form
	api.Get("/tasks/assigned/:user_id", Apis.GetTasksAssignedToUser)

	// Toast feed for the UI
	api.Get("/notifications", Controllers.GetNotifications(feed))

	// Server-rendered snapshot page
	app.Get("/", employeeController.StatusPage)
}

func FiberConfig(store *Store.ReportStore, roster *Store.EmployeeRoster, feed *Notifications.Feed) {
	fmt.Println("Server Up...")
	engine := html.New("./Templates", ".html")
	// Html Template engine
	app := fiber.New(fiber.Config{
		Views: engine,
	})
	app.Use(middleware.RequestLogger())
	app.Use(compress.New(compress.Config{
		Level: compress.LevelBestCompression,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     "http://localhost:5173, http://localhost:3000",
		AllowHeaders:     "Origin, Content-Type, Accept",
		AllowCredentials: true,
	}))

	SetupRoutes(app, store, roster, feed)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8084"
	}
	log.Fatal(app.Listen(":" + port))
}
