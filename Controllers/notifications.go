package Controllers

import (
	"Pulse/Notifications"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications drains the toast feed for the UI. Each notification is
// delivered once.
func GetNotifications(feed *Notifications.Feed) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{"notifications": feed.Drain()})
	}
}
