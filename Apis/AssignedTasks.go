package Apis

import (
	"sync"

	"github.com/gofiber/fiber/v2"
)

// AssignedTask is an externally issued task from the upstream catalog. The
// catalog is consumed read-only; reports back-reference entries through
// task_origin_id without this service validating them.
type AssignedTask struct {
	ID       string `json:"id"`
	Title    string `json:"title"`
	Progress int    `json:"progress"`
}

var (
	catalogMu     sync.RWMutex
	assignedTasks = map[string][]AssignedTask{}
)

// SetAssignedTasks replaces a user's catalog entries, used by the seed loader.
func SetAssignedTasks(userID string, tasks []AssignedTask) {
	catalogMu.Lock()
	assignedTasks[userID] = tasks
	catalogMu.Unlock()
}

// TasksAssignedTo returns the catalog entries for one user.
func TasksAssignedTo(userID string) []AssignedTask {
	catalogMu.RLock()
	defer catalogMu.RUnlock()
	tasks := assignedTasks[userID]
	out := make([]AssignedTask, len(tasks))
	copy(out, tasks)
	return out
}

// GetTasksAssignedToUser feeds the form's task selector.
func GetTasksAssignedToUser(c *fiber.Ctx) error {
	userID := c.Params("user_id")
	return c.JSON(fiber.Map{"tasks": TasksAssignedTo(userID)})
}
