package Models

import (
	"time"

	"github.com/google/uuid"
)

type TaskStatus string

const (
	StatusPending    TaskStatus = "Pending"
	StatusInProgress TaskStatus = "In Progress"
	StatusCompleted  TaskStatus = "Completed"
)

func (s TaskStatus) Valid() bool {
	switch s {
	case StatusPending, StatusInProgress, StatusCompleted:
		return true
	}
	return false
}

// Task is one unit of work progress recorded inside a Report. Tasks have no
// identity outside their parent report's list.
type Task struct {
	ID                   string     `json:"id"`
	TaskOriginID         string     `json:"task_origin_id,omitempty"`
	Description          string     `json:"description"`
	CompletionPercentage int        `json:"completion_percentage"`
	Status               TaskStatus `json:"status"`
	Comment              string     `json:"comment,omitempty"`
	Project              string     `json:"project,omitempty"`
	CreatedAt            time.Time  `json:"created_at"`
}

// Report is one user's submitted status for a single calendar day.
// The Date's time-of-day component is ignored for identity: two timestamps on
// the same day address the same report-day.
type Report struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Date      time.Time `json:"date"`
	IsOnLeave bool      `json:"is_on_leave"`
	IsHalfDay bool      `json:"is_half_day"`
	CreatedAt time.Time `json:"created_at"`
	Tasks     []Task    `json:"tasks"`
}

func NewReport(userID string, date time.Time) Report {
	return Report{
		ID:        uuid.NewString(),
		UserID:    userID,
		Date:      date,
		CreatedAt: time.Now(),
		Tasks:     []Task{},
	}
}

// SetOnLeave switches the leave flag. Turning leave on forces half-day off and
// drops the task list; a leave-day report never carries tasks.
func (r *Report) SetOnLeave(onLeave bool) {
	r.IsOnLeave = onLeave
	if onLeave {
		r.IsHalfDay = false
		r.Tasks = []Task{}
	}
}

// SetHalfDay is ignored while the report is on leave.
func (r *Report) SetHalfDay(halfDay bool) {
	if r.IsOnLeave {
		return
	}
	r.IsHalfDay = halfDay
}

// Normalize re-applies the leave rules so no stored report can hold both flags
// or a leave day with tasks, whatever path the data came in on.
func (r *Report) Normalize() {
	if r.IsOnLeave {
		r.IsHalfDay = false
		r.Tasks = []Task{}
	}
	if r.Tasks == nil {
		r.Tasks = []Task{}
	}
}

type DayStatus string

const (
	DayNone      DayStatus = "none"
	DayOnLeave   DayStatus = "on-leave"
	DayHalfDay   DayStatus = "half-day"
	DayCompleted DayStatus = "completed"
)

// Status derives the calendar badge for a report-day.
func (r *Report) Status() DayStatus {
	if r.IsOnLeave {
		return DayOnLeave
	}
	if r.IsHalfDay {
		return DayHalfDay
	}
	return DayCompleted
}

// SameDay reports whether two timestamps fall on the same calendar day,
// irrespective of clock time.
func SameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
