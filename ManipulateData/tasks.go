package ManipulateData

import (
	"time"

	"Pulse/Models"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
	"github.com/google/uuid"
)

// TaskForm is the authoring shape of a task while a form is open. IssuedBy is
// transient and has no stored counterpart; TaskOriginID back-references an
// externally issued task so the selector can re-highlight it on reopen.
type TaskForm struct {
	ID                   string `json:"id"`
	TaskOriginID         string `json:"task_origin_id"`
	Description          string `json:"description" validate:"required"`
	CompletionPercentage int    `json:"completion_percentage" validate:"min=0,max=100"`
	Status               string `json:"status" validate:"required,oneof=Pending 'In Progress' Completed"`
	Comment              string `json:"comment"`
	IssuedBy             string `json:"issued_by"`
	Project              string `json:"project"`
}

// ReportForm is the submission payload for one report-day.
type ReportForm struct {
	UserID    string     `json:"user_id" validate:"required"`
	Date      time.Time  `json:"date" validate:"required"`
	IsOnLeave bool       `json:"is_on_leave"`
	IsHalfDay bool       `json:"is_half_day"`
	Tasks     []TaskForm `json:"tasks"`
}

var (
	validate *validator.Validate
	trans    ut.Translator
)

func init() {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ = uni.GetTranslator("en")
	validate = validator.New()
	en_translations.RegisterDefaultTranslations(validate, trans)
}

// ToStored converts an authoring task to its canonical stored shape. A blank
// ID gets a fresh one; an existing ID is kept so edits stay addressed to the
// same task. CreatedAt is stamped with now and set once.
func ToStored(form TaskForm, now time.Time) Models.Task {
	id := form.ID
	if id == "" {
		id = uuid.NewString()
	}
	return Models.Task{
		ID:                   id,
		TaskOriginID:         form.TaskOriginID,
		Description:          form.Description,
		CompletionPercentage: form.CompletionPercentage,
		Status:               Models.TaskStatus(form.Status),
		Comment:              form.Comment,
		Project:              form.Project,
		CreatedAt:            now,
	}
}

// ToForm converts a stored task back to the authoring shape for reopening an
// editor. IssuedBy has no stored counterpart and comes back empty.
func ToForm(task Models.Task) TaskForm {
	return TaskForm{
		ID:                   task.ID,
		TaskOriginID:         task.TaskOriginID,
		Description:          task.Description,
		CompletionPercentage: task.CompletionPercentage,
		Status:               string(task.Status),
		Comment:              task.Comment,
		IssuedBy:             "",
		Project:              task.Project,
	}
}

// ValidationError carries the user-facing message plus the translated field
// errors behind it.
type ValidationError struct {
	Message string   `json:"message"`
	Fields  []string `json:"fields,omitempty"`
}

func (e *ValidationError) Error() string {
	return e.Message
}

// ValidateReport is the pre-submit gate. On a leave day validation is skipped
// entirely; otherwise the form needs at least one task and every task needs
// its required fields filled. The gate never mutates state; a failed
// submission leaves the store untouched.
func ValidateReport(form ReportForm) error {
	if err := validate.StructExcept(form, "Tasks"); err != nil {
		return translated("please fill in all required fields", err)
	}
	if form.IsOnLeave {
		return nil
	}
	if len(form.Tasks) == 0 {
		return &ValidationError{Message: "at least one task is required"}
	}
	for _, task := range form.Tasks {
		if err := validate.Struct(task); err != nil {
			return translated("please fill in all required fields", err)
		}
	}
	return nil
}

func translated(message string, err error) error {
	verr, ok := err.(validator.ValidationErrors)
	if !ok {
		return &ValidationError{Message: message}
	}
	fields := make([]string, 0, len(verr))
	for _, fe := range verr {
		fields = append(fields, fe.Translate(trans))
	}
	return &ValidationError{Message: message, Fields: fields}
}

// BuildReport normalizes a validated form into the stored report shape. When
// an existing report for the same identity is supplied, its ID and CreatedAt
// are preserved and edited tasks keep their original creation times. A leave
// day stores an empty task list and half-day off regardless of what the
// editor held.
func BuildReport(form ReportForm, existing *Models.Report, now time.Time) Models.Report {
	report := Models.Report{
		ID:        uuid.NewString(),
		UserID:    form.UserID,
		Date:      form.Date,
		IsHalfDay: form.IsHalfDay,
		CreatedAt: now,
		Tasks:     []Models.Task{},
	}
	if existing != nil {
		report.ID = existing.ID
		report.CreatedAt = existing.CreatedAt
	}
	report.SetOnLeave(form.IsOnLeave)
	if report.IsOnLeave {
		return report
	}

	tasks := make([]Models.Task, 0, len(form.Tasks))
	for _, tf := range form.Tasks {
		task := ToStored(tf, now)
		if existing != nil {
			for _, prior := range existing.Tasks {
				if prior.ID == task.ID {
					task.CreatedAt = prior.CreatedAt
					break
				}
			}
		}
		tasks = append(tasks, task)
	}
	report.Tasks = tasks
	return report
}
