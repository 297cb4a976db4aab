package entity

const (
	TaskStatusToDo       = "TO_DO"
	TaskStatusInProgress = "IN_PROGRESS"
	TaskStatusDone       = "DONE"
)

// TaskNameMaxLen is the upper bound enforced on task names.
const TaskNameMaxLen = 100

// DbTask represents a persisted task row.
type DbTask struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	NameTask   string `gorm:"column:name_task;type:varchar(100);not null" json:"nameTask"`
	StatusTask string `gorm:"column:status_task;type:varchar(50);not null" json:"statusTask"`
}

// TableName overrides default pluralised name.
func (DbTask) TableName() string {
	return "tasks"
}

// IsValidTaskStatus reports whether s is a member of the status enumeration.
func IsValidTaskStatus(s string) bool {
	switch s {
	case TaskStatusToDo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

// TaskRequest is the form payload for creating or updating a task.
type TaskRequest struct {
	NameTask   string `form:"nameTask"`
	StatusTask string `form:"statusTask"`
}
