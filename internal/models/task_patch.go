package model

import "time"

// TaskPatch carries a partial update. A nil pointer means the field was not
// supplied and must be left alone. DueDate needs its own flag because null is
// a legitimate value that clears it.
type TaskPatch struct {
	Task       *string
	Completed  *bool
	Category   *Category
	DueDateSet bool
	DueDate    *time.Time
}

func (p TaskPatch) IsEmpty() bool {
	return p.Task == nil && p.Completed == nil && p.Category == nil && !p.DueDateSet
}

// Apply copies the supplied fields onto t.
func (p TaskPatch) Apply(t *Task) {
	if p.Task != nil {
		t.Task = *p.Task
	}
	if p.Completed != nil {
		t.Completed = *p.Completed
	}
	if p.Category != nil {
		t.Category = *p.Category
	}
	if p.DueDateSet {
		t.DueDate = p.DueDate
	}
}

// Columns returns the column/value pairs touched by the patch.
func (p TaskPatch) Columns() map[string]interface{} {
	cols := make(map[string]interface{})
	if p.Task != nil {
		cols["task"] = *p.Task
	}
	if p.Completed != nil {
		cols["completed"] = *p.Completed
	}
	if p.Category != nil {
		cols["category"] = *p.Category
	}
	if p.DueDateSet {
		cols["due_date"] = p.DueDate
	}
	return cols
}
