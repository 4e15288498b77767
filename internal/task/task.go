package task

import "time"

// Task is an immutable snapshot of a task's field values at one point in
// time. The engine never mutates a snapshot in place; every change goes
// through Patch.Apply, which produces a fresh copy.
type Task struct {
	ID                   string     `json:"id"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Status               string     `json:"status"`
	Priority             string     `json:"priority"`
	Category             string     `json:"category"`
	AssignedTo           string     `json:"assignedTo"`
	Tags                 []string   `json:"tags"`
	CompletionPercentage float64    `json:"completionPercentage"`
	EstimatedHours       float64    `json:"estimatedHours"`
	DueDate              *time.Time `json:"dueDate,omitempty"`
	StartDate            *time.Time `json:"startDate,omitempty"`
	CreatedAt            time.Time  `json:"createdAt"`
	UpdatedAt            time.Time  `json:"updatedAt"`
}

// Clone returns a structural copy of t with its own tag slice.
func (t Task) Clone() Task {
	c := t
	if t.Tags != nil {
		c.Tags = append([]string(nil), t.Tags...)
	}
	return c
}

// Patch is a partial task record: only the set fields overwrite the
// snapshot they are applied to. The closed field set matches what actions
// can produce; AssignedTo distinguishes "not set" from an explicit empty
// string, which is a valid unassign.
type Patch struct {
	Status     *string
	Priority   *string
	AssignedTo *string
	Tags       *[]string
}

// IsZero reports whether p overwrites nothing.
func (p Patch) IsZero() bool {
	return p.Status == nil && p.Priority == nil && p.AssignedTo == nil && p.Tags == nil
}

// Merge overlays later onto p; later's set fields win.
func (p Patch) Merge(later Patch) Patch {
	if later.Status != nil {
		p.Status = later.Status
	}
	if later.Priority != nil {
		p.Priority = later.Priority
	}
	if later.AssignedTo != nil {
		p.AssignedTo = later.AssignedTo
	}
	if later.Tags != nil {
		p.Tags = later.Tags
	}
	return p
}

// Apply returns a new snapshot of t with p's fields overwritten.
func (p Patch) Apply(t Task) Task {
	out := t.Clone()
	if p.Status != nil {
		out.Status = *p.Status
	}
	if p.Priority != nil {
		out.Priority = *p.Priority
	}
	if p.AssignedTo != nil {
		out.AssignedTo = *p.AssignedTo
	}
	if p.Tags != nil {
		out.Tags = append([]string(nil), *p.Tags...)
	}
	return out
}
