package engine

import (
	"time"

	"taskpilot/internal/rules"
	"taskpilot/internal/task"
)

// DueSoonWindow is how far ahead of a due date the due_date_approaching
// trigger looks.
const DueSoonWindow = 24 * time.Hour

// TriggerMatches decides whether a rule is eligible to run for this
// mutation. Disabled rules never match; unknown trigger kinds never match.
//
// due_date_approaching is stateless across calls: it is recomputed from the
// clock at every evaluation and can fire repeatedly while the task stays
// inside the window. Deduplication, if wanted, belongs to the caller via
// LastTriggered.
func TriggerMatches(rule rules.AutomationRule, oldTask *task.Task, current task.Task, changes ChangeSet, now time.Time) bool {
	if !rule.Enabled {
		return false
	}

	switch rule.Trigger {
	case rules.TriggerStatusChanged:
		return changes.Has(task.FieldStatus) && oldTask != nil && oldTask.Status != current.Status
	case rules.TriggerPriorityChanged:
		return changes.Has(task.FieldPriority) && oldTask != nil && oldTask.Priority != current.Priority
	case rules.TriggerAssigned:
		return changes.Has(task.FieldAssignedTo) && oldTask != nil &&
			oldTask.AssignedTo != current.AssignedTo && current.AssignedTo != ""
	case rules.TriggerCreated:
		return changes.IsCreated()
	case rules.TriggerDueDateApproaching:
		if current.DueDate == nil {
			return false
		}
		remaining := current.DueDate.Sub(now)
		return remaining > 0 && remaining <= DueSoonWindow
	default:
		return false
	}
}
