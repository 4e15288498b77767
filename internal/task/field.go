package task

import "time"

// Field names a task attribute that rules can reference.
type Field string

const (
	FieldStatus               Field = "status"
	FieldPriority             Field = "priority"
	FieldCategory             Field = "category"
	FieldAssignedTo           Field = "assignedTo"
	FieldTags                 Field = "tags"
	FieldCompletionPercentage Field = "completionPercentage"
	FieldEstimatedHours       Field = "estimatedHours"
	FieldDueDate              Field = "dueDate"
	FieldStartDate            Field = "startDate"
	FieldTitle                Field = "title"
	FieldDescription          Field = "description"
)

// WatchedFields is the fixed list of fields the change detector compares.
// Fields outside this list are never reported as changed, which bounds the
// trigger surface. Tags are referenceable by conditions but deliberately
// not watched.
var WatchedFields = []Field{
	FieldStatus,
	FieldPriority,
	FieldCategory,
	FieldAssignedTo,
	FieldDueDate,
	FieldStartDate,
	FieldCompletionPercentage,
	FieldEstimatedHours,
	FieldTitle,
	FieldDescription,
}

var accessors = map[Field]func(Task) Value{
	FieldStatus:               func(t Task) Value { return StringValue(t.Status) },
	FieldPriority:             func(t Task) Value { return StringValue(t.Priority) },
	FieldCategory:             func(t Task) Value { return StringValue(t.Category) },
	FieldAssignedTo:           func(t Task) Value { return StringValue(t.AssignedTo) },
	FieldTags:                 func(t Task) Value { return ListValue(t.Tags) },
	FieldCompletionPercentage: func(t Task) Value { return NumberValue(t.CompletionPercentage) },
	FieldEstimatedHours:       func(t Task) Value { return NumberValue(t.EstimatedHours) },
	FieldDueDate:              func(t Task) Value { return timeValue(t.DueDate) },
	FieldStartDate:            func(t Task) Value { return timeValue(t.StartDate) },
	FieldTitle:                func(t Task) Value { return StringValue(t.Title) },
	FieldDescription:          func(t Task) Value { return StringValue(t.Description) },
}

func timeValue(t *time.Time) Value {
	if t == nil {
		return Value{}
	}
	return TimeValue(*t)
}

// Field resolves a named field on the snapshot. Unknown fields resolve to
// the absent Value rather than an error, so a rule referencing a removed or
// misspelled field degrades to a condition that never matches.
func (t Task) Field(name Field) Value {
	accessor, ok := accessors[name]
	if !ok {
		return Value{}
	}
	return accessor(t)
}
