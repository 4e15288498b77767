package rules

// Trigger identifies the mutation kind a rule reacts to.
type Trigger string

const (
	TriggerStatusChanged      Trigger = "status_changed"
	TriggerPriorityChanged    Trigger = "priority_changed"
	TriggerAssigned           Trigger = "assigned"
	TriggerCreated            Trigger = "created"
	TriggerDueDateApproaching Trigger = "due_date_approaching"
)

var SupportedTriggers = []Trigger{
	TriggerStatusChanged,
	TriggerPriorityChanged,
	TriggerAssigned,
	TriggerCreated,
	TriggerDueDateApproaching,
}

// Operator is a condition comparison operator.
type Operator string

const (
	OperatorEquals      Operator = "equals"
	OperatorNotEquals   Operator = "not_equals"
	OperatorGreaterThan Operator = "greater_than"
	OperatorLessThan    Operator = "less_than"
	OperatorContains    Operator = "contains"
)

var SupportedOperators = []Operator{
	OperatorEquals,
	OperatorNotEquals,
	OperatorGreaterThan,
	OperatorLessThan,
	OperatorContains,
}

// ActionKind identifies what an action does to the task.
type ActionKind string

const (
	ActionSetStatus        ActionKind = "set_status"
	ActionSetPriority      ActionKind = "set_priority"
	ActionAssignTo         ActionKind = "assign_to"
	ActionAddTag           ActionKind = "add_tag"
	ActionSendNotification ActionKind = "send_notification"
)

var SupportedActions = []ActionKind{
	ActionSetStatus,
	ActionSetPriority,
	ActionAssignTo,
	ActionAddTag,
	ActionSendNotification,
}
