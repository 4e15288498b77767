package rules

import (
	"time"

	"taskpilot/internal/task"
)

// AutomationRule pairs one trigger with a conjunction of conditions and an
// ordered list of actions. Rules are runtime data: the engine only reads
// them, the authoring side owns creation and deletion.
type AutomationRule struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Enabled       bool            `json:"enabled"`
	Trigger       Trigger         `json:"trigger"`
	Conditions    []ConditionItem `json:"conditions,omitempty"`
	Actions       []ActionItem    `json:"actions,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
	TriggerCount  int             `json:"triggerCount"`
	LastTriggered *time.Time      `json:"lastTriggered,omitempty"`
}

// ConditionItem is a single comparison against one task field. An empty
// condition list on a rule is vacuously true.
type ConditionItem struct {
	Field    task.Field `json:"field"`
	Operator Operator   `json:"operator"`
	Value    task.Value `json:"value"`
}

// ActionItem is one action with its parameters.
type ActionItem struct {
	Action     ActionKind   `json:"action"`
	Parameters ActionParams `json:"parameters"`
}

// ActionParams is the closed set of parameters actions can read. Pointer
// fields keep "key missing" distinct from "explicit empty string": a
// missing assignedTo makes assign_to a no-op, an empty one unassigns.
type ActionParams struct {
	Status     *string `json:"status,omitempty"`
	Priority   *string `json:"priority,omitempty"`
	AssignedTo *string `json:"assignedTo,omitempty"`
	Tag        *string `json:"tag,omitempty"`
	Message    *string `json:"message,omitempty"`
}
