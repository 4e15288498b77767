package engine

import (
	"taskpilot/internal/rules"
	"taskpilot/internal/task"
)

// Notification is a reported send_notification side effect. The engine
// never delivers anything; the caller routes these to real notification
// infrastructure.
type Notification struct {
	RuleID  string `json:"ruleId"`
	Message string `json:"message"`
}

const defaultNotificationMessage = "Automation rule triggered"

// ApplyAction produces the field patch (and possibly a notification) for a
// single action against the snapshot the rule entered with. Missing
// required parameters and unknown action kinds are no-ops, never errors.
func ApplyAction(t task.Task, ruleID string, item rules.ActionItem) (task.Patch, *Notification) {
	switch item.Action {
	case rules.ActionSetStatus:
		if p := item.Parameters.Status; p != nil {
			return task.Patch{Status: p}, nil
		}
	case rules.ActionSetPriority:
		if p := item.Parameters.Priority; p != nil {
			return task.Patch{Priority: p}, nil
		}
	case rules.ActionAssignTo:
		// An explicit empty string is a valid unassign; only a missing
		// key is a no-op.
		if p := item.Parameters.AssignedTo; p != nil {
			return task.Patch{AssignedTo: p}, nil
		}
	case rules.ActionAddTag:
		if p := item.Parameters.Tag; p != nil {
			for _, tag := range t.Tags {
				if tag == *p {
					return task.Patch{}, nil
				}
			}
			tags := append(append([]string(nil), t.Tags...), *p)
			return task.Patch{Tags: &tags}, nil
		}
	case rules.ActionSendNotification:
		message := defaultNotificationMessage
		if m := item.Parameters.Message; m != nil && *m != "" {
			message = *m
		}
		return task.Patch{}, &Notification{RuleID: ruleID, Message: message}
	}
	return task.Patch{}, nil
}
