package engine

import (
	"math"
	"strings"

	"taskpilot/internal/rules"
	"taskpilot/internal/task"
)

// EvaluateConditions reports whether every condition holds against the
// snapshot. Conditions are conjunctive with short-circuit; an empty list is
// vacuously true.
func EvaluateConditions(t task.Task, conditions []rules.ConditionItem) bool {
	for _, condition := range conditions {
		if !evaluateCondition(t, condition) {
			return false
		}
	}
	return true
}

func evaluateCondition(t task.Task, condition rules.ConditionItem) bool {
	actual := t.Field(condition.Field)
	expected := condition.Value

	switch condition.Operator {
	case rules.OperatorEquals:
		return actual.Equal(expected)
	case rules.OperatorNotEquals:
		return !actual.Equal(expected)
	case rules.OperatorGreaterThan:
		a, b := actual.Number(), expected.Number()
		return !math.IsNaN(a) && !math.IsNaN(b) && a > b
	case rules.OperatorLessThan:
		a, b := actual.Number(), expected.Number()
		return !math.IsNaN(a) && !math.IsNaN(b) && a < b
	case rules.OperatorContains:
		return contains(actual, expected)
	default:
		return false
	}
}

// contains is element membership for list fields and case-insensitive
// substring matching for everything else. An absent comparand never
// matches: every string contains the empty substring, so letting a
// malformed comparand stringify to "" would match every task instead of
// none.
func contains(actual, expected task.Value) bool {
	if expected.IsAbsent() {
		return false
	}
	if list, ok := actual.StringList(); ok {
		if expected.Kind() != task.KindString {
			return false
		}
		for _, element := range list {
			if element == expected.String() {
				return true
			}
		}
		return false
	}
	if actual.IsAbsent() {
		return false
	}
	return strings.Contains(strings.ToLower(actual.String()), strings.ToLower(expected.String()))
}
