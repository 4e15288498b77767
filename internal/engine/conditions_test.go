package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"taskpilot/internal/rules"
	"taskpilot/internal/task"
)

func condition(field task.Field, op rules.Operator, value task.Value) rules.ConditionItem {
	return rules.ConditionItem{Field: field, Operator: op, Value: value}
}

func TestEvaluateConditions_EmptyListIsTrue(t *testing.T) {
	assert.True(t, EvaluateConditions(task.Task{}, nil))
}

func TestEvaluateConditions_Conjunction(t *testing.T) {
	ts := task.Task{Status: "done", Priority: "high"}

	both := []rules.ConditionItem{
		condition(task.FieldStatus, rules.OperatorEquals, task.StringValue("done")),
		condition(task.FieldPriority, rules.OperatorEquals, task.StringValue("high")),
	}
	assert.True(t, EvaluateConditions(ts, both))

	oneFails := []rules.ConditionItem{
		condition(task.FieldStatus, rules.OperatorEquals, task.StringValue("done")),
		condition(task.FieldPriority, rules.OperatorEquals, task.StringValue("low")),
	}
	assert.False(t, EvaluateConditions(ts, oneFails))
}

func TestEvaluateConditions_EqualsIsStrict(t *testing.T) {
	ts := task.Task{CompletionPercentage: 50}
	assert.True(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldCompletionPercentage, rules.OperatorEquals, task.NumberValue(50)),
	}))
	assert.False(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldCompletionPercentage, rules.OperatorEquals, task.StringValue("50")),
	}), "Number field never strictly equals a string comparand")
}

func TestEvaluateConditions_NumericComparisons(t *testing.T) {
	ts := task.Task{EstimatedHours: 10}

	assert.True(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldEstimatedHours, rules.OperatorGreaterThan, task.NumberValue(8)),
	}))
	assert.False(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldEstimatedHours, rules.OperatorLessThan, task.NumberValue(8)),
	}))
	assert.True(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldEstimatedHours, rules.OperatorGreaterThan, task.StringValue("8")),
	}), "Numeric strings coerce for ordering comparisons")
}

func TestEvaluateConditions_NaNComparesFalse(t *testing.T) {
	ts := task.Task{Status: "todo"}

	assert.False(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldStatus, rules.OperatorGreaterThan, task.NumberValue(1)),
	}), "Non-numeric actual coerces to NaN and compares false")
	assert.False(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldEstimatedHours, rules.OperatorLessThan, task.StringValue("soon")),
	}), "Non-numeric comparand coerces to NaN and compares false")
}

func TestEvaluateConditions_ContainsOnList(t *testing.T) {
	ts := task.Task{Tags: []string{"urgent", "backend"}}

	assert.True(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldTags, rules.OperatorContains, task.StringValue("urgent")),
	}))
	assert.False(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldTags, rules.OperatorContains, task.StringValue("urg")),
	}), "List membership is exact, not substring")
}

func TestEvaluateConditions_ContainsSubstringCaseInsensitive(t *testing.T) {
	ts := task.Task{Title: "Deploy API Gateway"}

	assert.True(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldTitle, rules.OperatorContains, task.StringValue("api gate")),
	}))
	assert.False(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldTitle, rules.OperatorContains, task.StringValue("database")),
	}))
}

func TestEvaluateConditions_UnknownFieldAndOperator(t *testing.T) {
	ts := task.Task{Status: "todo"}

	assert.False(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition("reporter", rules.OperatorEquals, task.StringValue("ana")),
	}), "Unknown field never matches")
	assert.False(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldStatus, "matches_regex", task.StringValue("todo")),
	}), "Unknown operator never matches")
}

func TestEvaluateConditions_AbsentComparandNeverMatches(t *testing.T) {
	ts := task.Task{Title: "Write report", Tags: []string{"q3"}}

	assert.False(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldTitle, rules.OperatorContains, task.Value{}),
	}), "Malformed comparand must degrade to never-match, not always-match")
	assert.False(t, EvaluateConditions(ts, []rules.ConditionItem{
		condition(task.FieldTags, rules.OperatorContains, task.Value{}),
	}))
}
