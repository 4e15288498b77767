package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseRules_ValidFile(t *testing.T) {
	validRulesJSON := `[
        {
            "id": "rule-1",
            "name": "tag completed tasks",
            "enabled": true,
            "trigger": "status_changed",
            "conditions": [
                {
                    "field": "status",
                    "operator": "equals",
                    "value": "done"
                }
            ],
            "actions": [
                {
                    "action": "add_tag",
                    "parameters": {"tag": "completed"}
                }
            ],
            "createdAt": "2026-01-10T09:00:00Z"
        }
    ]`
	parsed, err := ParseRules([]byte(validRulesJSON))
	require.NoError(t, err, "Unexpected error")
	require.Len(t, parsed, 1)
	assert.Equal(t, "rule-1", parsed[0].ID)
	assert.Equal(t, TriggerStatusChanged, parsed[0].Trigger)
	require.NoError(t, ValidateRules(parsed))
}

func TestParseRules_AssignsMissingIDs(t *testing.T) {
	rulesJSON := `[{"name": "notify", "enabled": true, "trigger": "created"}]`
	parsed, err := ParseRules([]byte(rulesJSON))
	require.NoError(t, err, "Unexpected error")
	assert.NotEmpty(t, parsed[0].ID, "Rules without an id get one assigned")
}

func TestParseRules_MalformedJSON(t *testing.T) {
	_, err := ParseRules([]byte(`{"not": "an array"}`))
	assert.Error(t, err, "Expected an error, got nil")
}

func TestValidateRules_UnsupportedTrigger(t *testing.T) {
	parsed, err := ParseRules([]byte(`[{"name": "bad", "trigger": "task_archived"}]`))
	require.NoError(t, err)
	assert.Error(t, ValidateRules(parsed), "Expected an error, got nil")
}

func TestValidateRules_MissingConditionField(t *testing.T) {
	rulesJSON := `[
        {
            "name": "bad",
            "trigger": "created",
            "conditions": [{"operator": "equals", "value": "done"}]
        }
    ]`
	parsed, err := ParseRules([]byte(rulesJSON))
	require.NoError(t, err)
	assert.Error(t, ValidateRules(parsed))
}

func TestValidateRules_NonNumericComparand(t *testing.T) {
	rulesJSON := `[
        {
            "name": "bad",
            "trigger": "created",
            "conditions": [{"field": "estimatedHours", "operator": "greater_than", "value": "lots"}]
        }
    ]`
	parsed, err := ParseRules([]byte(rulesJSON))
	require.NoError(t, err)
	assert.Error(t, ValidateRules(parsed), "Ordering operators require a numeric comparand at construction time")
}

func TestValidateRules_MissingActionParameter(t *testing.T) {
	rulesJSON := `[
        {
            "name": "bad",
            "trigger": "created",
            "actions": [{"action": "set_status", "parameters": {}}]
        }
    ]`
	parsed, err := ParseRules([]byte(rulesJSON))
	require.NoError(t, err)
	assert.Error(t, ValidateRules(parsed))
}

func TestValidateRules_EmptyConditionsAreValid(t *testing.T) {
	rulesJSON := `[
        {
            "name": "always",
            "trigger": "created",
            "actions": [{"action": "send_notification", "parameters": {"message": "hi"}}]
        }
    ]`
	parsed, err := ParseRules([]byte(rulesJSON))
	require.NoError(t, err)
	assert.NoError(t, ValidateRules(parsed), "A rule with no conditions is vacuously true, not invalid")
}
