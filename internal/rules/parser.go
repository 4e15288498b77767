package rules

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"taskpilot/internal/task"
)

// ParseRules decodes a JSON array of automation rules. Rules arriving
// without an id get one assigned, so callers can feed hand-written rule
// files straight to the engine.
func ParseRules(rulesJSON []byte) ([]AutomationRule, error) {
	log.Info().Msg("Started parsing rules...")
	var ruleDefs []json.RawMessage
	if err := json.Unmarshal(rulesJSON, &ruleDefs); err != nil {
		return nil, fmt.Errorf("failed to unmarshal rules JSON: %w", err)
	}

	var parsedRules []AutomationRule
	for _, rJSON := range ruleDefs {
		rule, err := ParseRule(rJSON)
		if err != nil {
			return nil, err
		}
		parsedRules = append(parsedRules, rule)
	}

	return parsedRules, nil
}

// ParseRule decodes a single rule definition.
func ParseRule(ruleJSON []byte) (AutomationRule, error) {
	var rule AutomationRule
	if err := json.Unmarshal(ruleJSON, &rule); err != nil {
		return AutomationRule{}, fmt.Errorf("failed to parse rule JSON: %w", err)
	}
	if rule.ID == "" {
		rule.ID = uuid.NewString()
	}
	return rule, nil
}

// ValidateRules applies construction-time strictness to a rule collection.
// The engine itself never rejects a rule at evaluation time; this is the
// place where malformed definitions from outside the authoring UI are
// caught before they silently degrade to rules that never fire.
func ValidateRules(rules []AutomationRule) error {
	log.Info().Msg("Started validating rules...")
	for _, rule := range rules {
		if err := validateRule(rule); err != nil {
			return err
		}
	}
	return nil
}

func validateRule(rule AutomationRule) error {
	if rule.Name == "" {
		return fmt.Errorf("rule '%s' must have a name", rule.ID)
	}

	if !isValidTrigger(rule.Trigger) {
		return fmt.Errorf("invalid trigger '%s' in rule '%s'", rule.Trigger, rule.Name)
	}

	for i, condition := range rule.Conditions {
		if err := validateCondition(condition, rule.Name, i); err != nil {
			return err
		}
	}

	for i, action := range rule.Actions {
		if err := validateAction(action, rule.Name, i); err != nil {
			return err
		}
	}

	return nil
}

func validateCondition(condition ConditionItem, ruleName string, conditionIndex int) error {
	if condition.Field == "" {
		return fmt.Errorf("missing 'field' in condition %d of rule '%s'", conditionIndex, ruleName)
	}

	if !isValidOperator(condition.Operator) {
		return fmt.Errorf("invalid operator '%s' in condition %d of rule '%s'", condition.Operator, conditionIndex, ruleName)
	}

	if err := validateConditionValue(condition); err != nil {
		return fmt.Errorf("invalid value in condition %d of rule '%s': %w", conditionIndex, ruleName, err)
	}

	return nil
}

func validateConditionValue(condition ConditionItem) error {
	switch condition.Operator {
	case OperatorGreaterThan, OperatorLessThan:
		if condition.Value.Kind() != task.KindNumber {
			return fmt.Errorf("expected numeric value for operator '%s'", condition.Operator)
		}
	case OperatorContains:
		if condition.Value.Kind() != task.KindString {
			return fmt.Errorf("expected string value for operator '%s'", condition.Operator)
		}
	default:
		if condition.Value.IsAbsent() {
			return fmt.Errorf("missing value for operator '%s'", condition.Operator)
		}
	}
	return nil
}

func validateAction(action ActionItem, ruleName string, actionIndex int) error {
	if !isValidAction(action.Action) {
		return fmt.Errorf("invalid action '%s' in action %d of rule '%s'", action.Action, actionIndex, ruleName)
	}

	switch action.Action {
	case ActionSetStatus:
		if action.Parameters.Status == nil {
			return fmt.Errorf("missing 'status' parameter in action %d of rule '%s'", actionIndex, ruleName)
		}
	case ActionSetPriority:
		if action.Parameters.Priority == nil {
			return fmt.Errorf("missing 'priority' parameter in action %d of rule '%s'", actionIndex, ruleName)
		}
	case ActionAssignTo:
		if action.Parameters.AssignedTo == nil {
			return fmt.Errorf("missing 'assignedTo' parameter in action %d of rule '%s'", actionIndex, ruleName)
		}
	case ActionAddTag:
		if action.Parameters.Tag == nil {
			return fmt.Errorf("missing 'tag' parameter in action %d of rule '%s'", actionIndex, ruleName)
		}
	}

	return nil
}

func isValidTrigger(trigger Trigger) bool {
	for _, valid := range SupportedTriggers {
		if trigger == valid {
			return true
		}
	}
	return false
}

func isValidOperator(operator Operator) bool {
	for _, valid := range SupportedOperators {
		if operator == valid {
			return true
		}
	}
	return false
}

func isValidAction(action ActionKind) bool {
	for _, valid := range SupportedActions {
		if action == valid {
			return true
		}
	}
	return false
}
