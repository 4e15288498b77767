package engine

import (
	"sort"
	"time"

	"github.com/rs/zerolog/log"

	"taskpilot/internal/rules"
	"taskpilot/internal/task"
)

// Engine evaluates automation rules against task mutations. Evaluation is
// synchronous and side-effect free; the only thing the engine owns is its
// clock.
type Engine struct {
	now func() time.Time
}

// New returns an engine using the wall clock.
func New() *Engine {
	return &Engine{now: time.Now}
}

// Result is the outcome of one evaluation pass.
type Result struct {
	Task          task.Task      `json:"task"`
	FiredRuleIDs  []string       `json:"firedRuleIds"`
	Notifications []Notification `json:"notifications,omitempty"`
}

// Execute runs a single forward pass over the rule collection for one task
// mutation. oldTask is nil on creation. Rules are processed in ascending
// CreatedAt order (ties broken by id), and each rule's patch is folded into
// the working snapshot before the next rule runs, so earlier rules can open
// the door for later ones. There is no fixed-point iteration: a rule fires
// at most once per call, and a rule whose condition becomes true only after
// a later rule's action will not fire until the next mutation.
func (e *Engine) Execute(oldTask *task.Task, newTask task.Task, ruleSet []rules.AutomationRule) Result {
	changes := DetectChanges(oldTask, newTask)
	now := e.now()

	current := newTask.Clone()
	result := Result{FiredRuleIDs: []string{}}

	for _, rule := range orderRules(ruleSet) {
		if !TriggerMatches(rule, oldTask, current, changes, now) {
			continue
		}
		if !EvaluateConditions(current, rule.Conditions) {
			log.Debug().Str("rule", rule.ID).Str("name", rule.Name).Msg("Conditions not met")
			continue
		}

		// Actions read the snapshot as it was when the rule matched;
		// later actions in the same rule win merge ties.
		entry := current
		var patch task.Patch
		fired := false
		for _, item := range rule.Actions {
			p, notification := ApplyAction(entry, rule.ID, item)
			patch = patch.Merge(p)
			if notification != nil {
				result.Notifications = append(result.Notifications, *notification)
				fired = true
			}
		}
		if !patch.IsZero() {
			current = patch.Apply(current)
			fired = true
		}
		if fired {
			result.FiredRuleIDs = append(result.FiredRuleIDs, rule.ID)
			log.Debug().Str("rule", rule.ID).Str("name", rule.Name).Msg("Rule fired")
		}
	}

	result.Task = current
	return result
}

// UpdateRuleTriggerCount returns a copy of the rule collection with
// TriggerCount incremented and LastTriggered stamped for every fired rule.
// It is independent of Execute and deliberately not idempotent: calling it
// twice with the same firedRuleIDs double-counts, so the caller must invoke
// it at most once per evaluation.
func (e *Engine) UpdateRuleTriggerCount(ruleSet []rules.AutomationRule, firedRuleIDs []string) []rules.AutomationRule {
	fired := make(map[string]bool, len(firedRuleIDs))
	for _, id := range firedRuleIDs {
		fired[id] = true
	}

	now := e.now()
	updated := make([]rules.AutomationRule, len(ruleSet))
	copy(updated, ruleSet)
	for i := range updated {
		if fired[updated[i].ID] {
			updated[i].TriggerCount++
			stamp := now
			updated[i].LastTriggered = &stamp
		}
	}
	return updated
}

// orderRules returns a stably sorted copy: ascending CreatedAt, ties broken
// by id so ordering stays total across runs. Disabled rules are kept in
// place; the trigger matcher filters them.
func orderRules(ruleSet []rules.AutomationRule) []rules.AutomationRule {
	ordered := make([]rules.AutomationRule, len(ruleSet))
	copy(ordered, ruleSet)
	sort.SliceStable(ordered, func(i, j int) bool {
		if ordered[i].CreatedAt.Equal(ordered[j].CreatedAt) {
			return ordered[i].ID < ordered[j].ID
		}
		return ordered[i].CreatedAt.Before(ordered[j].CreatedAt)
	})
	return ordered
}
