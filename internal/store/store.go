package store

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"taskpilot/internal/engine"
	"taskpilot/internal/rules"
	"taskpilot/internal/task"
)

// Store holds tasks and automation rules in memory and runs the automation
// engine on every task mutation: it supplies before/after snapshots,
// persists the patched result, applies trigger-count bookkeeping exactly
// once per evaluation, and routes notifications to the log. Mutations of
// the same task are serialized by the store lock; the engine assumes its
// caller does that.
type Store struct {
	mu     sync.Mutex
	engine *engine.Engine
	tasks  map[string]task.Task
	rules  map[string]rules.AutomationRule
}

// New returns an empty store evaluating mutations with e.
func New(e *engine.Engine) *Store {
	return &Store{
		engine: e,
		tasks:  make(map[string]task.Task),
		rules:  make(map[string]rules.AutomationRule),
	}
}

// CreateTask persists a new task after running the rule pass for creation.
// The returned snapshot includes any rule patches.
func (s *Store) CreateTask(t task.Task) task.Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	now := time.Now()
	t.CreatedAt = now
	t.UpdatedAt = now

	result := s.engine.Execute(nil, t, s.ruleList())
	s.commit(result)
	return result.Task
}

// UpdateTask persists a candidate new state for an existing task after
// running the rule pass against the prior snapshot.
func (s *Store) UpdateTask(updated task.Task) (task.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	old, ok := s.tasks[updated.ID]
	if !ok {
		return task.Task{}, fmt.Errorf("task '%s' not found", updated.ID)
	}
	updated.CreatedAt = old.CreatedAt
	updated.UpdatedAt = time.Now()

	result := s.engine.Execute(&old, updated, s.ruleList())
	s.commit(result)
	return result.Task, nil
}

// Task returns the current snapshot of a task.
func (s *Store) Task(id string) (task.Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.tasks[id]
	return t, ok
}

// PutRule inserts or replaces a rule, standing in for the authoring UI.
// New rules get an id and a creation timestamp.
func (s *Store) PutRule(r rules.AutomationRule) rules.AutomationRule {
	s.mu.Lock()
	defer s.mu.Unlock()

	if r.ID == "" {
		r.ID = uuid.NewString()
	}
	if r.CreatedAt.IsZero() {
		r.CreatedAt = time.Now()
	}
	s.rules[r.ID] = r
	return r
}

// DeleteRule removes a rule; deleting an unknown id is a no-op.
func (s *Store) DeleteRule(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.rules, id)
}

// Rule returns one rule by id.
func (s *Store) Rule(id string) (rules.AutomationRule, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	r, ok := s.rules[id]
	return r, ok
}

// Rules returns the rule collection ordered by creation time.
func (s *Store) Rules() []rules.AutomationRule {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ruleList()
}

// commit persists an evaluation result: the patched task, the bookkeeping
// on fired rules, and the notification log lines. Bookkeeping runs exactly
// once per evaluation; running it again would double-count.
func (s *Store) commit(result engine.Result) {
	s.tasks[result.Task.ID] = result.Task

	for _, r := range s.engine.UpdateRuleTriggerCount(s.ruleList(), result.FiredRuleIDs) {
		s.rules[r.ID] = r
	}

	for _, n := range result.Notifications {
		log.Info().
			Str("rule", n.RuleID).
			Str("task", result.Task.ID).
			Msg(n.Message)
	}
}

func (s *Store) ruleList() []rules.AutomationRule {
	list := make([]rules.AutomationRule, 0, len(s.rules))
	for _, r := range s.rules {
		list = append(list, r)
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].CreatedAt.Equal(list[j].CreatedAt) {
			return list[i].ID < list[j].ID
		}
		return list[i].CreatedAt.Before(list[j].CreatedAt)
	})
	return list
}
