package engine

import "taskpilot/internal/task"

// Created is the sentinel a change set carries when there was no prior
// snapshot.
const Created task.Field = "created"

// ChangeSet is the set of watched fields whose value differs between two
// task snapshots, or the Created sentinel alone.
type ChangeSet map[task.Field]struct{}

// Has reports whether field is in the change set.
func (c ChangeSet) Has(field task.Field) bool {
	_, ok := c[field]
	return ok
}

// IsCreated reports whether the change set is exactly the Created sentinel.
func (c ChangeSet) IsCreated() bool {
	return len(c) == 1 && c.Has(Created)
}

// DetectChanges diffs two snapshots over the fixed watched-field list.
// A nil oldTask means the task was just created.
func DetectChanges(oldTask *task.Task, newTask task.Task) ChangeSet {
	changes := make(ChangeSet)
	if oldTask == nil {
		changes[Created] = struct{}{}
		return changes
	}
	for _, field := range task.WatchedFields {
		if !oldTask.Field(field).Equal(newTask.Field(field)) {
			changes[field] = struct{}{}
		}
	}
	return changes
}
