package task

import (
	"sort"
	"strings"
)

// SortField names a Task field tasks can be ordered by.
type SortField int

const (
	FieldID SortField = iota
	FieldPriority
	FieldCompleted
	FieldCompletionDate
	FieldCreationDate
	FieldDueDate
	FieldThresholdDate
	FieldProject // first project
	FieldContext // first context
	FieldSubject
	FieldRaw
)

// SortBy is one sort key: a field and a direction.
type SortBy struct {
	Field   SortField
	Reverse bool
}

// ParseSortField resolves a user-supplied field name.
func ParseSortField(name string) (SortField, bool) {
	switch strings.ToLower(name) {
	case "id":
		return FieldID, true
	case "priority", "pri":
		return FieldPriority, true
	case "completed", "done":
		return FieldCompleted, true
	case "completion-date", "complete-date":
		return FieldCompletionDate, true
	case "creation-date", "create-date":
		return FieldCreationDate, true
	case "due-date", "due":
		return FieldDueDate, true
	case "threshold-date", "threshold":
		return FieldThresholdDate, true
	case "project":
		return FieldProject, true
	case "context":
		return FieldContext, true
	case "subject", "body":
		return FieldSubject, true
	case "raw":
		return FieldRaw, true
	}
	return 0, false
}

// Sort orders the list by a chain of sort keys. Keys are evaluated left
// to right; the first non-equal comparison decides, reversed when that
// key's Reverse flag is set. The sort is stable, so ties preserve prior
// relative order and chained sorts are reproducible.
func (l List) Sort(spec []SortBy) {
	sort.SliceStable(l, func(i, j int) bool {
		for _, s := range spec {
			c := compareField(l[i], l[j], s.Field)
			if c == 0 {
				continue
			}
			if s.Reverse {
				return c > 0
			}
			return c < 0
		}
		return false
	})
}

func compareField(a, b Task, field SortField) int {
	switch field {
	case FieldID:
		return a.ID - b.ID
	case FieldPriority:
		return priorityRank(a.Priority) - priorityRank(b.Priority)
	case FieldCompleted:
		return boolRank(a.Completed) - boolRank(b.Completed)
	case FieldCompletionDate:
		return strings.Compare(a.CompletionDate, b.CompletionDate)
	case FieldCreationDate:
		return strings.Compare(a.CreationDate, b.CreationDate)
	case FieldDueDate:
		return strings.Compare(a.DueDate, b.DueDate)
	case FieldThresholdDate:
		return strings.Compare(a.ThresholdDate, b.ThresholdDate)
	case FieldProject:
		return strings.Compare(first(a.Projects), first(b.Projects))
	case FieldContext:
		return strings.Compare(first(a.Contexts), first(b.Contexts))
	case FieldSubject:
		return strings.Compare(a.Subject, b.Subject)
	case FieldRaw:
		return strings.Compare(a.Raw, b.Raw)
	}
	return 0
}

// priorityRank orders 'A' first and no-priority after 'Z': no priority
// is the lowest urgency.
func priorityRank(p byte) int {
	if p == 0 {
		return 26
	}
	return int(p - 'A')
}

func boolRank(b bool) int {
	if b {
		return 1
	}
	return 0
}

// first returns the first element, or "" when the slice is empty.
// Empty compares before any value, matching absent-first ordering.
func first(ss []string) string {
	if len(ss) == 0 {
		return ""
	}
	return ss[0]
}
