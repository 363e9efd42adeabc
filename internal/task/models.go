package task

import (
	"fmt"
	"strconv"
	"strings"
)

// Task is one logical line of a todo.txt file. Raw holds the exact
// original text and is the source of truth; every other field is
// derived from it by Parse and is never written back implicitly.
type Task struct {
	ID             int    // 1-based line number at load time (0 for done-file tasks)
	Raw            string // original line, no trailing newline
	Completed      bool
	CompletionDate string // YYYY-MM-DD, empty when absent
	CreationDate   string // YYYY-MM-DD, empty when absent
	Priority       byte   // 'A'..'Z', 0 when absent
	Projects       []string
	Contexts       []string
	DueDate        string // from due: tag
	ThresholdDate  string // from t: tag
	Subject        string
}

// New parses a raw line into a Task with the given id.
func New(id int, raw string) Task {
	t := Parse(raw)
	t.ID = id
	return t
}

// IsBlank reports whether the task is an empty or whitespace-only line.
// Blank tasks exist as placeholders when line numbers are preserved
// after a deletion.
func (t Task) IsBlank() bool {
	return strings.TrimSpace(t.Raw) == ""
}

// Clear returns a blank task with the same id.
func (t Task) Clear() Task {
	return New(t.ID, "")
}

// NormalizeWhitespace condenses runs of whitespace to single spaces and
// reparses.
func (t Task) NormalizeWhitespace() Task {
	return New(t.ID, strings.Join(Tokenize(t.Raw), " "))
}

// Depri returns the task with its priority marker token removed. On
// completed tasks the marker sits after the completion prefix, not at
// the start of the line. Tasks without a priority come back unchanged.
func (t Task) Depri() Task {
	if t.Priority == 0 {
		return t
	}
	marker := "(" + string(t.Priority) + ")"
	toks := Tokenize(t.Raw)
	for i, tok := range toks {
		if tok == marker {
			toks = append(toks[:i], toks[i+1:]...)
			break
		}
	}
	return New(t.ID, strings.Join(toks, " "))
}

// PriorityName returns the style name for the task's priority
// ("pri_a".."pri_z"), or the empty string when the task has none.
func (t Task) PriorityName() string {
	if t.Priority == 0 {
		return ""
	}
	return "pri_" + string(t.Priority-'A'+'a')
}

// Stringify renders the task as its padded line number followed by the
// raw text, using a field width wide enough for taskCt.
func (t Task) Stringify(taskCt int) string {
	width := len(strconv.Itoa(taskCt))
	return fmt.Sprintf("%0*d %s", width, t.ID, t.Raw)
}

func (t Task) String() string {
	return fmt.Sprintf("%d %s", t.ID, t.Raw)
}

// List is an ordered collection of tasks; insertion order is file line
// order at load time.
type List []Task

// Len returns the number of tasks in the list.
func (l List) Len() int { return len(l) }

// Add appends a task to the list.
func (l *List) Add(t Task) {
	*l = append(*l, t)
}

// Concat appends every task from other, preserving order. Used to merge
// the done list into the active list for "list all" views.
func (l *List) Concat(other List) {
	*l = append(*l, other...)
}

// Retain keeps only the tasks for which keep returns true, preserving
// relative order.
func (l *List) Retain(keep func(Task) bool) {
	kept := (*l)[:0]
	for _, t := range *l {
		if keep(t) {
			kept = append(kept, t)
		}
	}
	*l = kept
}

// Replace swaps the task at the given list index.
func (l List) Replace(i int, t Task) {
	l[i] = t
}

// String renders the list as newline-delimited raw lines with a
// trailing newline. This is the write-back format of the todo file.
func (l List) String() string {
	if len(l) == 0 {
		return ""
	}
	var sb strings.Builder
	for _, t := range l {
		sb.WriteString(t.Raw)
		sb.WriteString("\n")
	}
	return sb.String()
}
