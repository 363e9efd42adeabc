// Package render walks a task list and emits colorized, line-numbered
// output through the minimal-escape style writer.
package render

import (
	"fmt"
	"io"
	"strconv"

	"github.com/MikeBiancalana/todo/internal/style"
	"github.com/MikeBiancalana/todo/internal/task"
)

// Options control what the renderer shows.
type Options struct {
	HideProjects bool // drop +project tokens from output
	HideContexts bool // drop @context tokens from output
	HidePriority bool // drop the leading (X) marker from output
	Plain        bool // no escape sequences at all
}

// Renderer renders tasks with the styles resolved from config
// overrides.
type Renderer struct {
	overrides []style.Override
	opts      Options
}

// New creates a renderer.
func New(overrides []style.Override, opts Options) *Renderer {
	return &Renderer{overrides: overrides, opts: opts}
}

// Render writes every task as one styled line. The line number is
// zero-padded to the digit width of totalCt (the pre-filter count).
// Tokens come from re-scanning Raw, not Subject, so styling follows the
// exact original token content; inter-token whitespace is normalized to
// single spaces. Any task-level footer is the caller's job.
func (r *Renderer) Render(w io.Writer, tasks task.List, totalCt int) error {
	sw := style.NewWriter(w)
	width := len(strconv.Itoa(totalCt))

	for _, t := range tasks {
		if err := r.renderTask(sw, t, width); err != nil {
			return err
		}
	}
	return nil
}

func (r *Renderer) renderTask(sw *style.Writer, t task.Task, width int) error {
	base := r.baseState(t)
	if !r.opts.Plain {
		if err := sw.Apply(base); err != nil {
			return err
		}
	}

	if err := sw.WriteString(fmt.Sprintf("%0*d ", width, t.ID)); err != nil {
		return err
	}

	toks := task.Tokenize(t.Raw)
	priIdx := -1
	if r.opts.HidePriority && t.Priority != 0 {
		priIdx = priorityTokenIndex(toks, t.Priority)
	}

	wroteToken := false
	for i, word := range toks {
		if i == priIdx || r.hidden(word) {
			continue
		}
		if wroteToken {
			if err := sw.WriteString(" "); err != nil {
				return err
			}
		}
		if err := r.renderToken(sw, word, base); err != nil {
			return err
		}
		wroteToken = true
	}

	if !r.opts.Plain {
		if err := sw.Reset(); err != nil {
			return err
		}
	}
	return sw.WriteString("\n")
}

func (r *Renderer) renderToken(sw *style.Writer, word string, base style.State) error {
	name := ""
	switch word[0] {
	case '+':
		name = "project"
	case '@':
		name = "context"
	}
	if name == "" || r.opts.Plain {
		return sw.WriteString(word)
	}
	if err := sw.Apply(style.StateFor(style.Resolve(name, r.overrides))); err != nil {
		return err
	}
	if err := sw.WriteString(word); err != nil {
		return err
	}
	return sw.Apply(base)
}

// baseState is the whole-line style: done for completed tasks, the
// priority style otherwise. No priority means plain text.
func (r *Renderer) baseState(t task.Task) style.State {
	if t.Completed {
		return style.StateFor(style.Resolve("done", r.overrides))
	}
	if name := t.PriorityName(); name != "" {
		return style.StateFor(style.Resolve(name, r.overrides))
	}
	return style.Plain()
}

func (r *Renderer) hidden(word string) bool {
	switch {
	case r.opts.HideProjects && word[0] == '+':
		return true
	case r.opts.HideContexts && word[0] == '@':
		return true
	}
	return false
}

// priorityTokenIndex finds the "(X)" marker the parser consumed: the
// first token on open tasks, after the completion prefix otherwise.
func priorityTokenIndex(toks []string, pri byte) int {
	marker := "(" + string(pri) + ")"
	for i, tok := range toks {
		if tok == marker && task.IsPriorityToken(tok) {
			return i
		}
	}
	return -1
}
