package task

import (
	"strings"
	"time"
)

const dateLayout = "2006-01-02"

// Tokenize splits a line into whitespace-delimited tokens. The parser
// uses it to extract typed fields; the renderer runs it independently
// over Raw to keep exact token boundaries for styling.
func Tokenize(line string) []string {
	return strings.Fields(line)
}

// Parse reconstructs a structured Task from one raw line. Parsing never
// fails: fragments that don't parse (a malformed date, an unknown tag)
// degrade to ordinary subject text. Reparsing Raw is idempotent.
//
// Token order consumed from the start of the line:
// completion marker, completion/creation dates (completed tasks),
// priority, creation date, subject.
func Parse(line string) Task {
	t := Task{Raw: line}
	toks := Tokenize(line)
	i := 0

	// "x" must be its own token at the start of the line.
	if strings.HasPrefix(line, "x ") || strings.HasPrefix(line, "x\t") {
		t.Completed = true
		i = 1
	}

	if t.Completed {
		if i < len(toks) {
			if d, ok := parseDate(toks[i]); ok {
				if i+1 < len(toks) {
					if d2, ok := parseDate(toks[i+1]); ok {
						// Two consecutive dates: completion then creation.
						t.CompletionDate = d
						t.CreationDate = d2
						i += 2
					}
				}
				if t.CompletionDate == "" {
					// A single date after "x" is the creation date.
					t.CreationDate = d
					i++
				}
			}
		}
	}

	if i < len(toks) && IsPriorityToken(toks[i]) {
		t.Priority = toks[i][1]
		i++
	}

	if i < len(toks) && t.CreationDate == "" {
		if d, ok := parseDate(toks[i]); ok {
			t.CreationDate = d
			i++
		}
	}

	t.Subject = strings.Join(toks[i:], " ")

	// Projects, contexts, and recognized tags stay embedded in Subject;
	// this pass only collects them.
	for _, tok := range toks[i:] {
		switch {
		case strings.HasPrefix(tok, "+") && len(tok) > 1:
			t.Projects = append(t.Projects, tok[1:])
		case strings.HasPrefix(tok, "@") && len(tok) > 1:
			t.Contexts = append(t.Contexts, tok[1:])
		default:
			key, val, found := strings.Cut(tok, ":")
			if !found {
				continue
			}
			d, ok := parseDate(val)
			if !ok {
				continue
			}
			switch key {
			case "due":
				t.DueDate = d
			case "t":
				t.ThresholdDate = d
			}
		}
	}

	return t
}

// parseDate validates a YYYY-MM-DD token and returns it unchanged.
func parseDate(tok string) (string, bool) {
	if len(tok) != len(dateLayout) {
		return "", false
	}
	if _, err := time.Parse(dateLayout, tok); err != nil {
		return "", false
	}
	return tok, true
}

// IsPriorityToken reports whether a token is a "(X)" priority marker
// for a single uppercase letter X.
func IsPriorityToken(tok string) bool {
	return len(tok) == 3 && tok[0] == '(' && tok[2] == ')' && tok[1] >= 'A' && tok[1] <= 'Z'
}
