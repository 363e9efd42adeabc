package task

import (
	"fmt"
	"regexp"
	"strings"
)

// Filter matches tasks against a list of filter terms. A task matches
// when every positive term matches its raw text and no negative term
// does. Matching is case-insensitive and literal, so everyday terms
// like "+work" work as-is. Within a term, "|" separates alternatives:
// "a|b" matches tasks containing either.
type Filter struct {
	positive []*regexp.Regexp
	negative []*regexp.Regexp
}

// CompileFilter builds a Filter from terms. A term starting with "-" is
// negative: tasks matching the remainder are excluded. A malformed term
// is a user-facing error, not a silent skip.
func CompileFilter(terms []string) (*Filter, error) {
	f := &Filter{}
	for _, term := range terms {
		pat, neg := strings.CutPrefix(term, "-")
		re, err := compileTerm(pat)
		if err != nil {
			return nil, fmt.Errorf("malformed filter term %q: %w", term, err)
		}
		if neg {
			f.negative = append(f.negative, re)
		} else {
			f.positive = append(f.positive, re)
		}
	}
	return f, nil
}

// compileTerm quotes each alternative so the term matches literally;
// only "|" keeps its meaning.
func compileTerm(pat string) (*regexp.Regexp, error) {
	alts := strings.Split(pat, "|")
	for i, a := range alts {
		alts[i] = regexp.QuoteMeta(a)
	}
	return regexp.Compile("(?i)" + strings.Join(alts, "|"))
}

// Matches reports whether the task's raw text satisfies the filter.
func (f *Filter) Matches(t Task) bool {
	for _, re := range f.positive {
		if !re.MatchString(t.Raw) {
			return false
		}
	}
	for _, re := range f.negative {
		if re.MatchString(t.Raw) {
			return false
		}
	}
	return true
}

// FilterTerms reduces the list to tasks matching every term. With no
// terms, everything is retained.
func (l *List) FilterTerms(terms []string) error {
	if len(terms) == 0 {
		return nil
	}
	f, err := CompileFilter(terms)
	if err != nil {
		return err
	}
	l.Retain(f.Matches)
	return nil
}
