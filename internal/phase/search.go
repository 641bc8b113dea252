package phase

import (
	"strings"

	"github.com/Iron-Ham/irframe/internal/errors"
	"github.com/gobwas/glob"
)

// ActionMatch is an action that matched a search pattern.
type ActionMatch struct {
	Phase  ID
	Title  string
	Index  int // zero-based position within the phase's actions
	Action string
}

// SearchActions returns every action matching pattern, a case-insensitive
// glob ("*backup*", "?emove *"). A pattern without wildcards is treated as
// a literal substring, so stray braces or backslashes in it match themselves. Results follow display order, then action order.
func SearchActions(pattern string) ([]ActionMatch, error) {
	p := strings.ToLower(strings.TrimSpace(pattern))
	if p == "" {
		return nil, errors.NewValidationError("search pattern is empty").WithField("pattern")
	}
	if !strings.ContainsAny(p, "*?[{") {
		p = "*" + glob.QuoteMeta(p) + "*"
	}

	g, err := glob.Compile(p)
	if err != nil {
		return nil, errors.NewValidationError("invalid search pattern").
			WithField("pattern").
			WithValue(pattern).
			WithCause(err)
	}

	var matches []ActionMatch
	for _, id := range order {
		rec := registry[id]
		for i, action := range rec.Actions {
			if g.Match(strings.ToLower(action)) {
				matches = append(matches, ActionMatch{
					Phase:  id,
					Title:  rec.Title,
					Index:  i,
					Action: action,
				})
			}
		}
	}
	return matches, nil
}
