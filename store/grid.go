package store

import (
	"fmt"
	"strings"
)

// String renders the store as a grid: a 2-D store prints as a table of
// unique horizontal (axis 0) intervals against rows ordered by start,
// with each cell showing "value (vertical interval)"; other arities
// fall back to a plain by-start listing, one "I -> v" row per line,
// with no Gantt-style grid. This output is documented as human-diagnostic
// only and not required to be byte-exact across implementations.
func (s *Store[V]) String() string {
	rows := s.GetAll()
	if len(rows) == 0 {
		return "(empty)"
	}
	if rows[0].Interval.Arity() != 2 {
		return s.listString(rows)
	}
	return s.gridString(rows)
}

func (s *Store[V]) listString(rows []Row[V]) string {
	var b strings.Builder
	for i, r := range rows {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(r.String())
	}
	return b.String()
}

func (s *Store[V]) gridString(rows []Row[V]) string {
	var columns []string
	seen := make(map[string]bool)
	for _, r := range rows {
		col := r.Interval[0].String()
		if !seen[col] {
			seen[col] = true
			columns = append(columns, col)
		}
	}

	var b strings.Builder
	b.WriteString("| " + strings.Join(columns, " | ") + " |\n")
	for _, r := range rows {
		col := r.Interval[0].String()
		cell := fmt.Sprintf("%v (%s)", r.Value, r.Interval[1].String())
		line := make([]string, len(columns))
		for i, c := range columns {
			if c == col {
				line[i] = cell
			} else {
				line[i] = ""
			}
		}
		b.WriteString("| " + strings.Join(line, " | ") + " |\n")
	}
	return strings.TrimRight(b.String(), "\n")
}
