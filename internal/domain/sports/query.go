package sports

import (
	"strconv"
	"strings"
)

// Arg is a string argument of a query field.
type Arg struct {
	Name  string
	Value string
}

// Query is a single-field GraphQL selection as understood by the federation endpoints.
type Query struct {
	Field     string
	Args      []Arg
	Selection []string
}

// String renders the query in the multi-line form the endpoints expect.
func (q Query) String() string {
	var b strings.Builder
	b.WriteString("{\n  ")
	b.WriteString(q.Field)
	if len(q.Args) > 0 {
		b.WriteString("(")
		for i, a := range q.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(a.Name)
			b.WriteString(": ")
			b.WriteString(strconv.Quote(a.Value))
		}
		b.WriteString(")")
	}
	b.WriteString(" {\n")
	for _, f := range q.Selection {
		b.WriteString("    ")
		b.WriteString(f)
		b.WriteString("\n")
	}
	b.WriteString("  }\n}\n")
	return b.String()
}
