package types

import "fmt"

// Span is a half-open byte range into the source text.
type Span struct {
	Start int
	End   int
}

func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

func (s Span) Len() int {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d..%d", s.Start, s.End)
}

// Location resolves the span's start offset to a line/column position.
func (s Span) Location(source string) Location {
	line, column := 1, 1
	for i, r := range source {
		if i >= s.Start {
			break
		}
		if r == '\n' {
			line++
			column = 1
		} else {
			column++
		}
	}

	return Location{Line: line, Column: column}
}

// Location is a 1-based position in the source text.
type Location struct {
	Line   int
	Column int
}

func (l Location) String() string {
	return fmt.Sprintf("line %d, column %d", l.Line, l.Column)
}
