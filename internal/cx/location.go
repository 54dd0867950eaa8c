package cx

import "fmt"

// SourceLocation points into a source file. Line and Column are 1-based,
// Offset is a 0-based byte offset. A zero Line means the location is unknown.
type SourceLocation struct {
	File   string
	Offset int
	Line   int
	Column int
}

// IsValid reports whether the location points somewhere.
func (l SourceLocation) IsValid() bool {
	return l.Line > 0
}

func (l SourceLocation) String() string {
	if !l.IsValid() {
		return "<invalid loc>"
	}

	return fmt.Sprintf("%s:%d:%d", l.File, l.Line, l.Column)
}

// SourceRange is a half-open [Begin, End) span of source text. End points
// right past the last character of the last token.
type SourceRange struct {
	Begin SourceLocation
	End   SourceLocation
}

// IsValid reports whether both ends are known and ordered.
func (r SourceRange) IsValid() bool {
	return r.Begin.IsValid() && r.End.IsValid() && r.Begin.Offset <= r.End.Offset
}

// Contains reports whether offset falls into the range.
func (r SourceRange) Contains(offset int) bool {
	return r.IsValid() && offset >= r.Begin.Offset && offset < r.End.Offset
}

func (r SourceRange) String() string {
	if !r.IsValid() {
		return "<invalid range>"
	}

	if r.Begin.File == r.End.File {
		return fmt.Sprintf("%s:%d:%d-%d:%d", r.Begin.File, r.Begin.Line, r.Begin.Column, r.End.Line, r.End.Column)
	}

	return fmt.Sprintf("%s-%s", r.Begin, r.End)
}
