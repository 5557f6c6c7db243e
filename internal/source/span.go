package source

import (
	"fmt"
)

// Span is a half-open byte range [Start, End) inside one file.
type Span struct {
	File  FileID
	Start uint32
	End   uint32
}

func (s Span) Empty() bool {
	return s.Start == s.End
}

func (s Span) Len() uint32 {
	return s.End - s.Start
}

func (s Span) String() string {
	return fmt.Sprintf("%d:%d-%d", s.File, s.Start, s.End)
}

// Cover extends s to include other. Spans from different files are
// left untouched.
func (s Span) Cover(other Span) Span {
	if s.File != other.File {
		return s
	}
	if other.Start < s.Start {
		s.Start = other.Start
	}
	if other.End > s.End {
		s.End = other.End
	}
	return s
}

// Between produces the span running from the start of first to the end
// of last. Used to attribute a diagnostic to a whole expression when only
// its first and last token spans are at hand.
func Between(first, last Span) Span {
	return first.Cover(last)
}
