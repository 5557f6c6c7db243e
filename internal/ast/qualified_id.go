package ast

import (
	"strings"

	"qmlcheck/internal/source"
)

// IDSegment is one dotted segment of a qualified identifier. Name may be
// empty after parser error recovery ("id." with nothing behind the dot).
type IDSegment struct {
	Name     string
	NameSpan source.Span
}

// QualifiedID is a dotted identifier chain such as `anchors.left` or a
// single segment such as `width`. Segments is never empty for parsed
// nodes, but consumers must tolerate empty segment names.
type QualifiedID struct {
	Segments []IDSegment
}

func (q *QualifiedID) Span() source.Span {
	if q == nil || len(q.Segments) == 0 {
		return source.Span{}
	}
	return source.Between(q.Segments[0].NameSpan, q.Segments[len(q.Segments)-1].NameSpan)
}

// First returns the first segment name, or "" for a malformed id.
func (q *QualifiedID) First() string {
	if q == nil || len(q.Segments) == 0 {
		return ""
	}
	return q.Segments[0].Name
}

// IsSingle reports whether the id has exactly one segment.
func (q *QualifiedID) IsSingle() bool {
	return q != nil && len(q.Segments) == 1
}

func (q *QualifiedID) String() string {
	if q == nil {
		return ""
	}
	names := make([]string, 0, len(q.Segments))
	for _, seg := range q.Segments {
		names = append(names, seg.Name)
	}
	return strings.Join(names, ".")
}
