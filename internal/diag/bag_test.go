package diag

import (
	"testing"

	"qmlcheck/internal/source"
)

func TestBag_AddRespectsCap(t *testing.T) {
	bag := NewBag(2)
	sp := source.Span{File: 0, Start: 0, End: 1}

	if !bag.Add(NewError(SemaUnknownType, sp, "unknown type")) {
		t.Fatalf("first Add rejected")
	}
	if !bag.Add(NewWarning(SemaIDStringLiteral, sp, "warn")) {
		t.Fatalf("second Add rejected")
	}
	if bag.Add(NewError(SemaUnknownType, sp, "overflow")) {
		t.Fatalf("Add beyond cap accepted")
	}
	if bag.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", bag.Len())
	}
}

func TestBag_LargeCap(t *testing.T) {
	// Caps past 65535 must not wrap around to a bag that drops
	// everything; --max-diagnostics accepts any int.
	sp := source.Span{File: 0, Start: 0, End: 1}

	bag := NewBag(65536)
	if !bag.Add(NewError(SemaUnknownType, sp, "unknown type")) {
		t.Fatalf("Add rejected under a large cap")
	}
	if bag.Cap() != 65536 {
		t.Fatalf("Cap() = %d, want 65536", bag.Cap())
	}

	if got := NewBag(-1).Cap(); got != 0 {
		t.Fatalf("negative cap clamped to %d, want 0", got)
	}
}

func TestBag_MergeGrowsLargeCap(t *testing.T) {
	sp := source.Span{}

	dst := NewBag(0)
	src := NewBag(70000)
	for i := 0; i < 3; i++ {
		src.Add(NewError(SemaUnknownType, sp, "e"))
	}
	dst.Merge(src)
	if dst.Len() != 3 || dst.Cap() != 3 {
		t.Fatalf("Len() = %d, Cap() = %d after merge", dst.Len(), dst.Cap())
	}
	// Cap equals the merged total, so the next Add is rejected.
	if dst.Add(NewError(SemaUnknownType, sp, "overflow")) {
		t.Fatalf("Add beyond merged cap accepted")
	}
}

func TestBag_HasErrorsAndWarnings(t *testing.T) {
	bag := NewBag(8)
	sp := source.Span{}

	if bag.HasErrors() || bag.HasWarnings() {
		t.Fatalf("empty bag reports findings")
	}
	bag.Add(NewWarning(SemaMaybeUndefined, sp, "value might be 'undefined'"))
	if bag.HasErrors() {
		t.Errorf("warning counted as error")
	}
	if !bag.HasWarnings() {
		t.Errorf("warning not detected")
	}
	bag.Add(NewError(SemaNumberExpected, sp, "numerical value expected"))
	if !bag.HasErrors() {
		t.Errorf("error not detected")
	}
}

func TestBag_DropAndPromoteWarnings(t *testing.T) {
	sp := source.Span{}

	bag := NewBag(8)
	bag.Add(NewWarning(SemaIDStringLiteral, sp, "w"))
	bag.Add(NewError(SemaExpectedID, sp, "e"))
	bag.DropWarnings()
	if bag.Len() != 1 || bag.Items()[0].Severity != SevError {
		t.Fatalf("DropWarnings left %+v", bag.Items())
	}

	bag = NewBag(8)
	bag.Add(NewWarning(SemaIDStringLiteral, sp, "w"))
	bag.PromoteWarnings()
	if bag.Items()[0].Severity != SevError {
		t.Fatalf("PromoteWarnings left severity %v", bag.Items()[0].Severity)
	}
}

func TestCode_ID(t *testing.T) {
	tests := []struct {
		code Code
		want string
	}{
		{LexUnknownChar, "LEX1001"},
		{SynUnexpectedToken, "SYN2001"},
		{SemaUnknownType, "SEM3001"},
		{IOLoadFileError, "IO4001"},
		{UnknownCode, "E0000"},
	}
	for _, tt := range tests {
		if got := tt.code.ID(); got != tt.want {
			t.Errorf("ID(%d) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
