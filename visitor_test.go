package incremental

import "testing"

func TestHashVisitorDeduplicates(t *testing.T) {
	v := NewHashVisitor()
	if !v.Visit(1) {
		t.Errorf("Visit(1) = false on first visit")
	}
	if v.Visit(1) {
		t.Errorf("Visit(1) = true on second visit")
	}
	if !v.Visit(2) {
		t.Errorf("Visit(2) = false on first visit")
	}
	v.Clear()
	if !v.Visit(1) {
		t.Errorf("Visit(1) = false after Clear")
	}
}

func TestHashVisitorHasherDeterminism(t *testing.T) {
	v := NewHashVisitor()
	a, b := v.Hasher(), v.Hasher()
	a.Write([]byte("654"))
	b.Write([]byte("654"))
	if a.Sum64() != b.Sum64() {
		t.Errorf("hashers from one visitor disagree: %d != %d", a.Sum64(), b.Sum64())
	}
}

func TestDiagnosticVisitorLogSurvivesClear(t *testing.T) {
	v := NewDiagnosticVisitor()
	v.Visit(7)
	v.NotifyRecalculated(7)
	// ResolveRoot clears per-pass state on the way out; the log must remain
	// readable afterwards.
	v.Clear()
	if got := v.Recalculated(); len(got) != 1 || got[0] != 7 {
		t.Errorf("Recalculated() after Clear = %v, want [7]", got)
	}
	if !v.Visit(7) {
		t.Errorf("Visit(7) = false after Clear")
	}
	v.Reset()
	if got := v.Recalculated(); len(got) != 0 {
		t.Errorf("Recalculated() after Reset = %v, want empty", got)
	}
}
