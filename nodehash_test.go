package incremental

import (
	"testing"

	"github.com/cespare/xxhash/v2"
)

func TestNodeHashEquality(t *testing.T) {
	tests := []struct {
		name string
		a, b NodeHash
		want bool
	}{
		{"hashed equal", Hashed(1), Hashed(1), true},
		{"hashed unequal", Hashed(0), Hashed(1), false},
		{"not hashed never equals itself", NotHashed, NotHashed, false},
		{"not hashed never equals hashed", NotHashed, Hashed(0), false},
		{"hashed never equals not hashed", Hashed(0), NotHashed, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Equal(tt.b); got != tt.want {
				t.Errorf("Equal(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestNodeHashZeroValue(t *testing.T) {
	var h NodeHash
	if h.IsHashed() {
		t.Errorf("zero NodeHash reports IsHashed")
	}
	if h.Equal(h) {
		t.Errorf("zero NodeHash equals itself")
	}
	if got, want := h.String(), "NotHashed"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestHashHelpersDeterministic(t *testing.T) {
	a := HashInt64(xxhash.New(), -42)
	b := HashInt64(xxhash.New(), -42)
	if !a.Equal(b) {
		t.Errorf("HashInt64 not deterministic: %v != %v", a, b)
	}
	c := HashInt64(xxhash.New(), 42)
	if a.Equal(c) {
		t.Errorf("HashInt64(-42) equals HashInt64(42)")
	}
}

func TestHashHelpersFoldFields(t *testing.T) {
	one := xxhash.New()
	WriteUint64(one, 3)
	WriteInt64(one, -7)
	folded := Finish(one)

	other := xxhash.New()
	WriteUint64(other, 3)
	WriteInt64(other, -7)
	if !folded.Equal(Finish(other)) {
		t.Errorf("folded fingerprints differ for identical fields")
	}

	reordered := xxhash.New()
	WriteInt64(reordered, -7)
	WriteUint64(reordered, 3)
	if folded.Equal(Finish(reordered)) {
		t.Errorf("folded fingerprint insensitive to field order")
	}
}
