package geom

import (
	"testing"

	"github.com/ggekit/gge/pkg/errors"
)

func TestNewSize(t *testing.T) {
	tests := []struct {
		name    string
		w, h    float64
		wantErr bool
	}{
		{"valid", 100, 50, false},
		{"fractional", 0.5, 0.1, false},
		{"zero width", 0, 50, true},
		{"zero height", 100, 0, true},
		{"negative width", -1, 50, true},
		{"negative height", 100, -0.01, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewSize(tt.w, tt.h)
			if tt.wantErr {
				if !errors.Is(err, errors.ErrCodeNonPositiveValue) {
					t.Fatalf("NewSize(%g, %g) error = %v, want NON_POSITIVE_VALUE", tt.w, tt.h, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("NewSize(%g, %g) unexpected error: %v", tt.w, tt.h, err)
			}
			if s.W() != tt.w || s.H() != tt.h {
				t.Errorf("NewSize(%g, %g) = %v", tt.w, tt.h, s)
			}
		})
	}
}

func TestSizeArithmeticPreservesInvariant(t *testing.T) {
	s := MustSize(10, 8)

	// Valid shrink keeps the invariant.
	smaller, err := s.SubScalar(3)
	if err != nil {
		t.Fatalf("SubScalar(3) error: %v", err)
	}
	if smaller.W() != 7 || smaller.H() != 5 {
		t.Errorf("SubScalar(3) = %v", smaller)
	}

	// Shrinking to or below zero is rejected, not clamped.
	if _, err := s.SubScalar(10); !errors.Is(err, errors.ErrCodeNonPositiveValue) {
		t.Errorf("SubScalar(10) error = %v, want NON_POSITIVE_VALUE", err)
	}
	if _, err := s.Sub(V(5, 9)); !errors.Is(err, errors.ErrCodeNonPositiveValue) {
		t.Errorf("Sub((5,9)) error = %v, want NON_POSITIVE_VALUE", err)
	}
	if _, err := s.Scale(0); !errors.Is(err, errors.ErrCodeNonPositiveValue) {
		t.Errorf("Scale(0) error = %v, want NON_POSITIVE_VALUE", err)
	}
	if _, err := s.Mul(V(-1, 1)); !errors.Is(err, errors.ErrCodeNonPositiveValue) {
		t.Errorf("Mul((-1,1)) error = %v, want NON_POSITIVE_VALUE", err)
	}
}

func TestSizeHelpers(t *testing.T) {
	s := MustSize(9, 5)

	if got := s.Half(); !got.Eq(V(4.5, 2.5)) {
		t.Errorf("Half = %v", got)
	}
	w, h := s.IntWH()
	if w != 9 || h != 5 {
		t.Errorf("IntWH = (%d, %d)", w, h)
	}
	if !s.Contains(V(9, 5)) {
		t.Error("Contains should include the boundary")
	}
	if s.Contains(V(9.1, 5)) {
		t.Error("Contains should exclude values past the extent")
	}
}

func TestBox(t *testing.T) {
	free := BoxFromCorners(V(-2, -3), V(8, 7))
	if free != (Box{-2, -3, 8, 7}) {
		t.Fatalf("BoxFromCorners = %v", free)
	}

	clamped := Box{0, 0, 8, 7}
	delta := clamped.Delta(free)
	if delta != (Box{2, 3, 0, 0}) {
		t.Errorf("Delta = %v, want (2, 3, 0, 0)", delta)
	}

	if free.Width() != 10 || free.Height() != 10 {
		t.Errorf("Width/Height = %d/%d", free.Width(), free.Height())
	}
	if (Box{0, 0, 0, 5}).Empty() != true {
		t.Error("zero-width box should be empty")
	}

	r := free.Rect()
	if r.Min.X != -2 || r.Max.Y != 7 {
		t.Errorf("Rect = %v", r)
	}
}
