package geom

import (
	"testing"

	"github.com/ggekit/gge/pkg/errors"
)

func TestFromSlice(t *testing.T) {
	tests := []struct {
		name     string
		input    []float64
		want     Vec
		wantCode errors.Code
	}{
		{"valid", []float64{3, 4}, Vec{3, 4}, ""},
		{"too short", []float64{1}, Vec{}, errors.ErrCodeShapeMismatch},
		{"too long", []float64{1, 2, 3}, Vec{}, errors.ErrCodeShapeMismatch},
		{"empty", nil, Vec{}, errors.ErrCodeShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromSlice(tt.input)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("FromSlice(%v) error = %v, want code %s", tt.input, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromSlice(%v) unexpected error: %v", tt.input, err)
			}
			if !got.Eq(tt.want) {
				t.Errorf("FromSlice(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestFromValues(t *testing.T) {
	tests := []struct {
		name     string
		input    []any
		want     Vec
		wantCode errors.Code
	}{
		{"floats", []any{1.5, 2.5}, Vec{1.5, 2.5}, ""},
		{"ints", []any{int64(3), int64(4)}, Vec{3, 4}, ""},
		{"mixed", []any{int64(3), 4.5}, Vec{3, 4.5}, ""},
		{"string component", []any{"a", 2.0}, Vec{}, errors.ErrCodeTypeMismatch},
		{"bool component", []any{1.0, true}, Vec{}, errors.ErrCodeTypeMismatch},
		{"wrong arity", []any{1.0}, Vec{}, errors.ErrCodeShapeMismatch},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := FromValues(tt.input)
			if tt.wantCode != "" {
				if !errors.Is(err, tt.wantCode) {
					t.Fatalf("FromValues(%v) error = %v, want code %s", tt.input, err, tt.wantCode)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromValues(%v) unexpected error: %v", tt.input, err)
			}
			if !got.Eq(tt.want) {
				t.Errorf("FromValues(%v) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestArithmetic(t *testing.T) {
	v := V(6, 4)

	if got := v.Add(V(1, 2)); !got.Eq(V(7, 6)) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Sub(V(1, 2)); !got.Eq(V(5, 2)) {
		t.Errorf("Sub = %v", got)
	}
	if got := v.Mul(V(2, 3)); !got.Eq(V(12, 12)) {
		t.Errorf("Mul = %v", got)
	}
	if got := v.Div(V(2, 4)); !got.Eq(V(3, 1)) {
		t.Errorf("Div = %v", got)
	}
	if got := v.FloorDiv(V(4, 3)); !got.Eq(V(1, 1)) {
		t.Errorf("FloorDiv = %v", got)
	}
	if got := V(-5, 5).FloorDiv(V(2, 2)); !got.Eq(V(-3, 2)) {
		t.Errorf("FloorDiv negative = %v", got)
	}
	if got := v.Scale(0.5); !got.Eq(V(3, 2)) {
		t.Errorf("Scale = %v", got)
	}
	if got := v.FlipY(); !got.Eq(V(6, -4)) {
		t.Errorf("FlipY = %v", got)
	}
}

func TestComparisons(t *testing.T) {
	v := V(1, 5)
	o := V(2, 3)

	if got := v.Less(o); got != (Bool2{true, false}) {
		t.Errorf("Less = %v", got)
	}
	if got := v.Greater(o); got != (Bool2{false, true}) {
		t.Errorf("Greater = %v", got)
	}
	if got := v.LessEq(V(1, 5)); !got.All() {
		t.Errorf("LessEq same = %v", got)
	}
	if (Bool2{true, false}).All() {
		t.Error("All() on mixed = true, want false")
	}
	if !(Bool2{true, false}).Any() {
		t.Error("Any() on mixed = false, want true")
	}
}

func TestClamp(t *testing.T) {
	min := V(0, 0)
	max := V(10, 10)

	v := V(-3, 15)
	got, err := v.Clamp(&min, &max)
	if err != nil {
		t.Fatalf("Clamp error: %v", err)
	}
	if !got.Eq(V(0, 10)) {
		t.Errorf("Clamp = %v, want (0, 10)", got)
	}

	// Idempotence: clamping a clamped value is a no-op.
	again, err := got.Clamp(&min, &max)
	if err != nil {
		t.Fatalf("Clamp error: %v", err)
	}
	if !again.Eq(got) {
		t.Errorf("Clamp not idempotent: %v != %v", again, got)
	}

	// Single-sided bounds are allowed.
	if got, err := v.Clamp(&min, nil); err != nil || !got.Eq(V(0, 15)) {
		t.Errorf("Clamp(min only) = %v, %v", got, err)
	}
	if got, err := v.Clamp(nil, &max); err != nil || !got.Eq(V(-3, 10)) {
		t.Errorf("Clamp(max only) = %v, %v", got, err)
	}

	// No bounds at all is a caller bug.
	if _, err := v.Clamp(nil, nil); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("Clamp(nil, nil) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestEq(t *testing.T) {
	if !V(1, 2).Eq(V(1+1e-12, 2-1e-12)) {
		t.Error("Eq should tolerate epsilon differences")
	}
	if V(1, 2).Eq(V(1.1, 2)) {
		t.Error("Eq should reject differences above epsilon")
	}
}
