package physics

import (
	"math"
	"testing"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		in   Vec2
		want Vec2
	}{
		{Vec2{}, Vec2{}},
		{Vec2{X: 3, Y: 4}, Vec2{X: 0.6, Y: 0.8}},
		{Vec2{X: -1, Y: 0}, Vec2{X: -1, Y: 0}},
	}
	for _, tt := range tests {
		got := tt.in.Normalize()
		if math.Abs(got.X-tt.want.X) > 1e-9 || math.Abs(got.Y-tt.want.Y) > 1e-9 {
			t.Errorf("Normalize(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
	if l := (Vec2{X: 1, Y: 1}).Normalize().Len(); math.Abs(l-1) > 1e-9 {
		t.Fatalf("diagonal intent length %v, want 1", l)
	}
}

func TestCircleOverlap(t *testing.T) {
	var d OverlapDetector = CircleOverlap{}
	if !d.Overlaps(Circle{0, 0, 5}, Circle{9, 0, 5}) {
		t.Error("circles 9 apart with radii 5+5 should overlap")
	}
	if d.Overlaps(Circle{0, 0, 5}, Circle{10, 0, 5}) {
		t.Error("touching circles should not count as overlap")
	}
}
