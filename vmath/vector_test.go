package vmath

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func TestVec2Arithmetic(t *testing.T) {
	a := Vec2{X: 3, Y: 4}
	b := Vec2{X: 1, Y: -2}

	if got := a.Add(b); got != (Vec2{X: 4, Y: 2}) {
		t.Errorf("Expected Add (4,2), got %v", got)
	}
	if got := a.Scale(0.5); got != (Vec2{X: 1.5, Y: 2}) {
		t.Errorf("Expected Scale (1.5,2), got %v", got)
	}
	if got := a.Magnitude(); got != 5 {
		t.Errorf("Expected Magnitude 5, got %v", got)
	}
	if a.IsZero() || !(Vec2{}).IsZero() {
		t.Error("IsZero mismatch")
	}
}

func TestReflect(t *testing.T) {
	v := Vec2{X: 10, Y: -4}
	if got := ReflectAxisX(v, 0.5); got != (Vec2{X: -5, Y: -4}) {
		t.Errorf("Expected (-5,-4), got %v", got)
	}
	if got := ReflectAxisY(v, 0.5); got != (Vec2{X: 10, Y: 2}) {
		t.Errorf("Expected (10,2), got %v", got)
	}
}

func TestFromPolar(t *testing.T) {
	cases := []struct {
		angle float64
		want  Vec2
	}{
		{0, Vec2{X: 10, Y: 0}},
		{90, Vec2{X: 0, Y: -10}},
		{45, Vec2{X: 10 / math.Sqrt2, Y: -10 / math.Sqrt2}},
	}
	for _, tc := range cases {
		got := FromPolar(10, tc.angle)
		if math.Abs(got.X-tc.want.X) > epsilon || math.Abs(got.Y-tc.want.Y) > epsilon {
			t.Errorf("FromPolar(10, %v): expected %v, got %v", tc.angle, tc.want, got)
		}
	}
}

func TestRectContainsClosed(t *testing.T) {
	r := Rect{X: 10, Y: 20, Width: 5, Height: 2}
	for _, p := range []Vec2{{10, 20}, {15, 22}, {12, 21}} {
		if !r.ContainsClosed(p) {
			t.Errorf("Expected %v inside", p)
		}
	}
	for _, p := range []Vec2{{9.99, 20}, {15.01, 21}, {12, 22.01}} {
		if r.ContainsClosed(p) {
			t.Errorf("Expected %v outside", p)
		}
	}
}

func TestFastRand(t *testing.T) {
	a, b := NewFastRand(7), NewFastRand(7)
	for i := 0; i < 100; i++ {
		x := a.Float64()
		if x != b.Float64() {
			t.Fatal("Expected identical sequences for identical seeds")
		}
		if x < 0 || x >= 1 {
			t.Fatalf("Float64 out of range: %v", x)
		}
	}
	if NewFastRand(0).Next() == 0 {
		t.Error("Expected zero seed to be remapped")
	}
	if ConstRand(0.25).Float64() != 0.25 {
		t.Error("Expected ConstRand to return its value")
	}
}
