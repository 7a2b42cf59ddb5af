package math

import (
	"math"
	"testing"
)

func TestVec2Add(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{3, 4}
	got := a.Add(b)
	want := Vec2{4, 6}
	if got != want {
		t.Errorf("Vec2.Add() = %v, want %v", got, want)
	}
}

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	if got := v.Length(); got != 5 {
		t.Errorf("Vec2.Length() = %v, want 5", got)
	}
}

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	v := Vec3{3, 4, 12}
	l := v.Normalize().Length()
	if math.Abs(l-1) > 1e-12 {
		t.Errorf("Vec3.Normalize().Length() = %v, want 1", l)
	}
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("zero Normalize() = %v, want zero", got)
	}
}

func TestVec3Distance(t *testing.T) {
	a := Vec3{1, 1, 1}
	b := Vec3{4, 5, 1}
	if got := a.Distance(b); got != 5 {
		t.Errorf("Vec3.Distance() = %v, want 5", got)
	}
}

func TestDegToRad(t *testing.T) {
	tests := []struct {
		deg  float64
		want float64
	}{
		{0, 0},
		{90, math.Pi / 2},
		{180, math.Pi},
		{-45, -math.Pi / 4},
	}
	for _, tt := range tests {
		if got := DegToRad(tt.deg); math.Abs(got-tt.want) > 1e-15 {
			t.Errorf("DegToRad(%v) = %v, want %v", tt.deg, got, tt.want)
		}
	}
}

func TestBoxExtend(t *testing.T) {
	b := EmptyBox()
	if !b.IsEmpty() {
		t.Fatal("EmptyBox should be empty")
	}
	if s := b.Size(); s != (Vec3{}) {
		t.Errorf("empty Size() = %v, want zero", s)
	}

	b.Extend(Vec3{-1, 0, 2})
	b.Extend(Vec3{3, 4, -2})

	if b.Min != (Vec3{-1, 0, -2}) || b.Max != (Vec3{3, 4, 2}) {
		t.Errorf("Extend: got min %v max %v", b.Min, b.Max)
	}
	if c := b.Center(); c != (Vec3{1, 2, 0}) {
		t.Errorf("Center() = %v, want (1, 2, 0)", c)
	}
	if d := b.MaxDim(); d != 4 {
		t.Errorf("MaxDim() = %v, want 4", d)
	}
	if !b.Contains(Vec3{0, 1, 0}) || b.Contains(Vec3{0, 5, 0}) {
		t.Error("Contains returned wrong result")
	}
}

func TestVec3Rotate(t *testing.T) {
	got := Vec3{1, 0, 0}.Rotate(Vec3{0, 0, 1}, math.Pi/2)
	if math.Abs(got.X) > 1e-12 || math.Abs(got.Y-1) > 1e-12 || math.Abs(got.Z) > 1e-12 {
		t.Errorf("Rotate 90 about Z = %v, want (0, 1, 0)", got)
	}
}
