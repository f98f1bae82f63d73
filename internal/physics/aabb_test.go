package physics

import (
	"math/rand"
	"testing"
)

func TestCollides(t *testing.T) {
	tests := []struct {
		name string
		a, b Box
		want bool
	}{
		{"same centre", Box{10, 10, 4, 4}, Box{10, 10, 4, 4}, true},
		{"touching x", Box{0, 0, 4, 4}, Box{4, 0, 4, 4}, true},
		{"gap x", Box{0, 0, 4, 4}, Box{4.5, 0, 4, 4}, false},
		{"overlap x gap y", Box{0, 0, 4, 4}, Box{1, 10, 4, 4}, false},
		{"thin laser through ship", Box{100, 100, 2, 50}, Box{100, 80, 16, 16}, true},
	}
	for _, tt := range tests {
		if got := Collides(tt.a, tt.b); got != tt.want {
			t.Errorf("%s: Collides = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestCollidesSymmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	box := func() Box {
		return Box{
			X:      rng.Float64() * 640,
			Y:      rng.Float64() * 480,
			Width:  1 + rng.Float64()*100,
			Height: 1 + rng.Float64()*50,
		}
	}
	for i := 0; i < 5000; i++ {
		a, b := box(), box()
		if Collides(a, b) != Collides(b, a) {
			t.Fatalf("Collides not symmetric for %+v and %+v", a, b)
		}
	}
}

func TestOffScreen(t *testing.T) {
	s := Bounds{Width: 640, Height: 480}
	tests := []struct {
		name string
		b    Box
		want bool
	}{
		{"centre", Box{320, 240, 16, 16}, false},
		{"near left edge uses full width", Box{10, 240, 16, 16}, true},
		{"just inside", Box{16, 16, 16, 16}, false},
		{"below", Box{320, 479, 4, 4}, true},
	}
	for _, tt := range tests {
		if got := s.OffScreen(tt.b); got != tt.want {
			t.Errorf("%s: OffScreen = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestClamp(t *testing.T) {
	s := Bounds{Width: 640, Height: 480}
	x, y := s.Clamp(Box{-50, 900, 16, 16})
	if x != 8 || y != 472 {
		t.Fatalf("Clamp = (%v, %v), want (8, 472)", x, y)
	}
	x, y = s.Clamp(Box{700, -3, 16, 16})
	if x != 632 || y != 8 {
		t.Fatalf("Clamp = (%v, %v), want (632, 8)", x, y)
	}
}
