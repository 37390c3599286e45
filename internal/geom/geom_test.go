package geom

import "testing"

func TestRectUnion(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want Rect
	}{
		{
			name: "disjoint",
			a:    NewRect(0, 0, 2, 2),
			b:    NewRect(4, 4, 2, 2),
			want: NewRect(0, 0, 6, 6),
		},
		{
			name: "contained",
			a:    NewRect(0, 0, 10, 10),
			b:    NewRect(2, 2, 1, 1),
			want: NewRect(0, 0, 10, 10),
		},
		{
			name: "negative coordinates",
			a:    NewRect(-3, -1, 2, 2),
			b:    NewRect(1, 1, 2, 2),
			want: NewRect(-3, -1, 6, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Union(tt.b); got != tt.want {
				t.Errorf("Union() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRectOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b Rect
		want bool
	}{
		{"overlapping", NewRect(0, 0, 4, 4), NewRect(2, 2, 4, 4), true},
		{"touching edge", NewRect(0, 0, 2, 2), NewRect(2, 0, 2, 2), true},
		{"disjoint", NewRect(0, 0, 2, 2), NewRect(5, 5, 1, 1), false},
		{"vertically disjoint", NewRect(0, 0, 4, 1), NewRect(0, 3, 4, 1), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.a.Overlaps(tt.b); got != tt.want {
				t.Errorf("Overlaps() = %v, want %v", got, tt.want)
			}
			// overlap is symmetric
			if got := tt.b.Overlaps(tt.a); got != tt.want {
				t.Errorf("Overlaps() reversed = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoundsRectRoundTrip(t *testing.T) {
	b := WorldBounds{Center: Vec2{X: 1, Y: -2}, Size: Vec2{X: 4, Y: 6}}
	r := b.Rect()

	if r.Min.X != -1 || r.Min.Y != -5 {
		t.Errorf("Rect() min = (%g,%g), want (-1,-5)", r.Min.X, r.Min.Y)
	}

	back := BoundsFromRect(r)
	if back != b {
		t.Errorf("BoundsFromRect(Rect()) = %v, want %v", back, b)
	}
}

func TestBoundsMaxSide(t *testing.T) {
	b := WorldBounds{Size: Vec2{X: 3, Y: 7}}
	if got := b.MaxSide(); got != 7 {
		t.Errorf("MaxSide() = %g, want 7", got)
	}
}

func TestPixelRectIntersect(t *testing.T) {
	buffer := NewPixelRect(0, 0, 64, 64)

	tests := []struct {
		name string
		r    PixelRect
		want PixelRect
	}{
		{"contained", NewPixelRect(8, 8, 16, 16), NewPixelRect(8, 8, 16, 16)},
		{"negative origin", NewPixelRect(-10, -10, 30, 30), NewPixelRect(0, 0, 20, 20)},
		{"overflowing", NewPixelRect(50, 50, 30, 30), NewPixelRect(50, 50, 14, 14)},
		{"disjoint is empty", NewPixelRect(100, 100, 8, 8), NewPixelRect(100, 100, -36, -36)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.r.Intersect(buffer)
			if tt.want.Empty() {
				if !got.Empty() {
					t.Errorf("Intersect() = %v, want empty", got)
				}
				return
			}
			if got != tt.want {
				t.Errorf("Intersect() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestPixelRectContains(t *testing.T) {
	outer := NewPixelRect(0, 0, 32, 32)
	if !outer.Contains(NewPixelRect(0, 0, 32, 32)) {
		t.Error("rect should contain itself")
	}
	if outer.Contains(NewPixelRect(-1, 0, 8, 8)) {
		t.Error("rect should not contain one extending past its left edge")
	}
	if outer.Contains(NewPixelRect(30, 30, 8, 8)) {
		t.Error("rect should not contain one overflowing its max corner")
	}
}

func TestCeilPow2(t *testing.T) {
	tests := []struct {
		input int
		want  int
	}{
		{-5, 1},
		{0, 1},
		{1, 1},
		{2, 2},
		{3, 4},
		{4, 4},
		{5, 8},
		{127, 128},
		{128, 128},
		{129, 256},
		{1024, 1024},
		{1025, 2048},
	}

	for _, tt := range tests {
		if got := CeilPow2(tt.input); got != tt.want {
			t.Errorf("CeilPow2(%d) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
