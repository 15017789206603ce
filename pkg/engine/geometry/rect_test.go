package geometry

import "testing"

func TestRect_Bounds(t *testing.T) {
	r := Rect{X: 2, Y: 3, Width: 4, Height: 5}

	if r.XMin() != 2 || r.XMax() != 6 {
		t.Errorf("x bounds = [%d,%d), want [2,6)", r.XMin(), r.XMax())
	}
	if r.YMin() != 3 || r.YMax() != 8 {
		t.Errorf("y bounds = [%d,%d), want [3,8)", r.YMin(), r.YMax())
	}
	if r.Area() != 20 {
		t.Errorf("Area() = %d, want 20", r.Area())
	}
}

func TestRect_Center(t *testing.T) {
	r := Rect{X: 0, Y: 0, Width: 10, Height: 6}
	cx, cy := r.Center()
	if cx != 5 || cy != 3 {
		t.Errorf("Center() = (%d,%d), want (5,3)", cx, cy)
	}
}

func TestRect_Contains(t *testing.T) {
	r := Rect{X: 1, Y: 1, Width: 3, Height: 3}

	cases := []struct {
		x, y int
		want bool
	}{
		{1, 1, true},
		{3, 3, true},
		{4, 3, false}, // max edge is exclusive
		{0, 1, false},
	}
	for _, c := range cases {
		if got := r.Contains(c.x, c.y); got != c.want {
			t.Errorf("Contains(%d,%d) = %v, want %v", c.x, c.y, got, c.want)
		}
	}
}

func TestRect_Intersects_TouchingEdgesDoNotCount(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 4, Height: 4}
	b := Rect{X: 4, Y: 0, Width: 4, Height: 4} // shares the x=4 edge only

	if Intersects(a, b) {
		t.Error("rects sharing only an edge should not intersect")
	}

	c := Rect{X: 3, Y: 3, Width: 4, Height: 4}
	if !Intersects(a, c) {
		t.Error("overlapping rects should intersect")
	}
}

func TestRect_Intersect(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 6, Height: 6}
	b := Rect{X: 4, Y: 2, Width: 6, Height: 6}

	got := Intersect(a, b)
	want := Rect{X: 4, Y: 2, Width: 2, Height: 4}
	if got != want {
		t.Errorf("Intersect = %+v, want %+v", got, want)
	}
}

func TestRect_Intersect_DisjointIsEmpty(t *testing.T) {
	a := Rect{X: 0, Y: 0, Width: 2, Height: 2}
	b := Rect{X: 10, Y: 10, Width: 2, Height: 2}

	if got := Intersect(a, b); !got.Empty() {
		t.Errorf("Intersect of disjoint rects = %+v, want empty", got)
	}
}
