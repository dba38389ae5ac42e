package layout

import "testing"

func TestCompute_BodyGeometry(t *testing.T) {
	cases := []struct {
		w, h int
	}{
		{w: 80, h: 24},
		{w: 120, h: 40},
		{w: 20, h: 10},
	}
	for _, tc := range cases {
		r := Compute(tc.w, tc.h)
		if got, want := r.Body.Height, tc.h-6; got != want {
			t.Fatalf("Compute(%d,%d) body height: got %d, want %d", tc.w, tc.h, got, want)
		}
		if got, want := r.Body.Width, tc.w-8; got != want {
			t.Fatalf("Compute(%d,%d) body width: got %d, want %d", tc.w, tc.h, got, want)
		}
		if r.Body.Row != BodyRow || r.Body.Col != BodyCol {
			t.Fatalf("body anchor: got (%d,%d), want (%d,%d)", r.Body.Row, r.Body.Col, BodyRow, BodyCol)
		}
	}
}

func TestCompute_FooterOnLastRow(t *testing.T) {
	r := Compute(80, 24)
	if got, want := r.Footer.Row, 23; got != want {
		t.Fatalf("footer row: got %d, want %d", got, want)
	}
	if r.Footer.Height != 1 || r.Footer.HasBorder {
		t.Fatalf("footer: got height=%d border=%v, want bare single row", r.Footer.Height, r.Footer.HasBorder)
	}
}

func TestCompute_HeaderAndBackground(t *testing.T) {
	r := Compute(80, 24)

	if r.Header.Height != 1 || !r.Header.HasBorder {
		t.Fatalf("header: got height=%d border=%v, want bordered single row", r.Header.Height, r.Header.HasBorder)
	}
	if r.Header.Row != 0 {
		t.Fatalf("header row: got %d, want 0", r.Header.Row)
	}
	if r.Background.Width != 80 || r.Background.Height != 24 {
		t.Fatalf("background: got %dx%d, want 80x24", r.Background.Width, r.Background.Height)
	}
}

func TestCompute_StackingOrder(t *testing.T) {
	r := Compute(80, 24)

	if !(r.Background.ZIndex < r.Body.ZIndex) {
		t.Fatalf("background z %d must be below body z %d", r.Background.ZIndex, r.Body.ZIndex)
	}
	if !(r.Body.ZIndex < r.Header.ZIndex) || !(r.Body.ZIndex < r.Footer.ZIndex) {
		t.Fatalf("body z %d must be below header z %d and footer z %d", r.Body.ZIndex, r.Header.ZIndex, r.Footer.ZIndex)
	}
}

func TestCompute_Deterministic(t *testing.T) {
	a := Compute(100, 30)
	b := Compute(100, 30)
	if a != b {
		t.Fatalf("Compute not deterministic:\n a: %+v\n b: %+v", a, b)
	}
}

func TestCompute_TinyScreenClampsToZero(t *testing.T) {
	r := Compute(4, 3)
	if r.Body.Width != 0 || r.Body.Height != 0 {
		t.Fatalf("tiny screen body: got %dx%d, want 0x0", r.Body.Width, r.Body.Height)
	}
}
