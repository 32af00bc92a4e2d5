package geom

import "testing"

func TestPositionArithmetic(t *testing.T) {
	p := P(4, -7)
	if got := p.Add(P(1, 2)); got != P(5, -5) {
		t.Errorf("Add = %v", got)
	}
	if got := p.Sub(P(1, 2)); got != P(3, -9) {
		t.Errorf("Sub = %v", got)
	}
	if got := p.Mul(3); got != P(12, -21) {
		t.Errorf("Mul = %v", got)
	}
	if got := p.FloorDiv(P(3, 2)); got != P(1, -4) {
		t.Errorf("FloorDiv = %v", got)
	}
	if got := p.Div(P(8, 2)); got != (Pointf{0.5, -3.5}) {
		t.Errorf("Div = %v", got)
	}
	if got := p.Move(Up); got != P(3, -7) {
		t.Errorf("Move(Up) = %v", got)
	}
}

func TestPositionWrap(t *testing.T) {
	tests := []struct {
		in, expected Position
	}{
		{P(-1, 0), P(9, 0)},
		{P(10, 21), P(0, 1)},
		{P(3, -1), P(3, 19)},
	}
	for _, tc := range tests {
		if got := tc.in.Wrap(10, 20); got != tc.expected {
			t.Errorf("Wrap(%v) = %v, expected %v", tc.in, got, tc.expected)
		}
	}
}

func TestVectorMagnitude(t *testing.T) {
	tests := []struct {
		v        Vector
		expected int
	}{
		{Zero, 0},
		{V(3, 4), 5},
		{V(1, 1), 1},
		{V(-2, 2), 3},
	}
	for _, tc := range tests {
		if got := tc.v.Magnitude(); got != tc.expected {
			t.Errorf("Magnitude(%v) = %d, expected %d", tc.v, got, tc.expected)
		}
	}
}

func TestVectorString(t *testing.T) {
	tests := []struct {
		v        Vector
		expected string
	}{
		{Zero, "0"},
		{V(-2, 3), "3i - 2j"},
		{V(2, 3), "3i + 2j"},
		{V(-1, 0), "-j"},
		{V(0, 1), "i"},
		{V(-4, 0), "-4j"},
		{V(1, -1), "-i + j"},
	}
	for _, tc := range tests {
		if got := tc.v.String(); got != tc.expected {
			t.Errorf("String(%#v) = %q, expected %q", tc.v, got, tc.expected)
		}
	}
}

func TestUnitVector(t *testing.T) {
	for name, expected := range map[string]Vector{"up": Up, "DOWN": Down, "left": Left, "right": Right} {
		got, err := UnitVector(name)
		if err != nil || got != expected {
			t.Errorf("UnitVector(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := UnitVector("sideways"); err == nil {
		t.Error("expected error for unknown direction")
	}
	if Up.Neg() != Down || Left.Add(Right) != Zero {
		t.Error("unit vectors should cancel")
	}
}

func TestQuadrantNormalize(t *testing.T) {
	rel := P(2, 3)
	tests := []struct {
		q        Quadrant
		expected Position
	}{
		{TopRight, P(2, 16)},
		{TopLeft, P(2, 3)},
		{BottomLeft, P(7, 3)},
		{BottomRight, P(7, 16)},
	}
	for _, tc := range tests {
		if got := tc.q.Normalize(rel, 10, 20); got != tc.expected {
			t.Errorf("%v.Normalize = %v, expected %v", tc.q, got, tc.expected)
		}
	}
}

func TestQuadrantOrient(t *testing.T) {
	rel := V(2, 3)
	tests := []struct {
		q        Quadrant
		expected Vector
	}{
		{TopRight, V(2, -3)},
		{TopLeft, V(2, 3)},
		{BottomLeft, V(-2, 3)},
		{BottomRight, V(-2, -3)},
	}
	for _, tc := range tests {
		if got := tc.q.Orient(rel); got != tc.expected {
			t.Errorf("%v.Orient = %v, expected %v", tc.q, got, tc.expected)
		}
	}
}

// Orienting a launch offset and adding it to the start gives the same cell
// as normalizing the offset inside a single-cell frame anchored at start.
func TestOrientMatchesNormalizeFromStart(t *testing.T) {
	start := P(5, 9)
	for _, q := range []Quadrant{TopRight, TopLeft, BottomLeft, BottomRight} {
		for _, rel := range []Position{P(0, 0), P(2, 3), P(-1, 4), P(3, -2)} {
			oriented := start.Move(q.Orient(V(rel.Row, rel.Col)))
			normalized := start.Add(q.Normalize(rel, 1, 1))
			if oriented != normalized {
				t.Errorf("%v %v: Orient gives %v, Normalize gives %v", q, rel, oriented, normalized)
			}
		}
	}
}
