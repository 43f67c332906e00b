package grid

import "testing"

func TestFromRow(t *testing.T) {
	cases := []struct {
		column, row, height int
		want                Coord
	}{
		{0, 0, 12, Coord{0, 11}},
		{3, 11, 12, Coord{3, 0}},
		{5, 4, 10, Coord{5, 5}},
	}
	for _, c := range cases {
		got := FromRow(c.column, c.row, c.height)
		if got != c.want {
			t.Fatalf("FromRow(%d,%d,%d): expected %v, got %v", c.column, c.row, c.height, c.want, got)
		}
		if row := got.Row(c.height); row != c.row {
			t.Fatalf("Row round trip: expected %d, got %d", c.row, row)
		}
	}
}

func TestCellCenter(t *testing.T) {
	x, y := CellCenter(Coord{0, 0}, 16, 12)
	if x != 8 || y != 184 {
		t.Fatalf("expected (8,184), got (%v,%v)", x, y)
	}

	// One step up moves one cell towards the top of the screen.
	_, upY := CellCenter(ApplyMovement(Coord{0, 0}, Up), 16, 12)
	if upY != y-16 {
		t.Fatalf("expected y %v, got %v", y-16, upY)
	}
}
