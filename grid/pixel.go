package grid

// FromRow converts a level cell addressed top-down (column, row) into a Coord
// whose Y grows upward. height is the level height in cells.
func FromRow(column, row, height int) Coord {
	return Coord{X: column, Y: height - 1 - row}
}

// Row is the inverse of FromRow for the Y axis.
func (c Coord) Row(height int) int {
	return height - 1 - c.Y
}

// CellCenter returns the pixel position of the centre of c in a level drawn
// top-down with square cells of cellSize pixels.
func CellCenter(c Coord, cellSize, height int) (float64, float64) {
	half := float64(cellSize) / 2
	x := float64(c.X*cellSize) + half
	y := float64(c.Row(height)*cellSize) + half
	return x, y
}
