package component

// LevelGrid describes the loaded level's cell layout.
type LevelGrid struct {
	Identifier string
	Width      int
	Height     int
	CellSize   int
}

var LevelGridComponent = NewComponent[LevelGrid]()
