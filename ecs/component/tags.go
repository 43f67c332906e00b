package component

type PlayerTag struct{}

var PlayerTagComponent = NewComponent[PlayerTag]()

type GoalTag struct{}

var GoalTagComponent = NewComponent[GoalTag]()

type CameraTag struct{}

var CameraTagComponent = NewComponent[CameraTag]()

type TileTag struct{}

var TileTagComponent = NewComponent[TileTag]()
