package core

// EntityID identifies one of the two competitors
type EntityID uint8

const (
	EntityNone EntityID = iota
	Player1
	Player2
)

// Players lists both competitor ids in seat order
var Players = [2]EntityID{Player1, Player2}

// Other returns the opposing seat, EntityNone for unknown ids
func (id EntityID) Other() EntityID {
	switch id {
	case Player1:
		return Player2
	case Player2:
		return Player1
	}
	return EntityNone
}

// Index returns the zero-based seat index, -1 for unknown ids
func (id EntityID) Index() int {
	switch id {
	case Player1:
		return 0
	case Player2:
		return 1
	}
	return -1
}

func (id EntityID) String() string {
	switch id {
	case Player1:
		return "Player 1"
	case Player2:
		return "Player 2"
	}
	return "none"
}
