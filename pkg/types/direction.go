package types

// Direction selects which neighbor a move swaps with.
type Direction string

const (
	MoveUp   Direction = "up"
	MoveDown Direction = "down"
)

// Valid reports whether d is a recognized direction.
func (d Direction) Valid() bool {
	return d == MoveUp || d == MoveDown
}

// ParseDirection converts a user-supplied string into a Direction.
// Returns ErrInvalidDirection for anything other than "up" or "down".
func ParseDirection(s string) (Direction, error) {
	d := Direction(s)
	if !d.Valid() {
		return "", ErrInvalidDirection
	}
	return d, nil
}
