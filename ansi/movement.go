package ansi

// Movement builds a relative cursor Move. The zero value moves nowhere.
//
//	ansi.Movement{}.Up(4).Right(26)
type Movement struct {
	up, down, left, right int
}

// NewMovement returns an empty Movement.
func NewMovement() Movement { return Movement{} }

// Up returns a copy of m moving n rows up.
func (m Movement) Up(n int) Movement {
	m.up = n
	return m
}

// Down returns a copy of m moving n rows down.
func (m Movement) Down(n int) Movement {
	m.down = n
	return m
}

// Left returns a copy of m moving n columns left.
func (m Movement) Left(n int) Movement {
	m.left = n
	return m
}

// Right returns a copy of m moving n columns right.
func (m Movement) Right(n int) Movement {
	m.right = n
	return m
}

// Move returns the sequence described by m.
func (m Movement) Move() Move {
	return Move{Up: m.up, Down: m.down, Left: m.left, Right: m.right}
}

func (m Movement) String() string { return Render(m.Move()) }
