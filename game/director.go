package game

// Director plays a game in place of a human.
type Director interface {
	// Init is called once, before the first Act.
	Init(*Game)

	// Act picks the next cell to select. It returns false when it has no
	// move to offer.
	Act() (Coord, bool)
}
