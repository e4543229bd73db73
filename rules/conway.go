package rules

/*
ApplyConwayRules applies Conway's Game of Life rules to determine the next state of a cell.

Conway's Game of Life rules: (alive && neighbors == 2) || neighbors == 3
*/
func ApplyConwayRules(neighbors int, alive bool) bool {
	return (alive && neighbors == 2) || neighbors == 3
}

// Survives reports whether a live cell with the given number of live neighbours stays alive
func Survives(neighbors int) bool {
	return ApplyConwayRules(neighbors, true)
}

// Dying is the complement of Survives: 0, 1 or 4+ neighbours
func Dying(neighbors int) bool {
	return !Survives(neighbors)
}

// Born reports whether an empty coordinate influenced by the given number of live cells comes alive
func Born(influence int) bool {
	return ApplyConwayRules(influence, false)
}
