package tspgenetic

// assignmentCities returns the 9-city instance the project was originally
// built around. Cities 3 and 7 share coordinates on purpose; identity is
// the pointer, not the position. Known optimal closed-tour distance:
// 27.220359980699765.
func assignmentCities() []*City {
	return []*City{
		{Num: 1, X: 1, Y: 1},
		{Num: 2, X: 5, Y: 4},
		{Num: 3, X: 4, Y: 8},
		{Num: 4, X: 3, Y: 5},
		{Num: 5, X: 7, Y: 6},
		{Num: 6, X: 8, Y: 7},
		{Num: 7, X: 4, Y: 8},
		{Num: 8, X: 2, Y: 4},
		{Num: 9, X: 9, Y: 2},
	}
}

// assignmentOptimal is the brute-forced optimum for assignmentCities.
const assignmentOptimal = 27.220359980699765

// lineCities returns n cities spaced one unit apart on the x-axis.
func lineCities(n int) []*City {
	cities := make([]*City, n)
	for i := range cities {
		cities[i] = &City{Num: i + 1, X: float64(i)}
	}
	return cities
}

// unitSquare returns the four corners of the unit square, in perimeter
// order. Optimal closed tour: 4.
func unitSquare() []*City {
	return []*City{
		{Num: 1, X: 0, Y: 0},
		{Num: 2, X: 1, Y: 0},
		{Num: 3, X: 1, Y: 1},
		{Num: 4, X: 0, Y: 1},
	}
}
