package tetris

// Points returns the score for clearing rows with a single piece. table[n-1]
// holds the award for n rows; counts outside the table score nothing.
func Points(table []int, rows int) int {
	if rows <= 0 || rows > len(table) {
		return 0
	}
	return table[rows-1]
}
