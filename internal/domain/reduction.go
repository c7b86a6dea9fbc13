package domain

// Reduction is the outcome of constraint propagation. Every cell is either
// resolved (its value is set on Board and its candidate list has length 1)
// or still ambiguous, in which case Board holds 0 and Candidates lists the
// digits that remain possible, in ascending order.
type Reduction struct {
	Board      Board         `json:"board"`
	Candidates [9][9][]uint8 `json:"candidates"`
	Complete   bool          `json:"complete"`
}

// Resolved reports whether the cell at (row, col) collapsed to one value.
func (rd *Reduction) Resolved(row, col int) bool {
	return len(rd.Candidates[row][col]) == 1
}

// Unresolved counts the cells still holding two or more candidates.
func (rd *Reduction) Unresolved() int {
	n := 0
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if len(rd.Candidates[r][c]) > 1 {
				n++
			}
		}
	}
	return n
}
