package solver

const (
	gridSize  = 9
	gridCells = gridSize * gridSize
)

// Peer-index tables. rowPeers[r], colPeers[c] and blockPeers[b] each list
// the nine flat positions (row*9 + col) making up that unit, the cell's own
// position included. They depend only on grid geometry, so they are built
// once at package load and shared read-only across all solves.
var (
	rowPeers   [gridSize][gridSize]int
	colPeers   [gridSize][gridSize]int
	blockPeers [gridSize][gridSize]int
)

func init() {
	for r := 0; r < gridSize; r++ {
		for c := 0; c < gridSize; c++ {
			pos := r*gridSize + c
			rowPeers[r][c] = pos
			colPeers[c][r] = pos
			blockPeers[blockOf(r, c)][(r%3)*3+c%3] = pos
		}
	}
}

// blockOf maps a cell to its 3×3 block number, left to right, top to bottom.
func blockOf(r, c int) int { return (r/3)*3 + c/3 }
