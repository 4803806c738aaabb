package game

import "fmt"

// Hex is a cube coordinate on the board. Invariant: Q + R + S == 0.
type Hex struct {
	Q, R, S int
}

func NewHex(q, r int) Hex {
	return Hex{Q: q, R: r, S: -q - r}
}

func (h Hex) String() string {
	return fmt.Sprintf("(%d,%d,%d)", h.Q, h.R, h.S)
}

// Less gives a total order over coordinates, used wherever a deterministic
// iteration order is required (action enumeration, group tie-breaks).
func (h Hex) Less(o Hex) bool {
	if h.Q != o.Q {
		return h.Q < o.Q
	}
	if h.R != o.R {
		return h.R < o.R
	}
	return h.S < o.S
}

func (h Hex) add(d Hex) Hex {
	return Hex{Q: h.Q + d.Q, R: h.R + d.R, S: h.S + d.S}
}

// hexDirections are the six cube-coordinate neighbor offsets.
var hexDirections = [6]Hex{
	{1, -1, 0}, {1, 0, -1}, {0, 1, -1},
	{-1, 1, 0}, {-1, 0, 1}, {0, -1, 1},
}

// lineDirections cover straight lines; the three opposite directions
// produce the same lines so only these are enumerated.
var lineDirections = [3]Hex{
	{1, 0, -1},  // east
	{1, -1, 0},  // northeast
	{0, -1, 1},  // northwest
}

// The fixed 47-cell board layout: a radius-3 hexagon of 37 cells plus 10
// rim cells. Built once through package variable initialization, which
// orders these by dependency, and shared by every grid.
var (
	allPositions = layoutPositions()
	onBoard      = layoutIndex(allPositions)
	neighborsOf  = layoutNeighbors(allPositions, onBoard)

	// Straight-line templates through the layout, precomputed per length.
	lines3 = enumerateLines(3)
	lines4 = enumerateLines(4)
	lines5 = enumerateLines(5)
)

func layoutPositions() []Hex {
	var positions []Hex
	for q := -3; q <= 3; q++ {
		for r := -3; r <= 3; r++ {
			if s := -q - r; s >= -3 && s <= 3 {
				positions = append(positions, Hex{q, r, s})
			}
		}
	}
	extras := [][2]int{
		{-1, 4}, {-2, 4}, {-3, 4},
		{4, -1}, {4, -2},
		{-4, 3}, {-4, 2}, {-4, 1},
		{2, -4}, {1, -4},
	}
	for _, e := range extras {
		positions = append(positions, NewHex(e[0], e[1]))
	}
	return positions
}

func layoutIndex(cells []Hex) map[Hex]bool {
	index := make(map[Hex]bool, len(cells))
	for _, h := range cells {
		index[h] = true
	}
	return index
}

func layoutNeighbors(cells []Hex, index map[Hex]bool) map[Hex][]Hex {
	neighbors := make(map[Hex][]Hex, len(cells))
	for _, h := range cells {
		for _, d := range hexDirections {
			if n := h.add(d); index[n] {
				neighbors[h] = append(neighbors[h], n)
			}
		}
	}
	return neighbors
}

func enumerateLines(length int) [][]Hex {
	var lines [][]Hex
	for _, start := range allPositions {
		for _, d := range lineDirections {
			line := make([]Hex, 0, length)
			pos := start
			for i := 0; i < length; i++ {
				if !onBoard[pos] {
					line = nil
					break
				}
				line = append(line, pos)
				pos = pos.add(d)
			}
			if line != nil {
				lines = append(lines, line)
			}
		}
	}
	return lines
}

// AllPositions returns every coordinate in the board layout.
func AllPositions() []Hex {
	return allPositions
}

// OnBoard reports whether h is part of the board layout.
func OnBoard(h Hex) bool {
	return onBoard[h]
}

// Neighbors returns the up-to-6 layout cells adjacent to h. Out-of-layout
// coordinates fail with ErrInvalidCoordinate.
func Neighbors(h Hex) ([]Hex, error) {
	if !onBoard[h] {
		return nil, fmt.Errorf("%w: %s", ErrInvalidCoordinate, h)
	}
	return neighborsOf[h], nil
}

// Adjacent reports whether a and b are neighboring layout cells.
func Adjacent(a, b Hex) bool {
	for _, n := range neighborsOf[a] {
		if n == b {
			return true
		}
	}
	return false
}

// Distance is the cube-coordinate hex distance between a and b.
func Distance(a, b Hex) int {
	dq := abs(a.Q - b.Q)
	dr := abs(a.R - b.R)
	ds := abs(a.S - b.S)
	return max(dq, max(dr, ds))
}

// Lines returns the precomputed straight-line templates of the given
// length (3, 4 or 5). The returned slices are shared; callers must not
// mutate them.
func Lines(length int) [][]Hex {
	switch length {
	case 3:
		return lines3
	case 4:
		return lines4
	case 5:
		return lines5
	default:
		return nil
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
