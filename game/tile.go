package game

// Color is one of the six tile colors.
type Color int

const (
	Pink Color = iota
	Blue
	Green
	Yellow
	Purple
	Teal
)

var colorNames = [...]string{"Pink", "Blue", "Green", "Yellow", "Purple", "Teal"}

func (c Color) String() string {
	if c < 0 || int(c) >= len(colorNames) {
		return "Unknown"
	}
	return colorNames[c]
}

// Pattern is one of the six tile patterns.
type Pattern int

const (
	Dots Pattern = iota
	Stripes
	Flowers
	Leaves
	Clubs
	Swirls
)

var patternNames = [...]string{"Dots", "Stripes", "Flowers", "Leaves", "Clubs", "Swirls"}

func (p Pattern) String() string {
	if p < 0 || int(p) >= len(patternNames) {
		return "Unknown"
	}
	return patternNames[p]
}

const (
	NumColors   = 6
	NumPatterns = 6
	// CopiesPerTile is how many identical copies of each color/pattern pair
	// exist in a game. 3 * 6 * 6 = 108 tiles total.
	CopiesPerTile = 3
	// TotalTiles is the fixed tile population of a game.
	TotalTiles = CopiesPerTile * NumColors * NumPatterns
)

// Tile is a value type: two tiles with the same color and pattern are
// interchangeable once drawn.
type Tile struct {
	Color   Color
	Pattern Pattern
}

func (t Tile) String() string {
	return t.Color.String() + " " + t.Pattern.String()
}

// Colors returns all six colors in declaration order.
func Colors() []Color {
	return []Color{Pink, Blue, Green, Yellow, Purple, Teal}
}

// Patterns returns all six patterns in declaration order.
func Patterns() []Pattern {
	return []Pattern{Dots, Stripes, Flowers, Leaves, Clubs, Swirls}
}
