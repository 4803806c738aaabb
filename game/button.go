package game

import "fmt"

const (
	// ButtonClusterSize is the group size that earns a button.
	ButtonClusterSize = 3
	// ButtonPoints per earned button.
	ButtonPoints = 3
	// RainbowButtonPoints for holding at least one button of every color.
	RainbowButtonPoints = 5
)

// EvaluateButtons scores same-color clusters over the whole board
// including the pre-filled rim. Each color's groups are selected
// independently: groups of the same color must be separated, groups of
// different colors may touch.
func EvaluateButtons(g *Grid) (int, []string) {
	var reasons []string
	total := 0
	rainbow := true
	for _, c := range Colors() {
		color := c
		clusters := findClusters(g, ButtonClusterSize, func(t Tile) bool { return t.Color == color })
		groups := selectDisjoint(clusters, true)
		if len(groups) == 0 {
			rainbow = false
			continue
		}
		total += len(groups) * ButtonPoints
		reasons = append(reasons, fmt.Sprintf("%s button x%d: clusters of %d (+%d)",
			color, len(groups), ButtonClusterSize, len(groups)*ButtonPoints))
	}
	if rainbow {
		total += RainbowButtonPoints
		reasons = append(reasons, fmt.Sprintf("Rainbow button: all %d colors (+%d)",
			NumColors, RainbowButtonPoints))
	}
	return total, reasons
}
