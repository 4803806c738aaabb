package game

import (
	"fmt"
	"sort"
)

// CatShape is the closed set of group shapes a cat can demand.
type CatShape int

const (
	Cluster3 CatShape = iota // 3 touching tiles
	Line3                    // 3 tiles in a straight line
	Line4                    // 4 tiles in a straight line
	Line5                    // 5 tiles in a straight line
)

func (s CatShape) size() int {
	switch s {
	case Cluster3, Line3:
		return 3
	case Line4:
		return 4
	case Line5:
		return 5
	}
	panic(fmt.Sprintf("unknown cat shape %d", s))
}

func (s CatShape) describe() string {
	switch s {
	case Cluster3:
		return "cluster"
	default:
		return "line"
	}
}

// Cat is a pattern-based scoring rule: groups of the required shape whose
// tiles all carry one of the cat's two preferred patterns score Points
// each. The pattern pair is dealt at game start by AssignRules.
type Cat struct {
	Name     string     `json:"name"`
	Points   int        `json:"points"`
	Shape    CatShape   `json:"shape"`
	Patterns [2]Pattern `json:"patterns"`
}

// The cat roster, one difficulty bucket each: Millie is the easy bucket,
// Rumi and Tibbit the middle one, Leo the hard one.
func Millie() Cat { return Cat{Name: "Millie", Points: 3, Shape: Cluster3} }
func Rumi() Cat   { return Cat{Name: "Rumi", Points: 5, Shape: Line3} }
func Tibbit() Cat { return Cat{Name: "Tibbit", Points: 8, Shape: Line4} }
func Leo() Cat    { return Cat{Name: "Leo", Points: 11, Shape: Line5} }

// Evaluate finds the disjoint scoring groups for this cat on the grid and
// returns the score, the selected groups, and reason strings: one per
// completed group plus the best partial progress when the cat is not yet
// scoring at full potential.
func (c Cat) Evaluate(g *Grid) (int, [][]Hex, []string) {
	groups := c.findGroups(g)

	var reasons []string
	size := c.Shape.size()
	for _, group := range groups {
		t, _ := g.TileAt(group[0])
		reasons = append(reasons, fmt.Sprintf("%s: %d/%d %s %s (+%d)",
			c.Name, size, size, t.Pattern, c.Shape.describe(), c.Points))
	}
	if best, p := c.bestPartial(g, groups); best > 0 {
		reasons = append(reasons, fmt.Sprintf("%s: %d/%d cells filled for %s %s",
			c.Name, best, size, p, c.Shape.describe()))
	}

	return len(groups) * c.Points, groups, reasons
}

// findGroups selects a disjoint set of completed groups, greedily in
// coordinate order. Groups of the same cat may not touch each other.
func (c Cat) findGroups(g *Grid) [][]Hex {
	var candidates [][]Hex
	for _, p := range c.Patterns {
		if c.Shape == Cluster3 {
			candidates = append(candidates, findClusters(g, 3, func(t Tile) bool { return t.Pattern == p })...)
		} else {
			candidates = append(candidates, matchLines(g, c.Shape.size(), func(t Tile) bool { return t.Pattern == p })...)
		}
	}
	return selectDisjoint(candidates, true)
}

// bestPartial reports the most filled cells any incomplete template has
// toward this cat, ignoring cells already claimed by completed groups.
func (c Cat) bestPartial(g *Grid, groups [][]Hex) (int, Pattern) {
	used := make(map[Hex]bool)
	for _, group := range groups {
		for _, h := range group {
			used[h] = true
		}
	}

	size := c.Shape.size()
	best, bestPattern := 0, c.Patterns[0]
	for _, p := range c.Patterns {
		if c.Shape == Cluster3 {
			if n := bestClusterProgress(g, p, used); n > best {
				best, bestPattern = n, p
			}
			continue
		}
		for _, line := range Lines(size) {
			filled, viable := 0, true
			for _, h := range line {
				if used[h] {
					viable = false
					break
				}
				if t, ok := g.TileAt(h); ok {
					if t.Pattern != p {
						viable = false
						break
					}
					filled++
				}
			}
			if viable && filled > best && filled < size {
				best, bestPattern = filled, p
			}
		}
	}
	return best, bestPattern
}

func bestClusterProgress(g *Grid, p Pattern, used map[Hex]bool) int {
	best := 0
	for _, h := range allPositions {
		if used[h] {
			continue
		}
		t, ok := g.TileAt(h)
		if !ok || t.Pattern != p {
			continue
		}
		if best < 1 {
			best = 1
		}
		for _, n := range neighborsOf[h] {
			if used[n] {
				continue
			}
			if nt, ok := g.TileAt(n); ok && nt.Pattern == p {
				best = 2
			}
		}
	}
	return best
}

// matchLines returns every precomputed line of the given length whose
// tiles all satisfy match.
func matchLines(g *Grid, length int, match func(Tile) bool) [][]Hex {
	var found [][]Hex
	for _, line := range Lines(length) {
		ok := true
		for _, h := range line {
			t, filled := g.TileAt(h)
			if !filled || !match(t) {
				ok = false
				break
			}
		}
		if ok {
			found = append(found, line)
		}
	}
	return found
}

// findClusters enumerates connected groups of exactly size cells whose
// tiles all satisfy match. Size 3 only: a triple is connected iff its
// third cell touches one of the first two.
func findClusters(g *Grid, size int, match func(Tile) bool) [][]Hex {
	if size != 3 {
		panic(fmt.Sprintf("unsupported cluster size %d", size))
	}

	matching := func(h Hex) bool {
		t, ok := g.TileAt(h)
		return ok && match(t)
	}

	seen := make(map[[3]Hex]bool)
	var found [][]Hex
	for _, a := range allPositions {
		if !matching(a) {
			continue
		}
		for _, b := range neighborsOf[a] {
			if !matching(b) {
				continue
			}
			third := append(append([]Hex(nil), neighborsOf[a]...), neighborsOf[b]...)
			for _, c := range third {
				if c == a || c == b || !matching(c) {
					continue
				}
				key := canonicalTriple(a, b, c)
				if seen[key] {
					continue
				}
				seen[key] = true
				found = append(found, []Hex{key[0], key[1], key[2]})
			}
		}
	}
	return found
}

func canonicalTriple(a, b, c Hex) [3]Hex {
	hs := []Hex{a, b, c}
	sortHexes(hs)
	return [3]Hex{hs[0], hs[1], hs[2]}
}

// selectDisjoint greedily picks non-overlapping groups in order of their
// lowest coordinate. All groups of one rule score identically, so greedy
// selection with a deterministic tie-break is sufficient. When separate
// is set, a chosen group also blocks adjacent cells for later groups,
// matching the physical rule that one cat token cannot sit across two
// touching groups.
func selectDisjoint(candidates [][]Hex, separate bool) [][]Hex {
	sorted := make([][]Hex, len(candidates))
	copy(sorted, candidates)
	sort.Slice(sorted, func(i, j int) bool {
		return minHex(sorted[i]).Less(minHex(sorted[j]))
	})

	used := make(map[Hex]bool)
	var picked [][]Hex
	for _, group := range sorted {
		conflict := false
		for _, h := range group {
			if used[h] {
				conflict = true
				break
			}
			if separate {
				for _, n := range neighborsOf[h] {
					if used[n] {
						conflict = true
						break
					}
				}
			}
			if conflict {
				break
			}
		}
		if conflict {
			continue
		}
		picked = append(picked, group)
		for _, h := range group {
			used[h] = true
		}
	}
	return picked
}

func minHex(hs []Hex) Hex {
	m := hs[0]
	for _, h := range hs[1:] {
		if h.Less(m) {
			m = h
		}
	}
	return m
}
