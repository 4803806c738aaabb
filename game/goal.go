package game

import (
	"encoding/json"
	"fmt"
	"sort"
)

// GoalKind is one of the six neighbor-distribution requirements a goal
// marker can demand of its 6 adjacent tiles.
type GoalKind int

const (
	GoalThreeThree   GoalKind = iota // AAA-BBB
	GoalTwoTwoTwo                    // AA-BB-CC
	GoalAllUnique                    // six different values
	GoalFourTwo                      // AAAA-BB
	GoalThreeTwoOne                  // AAA-BB-C
	GoalTwoTwoOneOne                 // AA-BB-C-D
)

// goalSpecs: required distribution shape (descending counts) and the
// single/both point values per kind.
var goalSpecs = map[GoalKind]struct {
	name   string
	shape  []int
	single int
	both   int
}{
	GoalThreeThree:   {"AAA-BBB", []int{3, 3}, 8, 13},
	GoalTwoTwoTwo:    {"AA-BB-CC", []int{2, 2, 2}, 7, 11},
	GoalAllUnique:    {"All Unique", []int{1, 1, 1, 1, 1, 1}, 10, 15},
	GoalFourTwo:      {"AAAA-BB", []int{4, 2}, 8, 14},
	GoalThreeTwoOne:  {"AAA-BB-C", []int{3, 2, 1}, 7, 11},
	GoalTwoTwoOneOne: {"AA-BB-C-D", []int{2, 2, 1, 1}, 5, 8},
}

func (k GoalKind) String() string {
	if spec, ok := goalSpecs[k]; ok {
		return spec.name
	}
	return fmt.Sprintf("GoalKind(%d)", int(k))
}

// GoalKindByName resolves the wire name used in snapshots and records.
func GoalKindByName(name string) (GoalKind, error) {
	for k, spec := range goalSpecs {
		if spec.name == name {
			return k, nil
		}
	}
	return 0, fmt.Errorf("unknown goal kind %q", name)
}

// Goal kinds travel by name, keeping snapshots and records readable and
// independent of the enum's numeric values.
func (k GoalKind) MarshalJSON() ([]byte, error) {
	spec, ok := goalSpecs[k]
	if !ok {
		return nil, fmt.Errorf("unknown goal kind %d", int(k))
	}
	return json.Marshal(spec.name)
}

func (k *GoalKind) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	kind, err := GoalKindByName(name)
	if err != nil {
		return err
	}
	*k = kind
	return nil
}

// Goal is a position-based scoring rule: the 6 tiles adjacent to its
// marker must match the kind's distribution requirement by color, by
// pattern, or by both.
type Goal struct {
	Kind GoalKind `json:"kind"`
	Pos  Hex      `json:"pos"`
}

// Evaluate scores this goal. A goal pays only with all 6 neighbors
// filled: "both" when color and pattern distributions each match the
// required shape, "single" when exactly one does.
func (gl Goal) Evaluate(g *Grid) (int, []string) {
	spec := goalSpecs[gl.Kind]

	var colors []int
	var patterns []int
	filled := 0
	for _, n := range neighborsOf[gl.Pos] {
		t, ok := g.TileAt(n)
		if !ok {
			continue
		}
		filled++
		colors = append(colors, int(t.Color))
		patterns = append(patterns, int(t.Pattern))
	}

	if filled < 6 {
		if filled > 0 {
			return 0, []string{fmt.Sprintf("%s at %s: %d/6 filled", spec.name, gl.Pos, filled)}
		}
		return 0, nil
	}

	colorMet := matchesShape(colors, spec.shape)
	patternMet := matchesShape(patterns, spec.shape)

	switch {
	case colorMet && patternMet:
		return spec.both, []string{fmt.Sprintf("%s at %s: color and pattern, 6/6 filled (+%d)",
			spec.name, gl.Pos, spec.both)}
	case colorMet:
		return spec.single, []string{fmt.Sprintf("%s at %s: color only, 6/6 filled (+%d)",
			spec.name, gl.Pos, spec.single)}
	case patternMet:
		return spec.single, []string{fmt.Sprintf("%s at %s: pattern only, 6/6 filled (+%d)",
			spec.name, gl.Pos, spec.single)}
	default:
		return 0, []string{fmt.Sprintf("%s at %s: 6/6 filled, unmet", spec.name, gl.Pos)}
	}
}

// matchesShape reports whether the multiset of values has exactly the
// required distribution shape of counts.
func matchesShape(values []int, shape []int) bool {
	counts := make(map[int]int)
	for _, v := range values {
		counts[v]++
	}
	got := make([]int, 0, len(counts))
	for _, n := range counts {
		got = append(got, n)
	}
	sort.Sort(sort.Reverse(sort.IntSlice(got)))
	if len(got) != len(shape) {
		return false
	}
	for i := range got {
		if got[i] != shape[i] {
			return false
		}
	}
	return true
}

// GoalKinds returns all six kinds in declaration order.
func GoalKinds() []GoalKind {
	return []GoalKind{
		GoalThreeThree, GoalTwoTwoTwo, GoalAllUnique,
		GoalFourTwo, GoalThreeTwoOne, GoalTwoTwoOneOne,
	}
}
