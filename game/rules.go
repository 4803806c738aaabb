package game

import (
	"golang.org/x/exp/rand"
)

// catBuckets group the roster by difficulty; game setup draws one cat
// from each bucket.
var catBuckets = [3][]func() Cat{
	{Millie},
	{Rumi, Tibbit},
	{Leo},
}

// AssignRules deals the game's scoring rules from an explicit random
// source: one cat per bucket with a non-overlapping pattern pair each
// (all six patterns are used exactly once across the three cats), and
// three of the six goal kinds on the fixed marker positions.
func AssignRules(rng *rand.Rand) ([3]Cat, [3]Goal) {
	deck := Patterns()
	rng.Shuffle(len(deck), func(i, j int) { deck[i], deck[j] = deck[j], deck[i] })

	var cats [3]Cat
	for i, bucket := range catBuckets {
		cat := bucket[rng.Intn(len(bucket))]()
		cat.Patterns = [2]Pattern{deck[2*i], deck[2*i+1]}
		cats[i] = cat
	}

	kinds := GoalKinds()
	rng.Shuffle(len(kinds), func(i, j int) { kinds[i], kinds[j] = kinds[j], kinds[i] })

	var goals [3]Goal
	for i, pos := range GoalPositions {
		goals[i] = Goal{Kind: kinds[i], Pos: pos}
	}

	return cats, goals
}
